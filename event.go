package eventfmt

import (
	"time"
)

// Property is one named value attached to an event. Properties keep their
// insertion order so repeated renderings of the same event are reproducible.
type Property struct {
	Name  string
	Value Value
}

// Prop builds a Property.
func Prop(name string, value Value) Property {
	return Property{Name: name, Value: value}
}

// Event is one structured event record to be serialized. All fields are
// read-only to the formatter during a Format call.
type Event struct {
	// Timestamp is the point in time the event occurred, with zone offset.
	Timestamp time.Time
	// Level is the severity of the event.
	Level Level
	// Template is the message template with its parsed token list.
	Template *MessageTemplate
	// Exception is the optional error associated with the event.
	Exception error
	// TraceID is the optional distributed-trace identifier. Zero = absent.
	TraceID TraceID
	// SpanID is the optional span identifier. Zero = absent.
	SpanID SpanID
	// Properties are the named values bound to the event, in insertion order.
	Properties []Property
}

// NewEvent builds an event, parsing the message template once up front.
func NewEvent(timestamp time.Time, level Level, template string, properties ...Property) *Event {
	return &Event{
		Timestamp:  timestamp,
		Level:      level,
		Template:   ParseTemplate(template),
		Properties: properties,
	}
}

// WithException attaches an error to the event.
func (e *Event) WithException(err error) *Event {
	e.Exception = err

	return e
}

// WithTraceIDs attaches trace and span identifiers to the event.
func (e *Event) WithTraceIDs(traceID TraceID, spanID SpanID) *Event {
	e.TraceID = traceID
	e.SpanID = spanID

	return e
}

// Property returns the bound value for the given name, if present.
func (e *Event) Property(name string) (Value, bool) {
	for _, p := range e.Properties {
		if p.Name == name {
			return p.Value, true
		}
	}

	return nil, false
}
