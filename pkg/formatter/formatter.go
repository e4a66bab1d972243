// Package formatter implements the structured-event-to-JSON encoder.
//
// A Formatter writes one JSON document per event, followed by a configurable
// delimiter, to a caller-owned io.Writer sink. Output is suitable for
// concatenation into a JSON-Lines stream.
//
// A single Formatter is safe for concurrent use: the naming table and
// configuration are immutable after construction, and all mutable scratch
// state (the JSON token writer and its buffer) is allocated per call. The
// complete document reaches the sink in a single Write.
package formatter

import (
	"bytes"
	"io"
	"sync"
	"sync/atomic"

	"github.com/hyp3rd/ewrap"
	"golang.org/x/text/message"

	"github.com/hyp3rd/eventfmt"
	"github.com/hyp3rd/eventfmt/internal/jsonw"
)

var (
	// ErrNilEvent is returned when Format is called without an event.
	ErrNilEvent = ewrap.New("event cannot be nil")
	// ErrNilSink is returned when Format is called without a sink.
	ErrNilSink = ewrap.New("sink cannot be nil")
	// ErrClosed is returned when Format is called after Close.
	ErrClosed = ewrap.New("formatter is closed")
)

const (
	// timestampLayout is the round-trip layout for points in time: seven
	// fractional digits, trailing zeros kept, explicit numeric offset.
	timestampLayout = "2006-01-02T15:04:05.0000000-07:00"
	dateLayout      = "2006-01-02"
	timeOfDayLayout = "15:04:05.0000000"
)

var bufferPool = sync.Pool{
	New: func() any { return new(bytes.Buffer) },
}

// Formatter encodes events as JSON documents. Construct with New; the zero
// value is not usable.
type Formatter struct {
	cfg     eventfmt.Config
	names   *fieldNameTable
	printer *message.Printer
	closed  atomic.Bool
}

// New creates a formatter from the given configuration. A nil configuration
// selects the defaults.
func New(cfg *eventfmt.Config) (*Formatter, error) {
	resolved := eventfmt.DefaultConfig()
	if cfg != nil {
		resolved = *cfg
	}

	if resolved.Naming == nil {
		resolved.Naming = eventfmt.IdentityNaming{}
	}

	if resolved.SpanBufferSize <= 0 {
		resolved.SpanBufferSize = eventfmt.DefaultSpanBufferSize
	}

	return &Formatter{
		cfg:     resolved,
		names:   newFieldNameTable(resolved.Naming),
		printer: message.NewPrinter(resolved.Culture),
	}, nil
}

// Format writes one complete JSON document for event, followed by the
// configured delimiter, to sink. Nothing is written when an error occurs
// before the document is complete; sink write failures propagate unchanged.
func (f *Formatter) Format(event *eventfmt.Event, sink io.Writer) error {
	if f.closed.Load() {
		return ErrClosed
	}

	if event == nil {
		return ErrNilEvent
	}

	if sink == nil {
		return ErrNilSink
	}

	buf, _ := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()

	defer bufferPool.Put(buf)

	enc := &encoder{
		w:       jsonw.NewWriter(buf, f.cfg.EscapeNonASCII, f.cfg.StrictValidation),
		names:   f.names,
		policy:  f.cfg.Naming,
		printer: f.printer,
		scratch: f.cfg.SpanBufferSize,
	}

	err := enc.writeEvent(event, f.cfg.RenderMessage)
	if err != nil {
		return err
	}

	buf.WriteString(f.cfg.Delimiter)

	// Retry semantics around sink I/O belong to the transport layer.
	_, err = sink.Write(buf.Bytes())

	return err
}

// Close marks the formatter as torn down. Subsequent Format calls fail with
// ErrClosed. Close never touches any sink; sinks are caller-owned.
func (f *Formatter) Close() error {
	f.closed.Store(true)

	return nil
}

// encoder carries the per-call state of one Format invocation.
type encoder struct {
	w       *jsonw.Writer
	names   *fieldNameTable
	policy  eventfmt.NamingPolicy
	printer *message.Printer
	scratch int
}

func (enc *encoder) writeEvent(event *eventfmt.Event, renderMessage bool) error {
	w := enc.w

	w.BeginObject()

	w.Name(enc.names.Timestamp)
	w.String(event.Timestamp.Format(timestampLayout))

	w.Name(enc.names.Level)
	w.String(event.Level.String())

	w.Name(enc.names.MessageTemplate)
	w.String(templateRaw(event))

	if renderMessage {
		text, err := enc.renderMessageText(event)
		if err != nil {
			return err
		}

		w.Name(enc.names.RenderedMessage)
		w.String(text)
	}

	if !event.TraceID.IsZero() {
		w.Name(enc.names.TraceID)
		w.String(event.TraceID.String())
	}

	if !event.SpanID.IsZero() {
		w.Name(enc.names.SpanID)
		w.String(event.SpanID.String())
	}

	if event.Exception != nil {
		w.Name(enc.names.Exception)
		w.String(event.Exception.Error())
	}

	if len(event.Properties) > 0 {
		w.Name(enc.names.Properties)
		w.BeginObject()

		for _, property := range event.Properties {
			w.Name(enc.policy.ConvertName(property.Name))

			err := enc.visit(property.Value)
			if err != nil {
				return err
			}
		}

		w.EndObject()
	}

	if hasRenderings(event) {
		err := enc.writeRenderings(event)
		if err != nil {
			return err
		}
	}

	w.EndObject()

	return w.Finish()
}

func templateRaw(event *eventfmt.Event) string {
	if event.Template == nil {
		return ""
	}

	return event.Template.Raw
}
