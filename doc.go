// Package eventfmt defines the structured event model and configuration for
// the event-to-JSON formatter.
//
// This package provides:
// - The Event record (timestamp, severity level, message template, optional
//   exception, optional trace/span identifiers, named properties)
// - The closed Value model (Scalar, Sequence, Structure, Dictionary) that
//   carries all property data, nested to arbitrary depth
// - Message template tokens and a small parser for constructing them
// - Pluggable naming policies (identity, camelCase, snake_case, kebab-case)
//   applied to every emitted JSON object key
// - The Config struct and fluent ConfigBuilder shared by the formatter
//
// The encoder itself lives in pkg/formatter. It consumes one fully-formed
// Event at a time and writes a single well-formed JSON document to an
// io.Writer sink, suitable for concatenation into a JSON-Lines stream.
//
// Basic usage:
//
//	f, err := formatter.New(nil)
//	if err != nil {
//		panic(err)
//	}
//
//	event := eventfmt.NewEvent(time.Now(), eventfmt.InformationLevel,
//		"user {Name} logged in",
//		eventfmt.Prop("Name", eventfmt.StringValue("admin")))
//
//	if err := f.Format(event, os.Stdout); err != nil {
//		panic(err)
//	}
//
// A single formatter instance is safe for concurrent use; all mutable
// scratch state is allocated per call.
package eventfmt
