package formatter

import (
	"github.com/hyp3rd/eventfmt"
)

// fieldNameTable holds the policy-transformed names of every fixed envelope
// and metadata key. The policy runs once per formatter instance here instead
// of once per event on the hot path. Immutable after construction.
type fieldNameTable struct {
	Timestamp       string
	Level           string
	MessageTemplate string
	RenderedMessage string
	TraceID         string
	SpanID          string
	Exception       string
	Properties      string
	Renderings      string
	Null            string
	TypeTag         string
	Format          string
	Rendering       string
}

func newFieldNameTable(policy eventfmt.NamingPolicy) *fieldNameTable {
	return &fieldNameTable{
		Timestamp:       policy.ConvertName("Timestamp"),
		Level:           policy.ConvertName("Level"),
		MessageTemplate: policy.ConvertName("MessageTemplate"),
		RenderedMessage: policy.ConvertName("RenderedMessage"),
		TraceID:         policy.ConvertName("TraceId"),
		SpanID:          policy.ConvertName("SpanId"),
		Exception:       policy.ConvertName("Exception"),
		Properties:      policy.ConvertName("Properties"),
		Renderings:      policy.ConvertName("Renderings"),
		Null:            policy.ConvertName("null"),
		TypeTag:         policy.ConvertName("_typeTag"),
		Format:          policy.ConvertName("Format"),
		Rendering:       policy.ConvertName("Rendering"),
	}
}
