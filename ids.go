package eventfmt

import (
	"encoding/hex"

	"github.com/hyp3rd/ewrap"
)

// TraceID is a 16-byte distributed-trace identifier. The zero value means
// "absent"; absent identifiers are omitted from the output entirely.
type TraceID [16]byte

// SpanID is an 8-byte span identifier within a trace. The zero value means
// "absent".
type SpanID [8]byte

// IsZero reports whether the identifier is absent.
func (id TraceID) IsZero() bool { return id == TraceID{} }

// String returns the lowercase hex encoding of the identifier.
func (id TraceID) String() string { return hex.EncodeToString(id[:]) }

// IsZero reports whether the identifier is absent.
func (id SpanID) IsZero() bool { return id == SpanID{} }

// String returns the lowercase hex encoding of the identifier.
func (id SpanID) String() string { return hex.EncodeToString(id[:]) }

// TraceIDFromHex parses a 32-character hex string into a TraceID.
func TraceIDFromHex(s string) (TraceID, error) {
	var id TraceID

	if len(s) != hex.EncodedLen(len(id)) {
		return id, ewrap.New("trace id must be 32 hex characters").WithMetadata("input", s)
	}

	if _, err := hex.Decode(id[:], []byte(s)); err != nil {
		return id, ewrap.Wrap(err, "invalid trace id")
	}

	return id, nil
}

// SpanIDFromHex parses a 16-character hex string into a SpanID.
func SpanIDFromHex(s string) (SpanID, error) {
	var id SpanID

	if len(s) != hex.EncodedLen(len(id)) {
		return id, ewrap.New("span id must be 16 hex characters").WithMetadata("input", s)
	}

	if _, err := hex.Decode(id[:], []byte(s)); err != nil {
		return id, ewrap.Wrap(err, "invalid span id")
	}

	return id, nil
}
