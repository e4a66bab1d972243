package eventfmt

import (
	"strings"

	"github.com/hyp3rd/ewrap"
)

// Level represents the severity of an event.
type Level uint8

const (
	// VerboseLevel represents tracing information and debugging minutiae.
	VerboseLevel Level = iota
	// DebugLevel represents internal system events that are not necessarily
	// observable from the outside.
	DebugLevel
	// InformationLevel represents the lifeblood of operational intelligence.
	InformationLevel
	// WarningLevel represents service degradation or endangerment.
	WarningLevel
	// ErrorLevel represents functionality that is unavailable or expectations broken.
	ErrorLevel
	// FatalLevel represents events that demand immediate attention.
	FatalLevel
)

// String returns the symbolic name of the level. The symbolic name, never
// the ordinal, is what the formatter emits.
func (l Level) String() string {
	switch l {
	case VerboseLevel:
		return "Verbose"
	case DebugLevel:
		return "Debug"
	case InformationLevel:
		return "Information"
	case WarningLevel:
		return "Warning"
	case ErrorLevel:
		return "Error"
	case FatalLevel:
		return "Fatal"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the given Level is a valid severity level.
func (l Level) IsValid() bool {
	return l <= FatalLevel
}

// ParseLevel parses a case-insensitive level name into a Level.
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(level) {
	case "verbose", "trace":
		return VerboseLevel, nil
	case "debug":
		return DebugLevel, nil
	case "information", "info":
		return InformationLevel, nil
	case "warning", "warn":
		return WarningLevel, nil
	case "error":
		return ErrorLevel, nil
	case "fatal":
		return FatalLevel, nil
	default:
		return InformationLevel, ewrap.New("invalid level: " + level)
	}
}
