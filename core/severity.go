package core

import "strings"

// Severity represents the severity of a diagnostic message
type Severity int8

const (
	// SeverityInfo for general informational messages
	SeverityInfo Severity = iota
	// SeverityWarning for warning conditions
	SeverityWarning
	// SeverityError for error conditions
	SeverityError
)

// String returns the string representation of the severity
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Tag returns the single-byte wire tag transmitted ahead of a message
func (s Severity) Tag() byte {
	switch s {
	case SeverityInfo:
		return 'I'
	case SeverityWarning:
		return 'W'
	case SeverityError:
		return 'E'
	default:
		return '?'
	}
}

// ShouldLog reports whether a message at severity s passes the configured
// threshold. It is pure and runs before any allocation on the log path.
func ShouldLog(s, threshold Severity) bool {
	return s >= threshold
}

// ParseSeverity converts a string to a Severity
func ParseSeverity(str string) Severity {
	switch strings.ToUpper(str) {
	case "INFO":
		return SeverityInfo
	case "WARN", "WARNING":
		return SeverityWarning
	case "ERROR":
		return SeverityError
	default:
		return SeverityInfo
	}
}
