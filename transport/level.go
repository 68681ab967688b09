package transport

import "github.com/philipp01105/dlog/core"

// Severity and Tier re-export type and constants for convenience
type Severity = core.Severity

const (
	SeverityInfo    = core.SeverityInfo
	SeverityWarning = core.SeverityWarning
	SeverityError   = core.SeverityError
)

// Tier re-export
type Tier = core.Tier

const (
	TierOff      = core.TierOff
	TierMinimal  = core.TierMinimal
	TierErrors   = core.TierErrors
	TierWarnings = core.TierWarnings
	TierFull     = core.TierFull
)

// ParseTier converts a string to a Tier
func ParseTier(s string) Tier {
	return core.ParseTier(s)
}

// ParseSeverity converts a string to a Severity
func ParseSeverity(s string) Severity {
	return core.ParseSeverity(s)
}
