package core

import "strings"

// Tier selects how much of the debug surface is live. One runtime value
// decides both the severity threshold and which control operations
// exist, keeping the whole decision table in one place.
//
// The zero value is deliberately not a valid tier. A transport must be
// configured with an explicit tier; construction fails otherwise.
type Tier int8

const (
	// TierOff disables the transport entirely
	TierOff Tier = iota + 1
	// TierMinimal enables only the reset operation
	TierMinimal
	// TierErrors enables reset, freeze-self and Error messages
	TierErrors
	// TierWarnings additionally enables Warning messages
	TierWarnings
	// TierFull enables Info messages and freeze-all
	TierFull
)

// Valid reports whether t is one of the defined tiers
func (t Tier) Valid() bool {
	return t >= TierOff && t <= TierFull
}

// LoggingEnabled reports whether any message may enter the transport
func (t Tier) LoggingEnabled() bool {
	return t >= TierErrors
}

// Threshold returns the minimum severity admitted at this tier. ok is false
// when the tier admits no messages at all.
func (t Tier) Threshold() (threshold Severity, ok bool) {
	switch t {
	case TierErrors:
		return SeverityError, true
	case TierWarnings:
		return SeverityWarning, true
	case TierFull:
		return SeverityInfo, true
	default:
		return 0, false
	}
}

// AllowsReset reports whether the reset operation is live at this tier
func (t Tier) AllowsReset() bool {
	return t >= TierMinimal
}

// AllowsFreezeSelf reports whether freeze-self is live at this tier
func (t Tier) AllowsFreezeSelf() bool {
	return t >= TierErrors
}

// AllowsFreezeAll reports whether freeze-all is live at this tier
func (t Tier) AllowsFreezeAll() bool {
	return t >= TierFull
}

// String returns the string representation of the tier
func (t Tier) String() string {
	switch t {
	case TierOff:
		return "OFF"
	case TierMinimal:
		return "MINIMAL"
	case TierErrors:
		return "ERRORS"
	case TierWarnings:
		return "WARNINGS"
	case TierFull:
		return "FULL"
	default:
		return "UNSET"
	}
}

// ParseTier converts a string to a Tier. Unknown strings map to TierFull,
// the most verbose tier, so a missing or mistyped setting surfaces messages
// rather than swallowing them.
func ParseTier(str string) Tier {
	switch strings.ToUpper(str) {
	case "OFF":
		return TierOff
	case "MINIMAL":
		return TierMinimal
	case "ERRORS":
		return TierErrors
	case "WARNINGS":
		return TierWarnings
	case "FULL":
		return TierFull
	default:
		return TierFull
	}
}
