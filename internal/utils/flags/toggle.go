// Package flags interprets the yes/no style literals homegit accepts for toggles.
package flags

import (
	"fmt"
	"strings"
)

const (
	toggleTrueCanonicalValue  = "true"
	toggleFalseCanonicalValue = "false"
	toggleYesLiteral          = "yes"
	toggleNoLiteral           = "no"
	toggleOnLiteral           = "on"
	toggleOffLiteral          = "off"
	toggleOneLiteral          = "1"
	toggleZeroLiteral         = "0"
	toggleTLiteral            = "t"
	toggleFLiteral            = "f"
	toggleYLiteral            = "y"
	toggleNLiteral            = "n"
	toggleParseErrorTemplate  = "invalid toggle value %q"
)

var (
	trueLiteralSet = map[string]struct{}{
		toggleTrueCanonicalValue: {},
		toggleYesLiteral:         {},
		toggleOnLiteral:          {},
		toggleOneLiteral:         {},
		toggleTLiteral:           {},
		toggleYLiteral:           {},
	}
	falseLiteralSet = map[string]struct{}{
		toggleFalseCanonicalValue: {},
		toggleNoLiteral:           {},
		toggleOffLiteral:          {},
		toggleZeroLiteral:         {},
		toggleFLiteral:            {},
		toggleNLiteral:            {},
	}
)

// ParseToggle interprets rawValue case-insensitively. An empty value is false.
func ParseToggle(rawValue string) (bool, error) {
	normalizedValue := strings.ToLower(strings.TrimSpace(rawValue))
	if len(normalizedValue) == 0 {
		return false, nil
	}
	if _, isTrue := trueLiteralSet[normalizedValue]; isTrue {
		return true, nil
	}
	if _, isFalse := falseLiteralSet[normalizedValue]; isFalse {
		return false, nil
	}
	return false, fmt.Errorf(toggleParseErrorTemplate, rawValue)
}

// ToggleEnabled reports whether rawValue is a recognized true literal.
// Unrecognized values are treated as disabled.
func ToggleEnabled(rawValue string) bool {
	enabled, parseError := ParseToggle(rawValue)
	if parseError != nil {
		return false
	}
	return enabled
}
