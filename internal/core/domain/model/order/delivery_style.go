package order

import (
	"fmt"

	"cashrun/internal/pkg/errs"
)

// DeliveryStyle tells the runner how the handoff is performed.
type DeliveryStyle string

const (
	// StyleUnset means the order row carries no delivery_style value.
	StyleUnset   DeliveryStyle = ""
	// StyleCounted: the runner stays while the customer counts the cash.
	StyleCounted DeliveryStyle = "COUNTED"
	// StyleSpeed: the runner hands the cash over and may leave.
	StyleSpeed   DeliveryStyle = "SPEED"
)

// DefaultDeliveryStyle applies when neither style nor legacy mode is present.
const DefaultDeliveryStyle = StyleSpeed

// LegacyDeliveryMode is the value space of the old delivery_mode column.
//
// Deprecated: kept only to read rows written before delivery_style existed.
// Remove together with the column once the backfill migration is confirmed.
type LegacyDeliveryMode string

const (
	LegacyModeUnset        LegacyDeliveryMode = ""
	LegacyModeCountConfirm LegacyDeliveryMode = "count_confirm"
	LegacyModeQuickHandoff LegacyDeliveryMode = "quick_handoff"
)

func ParseDeliveryStyle(s string) (DeliveryStyle, error) {
	style := DeliveryStyle(s)
	if err := style.Validate(); err != nil {
		return StyleUnset, err
	}
	return style, nil
}

// Validate accepts COUNTED and SPEED. StyleUnset is rejected; use
// ResolveDeliveryStyle to fall back to the legacy mode.
func (s DeliveryStyle) Validate() error {
	switch s {
	case StyleCounted, StyleSpeed:
		return nil
	case StyleUnset:
		return errs.NewValueIsRequiredError("delivery style")
	default:
		return errs.NewValueIsInvalidErrorWithCause("delivery style", fmt.Errorf("%q is not a valid delivery style", string(s)))
	}
}

// Style maps a legacy mode to its delivery style. ok is false for unset or
// unrecognised modes.
func (m LegacyDeliveryMode) Style() (DeliveryStyle, bool) {
	switch m {
	case LegacyModeCountConfirm:
		return StyleCounted, true
	case LegacyModeQuickHandoff:
		return StyleSpeed, true
	case LegacyModeUnset:
		return StyleUnset, false
	default:
		return StyleUnset, false
	}
}

// ResolveDeliveryStyle returns style if it is valid, else the style derived
// from the legacy mode, else DefaultDeliveryStyle. It never fails.
func ResolveDeliveryStyle(style DeliveryStyle, legacy LegacyDeliveryMode) DeliveryStyle {
	if style.Validate() == nil {
		return style
	}
	if derived, ok := legacy.Style(); ok {
		return derived
	}
	return DefaultDeliveryStyle
}
