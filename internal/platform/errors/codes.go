// Package errors provides structured error handling with i18n support.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Villain errors
	CodeVillainMalformedName Code = "VILLAIN_MALFORMED_NAME"
	CodeVillainPlanCancelled Code = "VILLAIN_PLAN_CANCELLED"

	// Weapon errors
	CodeWeaponUnknown       Code = "WEAPON_UNKNOWN"
	CodeWeaponScriptInvalid Code = "WEAPON_SCRIPT_INVALID"
	CodeWeaponMisfire       Code = "WEAPON_MISFIRE"
)

// Retryable reports whether an operation failing with this code may succeed
// when repeated with the same input.
func (c Code) Retryable() bool {
	switch c {
	case CodeVillainPlanCancelled:
		return true
	default:
		return false
	}
}
