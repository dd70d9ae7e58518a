package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeVillainMalformedName = "VILLAIN_MALFORMED_NAME"
	CodeVillainPlanCancelled = "VILLAIN_PLAN_CANCELLED"
	CodeWeaponUnknown        = "WEAPON_UNKNOWN"
	CodeWeaponScriptInvalid  = "WEAPON_SCRIPT_INVALID"
	CodeWeaponMisfire        = "WEAPON_MISFIRE"
)

var enUSMessages = map[Code]string{
	CodeVillainMalformedName: `"{{.Input}}" is not a full name: expected a first and last name separated by one space, got {{.Tokens}} part(s)`,
	CodeVillainPlanCancelled: "{{.Villain}} stopped plotting before the plan was ready",
	CodeWeaponUnknown:        `unknown weapon "{{.Weapon}}"`,
	CodeWeaponScriptInvalid:  `weapon script "{{.Weapon}}" is invalid`,
	CodeWeaponMisfire:        `weapon "{{.Weapon}}" misfired`,
}
