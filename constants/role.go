package constants

// LineRole tags a raw receipt line with its classified role.
type LineRole string

const (
	RoleHeader LineRole = "header" // candidate store name
	RoleDate   LineRole = "date"
	RoleItem   LineRole = "item"
	RoleTotals LineRole = "totals" // subtotal / tax / total
	RoleNoise  LineRole = "noise"  // dropped silently
)
