package internal

type CanonicalRole string

const (
	RoleName      CanonicalRole = "name"
	RoleTotal     CanonicalRole = "total"
	RoleMissing   CanonicalRole = "missing"
	RoleAvailable CanonicalRole = "available"
)

// Roles lists every canonical role in matcher order.
var Roles = []CanonicalRole{RoleName, RoleTotal, RoleMissing, RoleAvailable}

// NumericRoles are the roles whose values are coerced to integers and summed.
var NumericRoles = []CanonicalRole{RoleTotal, RoleMissing, RoleAvailable}

// ColumnMapping maps a canonical role to the original input header that
// carries it. An absent key means the role is unresolved.
type ColumnMapping map[CanonicalRole]string

// Table is one parsed tabular input: header order plus one value map per row.
// Duplicate-header disambiguation is the input provider's responsibility.
type Table struct {
	Headers []string
	Rows    []map[string]string
}

// AggregatedItem is one output row: first-seen display name plus per-role sums.
type AggregatedItem struct {
	Name      string
	Total     int
	Missing   int
	Available int
}

type SheetMode string

const (
	ModeTotalsOnly      SheetMode = "totals_only"
	ModeMissingEditable SheetMode = "missing_editable"
)

// StackRef binds one item identity to its stack size for the REFS sheet.
type StackRef struct {
	Key       string
	Display   string
	StackSize int
}
