package pipeline

import (
	"testing"

	"matsheets/internal"
)

func TestAssignWordMatchBeatsSubstring(t *testing.T) {
	// "Subtotal" is earlier but only contains "total" as a substring; the
	// whole-word pass must win regardless of column position.
	m := NewGreedyAssigner().Assign([]string{"Subtotal", "Total"})
	if m[internal.RoleTotal] != "Total" {
		t.Fatalf("total -> %q", m[internal.RoleTotal])
	}
}

func TestAssignLeftmostColumnWins(t *testing.T) {
	// Both headers word-match a total candidate; "count" has lower priority
	// than "total" but sits in the earlier column.
	m := NewGreedyAssigner().Assign([]string{"Item Count", "Total"})
	if m[internal.RoleTotal] != "Item Count" {
		t.Fatalf("total -> %q", m[internal.RoleTotal])
	}
}

func TestAssignSubstringFallback(t *testing.T) {
	m := NewGreedyAssigner().Assign([]string{"ItemTotals"})
	if m[internal.RoleTotal] != "ItemTotals" {
		t.Fatalf("total -> %q", m[internal.RoleTotal])
	}
}

func TestAssignUnresolvedRole(t *testing.T) {
	m := NewGreedyAssigner().Assign([]string{"foo", "bar"})
	if _, ok := m[internal.RoleMissing]; ok {
		t.Fatalf("missing should be unresolved, got %q", m[internal.RoleMissing])
	}
}

func TestAssignAllowsMultiRoleHeader(t *testing.T) {
	// Roles are searched independently; one header may serve several.
	m := NewGreedyAssigner().Assign([]string{"Material Count"})
	if m[internal.RoleName] != "Material Count" || m[internal.RoleTotal] != "Material Count" {
		t.Fatalf("unexpected mapping: %+v", m)
	}
}

func TestAssignTypicalExport(t *testing.T) {
	headers := []string{"Item", "Total", "Missing", "Available"}
	m := NewGreedyAssigner().Assign(headers)
	want := internal.ColumnMapping{
		internal.RoleName:      "Item",
		internal.RoleTotal:     "Total",
		internal.RoleMissing:   "Missing",
		internal.RoleAvailable: "Available",
	}
	for role, col := range want {
		if m[role] != col {
			t.Fatalf("%s -> %q want %q", role, m[role], col)
		}
	}
}
