package pipeline

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"matsheets/internal"
)

// CellRef is a 1-based column/row coordinate on the sheet being assembled.
type CellRef struct {
	Col int
	Row int
}

func (r CellRef) Name() string {
	name, _ := excelize.CoordinatesToCellName(r.Col, r.Row)
	return name
}

// DoubleChestSlots is how many stacks one double chest holds.
const DoubleChestSlots = 54

type DerivedKind string

const (
	DerivedStackLookup     DerivedKind = "stack_lookup"
	DerivedEffectiveTotal  DerivedKind = "effective_total"
	DerivedStacksCeil      DerivedKind = "stacks_ceil"
	DerivedDoubleChests    DerivedKind = "double_chests"
	DerivedStacksAfterLast DerivedKind = "stacks_after_last_chest"
	DerivedUnitsAfterLast  DerivedKind = "units_after_last_stack"
)

// DerivedCell is one synthesized formula cell: an operation tag plus the cell
// references it draws on. It never embeds an aggregated quantity, so editing
// any referenced cell in the rendered workbook recomputes the chain without
// re-running this program. Rendering to formula text happens at the export
// boundary via Render.
type DerivedCell struct {
	Kind DerivedKind

	Item       CellRef
	Total      CellRef // the total this operation consumes (base or computed)
	UserUnits  CellRef
	UserStacks CellRef
	Stack      CellRef
	StacksCeil CellRef

	RefsSheet    string
	DefaultStack int
	ChestSlots   int
}

// Render emits the portable formula text (no leading "="). Divisors are
// clamped with MAX(1, …) so a zero stack size typed into the sheet yields a
// computed result instead of a division error.
func (c DerivedCell) Render() string {
	switch c.Kind {
	case DerivedStackLookup:
		return fmt.Sprintf("IFERROR(VLOOKUP(%s, %s!A:B, 2, FALSE), %d)", c.Item.Name(), c.RefsSheet, c.DefaultStack)
	case DerivedEffectiveTotal:
		return fmt.Sprintf("MAX(0, %s+%s+%s*%s)", c.Total.Name(), c.UserUnits.Name(), c.UserStacks.Name(), c.Stack.Name())
	case DerivedStacksCeil:
		return fmt.Sprintf("CEILING(%s/MAX(1,%s), 1)", c.Total.Name(), c.Stack.Name())
	case DerivedDoubleChests:
		return fmt.Sprintf("IF(%s=0, 0, CEILING(%s/%d, 1))", c.Total.Name(), c.StacksCeil.Name(), c.ChestSlots)
	case DerivedStacksAfterLast:
		return fmt.Sprintf("MOD(%s, %d)", c.StacksCeil.Name(), c.ChestSlots)
	case DerivedUnitsAfterLast:
		return fmt.Sprintf("MOD(%s, MAX(1,%s))", c.Total.Name(), c.Stack.Name())
	}
	return ""
}

// RowRefs locates one data row's cells by role on the target sheet.
type RowRefs struct {
	Item       CellRef
	Total      CellRef // base Total (TotalsOnly) or Missing base (MissingEditable)
	UserUnits  CellRef
	UserStacks CellRef
	Computed   CellRef
	Stack      CellRef
	StacksCeil CellRef
}

// RowFormulas holds the derived cells synthesized for one row. Computed and
// Stack are nil in TotalsOnly mode, where the base total is consumed directly
// and the stack size is a literal cell value.
type RowFormulas struct {
	Computed     *DerivedCell
	Stack        *DerivedCell
	StacksCeil   DerivedCell
	DoubleChests DerivedCell
	StacksAfter  DerivedCell
	UnitsAfter   DerivedCell
}

// Synthesis carries the parameters shared by every row of one output sheet.
type Synthesis struct {
	Mode         internal.SheetMode
	RefsSheet    string
	DefaultStack int
	ChestSlots   int
}

// Row synthesizes the derived cells for one data row. Identical input always
// yields identical output; nothing here depends on the aggregated values.
func (s Synthesis) Row(r RowRefs) RowFormulas {
	usedTotal := r.Total
	out := RowFormulas{}

	if s.Mode == internal.ModeMissingEditable {
		out.Stack = &DerivedCell{
			Kind:         DerivedStackLookup,
			Item:         r.Item,
			RefsSheet:    s.RefsSheet,
			DefaultStack: s.DefaultStack,
		}
		out.Computed = &DerivedCell{
			Kind:       DerivedEffectiveTotal,
			Total:      r.Total,
			UserUnits:  r.UserUnits,
			UserStacks: r.UserStacks,
			Stack:      r.Stack,
		}
		usedTotal = r.Computed
	}

	out.StacksCeil = DerivedCell{Kind: DerivedStacksCeil, Total: usedTotal, Stack: r.Stack}
	out.DoubleChests = DerivedCell{Kind: DerivedDoubleChests, Total: usedTotal, StacksCeil: r.StacksCeil, ChestSlots: s.ChestSlots}
	out.StacksAfter = DerivedCell{Kind: DerivedStacksAfterLast, StacksCeil: r.StacksCeil, ChestSlots: s.ChestSlots}
	out.UnitsAfter = DerivedCell{Kind: DerivedUnitsAfterLast, Total: usedTotal, Stack: r.Stack}
	return out
}
