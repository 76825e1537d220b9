package pipeline

import (
	"matsheets/internal"
)

// Workbook column titles.
const (
	ColMaterials    = "Materials"
	ColTotalUnits   = "Total (units)"
	ColUserUnits    = "User units (editable)"
	ColUserStacks   = "User stacks (editable)"
	ColComputed     = "Computed Total (units)"
	ColStackSize    = "Stack Size"
	ColStacksCeil   = "# Stacks (ceil)"
	ColDoubleChests = "# Double Chests"
	ColStacksAfter  = "Stacks after last double"
	ColUnitsAfter   = "Units after last stack"
)

type CellKind string

const (
	CellStatic   CellKind = "static"
	CellEditable CellKind = "editable"
	CellFormula  CellKind = "formula"
)

type Cell struct {
	Kind    CellKind
	Value   any
	Derived *DerivedCell
}

// OutputSheet is one assembled sheet: column order plus one cell row per
// aggregated item. Rows[i] lands at workbook row i+2 (row 1 is the header).
type OutputSheet struct {
	Name    string
	Mode    internal.SheetMode
	Columns []string
	Rows    [][]Cell
}

// ValidatedColumns returns the 1-based columns that get a non-negative
// whole-number input constraint: the stack-size column always, plus the two
// user-editable columns when present.
func (s OutputSheet) ValidatedColumns() []int {
	out := []int{}
	for i, name := range s.Columns {
		switch name {
		case ColStackSize, ColUserUnits, ColUserStacks:
			out = append(out, i+1)
		}
	}
	return out
}

func sheetColumns(mode internal.SheetMode) []string {
	if mode == internal.ModeMissingEditable {
		return []string{
			ColMaterials, ColTotalUnits, ColUserUnits, ColUserStacks, ColComputed,
			ColStackSize, ColStacksCeil, ColDoubleChests, ColStacksAfter, ColUnitsAfter,
		}
	}
	return []string{
		ColMaterials, ColTotalUnits, ColStackSize,
		ColStacksCeil, ColDoubleChests, ColStacksAfter, ColUnitsAfter,
	}
}

// BuildSheet lays out one output sheet and synthesizes its formula cells.
// In MissingEditable mode the base total column carries the Missing sums and
// feeds the computed-total formula; in TotalsOnly mode the Total sums are
// consumed directly and the stack size is a literal (still editable) value.
func BuildSheet(name string, mode internal.SheetMode, items []internal.AggregatedItem, syn Synthesis) OutputSheet {
	syn.Mode = mode
	columns := sheetColumns(mode)

	colIdx := map[string]int{}
	for i, c := range columns {
		colIdx[c] = i + 1
	}
	at := func(col string, row int) CellRef {
		return CellRef{Col: colIdx[col], Row: row}
	}

	sheet := OutputSheet{Name: name, Mode: mode, Columns: columns}
	for i, item := range items {
		row := i + 2

		refs := RowRefs{
			Item:       at(ColMaterials, row),
			Total:      at(ColTotalUnits, row),
			Stack:      at(ColStackSize, row),
			StacksCeil: at(ColStacksCeil, row),
		}
		if mode == internal.ModeMissingEditable {
			refs.UserUnits = at(ColUserUnits, row)
			refs.UserStacks = at(ColUserStacks, row)
			refs.Computed = at(ColComputed, row)
		}
		formulas := syn.Row(refs)

		base := item.Total
		if mode == internal.ModeMissingEditable {
			base = item.Missing
		}

		cells := make([]Cell, len(columns))
		cells[colIdx[ColMaterials]-1] = Cell{Kind: CellStatic, Value: item.Name}
		cells[colIdx[ColTotalUnits]-1] = Cell{Kind: CellStatic, Value: base}
		cells[colIdx[ColStacksCeil]-1] = Cell{Kind: CellFormula, Derived: &formulas.StacksCeil}
		cells[colIdx[ColDoubleChests]-1] = Cell{Kind: CellFormula, Derived: &formulas.DoubleChests}
		cells[colIdx[ColStacksAfter]-1] = Cell{Kind: CellFormula, Derived: &formulas.StacksAfter}
		cells[colIdx[ColUnitsAfter]-1] = Cell{Kind: CellFormula, Derived: &formulas.UnitsAfter}

		if mode == internal.ModeMissingEditable {
			cells[colIdx[ColUserUnits]-1] = Cell{Kind: CellEditable, Value: 0}
			cells[colIdx[ColUserStacks]-1] = Cell{Kind: CellEditable, Value: 0}
			cells[colIdx[ColComputed]-1] = Cell{Kind: CellFormula, Derived: formulas.Computed}
			cells[colIdx[ColStackSize]-1] = Cell{Kind: CellFormula, Derived: formulas.Stack}
		} else {
			cells[colIdx[ColStackSize]-1] = Cell{Kind: CellEditable, Value: syn.DefaultStack}
		}

		sheet.Rows = append(sheet.Rows, cells)
	}

	return sheet
}
