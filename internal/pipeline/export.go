package pipeline

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"matsheets/internal"
	"matsheets/internal/refs"
)

const RefsSheetName = "REFS"

const columnWidth = 20

// ExportWorkbook renders the assembled sheets plus the REFS lookup table into
// one xlsx file. Formula cells are rendered here, at the boundary; everything
// upstream works on tagged cell specs.
func ExportWorkbook(sheets []OutputSheet, stackRefs []internal.StackRef, outputPath string) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}

	for i, sheet := range sheets {
		if i == 0 {
			f.SetSheetName(f.GetSheetName(0), sheet.Name)
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return err
		}
		if err := writeSheet(f, sheet, headerStyle); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(RefsSheetName); err != nil {
		return err
	}
	if err := writeRefsSheet(f, stackRefs, headerStyle); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}

func writeSheet(f *excelize.File, sheet OutputSheet, headerStyle int) error {
	for i, col := range sheet.Columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet.Name, cell, col); err != nil {
			return err
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(sheet.Columns), 1)
	if err := f.SetCellStyle(sheet.Name, "A1", lastHeader, headerStyle); err != nil {
		return err
	}

	for r, row := range sheet.Rows {
		for c, cell := range row {
			name, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if cell.Kind == CellFormula {
				if err := f.SetCellFormula(sheet.Name, name, cell.Derived.Render()); err != nil {
					return err
				}
				continue
			}
			if err := f.SetCellValue(sheet.Name, name, cell.Value); err != nil {
				return err
			}
		}
	}

	if len(sheet.Rows) > 0 {
		for _, col := range sheet.ValidatedColumns() {
			dv := excelize.NewDataValidation(true)
			first, _ := excelize.CoordinatesToCellName(col, 2)
			last, _ := excelize.CoordinatesToCellName(col, len(sheet.Rows)+1)
			dv.Sqref = first + ":" + last
			if err := dv.SetRange(0, 0, excelize.DataValidationTypeWhole, excelize.DataValidationOperatorGreaterThanOrEqual); err != nil {
				return err
			}
			if err := f.AddDataValidation(sheet.Name, dv); err != nil {
				return err
			}
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(sheet.Columns))
	return f.SetColWidth(sheet.Name, "A", lastCol, columnWidth)
}

// writeRefsSheet writes the identity→stack-size table the VLOOKUP formulas
// read (identity in column A, stack size in column B), then the doc links.
func writeRefsSheet(f *excelize.File, stackRefs []internal.StackRef, headerStyle int) error {
	if err := f.SetSheetRow(RefsSheetName, "A1", &[]any{"Materials", "Stack Size"}); err != nil {
		return err
	}
	if err := f.SetCellStyle(RefsSheetName, "A1", "B1", headerStyle); err != nil {
		return err
	}

	row := 2
	for _, ref := range stackRefs {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(RefsSheetName, cell, &[]any{ref.Display, ref.StackSize}); err != nil {
			return err
		}
		row++
	}

	row++ // blank separator row
	docsHeader, _ := excelize.CoordinatesToCellName(1, row)
	if err := f.SetSheetRow(RefsSheetName, docsHeader, &[]any{"Docs", "URL"}); err != nil {
		return err
	}
	end, _ := excelize.CoordinatesToCellName(2, row)
	if err := f.SetCellStyle(RefsSheetName, docsHeader, end, headerStyle); err != nil {
		return err
	}
	for _, link := range refs.DocLinks() {
		row++
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(RefsSheetName, cell, &[]any{link.Label, link.URL}); err != nil {
			return err
		}
	}

	return f.SetColWidth(RefsSheetName, "A", "B", columnWidth)
}
