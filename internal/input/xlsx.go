package input

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"matsheets/internal"
)

// ReadXLSX parses the first sheet of an xlsx materials list.
func ReadXLSX(path string) (internal.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return internal.Table{}, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return internal.Table{}, err
	}
	if len(rows) == 0 {
		return internal.Table{}, fmt.Errorf("empty sheet %q in %s", sheet, path)
	}

	return tableFromRows(rows), nil
}
