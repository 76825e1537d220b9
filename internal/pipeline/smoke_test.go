package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"matsheets/internal/config"
	"matsheets/internal/storage"
)

func TestSmokeCSVToWorkbook(t *testing.T) {
	tmp := t.TempDir()

	csvPath := filepath.Join(tmp, "materials.csv")
	content := "Item;Total;Missing;Available\n" +
		"Oak Log;10;4;6\n" +
		"oak_log;5;1;4\n" +
		"Torch;n/a;2;0\n"
	if err := os.WriteFile(csvPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	db, err := storage.Open(filepath.Join(tmp, "app.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	if err := db.UpsertStackRef("Shulker Box", 1); err != nil {
		t.Fatal(err)
	}

	cfg, _ := config.Load()
	svc := NewConvertService(db, cfg)
	out := filepath.Join(tmp, "result.xlsx")
	res, err := svc.Run(ConvertOptions{InputPath: csvPath, OutputPath: out})
	if err != nil {
		t.Fatal(err)
	}
	if res.Items != 2 {
		t.Fatalf("items=%d", res.Items)
	}

	f, err := excelize.OpenFile(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	sheets := map[string]bool{}
	for _, name := range f.GetSheetList() {
		sheets[name] = true
	}
	for _, want := range []string{TotalsSheetName, MissingSheetName, RefsSheetName} {
		if !sheets[want] {
			t.Fatalf("sheet %q missing from %v", want, f.GetSheetList())
		}
	}

	// Duplicate identities merged with first-seen casing and summed totals.
	if got, _ := f.GetCellValue(TotalsSheetName, "A2"); got != "Oak Log" {
		t.Fatalf("A2=%q", got)
	}
	if got, _ := f.GetCellValue(TotalsSheetName, "B2"); got != "15" {
		t.Fatalf("B2=%q", got)
	}

	formula, err := f.GetCellFormula(MissingSheetName, "E2")
	if err != nil {
		t.Fatal(err)
	}
	if formula != "MAX(0, B2+C2+D2*F2)" {
		t.Fatalf("computed-total formula=%q", formula)
	}
	formula, err = f.GetCellFormula(MissingSheetName, "F2")
	if err != nil {
		t.Fatal(err)
	}
	if formula != "IFERROR(VLOOKUP(A2, REFS!A:B, 2, FALSE), 64)" {
		t.Fatalf("stack-size formula=%q", formula)
	}

	// Stored override lands in the REFS sheet after the built-in entries.
	found := false
	rows, err := f.GetRows(RefsSheetName)
	if err != nil {
		t.Fatal(err)
	}
	for _, cells := range rows {
		if len(cells) >= 2 && cells[0] == "Shulker Box" && cells[1] == "1" {
			found = true
		}
	}
	if !found {
		t.Fatal("override not written to REFS sheet")
	}
}
