package pipeline

import (
	"fmt"
	"path/filepath"

	"matsheets/internal"
	"matsheets/internal/config"
	"matsheets/internal/input"
	"matsheets/internal/refs"
	"matsheets/internal/storage"
)

const (
	TotalsSheetName  = "TOTALS_ALL"
	MissingSheetName = "MISSING_ONLY"
)

// ConvertOptions are the per-run knobs the CLI exposes. A non-empty role
// override bypasses the matcher for that role.
type ConvertOptions struct {
	InputPath  string
	InputType  string
	OutputPath string
	Delimiter  rune
	StackSize  int

	NameCol      string
	TotalCol     string
	MissingCol   string
	AvailableCol string
}

type ConvertResult struct {
	Items   int
	Mapping internal.ColumnMapping
	Output  string
}

type ConvertService struct {
	db       *storage.DB
	cfg      config.Config
	assigner RoleAssigner
}

func NewConvertService(db *storage.DB, cfg config.Config) *ConvertService {
	return &ConvertService{db: db, cfg: cfg, assigner: NewGreedyAssigner()}
}

// Run drives one conversion: load, resolve columns, aggregate, synthesize,
// export.
func (s *ConvertService) Run(opts ConvertOptions) (ConvertResult, error) {
	table, err := input.Load(opts.InputPath, opts.InputType, opts.Delimiter)
	if err != nil {
		return ConvertResult{}, err
	}

	mapping := s.resolveMapping(table.Headers, opts)
	items := Aggregate(table, mapping)

	stackSize := opts.StackSize
	if stackSize <= 0 {
		stackSize = s.cfg.DefaultStackSize
	}

	syn := Synthesis{
		RefsSheet:    RefsSheetName,
		DefaultStack: stackSize,
		ChestSlots:   DoubleChestSlots,
	}
	sheets := []OutputSheet{
		BuildSheet(TotalsSheetName, internal.ModeTotalsOnly, items, syn),
		BuildSheet(MissingSheetName, internal.ModeMissingEditable, items, syn),
	}

	overrides := []internal.StackRef{}
	if s.db != nil {
		overrides, err = s.db.ListStackRefs()
		if err != nil {
			return ConvertResult{}, fmt.Errorf("load stack refs: %w", err)
		}
	}

	out := opts.OutputPath
	if out == "" {
		out = filepath.Join(s.cfg.OutputDir, "materials_sheets.xlsx")
	}
	if err := ExportWorkbook(sheets, refs.Merge(overrides), out); err != nil {
		return ConvertResult{}, err
	}

	return ConvertResult{Items: len(items), Mapping: mapping, Output: out}, nil
}

// resolveMapping runs the assigner, applies CLI overrides, then drops any
// binding that does not name a real input column. An unresolved Name role
// degrades to the synthetic "Unknown" identity downstream.
func (s *ConvertService) resolveMapping(headers []string, opts ConvertOptions) internal.ColumnMapping {
	mapping := s.assigner.Assign(headers)

	overrides := map[internal.CanonicalRole]string{
		internal.RoleName:      opts.NameCol,
		internal.RoleTotal:     opts.TotalCol,
		internal.RoleMissing:   opts.MissingCol,
		internal.RoleAvailable: opts.AvailableCol,
	}
	for role, col := range overrides {
		if col != "" {
			mapping[role] = col
		}
	}

	known := map[string]bool{}
	for _, h := range headers {
		known[h] = true
	}
	for role, col := range mapping {
		if !known[col] {
			delete(mapping, role)
		}
	}

	return mapping
}
