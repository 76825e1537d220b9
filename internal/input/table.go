// Package input turns materials-list exports (csv, xlsx, html table) into the
// Table shape the pipeline consumes. Header order and duplicate-header
// disambiguation are handled here, not downstream.
package input

import (
	"fmt"
	"path/filepath"
	"strings"

	"matsheets/internal"
)

// Load reads one export file. An empty inputType infers the format from the
// file extension, defaulting to csv. The delimiter only applies to csv and is
// sniffed when zero.
func Load(path, inputType string, delimiter rune) (internal.Table, error) {
	if inputType == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".xlsx", ".xls":
			inputType = "xlsx"
		case ".html", ".htm":
			inputType = "html"
		default:
			inputType = "csv"
		}
	}

	switch strings.ToLower(strings.TrimSpace(inputType)) {
	case "csv":
		return ReadCSV(path, delimiter)
	case "xlsx":
		return ReadXLSX(path)
	case "html":
		return ReadHTML(path)
	default:
		return internal.Table{}, fmt.Errorf("unsupported input type: %s", inputType)
	}
}

func tableFromRows(rows [][]string) internal.Table {
	headers := dedupeHeaders(rows[0])
	t := internal.Table{Headers: headers}

	for _, raw := range rows[1:] {
		empty := true
		row := map[string]string{}
		for i, h := range headers {
			v := ""
			if i < len(raw) {
				v = strings.TrimSpace(raw[i])
			}
			if v != "" {
				empty = false
			}
			row[h] = v
		}
		if empty {
			continue
		}
		t.Rows = append(t.Rows, row)
	}

	return t
}

func dedupeHeaders(raw []string) []string {
	used := map[string]bool{}
	out := make([]string, 0, len(raw))
	for _, h := range raw {
		h = strings.TrimSpace(h)
		name := h
		for n := 2; used[name]; n++ {
			name = fmt.Sprintf("%s_%d", h, n)
		}
		used[name] = true
		out = append(out, name)
	}
	return out
}
