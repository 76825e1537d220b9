package input

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"matsheets/internal"
)

const sniffSampleSize = 5000

var delimiterCandidates = []rune{',', ';', '\t', '|'}

// SniffDelimiter picks the most frequent candidate delimiter in the sample,
// falling back to comma when none occurs at all.
func SniffDelimiter(sample []byte) rune {
	content := string(sample)
	best := ','
	bestCount := 0
	for _, d := range delimiterCandidates {
		if n := strings.Count(content, string(d)); n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}

// ReadCSV parses a csv export. A zero delimiter is sniffed from the first
// 5 KB of the file.
func ReadCSV(path string, delimiter rune) (internal.Table, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return internal.Table{}, err
	}

	if delimiter == 0 {
		sample := blob
		if len(sample) > sniffSampleSize {
			sample = sample[:sniffSampleSize]
		}
		delimiter = SniffDelimiter(sample)
	}

	r := csv.NewReader(bytes.NewReader(blob))
	r.Comma = delimiter
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return internal.Table{}, fmt.Errorf("parse csv %s: %w", path, err)
	}
	if len(records) == 0 {
		return internal.Table{}, fmt.Errorf("empty csv: %s", path)
	}

	return tableFromRows(records), nil
}
