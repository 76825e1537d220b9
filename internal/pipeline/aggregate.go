package pipeline

import (
	"matsheets/internal"
	"matsheets/internal/util"
)

// UnknownItemName is the synthetic identity used when no name column resolved.
const UnknownItemName = "Unknown"

// Aggregate applies the column mapping to every row, coerces numeric roles,
// and merges rows sharing one normalized identity by summing each role.
// Output keeps first-seen group order; the first-seen raw casing becomes the
// group's display name. Unresolved numeric roles contribute 0 to every group.
func Aggregate(table internal.Table, mapping internal.ColumnMapping) []internal.AggregatedItem {
	nameCol := mapping[internal.RoleName]

	byKey := map[string]int{}
	out := make([]internal.AggregatedItem, 0, len(table.Rows))

	for _, row := range table.Rows {
		name := UnknownItemName
		if nameCol != "" {
			name = row[nameCol]
		}
		key := util.NormalizeHeader(name)

		idx, seen := byKey[key]
		if !seen {
			idx = len(out)
			byKey[key] = idx
			out = append(out, internal.AggregatedItem{Name: name})
		}

		item := &out[idx]
		item.Total += roleValue(row, mapping, internal.RoleTotal)
		item.Missing += roleValue(row, mapping, internal.RoleMissing)
		item.Available += roleValue(row, mapping, internal.RoleAvailable)
	}

	return out
}

func roleValue(row map[string]string, mapping internal.ColumnMapping, role internal.CanonicalRole) int {
	col, ok := mapping[role]
	if !ok {
		return 0
	}
	return util.ParseCount(row[col])
}
