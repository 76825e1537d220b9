package pipeline

import (
	"strings"

	"matsheets/internal"
	"matsheets/internal/util"
)

// Ordered candidate keywords per canonical role. Priority decides nothing
// across columns: the leftmost column that satisfies any candidate wins.
var roleCandidates = map[internal.CanonicalRole][]string{
	internal.RoleName:      {"name", "item", "material", "materials", "block", "id"},
	internal.RoleTotal:     {"total", "required", "qty_total", "quantity_total", "amount", "count"},
	internal.RoleMissing:   {"missing", "needed", "to_get", "to_obtain", "short", "lack"},
	internal.RoleAvailable: {"available", "have", "stock", "in_chests", "present"},
}

// RoleAssigner resolves canonical roles against the raw header list.
type RoleAssigner interface {
	Assign(headers []string) internal.ColumnMapping
}

// GreedyAssigner searches each role independently of the others, so one header
// may end up bound to several roles. Per role it makes two passes over the
// headers in column order: whole-word matches against the normalized header
// first, plain substring containment as the fallback.
type GreedyAssigner struct {
	candidates map[internal.CanonicalRole][]string
}

func NewGreedyAssigner() *GreedyAssigner {
	return &GreedyAssigner{candidates: roleCandidates}
}

func (a *GreedyAssigner) Assign(headers []string) internal.ColumnMapping {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = util.NormalizeHeader(h)
	}

	mapping := internal.ColumnMapping{}
	for _, role := range internal.Roles {
		if header, ok := findRole(headers, normalized, a.candidates[role]); ok {
			mapping[role] = header
		}
	}
	return mapping
}

func findRole(headers, normalized []string, candidates []string) (string, bool) {
	for i := range headers {
		for _, cand := range candidates {
			if util.ContainsWord(normalized[i], cand) {
				return headers[i], true
			}
		}
	}
	for i := range headers {
		for _, cand := range candidates {
			if strings.Contains(normalized[i], cand) {
				return headers[i], true
			}
		}
	}
	return "", false
}
