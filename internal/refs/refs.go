// Package refs owns the static reference data behind the REFS lookup sheet:
// items whose stack size differs from the usual 64, plus documentation links
// written under the table.
package refs

import (
	"matsheets/internal"
	"matsheets/internal/util"
)

// Builtin lists the seeded REFS entries. Everything absent here falls back to
// the default stack size via the IFERROR branch of the lookup formula.
func Builtin() []internal.StackRef {
	entries := []struct {
		display string
		size    int
	}{
		{"Ender Pearl", 16},
		{"Egg", 16},
		{"Snowball", 16},
		{"Boat", 1},
		{"Armor (any)", 1},
		{"Tool (any)", 1},
		{"Banner", 16},
	}
	out := make([]internal.StackRef, 0, len(entries))
	for _, e := range entries {
		out = append(out, internal.StackRef{
			Key:       util.NormalizeHeader(e.display),
			Display:   e.display,
			StackSize: e.size,
		})
	}
	return out
}

// Merge overlays user overrides on the built-in entries. Built-in order is
// kept, overridden in place; new items append in override order.
func Merge(overrides []internal.StackRef) []internal.StackRef {
	out := Builtin()
	index := map[string]int{}
	for i, ref := range out {
		index[ref.Key] = i
	}
	for _, ref := range overrides {
		if i, ok := index[ref.Key]; ok {
			out[i] = ref
			continue
		}
		index[ref.Key] = len(out)
		out = append(out, ref)
	}
	return out
}

type DocLink struct {
	Label string
	URL   string
}

// DocLinks are the help rows written below the REFS table.
func DocLinks() []DocLink {
	return []DocLink{
		{"Google Sheets – CEILING", "https://support.google.com/docs/answer/3093471"},
		{"Google Sheets – MOD", "https://support.google.com/docs/answer/3093497"},
		{"Google Sheets – VLOOKUP", "https://support.google.com/docs/answer/3093318"},
		{"Minecraft – Double Chest (54 slots)", "https://minecraft.fandom.com/wiki/Chest"},
	}
}
