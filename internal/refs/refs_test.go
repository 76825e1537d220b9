package refs

import (
	"testing"

	"matsheets/internal"
	"matsheets/internal/util"
)

func TestMergeOverridesBuiltin(t *testing.T) {
	override := internal.StackRef{Key: util.NormalizeHeader("Ender Pearl"), Display: "Ender Pearl", StackSize: 99}
	merged := Merge([]internal.StackRef{override})

	if len(merged) != len(Builtin()) {
		t.Fatalf("len=%d want %d", len(merged), len(Builtin()))
	}
	if merged[0].Display != "Ender Pearl" || merged[0].StackSize != 99 {
		t.Fatalf("got %+v", merged[0])
	}
}

func TestMergeAppendsNewItems(t *testing.T) {
	extra := internal.StackRef{Key: "shulker_box", Display: "Shulker Box", StackSize: 1}
	merged := Merge([]internal.StackRef{extra})

	if len(merged) != len(Builtin())+1 {
		t.Fatalf("len=%d", len(merged))
	}
	last := merged[len(merged)-1]
	if last.Display != "Shulker Box" || last.StackSize != 1 {
		t.Fatalf("got %+v", last)
	}
}
