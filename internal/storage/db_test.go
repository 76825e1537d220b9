package storage

import (
	"path/filepath"
	"testing"
)

func TestStackRefRoundTrip(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "app.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	if err := db.UpsertStackRef("Ender Pearl", 16); err != nil {
		t.Fatal(err)
	}
	// Same normalized identity replaces, latest display wins.
	if err := db.UpsertStackRef("ender_pearl", 8); err != nil {
		t.Fatal(err)
	}
	if err := db.UpsertStackRef("Boat", 1); err != nil {
		t.Fatal(err)
	}

	list, err := db.ListStackRefs()
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Fatalf("len=%d: %+v", len(list), list)
	}
	if list[0].Display != "Boat" || list[1].Display != "ender_pearl" || list[1].StackSize != 8 {
		t.Fatalf("got %+v", list)
	}

	removed, err := db.DeleteStackRef("ENDER PEARL")
	if err != nil {
		t.Fatal(err)
	}
	if !removed {
		t.Fatal("expected delete to hit")
	}
	removed, err = db.DeleteStackRef("ghast tear")
	if err != nil || removed {
		t.Fatalf("removed=%v err=%v", removed, err)
	}
}
