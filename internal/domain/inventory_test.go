package domain

import "testing"

func TestInventoryPutTake(t *testing.T) {
	inv := NewInventory()
	inv.Put(0, Stock{Name: "P1", Index: 0})
	inv.Put(0, Stock{Name: "P2", Index: 1})
	inv.Put(2, Stock{Name: "P3", Index: 2, DropTime: 4})

	at := inv.At(0)
	if len(at) != 2 || at[0].Name != "P1" || at[1].Name != "P2" {
		t.Fatalf("station 0 = %+v, want [P1 P2] in insertion order", at)
	}

	s, ok := inv.Take(0, "P1")
	if !ok || s.Index != 0 {
		t.Fatalf("take P1 = %+v %v", s, ok)
	}
	if _, ok := inv.Take(0, "P1"); ok {
		t.Fatalf("P1 taken twice")
	}
	if got := inv.At(0); len(got) != 1 || got[0].Name != "P2" {
		t.Fatalf("station 0 after take = %+v", got)
	}

	// re-dropping a package replaces its entry
	inv.Put(2, Stock{Name: "P3", Index: 2, DropTime: 9})
	if got := inv.At(2); len(got) != 1 || got[0].DropTime != 9 {
		t.Fatalf("station 2 = %+v", got)
	}

	if got := inv.Locate("P3"); len(got) != 1 || got[0] != 2 {
		t.Errorf("locate P3 = %v, want [2]", got)
	}
	if got := inv.Locate("P1"); len(got) != 0 {
		t.Errorf("locate P1 = %v, want none", got)
	}
}
