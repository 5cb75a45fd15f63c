package racer

import "testing"

func TestArenaInsertGetRemove(t *testing.T) {
	a := NewArena[int](2)
	id1 := a.Insert(10)
	id2 := a.Insert(20)

	if id1 == id2 {
		t.Fatal("ids must be unique")
	}
	if v, ok := a.Get(id2); !ok || v != 20 {
		t.Errorf("Get(id2) = %d, %v; want 20, true", v, ok)
	}
	if !a.Remove(id1) {
		t.Fatal("Remove(id1) failed")
	}
	if a.Remove(id1) {
		t.Error("removing twice should report false")
	}
	if a.Len() != 1 {
		t.Errorf("Len() = %d, want 1", a.Len())
	}
}

func TestArenaStaleIDAfterReuse(t *testing.T) {
	a := NewArena[string](1)
	old := a.Insert("old")
	a.Remove(old)
	fresh := a.Insert("fresh")

	if fresh.Index != old.Index {
		t.Fatalf("expected slot reuse, got %d and %d", old.Index, fresh.Index)
	}
	if _, ok := a.Get(old); ok {
		t.Error("stale id resolved to the new occupant")
	}
	if a.Set(old, "x") {
		t.Error("Set through stale id succeeded")
	}
	if v, _ := a.Get(fresh); v != "fresh" {
		t.Errorf("Get(fresh) = %q", v)
	}
}

func TestArenaEachSlotOrder(t *testing.T) {
	a := NewArena[int](4)
	ids := []EntityID{a.Insert(0), a.Insert(1), a.Insert(2), a.Insert(3)}
	a.Remove(ids[1])

	var got []int
	a.Each(func(_ EntityID, v *int) {
		got = append(got, *v)
	})
	want := []int{0, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("Each visited %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Each visited %v, want %v", got, want)
			break
		}
	}
}

func TestArenaClearKeepsIDsStale(t *testing.T) {
	a := NewArena[int](2)
	id := a.Insert(1)
	a.Insert(2)
	a.Clear()

	if a.Len() != 0 {
		t.Errorf("Len() after Clear = %d", a.Len())
	}
	next := a.Insert(3)
	if next.Index != 0 {
		t.Errorf("first insert after Clear used slot %d, want 0", next.Index)
	}
	if _, ok := a.Get(id); ok {
		t.Error("id from before Clear still resolves")
	}
}
