package engine

import "testing"

func newRecord(id ChannelID) *Channel {
	ch := &Channel{id: id}
	ch.SetState(Initialize)
	ch.SetEnabled(true)
	return ch
}

func TestTable_SetAndGet(t *testing.T) {
	t.Parallel()

	table := NewTable()
	ch := newRecord(1)
	table.Set(1, ch)

	got, ok := table.Get(1)
	if !ok {
		t.Fatal("Table.Get() failed to retrieve inserted record")
	}
	if got != ch {
		t.Error("Table.Get() returned different record instance")
	}
}

func TestTable_GetMissing(t *testing.T) {
	t.Parallel()

	table := NewTable()
	if _, ok := table.Get(42); ok {
		t.Error("Table.Get() returned ok=true for missing id")
	}
}

func TestTable_Delete(t *testing.T) {
	t.Parallel()

	table := NewTable()
	table.Set(1, newRecord(1))
	table.Delete(1)

	if _, ok := table.Get(1); ok {
		t.Error("Table.Get() found record after Delete")
	}
	if table.Len() != 0 {
		t.Errorf("Table.Len() = %d after delete, want 0", table.Len())
	}
}

func TestTable_EachVisitsAllOnce(t *testing.T) {
	t.Parallel()

	table := NewTable()
	for id := ChannelID(1); id <= 5; id++ {
		table.Set(id, newRecord(id))
	}

	seen := make(map[ChannelID]int)
	table.Each(func(ch *Channel) bool {
		seen[ch.ID()]++
		return true
	})

	if len(seen) != 5 {
		t.Fatalf("Each visited %d records, want 5", len(seen))
	}
	for id, count := range seen {
		if count != 1 {
			t.Errorf("Each visited id %d %d times, want once", id, count)
		}
	}
}

func TestTable_EachStops(t *testing.T) {
	t.Parallel()

	table := NewTable()
	for id := ChannelID(1); id <= 5; id++ {
		table.Set(id, newRecord(id))
	}

	visited := 0
	table.Each(func(ch *Channel) bool {
		visited++
		return false
	})

	if visited != 1 {
		t.Errorf("Each visited %d records after returning false, want 1", visited)
	}
}

func TestTable_DeleteDuringEach(t *testing.T) {
	t.Parallel()

	table := NewTable()
	for id := ChannelID(1); id <= 4; id++ {
		table.Set(id, newRecord(id))
	}

	table.Each(func(ch *Channel) bool {
		table.Delete(ch.ID())
		return true
	})

	if table.Len() != 0 {
		t.Errorf("Table.Len() = %d after deleting every yielded key, want 0", table.Len())
	}
}

func TestTable_EachOrderStableAcrossPasses(t *testing.T) {
	t.Parallel()

	table := NewTable()
	for _, id := range []ChannelID{5, 1, 3, 9, 7} {
		table.Set(id, newRecord(id))
	}

	walk := func() []ChannelID {
		var order []ChannelID
		table.Each(func(ch *Channel) bool {
			order = append(order, ch.ID())
			return true
		})
		return order
	}

	first := walk()
	if len(first) != 5 {
		t.Fatalf("Each visited %d records, want 5", len(first))
	}
	for pass := range 3 {
		again := walk()
		for i := range first {
			if again[i] != first[i] {
				t.Fatalf("pass %d yielded id %d at position %d, first pass yielded %d",
					pass+2, again[i], i, first[i])
			}
		}
	}
}

func TestTable_OrderSurvivesDelete(t *testing.T) {
	t.Parallel()

	table := NewTable()
	for _, id := range []ChannelID{1, 2, 3, 4} {
		table.Set(id, newRecord(id))
	}
	table.Delete(2)

	var order []ChannelID
	table.Each(func(ch *Channel) bool {
		order = append(order, ch.ID())
		return true
	})

	want := []ChannelID{1, 3, 4}
	if len(order) != len(want) {
		t.Fatalf("Each visited %d records after delete, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("position %d yielded id %d, want %d", i, order[i], want[i])
		}
	}
}

func TestTable_AddAllMovesEverything(t *testing.T) {
	t.Parallel()

	dst := NewTable()
	src := NewTable()
	dst.Set(1, newRecord(1))
	src.Set(2, newRecord(2))
	src.Set(3, newRecord(3))

	dst.AddAll(src)

	if dst.Len() != 3 {
		t.Errorf("dst.Len() = %d after AddAll, want 3", dst.Len())
	}
	if src.Len() != 0 {
		t.Errorf("src.Len() = %d after AddAll, want 0", src.Len())
	}
	for id := ChannelID(1); id <= 3; id++ {
		if _, ok := dst.Get(id); !ok {
			t.Errorf("dst missing id %d after AddAll", id)
		}
	}
}

func TestTable_AddAllEmptySrc(t *testing.T) {
	t.Parallel()

	dst := NewTable()
	dst.Set(1, newRecord(1))
	dst.AddAll(NewTable())

	if dst.Len() != 1 {
		t.Errorf("dst.Len() = %d after AddAll of empty table, want 1", dst.Len())
	}
}

func TestTable_FreeKeepsTableUsable(t *testing.T) {
	t.Parallel()

	table := NewTable()
	table.Set(1, newRecord(1))
	table.Free()

	if table.Len() != 0 {
		t.Errorf("Table.Len() = %d after Free, want 0", table.Len())
	}

	table.Set(2, newRecord(2))
	if _, ok := table.Get(2); !ok {
		t.Error("Table.Set() failed after Free")
	}
}
