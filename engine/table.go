// SPDX-License-Identifier: EPL-2.0

package engine

// Table maps channel ids to channel records. Alongside the map it keeps the
// ids in insertion order, so walks are stable across non-mutating passes —
// a raw map range would reorder between passes, and reordering a float
// summation changes its rounding. With the engine's monotonic ids,
// insertion order is ascending id order.
//
// The table is not safe for concurrent use on its own; the engine
// serializes access through the device lock and the single control thread.
type Table struct {
	m   map[ChannelID]*Channel
	ids []ChannelID
}

func NewTable() *Table {
	return &Table{}
}

// Set inserts or replaces the record for id. The backing map is allocated
// lazily so a freed table can be reused.
func (t *Table) Set(id ChannelID, ch *Channel) {
	if t.m == nil {
		t.m = make(map[ChannelID]*Channel)
	}
	if _, exists := t.m[id]; !exists {
		t.ids = append(t.ids, id)
	}
	t.m[id] = ch
}

func (t *Table) Get(id ChannelID) (*Channel, bool) {
	ch, ok := t.m[id]
	return ch, ok
}

// Delete removes id. During Each it is safe to delete the currently yielded
// key only.
func (t *Table) Delete(id ChannelID) {
	if _, ok := t.m[id]; !ok {
		return
	}
	delete(t.m, id)
	for i, v := range t.ids {
		if v == id {
			t.ids = append(t.ids[:i], t.ids[i+1:]...)
			break
		}
	}
}

func (t *Table) Len() int {
	return len(t.m)
}

// Each calls fn for every record once, in insertion order. Returning false
// stops the walk. fn may delete the currently yielded key.
func (t *Table) Each(fn func(ch *Channel) bool) {
	for i := 0; i < len(t.ids); {
		id := t.ids[i]
		if !fn(t.m[id]) {
			return
		}
		// Advance unless fn deleted the yielded key and shifted the rest
		// of the walk into its slot.
		if i < len(t.ids) && t.ids[i] == id {
			i++
		}
	}
}

// AddAll moves every entry of src into t in src's order, leaving src empty.
// Keys already in t are overwritten, which cannot happen while the engine
// hands out unique ids.
func (t *Table) AddAll(src *Table) {
	if len(src.m) == 0 {
		return
	}
	for _, id := range src.ids {
		t.Set(id, src.m[id])
	}
	clear(src.m)
	src.ids = src.ids[:0]
}

// Free drops the table storage. Records and their Userdata are untouched;
// releasing those is the channel finish callback's job. The table stays
// usable: the next Set reallocates.
func (t *Table) Free() {
	t.m = nil
	t.ids = nil
}
