package domain

// Favorites is an ordered set of bookmarked records keyed by catalog id.
// The zero value is an empty set ready to use.
type Favorites struct {
	items []Record
}

// NewFavorites builds a set from records, keeping the first record for each id
// and dropping records without an id.
func NewFavorites(records ...Record) Favorites {
	var f Favorites
	for _, r := range records {
		if r == nil || r.GetID() == "" || f.Contains(r.GetID()) {
			continue
		}
		f.items = append(f.items, r)
	}
	return f
}

// Contains reports whether a record with the given id is bookmarked
func (f Favorites) Contains(id string) bool {
	return f.indexOf(id) >= 0
}

// Get returns the bookmarked record with the given id
func (f Favorites) Get(id string) (Record, bool) {
	if i := f.indexOf(id); i >= 0 {
		return f.items[i], true
	}
	return nil, false
}

// Toggle removes the record with r's id if present, otherwise appends r.
// Returns true when r was added. Records without an id are ignored.
func (f *Favorites) Toggle(r Record) bool {
	if r == nil || r.GetID() == "" {
		return false
	}
	if i := f.indexOf(r.GetID()); i >= 0 {
		items := make([]Record, 0, len(f.items)-1)
		items = append(items, f.items[:i]...)
		f.items = append(items, f.items[i+1:]...)
		return false
	}
	f.items = append(f.items, r)
	return true
}

// Items returns the records in insertion order
func (f Favorites) Items() []Record {
	if len(f.items) == 0 {
		return nil
	}
	out := make([]Record, len(f.items))
	copy(out, f.items)
	return out
}

// Len returns the number of bookmarked records
func (f Favorites) Len() int {
	return len(f.items)
}

// IDs returns the bookmarked ids in insertion order
func (f Favorites) IDs() []string {
	ids := make([]string, len(f.items))
	for i, r := range f.items {
		ids[i] = r.GetID()
	}
	return ids
}

func (f Favorites) indexOf(id string) int {
	for i, r := range f.items {
		if r.GetID() == id {
			return i
		}
	}
	return -1
}
