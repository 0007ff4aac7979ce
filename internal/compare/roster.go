package compare

// Entry describes one credited person or studio on a show.
type Entry struct {
	Name  string
	Roles []string
}

// Roster is an insertion-ordered mapping from entity ID to Entry. A person
// credited under several roles appears once, with every role appended in the
// order the credits were seen.
type Roster struct {
	order   []int
	entries map[int]*Entry
}

// NewRoster returns an empty roster.
func NewRoster() *Roster {
	return &Roster{entries: make(map[int]*Entry)}
}

// Add records a credit. The first credit for an ID fixes the entry's name and
// position; later credits for the same ID only append to its roles.
func (r *Roster) Add(id int, name, role string) {
	entry, ok := r.entries[id]
	if !ok {
		entry = &Entry{Name: name}
		r.entries[id] = entry
		r.order = append(r.order, id)
	}
	entry.Roles = append(entry.Roles, role)
}

// Len reports the number of distinct IDs in the roster.
func (r *Roster) Len() int {
	return len(r.order)
}

// Has reports whether the roster contains the given ID.
func (r *Roster) Has(id int) bool {
	_, ok := r.entries[id]
	return ok
}

// Get returns the entry for the given ID.
func (r *Roster) Get(id int) (Entry, bool) {
	entry, ok := r.entries[id]
	if !ok {
		return Entry{}, false
	}
	return *entry, true
}

// IDs returns the roster's IDs in insertion order.
func (r *Roster) IDs() []int {
	ids := make([]int, len(r.order))
	copy(ids, r.order)
	return ids
}

// Append copies every entry of other into r, preserving other's order and
// merging roles for IDs already present.
func (r *Roster) Append(other *Roster) {
	if other == nil {
		return
	}
	for _, id := range other.order {
		entry := other.entries[id]
		for _, role := range entry.Roles {
			r.Add(id, entry.Name, role)
		}
	}
}
