package compare

// Intersect returns the IDs present in every roster, in the insertion order
// of the first roster. The asymmetry is deliberate: callers pick the roster
// whose ordering should drive the display. Inputs are not modified.
func Intersect(rosters []*Roster) []int {
	if len(rosters) == 0 {
		return nil
	}

	var common []int
outer:
	for _, id := range rosters[0].order {
		for _, other := range rosters[1:] {
			if !other.Has(id) {
				continue outer
			}
		}
		common = append(common, id)
	}
	return common
}
