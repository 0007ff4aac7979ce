package compare

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// ErrNoSharedCredits signals that no show other than the seed itself shares
// any production staff. It marks a terminal outcome, not a failure.
var ErrNoSharedCredits = errors.New("no other shared-credit shows found")

// ShowRef identifies a candidate show by ID and display title.
type ShowRef struct {
	ID    int
	Title string
}

// CreditsFunc fetches the shows a staff member has been credited on. The
// returned slice must not contain duplicates; each show counts once per
// staff member no matter how many roles they held on it.
type CreditsFunc func(ctx context.Context, staffID int) ([]ShowRef, error)

// RankedShow pairs a candidate show with the number of seed staff crediting it.
type RankedShow struct {
	Show  ShowRef
	Count int
}

// Tally accumulates shared-staff counts per candidate show in order of first
// appearance.
type Tally struct {
	order  []ShowRef
	counts map[ShowRef]int
}

// NewTally returns an empty tally.
func NewTally() *Tally {
	return &Tally{counts: make(map[ShowRef]int)}
}

// Add counts one staff member's credits. Repeated shows within a single call
// are counted once.
func (t *Tally) Add(credits []ShowRef) {
	seen := make(map[ShowRef]struct{}, len(credits))
	for _, show := range credits {
		if _, dup := seen[show]; dup {
			continue
		}
		seen[show] = struct{}{}
		if _, ok := t.counts[show]; !ok {
			t.order = append(t.order, show)
		}
		t.counts[show]++
	}
}

// Len reports the number of distinct shows tallied.
func (t *Tally) Len() int {
	return len(t.order)
}

// Ranked returns every tallied show ordered by descending count. Shows with
// equal counts keep their first-appearance order.
func (t *Tally) Ranked() []RankedShow {
	ranked := make([]RankedShow, 0, len(t.order))
	for _, show := range t.order {
		ranked = append(ranked, RankedShow{Show: show, Count: t.counts[show]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}

// RankBySharedStaff fetches every seed staff member's other credited shows,
// tallies how many seed staff each candidate shares, and returns up to topN
// candidates ranked by descending count. The seed show is excluded by ID
// rather than by assuming it ranks first, since a sparsely credited show can
// tie with the seed. Returns ErrNoSharedCredits when nothing else remains.
//
// This issues one credit fetch per staff member, strictly sequentially, so
// request volume grows linearly with the roster size. A known improvement is
// to stop early once the leader's margin exceeds the number of staff left to
// process; it is not implemented.
func RankBySharedStaff(ctx context.Context, seed *Roster, fetch CreditsFunc, selfID, topN int) ([]RankedShow, error) {
	tally := NewTally()
	for _, staffID := range seed.IDs() {
		credits, err := fetch(ctx, staffID)
		if err != nil {
			return nil, fmt.Errorf("fetch credits for staff %d: %w", staffID, err)
		}
		tally.Add(credits)
	}

	// Ask for one extra entry so dropping the seed show still leaves topN.
	ranked := tally.Ranked()
	if len(ranked) > topN+1 {
		ranked = ranked[:topN+1]
	}

	top := make([]RankedShow, 0, topN)
	for _, candidate := range ranked {
		if candidate.Show.ID == selfID {
			continue
		}
		top = append(top, candidate)
		if len(top) == topN {
			break
		}
	}
	if len(top) == 0 {
		return nil, ErrNoSharedCredits
	}
	return top, nil
}
