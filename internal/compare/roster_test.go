package compare_test

import (
	"testing"

	"anilens/internal/compare"
)

func TestRosterAddMergesRoles(t *testing.T) {
	roster := compare.NewRoster()
	roster.Add(1, "A Person", "Director")
	roster.Add(2, "B Person", "Music")
	roster.Add(1, "A Person", "Storyboard")

	if roster.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", roster.Len())
	}
	entry, ok := roster.Get(1)
	if !ok {
		t.Fatal("entry 1 missing")
	}
	if len(entry.Roles) != 2 || entry.Roles[0] != "Director" || entry.Roles[1] != "Storyboard" {
		t.Fatalf("roles must append, never overwrite: %v", entry.Roles)
	}
}

func TestRosterPreservesInsertionOrder(t *testing.T) {
	roster := compare.NewRoster()
	for _, id := range []int{5, 3, 9, 3, 1} {
		roster.Add(id, "", "role")
	}
	ids := roster.IDs()
	want := []int{5, 3, 9, 1}
	if len(ids) != len(want) {
		t.Fatalf("expected %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, ids)
		}
	}
}

func TestRosterAppendMerges(t *testing.T) {
	main := compare.NewRoster()
	main.Add(1, "Main Works", "Main")
	supporting := compare.NewRoster()
	supporting.Add(2, "Support Co", "Supporting")
	supporting.Add(1, "Main Works", "Supporting")

	main.Append(supporting)
	ids := main.IDs()
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 2 {
		t.Fatalf("unexpected order after append: %v", ids)
	}
	entry, _ := main.Get(1)
	if len(entry.Roles) != 2 {
		t.Fatalf("expected merged roles, got %v", entry.Roles)
	}
}
