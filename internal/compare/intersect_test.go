package compare_test

import (
	"testing"

	"anilens/internal/compare"
)

func TestIntersectEmptyInput(t *testing.T) {
	if got := compare.Intersect(nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

func TestIntersectSingleRosterKeepsOrder(t *testing.T) {
	roster := compare.NewRoster()
	roster.Add(3, "c", "r")
	roster.Add(1, "a", "r")
	roster.Add(2, "b", "r")

	got := compare.Intersect([]*compare.Roster{roster})
	want := []int{3, 1, 2}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestIntersectTwoRosters(t *testing.T) {
	first := compare.NewRoster()
	first.Add(1, "a", "r")
	first.Add(2, "b", "r")
	second := compare.NewRoster()
	second.Add(2, "b", "r2")
	second.Add(3, "c", "r")

	got := compare.Intersect([]*compare.Roster{first, second})
	if len(got) != 1 || got[0] != 2 {
		t.Fatalf("expected [2], got %v", got)
	}
}

func TestIntersectFirstRosterDrivesOrder(t *testing.T) {
	first := compare.NewRoster()
	first.Add(9, "", "r")
	first.Add(4, "", "r")
	first.Add(7, "", "r")
	second := compare.NewRoster()
	second.Add(7, "", "r")
	second.Add(9, "", "r")
	third := compare.NewRoster()
	third.Add(9, "", "r")
	third.Add(7, "", "r")
	third.Add(4, "", "r")

	got := compare.Intersect([]*compare.Roster{first, second, third})
	want := []int{9, 7}
	if len(got) != len(want) || got[0] != 9 || got[1] != 7 {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestIntersectDoesNotMutateInputs(t *testing.T) {
	first := compare.NewRoster()
	first.Add(1, "a", "r")
	second := compare.NewRoster()
	second.Add(2, "b", "r")

	_ = compare.Intersect([]*compare.Roster{first, second})
	if first.Len() != 1 || second.Len() != 1 {
		t.Fatal("inputs were mutated")
	}
}
