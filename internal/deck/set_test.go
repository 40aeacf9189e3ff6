package deck

import "testing"

func TestColorSet(t *testing.T) {
	t.Parallel()

	var cs ColorSet
	if cs.Len() != 0 {
		t.Fatalf("empty set Len() = %d", cs.Len())
	}

	cs.Add(Red)
	cs.Add(Blue)
	cs.Add(Blue)
	if cs.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", cs.Len())
	}
	if !cs.Contains(Red) || !cs.Contains(Blue) {
		t.Error("missing added colors")
	}
	if cs.Contains(Green) {
		t.Error("contains color never added")
	}

	cs.Del(Red)
	if cs.Contains(Red) {
		t.Error("contains deleted color")
	}

	full := NewColorSet([]Color{Red, Yellow, Green, Blue, Purple})
	got := full.Colors()
	want := []Color{Red, Yellow, Green, Blue, Purple}
	if len(got) != len(want) {
		t.Fatalf("Colors() = %v", got)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("Colors()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRankSet(t *testing.T) {
	t.Parallel()

	rs := NewRankSet([]Rank{1, 1, 3, 5})
	if rs.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", rs.Len())
	}
	for _, r := range []Rank{1, 3, 5} {
		if !rs.Contains(r) {
			t.Errorf("missing rank %v", r)
		}
	}
	for _, r := range []Rank{2, 4} {
		if rs.Contains(r) {
			t.Errorf("contains rank %v never added", r)
		}
	}

	rs.Del(3)
	ranks := rs.Ranks()
	if len(ranks) != 2 || ranks[0] != 1 || ranks[1] != 5 {
		t.Fatalf("Ranks() = %v, want [1 5]", ranks)
	}
}
