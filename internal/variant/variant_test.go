package variant

import (
	"testing"

	"github.com/lox/hanabiforbots/internal/deck"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	r, err := Get("duck")
	if err != nil {
		t.Fatalf("Get(duck): %v", err)
	}
	if r.Name() != "duck" {
		t.Errorf("Name() = %q", r.Name())
	}

	if _, err := Get("rainbow"); err == nil {
		t.Error("Get(rainbow) should fail")
	}

	names := Names()
	if len(names) != 1 || names[0] != "duck" {
		t.Errorf("Names() = %v", names)
	}
}

func TestClueString(t *testing.T) {
	t.Parallel()

	if got := ColorClue(deck.Red).String(); got != "r" {
		t.Errorf("color clue String() = %q", got)
	}
	if got := RankClue(3).String(); got != "3" {
		t.Errorf("rank clue String() = %q", got)
	}
}

func TestCardInfoString(t *testing.T) {
	t.Parallel()

	info := Duck{}.NewCardInfo()
	if got := info.String(); got != "rygbp12345" {
		t.Errorf("fresh info String() = %q", got)
	}
	info.Touched = true
	if got := info.String(); got != "*rygbp12345" {
		t.Errorf("touched info String() = %q", got)
	}
}
