package prompts

import (
	"math/rand"
	"testing"
)

func TestRandomExcludes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	current := All()[0]
	for i := 0; i < 200; i++ {
		if got := Random(current, rng); got == current {
			t.Fatalf("Random returned the excluded prompt %q", got)
		}
	}
}

func TestRandomWithoutExclusion(t *testing.T) {
	got := Random("", nil)
	for _, p := range All() {
		if p == got {
			return
		}
	}
	t.Fatalf("Random returned %q, not in the deck", got)
}

func TestAllIsACopy(t *testing.T) {
	a := All()
	a[0] = "changed"
	if All()[0] == "changed" {
		t.Fatal("All exposed the underlying deck")
	}
}
