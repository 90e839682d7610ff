package random

import (
	"slices"
	"sync"
	"testing"
)

func TestSeededIsDeterministic(t *testing.T) {
	a, b := NewSeeded(99), NewSeeded(99)
	for range 100 {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("seeded sources diverged: %d != %d", x, y)
		}
	}
}

func TestIntNInRange(t *testing.T) {
	src := New()
	for _, n := range []int{1, 2, 7, 100} {
		for range 200 {
			if v := src.IntN(n); v < 0 || v >= n {
				t.Fatalf("IntN(%d) = %d out of range", n, v)
			}
		}
	}
}

func TestShuffleKeepsElements(t *testing.T) {
	s := []string{"a", "b", "c", "d", "e", "f"}
	Shuffle(NewSeeded(1), s)

	sorted := slices.Clone(s)
	slices.Sort(sorted)
	if !slices.Equal(sorted, []string{"a", "b", "c", "d", "e", "f"}) {
		t.Errorf("shuffle lost elements: %v", s)
	}
}

func TestConcurrentUse(t *testing.T) {
	src := New()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 1000 {
				src.IntN(10)
			}
		}()
	}
	wg.Wait()
}
