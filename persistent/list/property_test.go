package list

import (
	"slices"
	"testing"

	"pgregory.net/rapid"
)

// TestSharingModel derives lists from each other at random, drops some of them,
// and checks that surviving lists are unaffected. Once all lists are dropped,
// every element ever created must have been released exactly once.
func TestSharingModel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		released := make(map[int]int)
		created := 0
		pool := []List[int]{Empty(OnRelease(func(n int) { released[n]++ }))}
		models := [][]int{nil}
		pick := func(t *rapid.T) int {
			return rapid.IntRange(0, len(pool)-1).Draw(t, "i")
		}
		t.Repeat(map[string]func(*rapid.T){
			"prepend": func(t *rapid.T) {
				i := pick(t)
				created++
				pool = append(pool, pool[i].Prepend(created))
				models = append(models, append([]int{created}, models[i]...))
			},
			"tail": func(t *rapid.T) {
				i := pick(t)
				pool = append(pool, pool[i].Tail())
				m := models[i]
				if len(m) > 0 {
					m = m[1:]
				}
				models = append(models, slices.Clone(m))
			},
			"clone": func(t *rapid.T) {
				i := pick(t)
				pool = append(pool, pool[i].Clone())
				models = append(models, slices.Clone(models[i]))
			},
			"drop": func(t *rapid.T) {
				if len(pool) < 2 {
					t.Skip("keep one list around")
				}
				i := pick(t)
				pool[i].Drop()
				pool = slices.Delete(pool, i, i+1)
				models = slices.Delete(models, i, i+1)
			},
			"": func(t *rapid.T) {
				for i, l := range pool {
					if got := slices.Collect(l.All()); !slices.Equal(got, models[i]) {
						t.Fatalf("list #%d is %v, expected %v", i, got, models[i])
					}
					if l.Len() != len(models[i]) {
						t.Fatalf("list #%d has length %d, expected %d", i, l.Len(), len(models[i]))
					}
				}
			},
		})
		for i := range pool {
			pool[i].Drop()
		}
		if len(released) != created {
			t.Fatalf("released %d distinct elements, created %d", len(released), created)
		}
		for n, k := range released {
			if k != 1 {
				t.Fatalf("element %d released %d times", n, k)
			}
		}
	})
}
