package stack

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chains.stack")
	defer teardown()
	//
	assert := assert.New(t)
	l := New[int]()
	assert.True(l.Pop().IsNothing(), "pop on empty list")

	l.Push(1)
	l.Push(2)
	l.Push(3)
	assert.Equal(3, l.Pop().WithDefault(0))
	assert.Equal(2, l.Pop().WithDefault(0))

	l.Push(4)
	l.Push(5)
	assert.Equal(5, l.Pop().WithDefault(0))
	assert.Equal(4, l.Pop().WithDefault(0))

	assert.Equal(1, l.Pop().WithDefault(0))
	assert.True(l.Pop().IsNothing(), "pop on exhausted list")
	assert.Equal(0, l.Len())
	assert.True(l.IsEmpty())
}

func TestZeroValueList(t *testing.T) {
	var l List[string]
	l.Push("a")
	if v, ok := l.Pop().Get(); !ok || v != "a" {
		t.Errorf("expected zero-value list to pop 'a', got %q (%v)", v, ok)
	}
}

func TestPeek(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chains.stack")
	defer teardown()
	//
	assert := assert.New(t)
	l := New[int]()
	assert.True(l.Peek().IsNothing())
	assert.True(l.PeekMut().IsNothing())

	l.Push(1)
	l.Push(2)
	l.Push(3)
	assert.Equal(3, l.Peek().WithDefault(0))
	p, ok := l.PeekMut().Get()
	require.True(t, ok)
	assert.Equal(3, *p)
	assert.Equal(3, l.Len(), "peeking must not change length")

	*p = 42
	assert.Equal(42, l.Peek().WithDefault(0))
	assert.Equal(42, l.Pop().WithDefault(0))
	assert.Equal(2, l.Len())
}

func TestPeekMutMatch(t *testing.T) {
	l := New[int]()
	l.Push(7)
	var p *int
	switch m := l.PeekMut().Match(); m {
	case m.Just(&p):
		*p *= 6
	case m.Nothing():
		t.Fatal("expected PeekMut on non-empty list to match Just")
	}
	if v := l.Pop().WithDefault(0); v != 42 {
		t.Errorf("expected 42 after in-place modification, got %d", v)
	}
}

func TestString(t *testing.T) {
	l := New[int]()
	assert.Equal(t, "[]", l.String())
	l.Push(1)
	l.Push(2)
	l.Push(3)
	assert.Equal(t, "[3 2 1]", l.String())
}

func TestDropReleasesEveryElementOnce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chains.stack")
	defer teardown()
	//
	var released []int
	l := New(OnRelease(func(n int) { released = append(released, n) }))
	for i := 1; i <= 5; i++ {
		l.Push(i)
	}
	if v := l.Pop().WithDefault(0); v != 5 {
		t.Fatalf("expected to pop 5, got %d", v)
	}
	l.Drop()
	if diff := cmp.Diff([]int{4, 3, 2, 1}, released); diff != "" {
		t.Errorf("released elements mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.Len())
	//
	l.Push(9) // list is reusable after teardown
	l.Drop()
	assert.Equal(t, []int{4, 3, 2, 1, 9}, released)
}

func TestDropLongChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chains.stack")
	defer teardown()
	//
	const n = 100000
	count := 0
	l := New(OnRelease(func(int) { count++ }), TraceTeardown[int](true))
	for i := 0; i < n; i++ {
		l.Push(i)
	}
	require.Equal(t, n, l.Len())
	l.Drop()
	assert.Equal(t, n, count)
	assert.True(t, l.IsEmpty())
}

func TestDropUnlinksNodes(t *testing.T) {
	l := New[int]()
	l.Push(1)
	l.Push(2)
	l.Push(3)
	var nodes []*node[int]
	for n := l.head; n != nil; n = n.next {
		nodes = append(nodes, n)
	}
	l.Drop()
	for i, n := range nodes {
		if n.next != nil {
			t.Errorf("expected node #%d to be unlinked after teardown", i)
		}
	}
}

func TestFullScenario(t *testing.T) {
	l := New[int]()
	l.Push(1)
	l.Push(2)
	l.Push(3)
	got := []int{l.Pop().WithDefault(-1), l.Pop().WithDefault(-1)}
	l.Push(4)
	l.Push(5)
	for range 3 {
		got = append(got, l.Pop().WithDefault(-1))
	}
	if diff := cmp.Diff([]int{3, 2, 5, 4, 1}, got); diff != "" {
		t.Errorf("pop order mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, l.Pop().IsNothing())
	assert.Empty(t, slices.Collect(l.All()))
}
