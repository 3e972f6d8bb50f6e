package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSilence(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Silence[string]().Query(ta(0, 1, 1, 1)))
	assert.Empty(t, Silence[string]().Query(ta(-3, 1, 5, 1)))
}

func TestPureOneCycle(t *testing.T) {
	t.Parallel()

	got := Pure(42).Query(ta(0, 1, 1, 1))
	requireSameEvents(t, []Event[int]{
		ev(ta(0, 1, 1, 1), ta(0, 1, 1, 1), 42),
	}, got)
}

func TestPureAcrossCycles(t *testing.T) {
	t.Parallel()

	got := Pure(42).Query(ta(1, 2, 2, 1))
	requireSameEvents(t, []Event[int]{
		ev(ta(0, 1, 1, 1), ta(1, 2, 1, 1), 42),
		ev(ta(1, 1, 2, 1), ta(1, 1, 2, 1), 42),
	}, got)
}

func TestPurePointQuery(t *testing.T) {
	t.Parallel()

	// a zero-width query answers with whatever is sounding at that instant
	got := Pure("x").Query(ta(1, 2, 1, 2))
	requireSameEvents(t, []Event[string]{
		ev(ta(0, 1, 1, 1), ta(1, 2, 1, 2), "x"),
	}, got)
}

func TestPureReversedArc(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Pure(1).Query(ta(1, 1, 0, 1)))
}

func TestSig(t *testing.T) {
	t.Parallel()

	p := Sig(func(u Time) Time { return u })
	got := p.Query(ta(1, 4, 3, 4))

	require.Len(t, got, 1)
	require.Nil(t, got[0].Whole, "a signal has no onset")
	assert.True(t, got[0].Part.Equal(ta(1, 4, 3, 4)))
	assert.True(t, got[0].Value.Equal(tm(1, 4)), "valued at the arc start")
}

func TestFromList(t *testing.T) {
	t.Parallel()

	got := FromList([]string{"a", "b", "c"}).Query(ta(0, 1, 1, 1))
	requireSameEvents(t, []Event[string]{
		ev(ta(0, 1, 1, 3), ta(0, 1, 1, 3), "a"),
		ev(ta(1, 3, 2, 3), ta(1, 3, 2, 3), "b"),
		ev(ta(2, 3, 1, 1), ta(2, 3, 1, 1), "c"),
	}, got)
}

func TestFromMaybes(t *testing.T) {
	t.Parallel()

	a, c := "a", "c"
	got := FromMaybes([]*string{&a, nil, &c}).Query(ta(0, 1, 1, 1))
	requireSameEvents(t, []Event[string]{
		ev(ta(0, 1, 1, 3), ta(0, 1, 1, 3), "a"),
		ev(ta(2, 3, 1, 1), ta(2, 3, 1, 1), "c"),
	}, got)
}

func TestSplitQueries(t *testing.T) {
	t.Parallel()

	// count how many queries reach the wrapped pattern
	var arcs []Arc
	spy := Pattern[int]{Query: func(a Arc) []Event[int] {
		arcs = append(arcs, a)
		return nil
	}}

	SplitQueries(spy).Query(ta(1, 2, 5, 2))
	require.Len(t, arcs, 3)
	assert.True(t, arcs[0].Equal(ta(1, 2, 1, 1)))
	assert.True(t, arcs[1].Equal(ta(1, 1, 2, 1)))
	assert.True(t, arcs[2].Equal(ta(2, 1, 5, 2)))
}

func TestQueryInvariants(t *testing.T) {
	t.Parallel()

	patterns := map[string]Pattern[float64]{
		"pure":    Pure(1.0),
		"fast":    Fast(tm(3, 1), Pure(1.0)),
		"rev":     Rev(FromList([]float64{1, 2, 3})),
		"sine":    Sine,
		"stacked": Stack([]Pattern[float64]{Pure(1.0), Fast(tm(2, 1), Pure(2.0))}),
		"zoomed":  Zoom(ta(1, 4, 3, 4), FromList([]float64{1, 2, 3, 4})),
		"gapped":  FastGap(tm(2, 1), FromList([]float64{1, 2})),
	}
	arcs := []Arc{
		ta(0, 1, 1, 1),
		ta(1, 2, 5, 2),
		ta(-3, 2, 1, 4),
		ta(1, 3, 1, 3),
	}

	for name, p := range patterns {
		for _, a := range arcs {
			t.Run(name, func(t *testing.T) {
				requireInvariants(t, p, a)
			})
		}
	}
}
