package pattern

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func tm(num, den int64) Time { return NewTime(num, den) }

func ta(bn, bd, en, ed int64) Arc { return Arc{Begin: tm(bn, bd), End: tm(en, ed)} }

// ev builds a discrete event with the given whole and part.
func ev[A any](whole, part Arc, v A) Event[A] {
	w := whole
	return Event[A]{Whole: &w, Part: part, Value: v}
}

func requireSameEvent[A any](t *testing.T, want, got Event[A]) {
	t.Helper()
	if want.Whole == nil {
		require.Nil(t, got.Whole, "expected no whole, got %v", got.Whole)
	} else {
		require.NotNil(t, got.Whole, "expected whole %v, got none", want.Whole)
		require.True(t, want.Whole.Equal(*got.Whole), "whole: want %v, got %v", want.Whole, got.Whole)
	}
	require.True(t, want.Part.Equal(got.Part), "part: want %v, got %v", want.Part, got.Part)
	require.Equal(t, want.Value, got.Value)
}

func requireSameEvents[A any](t *testing.T, want, got []Event[A]) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		requireSameEvent(t, want[i], got[i])
	}
}

// requireSamePattern checks that two patterns answer a query identically.
func requireSamePattern[A any](t *testing.T, want, got Pattern[A], a Arc) {
	t.Helper()
	requireSameEvents(t, want.Query(a), got.Query(a))
}

// requireInvariants checks the two containment rules every query result must
// satisfy: parts inside the query arc, and parts inside their wholes.
func requireInvariants[A any](t *testing.T, p Pattern[A], a Arc) {
	t.Helper()
	for _, e := range p.Query(a) {
		require.True(t, a.Begin.Cmp(e.Part.Begin) <= 0 && e.Part.End.Cmp(a.End) <= 0,
			"part %v escapes query %v", e.Part, a)
		if e.Whole != nil {
			require.True(t, e.Whole.Begin.Cmp(e.Part.Begin) <= 0 && e.Part.End.Cmp(e.Whole.End) <= 0,
				"part %v escapes whole %v", e.Part, e.Whole)
		}
	}
}
