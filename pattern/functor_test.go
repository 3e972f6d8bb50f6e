package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	t.Parallel()

	got := Map(func(n int) int { return n * 10 }, FromList([]int{1, 2})).Query(ta(0, 1, 1, 1))
	requireSameEvents(t, []Event[int]{
		ev(ta(0, 1, 1, 2), ta(0, 1, 1, 2), 10),
		ev(ta(1, 2, 1, 1), ta(1, 2, 1, 1), 20),
	}, got)
}

func TestFilterValues(t *testing.T) {
	t.Parallel()

	even := func(n int) bool { return n%2 == 0 }
	got := FilterValues(even, FromList([]int{1, 2, 3, 4})).Query(ta(0, 1, 1, 1))
	requireSameEvents(t, []Event[int]{
		ev(ta(1, 4, 1, 2), ta(1, 4, 1, 2), 2),
		ev(ta(3, 4, 1, 1), ta(3, 4, 1, 1), 4),
	}, got)
}

func TestFilterEvents(t *testing.T) {
	t.Parallel()

	onsets := FilterEvents(Event[int].HasOnset, FromList([]int{1, 2}))

	// querying mid-event leaves only the fragment that carries an onset
	got := onsets.Query(ta(1, 4, 1, 1))
	requireSameEvents(t, []Event[int]{
		ev(ta(1, 2, 1, 1), ta(1, 2, 1, 1), 2),
	}, got)
}

func TestFilterJust(t *testing.T) {
	t.Parallel()

	two := 2
	p := FromList([]*int{nil, &two, nil})
	got := FilterJust(p).Query(ta(0, 1, 1, 1))

	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Value)
	assert.True(t, got[0].Part.Equal(ta(1, 3, 2, 3)))
}
