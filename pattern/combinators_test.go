package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlayConcatenatesInOrder(t *testing.T) {
	t.Parallel()

	got := Overlay(Pure("left"), Pure("right")).Query(ta(0, 1, 1, 1))
	requireSameEvents(t, []Event[string]{
		ev(ta(0, 1, 1, 1), ta(0, 1, 1, 1), "left"),
		ev(ta(0, 1, 1, 1), ta(0, 1, 1, 1), "right"),
	}, got)
}

func TestOverlaySilenceIsIdentity(t *testing.T) {
	t.Parallel()

	p := FromList([]int{1, 2})
	a := ta(0, 1, 2, 1)
	requireSamePattern(t, p, Overlay(p, Silence[int]()), a)
	requireSamePattern(t, p, Overlay(Silence[int](), p), a)
}

func TestOverlayAssociative(t *testing.T) {
	t.Parallel()

	x, y, z := Pure("x"), Pure("y"), Pure("z")
	a := ta(0, 1, 1, 1)
	requireSamePattern(t, Overlay(Overlay(x, y), z), Overlay(x, Overlay(y, z)), a)
}

func TestStack(t *testing.T) {
	t.Parallel()

	got := Stack([]Pattern[string]{Pure("x"), Pure("y"), Pure("z")}).Query(ta(0, 1, 1, 1))
	require.Len(t, got, 3)
	assert.Equal(t, "x", got[0].Value)
	assert.Equal(t, "y", got[1].Value)
	assert.Equal(t, "z", got[2].Value)
}

func TestStackEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Stack[int](nil).Query(ta(0, 1, 1, 1)))
}

func TestCatAlternatesCycles(t *testing.T) {
	t.Parallel()

	got := Cat([]Pattern[string]{Pure("a"), Pure("b")}).Query(ta(0, 1, 2, 1))
	requireSameEvents(t, []Event[string]{
		ev(ta(0, 1, 1, 1), ta(0, 1, 1, 1), "a"),
		ev(ta(1, 1, 2, 1), ta(1, 1, 2, 1), "b"),
	}, got)
}

func TestCatWrapsAround(t *testing.T) {
	t.Parallel()

	p := Cat([]Pattern[string]{Pure("a"), Pure("b"), Pure("c")})

	// cycle 3 plays "a" again, and each source pattern advances a cycle of
	// its own per round
	got := p.Query(ta(3, 1, 4, 1))
	requireSameEvents(t, []Event[string]{
		ev(ta(3, 1, 4, 1), ta(3, 1, 4, 1), "a"),
	}, got)
}

func TestCatNegativeCycles(t *testing.T) {
	t.Parallel()

	got := Cat([]Pattern[string]{Pure("a"), Pure("b")}).Query(ta(-1, 1, 0, 1))
	requireSameEvents(t, []Event[string]{
		ev(ta(-1, 1, 0, 1), ta(-1, 1, 0, 1), "b"),
	}, got)
}

func TestCatEmptyIsSilence(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Cat[int](nil).Query(ta(0, 1, 1, 1)))
}

func TestCatMidCycleQuery(t *testing.T) {
	t.Parallel()

	got := Cat([]Pattern[string]{Pure("a"), Pure("b")}).Query(ta(1, 2, 3, 2))
	requireSameEvents(t, []Event[string]{
		ev(ta(0, 1, 1, 1), ta(1, 2, 1, 1), "a"),
		ev(ta(1, 1, 2, 1), ta(1, 1, 3, 2), "b"),
	}, got)
}

func TestFastCat(t *testing.T) {
	t.Parallel()

	got := FastCat([]Pattern[string]{Pure("a"), Pure("b"), Pure("c")}).Query(ta(0, 1, 1, 1))
	requireSameEvents(t, []Event[string]{
		ev(ta(0, 1, 1, 3), ta(0, 1, 1, 3), "a"),
		ev(ta(1, 3, 2, 3), ta(1, 3, 2, 3), "b"),
		ev(ta(2, 3, 1, 1), ta(2, 3, 1, 1), "c"),
	}, got)
}

func TestFastCatEmptyIsSilence(t *testing.T) {
	t.Parallel()

	assert.Empty(t, FastCat[int](nil).Query(ta(0, 1, 1, 1)))
}

func TestAppend(t *testing.T) {
	t.Parallel()

	p := Append(Pure("a"), Pure("b"))
	requireSamePattern(t, Cat([]Pattern[string]{Pure("a"), Pure("b")}), p, ta(0, 1, 4, 1))
}

func TestFastAppend(t *testing.T) {
	t.Parallel()

	got := FastAppend(Pure("a"), Pure("b")).Query(ta(0, 1, 1, 1))
	requireSameEvents(t, []Event[string]{
		ev(ta(0, 1, 1, 2), ta(0, 1, 1, 2), "a"),
		ev(ta(1, 2, 1, 1), ta(1, 2, 1, 1), "b"),
	}, got)
}

func TestCatOneCycleOfEach(t *testing.T) {
	t.Parallel()

	// over n cycles, each source contributes exactly one cycle's worth
	inner := FromList([]int{1, 2})
	p := Cat([]Pattern[int]{inner, Pure(3)})

	got := p.Query(ta(0, 1, 2, 1))
	requireSameEvents(t, []Event[int]{
		ev(ta(0, 1, 1, 2), ta(0, 1, 1, 2), 1),
		ev(ta(1, 2, 1, 1), ta(1, 2, 1, 1), 2),
		ev(ta(1, 1, 2, 1), ta(1, 1, 2, 1), 3),
	}, got)
}
