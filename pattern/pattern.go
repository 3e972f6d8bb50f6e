// Package pattern is the algebra at the heart of weft: lazy, composable
// descriptions of timed events over a cyclic, rational timeline.
//
// A pattern is not a list of events. It is a function that, given any arc of
// time, answers with the events sounding during that arc. Everything else —
// speeding up, reversing, layering, applying patterns of functions to
// patterns of values — is built by wrapping that query function. Patterns
// are immutable and queries are pure, so patterns can be shared freely
// between goroutines and queried from a scheduler thread without locks.
package pattern

// Pattern wraps a query from an arc to the events within it.
type Pattern[A any] struct {
	Query func(Arc) []Event[A]
}

// Silence is the pattern with no events at all.
func Silence[A any]() Pattern[A] {
	return Pattern[A]{Query: func(Arc) []Event[A] { return nil }}
}

// Pure repeats a single value once per cycle. Querying across several cycles
// gives one event per cycle, each clipped to the query; a point query gives
// the event sounding at that instant with a zero-width part.
func Pure[A any](v A) Pattern[A] {
	return Pattern[A]{Query: func(a Arc) []Event[A] {
		cycles := a.CyclesZW()
		out := make([]Event[A], 0, len(cycles))
		for _, c := range cycles {
			w := WholeCycle(c.Begin)
			out = append(out, Event[A]{Whole: &w, Part: c, Value: v})
		}
		return out
	}}
}

// Sig lifts a function of time into a continuous pattern. A query returns a
// single event covering the whole arc, valued at the arc's start, with no
// whole since a signal has no onset.
func Sig[A any](f func(Time) A) Pattern[A] {
	return Pattern[A]{Query: func(a Arc) []Event[A] {
		if a.End.Less(a.Begin) {
			return nil
		}
		return []Event[A]{{Part: a, Value: f(a.Begin)}}
	}}
}

// FromList packs all the values into a single cycle, in order.
func FromList[A any](xs []A) Pattern[A] {
	ps := make([]Pattern[A], len(xs))
	for i, x := range xs {
		ps[i] = Pure(x)
	}
	return FastCat(ps)
}

// FromMaybes is FromList with rests: a nil slot stays silent but still takes
// up its share of the cycle.
func FromMaybes[A any](xs []*A) Pattern[A] {
	ps := make([]Pattern[A], len(xs))
	for i, x := range xs {
		if x == nil {
			ps[i] = Silence[A]()
		} else {
			ps[i] = Pure(*x)
		}
	}
	return FastCat(ps)
}

// SplitQueries wraps p so that every query is served one cycle at a time.
// Transformers whose behaviour is local to a cycle (Rev, Cat, Zoom, FastGap,
// When) depend on this to stay correct over arcs that straddle boundaries.
func SplitQueries[A any](p Pattern[A]) Pattern[A] {
	return Pattern[A]{Query: func(a Arc) []Event[A] {
		var out []Event[A]
		for _, sub := range a.CyclesZW() {
			out = append(out, p.Query(sub)...)
		}
		return out
	}}
}
