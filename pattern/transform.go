package pattern

// Every time transformer is built from two primitives: warp the arc a query
// asks for, and warp the arcs of the events that come back. Keeping those as
// the only moving parts is what lets the transformers stack arbitrarily
// without breaking the part-inside-whole invariant.

// WithQueryArc transforms the requested arc before the query reaches p.
func WithQueryArc[A any](f func(Arc) Arc, p Pattern[A]) Pattern[A] {
	return Pattern[A]{Query: func(a Arc) []Event[A] {
		return p.Query(f(a))
	}}
}

// WithQueryTime transforms both endpoints of the requested arc.
func WithQueryTime[A any](f func(Time) Time, p Pattern[A]) Pattern[A] {
	return WithQueryArc(func(a Arc) Arc {
		return Arc{Begin: f(a.Begin), End: f(a.End)}
	}, p)
}

// WithResultArc maps the whole and part of every returned event through f.
func WithResultArc[A any](f func(Arc) Arc, p Pattern[A]) Pattern[A] {
	return Pattern[A]{Query: func(a Arc) []Event[A] {
		evs := p.Query(a)
		out := make([]Event[A], len(evs))
		for i, e := range evs {
			out[i] = e.withArcs(f)
		}
		return out
	}}
}

// WithResultTime maps every event time through f.
func WithResultTime[A any](f func(Time) Time, p Pattern[A]) Pattern[A] {
	return WithResultArc(func(a Arc) Arc {
		return Arc{Begin: f(a.Begin), End: f(a.End)}
	}, p)
}

// Fast speeds a pattern up by rate, fitting that many repetitions into each
// cycle. A rate of zero silences the pattern, and a negative rate plays it
// backwards at the corresponding speed.
func Fast[A any](rate Time, p Pattern[A]) Pattern[A] {
	zero := Time{}
	switch {
	case rate.Equal(zero):
		return Silence[A]()
	case rate.Less(zero):
		return Rev(Fast(rate.Neg(), p))
	case rate.Equal(TimeFromInt(1)):
		return p
	}
	return WithResultTime(func(t Time) Time { return t.Div(rate) },
		WithQueryTime(func(t Time) Time { return t.Mul(rate) }, p))
}

// Slow stretches a pattern so one of its cycles takes rate cycles to play.
func Slow[A any](rate Time, p Pattern[A]) Pattern[A] {
	if rate.Equal(Time{}) {
		return Silence[A]()
	}
	return Fast(TimeFromInt(1).Div(rate), p)
}

// Density is another name for Fast, for those who think in events per cycle.
func Density[A any](rate Time, p Pattern[A]) Pattern[A] { return Fast(rate, p) }

// Sparsity is another name for Slow.
func Sparsity[A any](rate Time, p Pattern[A]) Pattern[A] { return Slow(rate, p) }

// RotL rotates a pattern t cycles earlier in time.
func RotL[A any](t Time, p Pattern[A]) Pattern[A] {
	return WithResultTime(func(u Time) Time { return u.Sub(t) },
		WithQueryTime(func(u Time) Time { return u.Add(t) }, p))
}

// RotR rotates a pattern t cycles later in time.
func RotR[A any](t Time, p Pattern[A]) Pattern[A] { return RotL(t.Neg(), p) }

// Rev plays each cycle of a pattern backwards. Reversal is local to the
// cycle: the queried arc is reflected around the cycle's midpoint, and the
// returned arcs reflected back. A whole is rebuilt from the offsets between
// part and whole, so the gap before a note's onset becomes the gap after its
// end.
func Rev[A any](p Pattern[A]) Pattern[A] {
	return SplitQueries(Pattern[A]{Query: func(a Arc) []Event[A] {
		mid := a.Begin.Sam().Add(NewTime(1, 2))
		evs := p.Query(MirrorArc(mid, a))
		out := make([]Event[A], 0, len(evs))
		for _, e := range evs {
			part := MirrorArc(mid, e.Part)
			res := Event[A]{Part: part, Value: e.Value}
			if e.Whole != nil {
				before := e.Part.Begin.Sub(e.Whole.Begin)
				after := e.Whole.End.Sub(e.Part.End)
				w := Arc{Begin: part.Begin.Sub(after), End: part.End.Add(before)}
				res.Whole = &w
			}
			out = append(out, res)
		}
		return out
	}})
}

// Zoom plays just the slice [a.Begin, a.End] of each of p's cycles,
// stretched to fill a whole cycle.
func Zoom[A any](a Arc, p Pattern[A]) Pattern[A] {
	d := a.Width()
	if d.Cmp(Time{}) <= 0 {
		return Silence[A]()
	}
	s := a.Begin
	return SplitQueries(
		WithResultArc(func(r Arc) Arc {
			return MapCycle(func(t Time) Time { return t.Sub(s).Div(d) }, r)
		}, WithQueryArc(func(q Arc) Arc {
			return MapCycle(func(t Time) Time { return t.Mul(d).Add(s) }, q)
		}, p)))
}

// FastGap squashes each cycle's content into the first 1/rate of the cycle,
// leaving the remainder silent. Zero is the only silent rate; anything else
// below one, negative rates included, is treated as one and leaves the
// pattern ungapped.
func FastGap[A any](rate Time, p Pattern[A]) Pattern[A] {
	if rate.Equal(Time{}) {
		return Silence[A]()
	}
	r := rate.Max(TimeFromInt(1))
	one := TimeFromInt(1)
	mungeQuery := func(t Time) Time {
		return t.Sam().Add(one.Min(r.Mul(t.CyclePos())))
	}
	inner := Pattern[A]{Query: func(a Arc) []Event[A] {
		munged := Arc{Begin: mungeQuery(a.Begin), End: mungeQuery(a.End)}
		// A query that starts past the squashed window collapses onto the
		// next cycle boundary; nothing sounds there.
		if munged.Begin.Equal(a.Begin.NextSam()) {
			return nil
		}
		return p.Query(munged)
	}}
	return SplitQueries(WithResultArc(func(a Arc) Arc {
		return MapCycle(func(t Time) Time { return t.Div(r) }, a)
	}, inner))
}

// Compress plays a pattern inside the sub-arc [a.Begin, a.End] of every
// cycle. Bounds outside the cycle, or back to front, give silence.
func Compress[A any](a Arc, p Pattern[A]) Pattern[A] {
	s, e := a.Begin, a.End
	zero, one := Time{}, TimeFromInt(1)
	if e.Cmp(s) <= 0 || s.Less(zero) || one.Less(e) {
		return Silence[A]()
	}
	return RotR(s, FastGap(one.Div(e.Sub(s)), p))
}

// When applies f to p only on the cycles whose number passes test.
func When[A any](test func(int64) bool, f func(Pattern[A]) Pattern[A], p Pattern[A]) Pattern[A] {
	fp := f(p)
	return SplitQueries(Pattern[A]{Query: func(a Arc) []Event[A] {
		if test(a.Begin.CycleInt()) {
			return fp.Query(a)
		}
		return p.Query(a)
	}})
}

// WhenT is When with the test applied to the continuous start time of each
// cycle-local query rather than the cycle number.
func WhenT[A any](test func(Time) bool, f func(Pattern[A]) Pattern[A], p Pattern[A]) Pattern[A] {
	fp := f(p)
	return SplitQueries(Pattern[A]{Query: func(a Arc) []Event[A] {
		if test(a.Begin) {
			return fp.Query(a)
		}
		return p.Query(a)
	}})
}
