package pattern

// Arc is a half-open span [Begin, End) of cycle time.
type Arc struct {
	Begin Time
	End   Time
}

// NewArc builds the arc [begin, end).
func NewArc(begin, end Time) Arc { return Arc{Begin: begin, End: end} }

// WholeCycle returns the full cycle containing t.
func WholeCycle(t Time) Arc { return Arc{Begin: t.Sam(), End: t.NextSam()} }

// Width returns the length of the arc in cycles.
func (a Arc) Width() Time { return a.End.Sub(a.Begin) }

// IsZeroWidth reports whether the arc is a single point in time.
func (a Arc) IsZeroWidth() bool { return a.Begin.Equal(a.End) }

func (a Arc) Equal(b Arc) bool {
	return a.Begin.Equal(b.Begin) && a.End.Equal(b.End)
}

func (a Arc) String() string {
	return "[" + a.Begin.String() + "," + a.End.String() + ")"
}

// Sect intersects two arcs. The second return is false when the overlap has
// no positive width, which callers treat as "no intersection". This is the
// primitive the applicative operators lean on.
func Sect(a, b Arc) (Arc, bool) {
	s := a.Begin.Max(b.Begin)
	e := a.End.Min(b.End)
	if s.Cmp(e) >= 0 {
		return Arc{}, false
	}
	return Arc{Begin: s, End: e}, true
}

// Cycles partitions the arc at cycle boundaries, so each piece sits wholly
// inside a single cycle. A reversed or zero-width arc gives nothing.
func (a Arc) Cycles() []Arc {
	var out []Arc
	s, e := a.Begin, a.End
	for s.Less(e) {
		next := s.NextSam()
		if e.Less(next) || e.Equal(next) {
			out = append(out, Arc{Begin: s, End: e})
			break
		}
		out = append(out, Arc{Begin: s, End: next})
		s = next
	}
	return out
}

// CyclesZW is Cycles, except a zero-width arc survives as itself. Point
// queries rely on this so that asking "what is sounding right now?" still
// returns events.
func (a Arc) CyclesZW() []Arc {
	if a.Begin.Equal(a.End) {
		return []Arc{a}
	}
	return a.Cycles()
}

// CycleArcsInArc returns the whole-cycle arcs (n, n+1) touched by a.
func CycleArcsInArc(a Arc) []Arc {
	var out []Arc
	if a.End.Less(a.Begin) {
		return out
	}
	if a.Begin.Equal(a.End) {
		return []Arc{WholeCycle(a.Begin)}
	}
	for t := a.Begin.Sam(); t.Less(a.End); t = t.Add(TimeFromInt(1)) {
		out = append(out, Arc{Begin: t, End: t.Add(TimeFromInt(1))})
	}
	return out
}

// MirrorArc reflects an arc around the point mid.
func MirrorArc(mid Time, a Arc) Arc {
	return Arc{
		Begin: mid.Sub(a.End.Sub(mid)),
		End:   mid.Add(mid.Sub(a.Begin)),
	}
}

// MapCycle applies f to both endpoints measured relative to the cycle of the
// arc's start, then shifts the result back. Both endpoints share the start's
// cycle so an arc ending exactly on the next boundary scales correctly.
func MapCycle(f func(Time) Time, a Arc) Arc {
	sam := a.Begin.Sam()
	return Arc{
		Begin: sam.Add(f(a.Begin.Sub(sam))),
		End:   sam.Add(f(a.End.Sub(sam))),
	}
}
