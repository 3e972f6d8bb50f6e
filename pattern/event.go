package pattern

// Event is a timed value. Whole is the full extent of the note the event
// belongs to; Part is the slice of it that falls inside the arc that was
// queried. A nil Whole marks a continuous signal value, which has no onset
// to speak of.
//
// Two invariants hold for every event a query returns: the part sits inside
// the query arc, and (when Whole is set) the part sits inside the whole.
type Event[A any] struct {
	Whole *Arc
	Part  Arc
	Value A
}

// HasOnset reports whether the event begins inside its part, i.e. the part
// contains the start of the whole.
func (e Event[A]) HasOnset() bool {
	return e.Whole != nil && e.Whole.Begin.Equal(e.Part.Begin)
}

// WholeOrPart returns the whole when there is one, otherwise the part.
// Signals have no whole, so their part stands in wherever an extent is
// needed.
func (e Event[A]) WholeOrPart() Arc {
	if e.Whole != nil {
		return *e.Whole
	}
	return e.Part
}

// withArcs returns a copy of the event with its whole and part mapped
// through f.
func (e Event[A]) withArcs(f func(Arc) Arc) Event[A] {
	out := Event[A]{Part: f(e.Part), Value: e.Value}
	if e.Whole != nil {
		w := f(*e.Whole)
		out.Whole = &w
	}
	return out
}

// sectWhole intersects two optional wholes. A nil on either side means the
// result carries no whole (a signal stays a signal). When both are present
// and do not overlap, the second return is false and the event is dropped.
func sectWhole(a, b *Arc) (*Arc, bool) {
	if a == nil || b == nil {
		return nil, true
	}
	w, ok := Sect(*a, *b)
	if !ok {
		return nil, false
	}
	return &w, true
}
