package pattern

// The three apply operators differ only in whose structure survives the
// application. App keeps both sides' structure by intersecting arcs; AppLeft
// keeps the function pattern's structure and samples the value pattern at
// each onset; AppRight is the mirror image. They are deliberately three
// named functions rather than one with a mode flag, because reading a
// pattern expression depends on seeing at a glance where the rhythm comes
// from.

// App applies a pattern of functions to a pattern of values, keeping
// structure from both sides. For every function event, the value pattern is
// queried over that event's part; each pairing survives only where both the
// wholes and the parts overlap.
func App[A, B any](pf Pattern[func(A) B], px Pattern[A]) Pattern[B] {
	return Pattern[B]{Query: func(a Arc) []Event[B] {
		var out []Event[B]
		for _, ef := range pf.Query(a) {
			for _, ex := range px.Query(ef.Part) {
				whole, ok := sectWhole(ef.Whole, ex.Whole)
				if !ok {
					continue
				}
				part, ok := Sect(ef.Part, ex.Part)
				if !ok {
					continue
				}
				out = append(out, Event[B]{Whole: whole, Part: part, Value: ef.Value(ex.Value)})
			}
		}
		return out
	}}
}

// AppLeft applies functions to values with the structure coming entirely
// from the function pattern. The value pattern is asked a point query at the
// onset of each function event: "what is sounding here?".
func AppLeft[A, B any](pf Pattern[func(A) B], px Pattern[A]) Pattern[B] {
	return Pattern[B]{Query: func(a Arc) []Event[B] {
		var out []Event[B]
		for _, ef := range pf.Query(a) {
			onset := ef.WholeOrPart().Begin
			for _, ex := range px.Query(Arc{Begin: onset, End: onset}) {
				out = append(out, Event[B]{Whole: ef.Whole, Part: ef.Part, Value: ef.Value(ex.Value)})
			}
		}
		return out
	}}
}

// AppRight is AppLeft with the roles swapped: structure comes from the value
// pattern, and the function pattern is sampled at each value's onset.
func AppRight[A, B any](pf Pattern[func(A) B], px Pattern[A]) Pattern[B] {
	return Pattern[B]{Query: func(a Arc) []Event[B] {
		var out []Event[B]
		for _, ex := range px.Query(a) {
			onset := ex.WholeOrPart().Begin
			for _, ef := range pf.Query(Arc{Begin: onset, End: onset}) {
				out = append(out, Event[B]{Whole: ex.Whole, Part: ex.Part, Value: ef.Value(ex.Value)})
			}
		}
		return out
	}}
}

// Lift2 combines two patterns with a binary function, structure from both
// sides.
func Lift2[A, B, C any](f func(A, B) C, pa Pattern[A], pb Pattern[B]) Pattern[C] {
	return App(curried(f, pa), pb)
}

// Lift2Left is Lift2 with structure from the first pattern only.
func Lift2Left[A, B, C any](f func(A, B) C, pa Pattern[A], pb Pattern[B]) Pattern[C] {
	return AppLeft(curried(f, pa), pb)
}

// Lift2Right is Lift2 with structure from the second pattern only.
func Lift2Right[A, B, C any](f func(A, B) C, pa Pattern[A], pb Pattern[B]) Pattern[C] {
	return AppRight(curried(f, pa), pb)
}

func curried[A, B, C any](f func(A, B) C, pa Pattern[A]) Pattern[func(B) C] {
	return Map(func(a A) func(B) C {
		return func(b B) C { return f(a, b) }
	}, pa)
}

// Unwrap flattens a pattern of patterns. Each outer event's part is handed
// to its inner pattern as a query, and the inner events are clipped to the
// window the outer event opened.
func Unwrap[A any](pp Pattern[Pattern[A]]) Pattern[A] {
	return Pattern[A]{Query: func(a Arc) []Event[A] {
		var out []Event[A]
		for _, oe := range pp.Query(a) {
			for _, ie := range oe.Value.Query(oe.Part) {
				whole, ok := sectWhole(oe.Whole, ie.Whole)
				if !ok {
					continue
				}
				part, ok := Sect(oe.Part, ie.Part)
				if !ok {
					continue
				}
				out = append(out, Event[A]{Whole: whole, Part: part, Value: ie.Value})
			}
		}
		return out
	}}
}

// UnwrapSquash is Unwrap, but each inner pattern is first squeezed into its
// outer event's whole, so exactly one inner cycle plays inside each outer
// event rather than the inner pattern running on the global clock.
func UnwrapSquash[A any](pp Pattern[Pattern[A]]) Pattern[A] {
	return Pattern[A]{Query: func(a Arc) []Event[A] {
		var out []Event[A]
		for _, oe := range pp.Query(a) {
			w := oe.WholeOrPart()
			squeezed := Compress(cycleArc(w), oe.Value)
			for _, ie := range squeezed.Query(oe.Part) {
				whole, ok := sectWhole(oe.Whole, ie.Whole)
				if !ok {
					continue
				}
				part, ok := Sect(oe.Part, ie.Part)
				if !ok {
					continue
				}
				out = append(out, Event[A]{Whole: whole, Part: part, Value: ie.Value})
			}
		}
		return out
	}}
}

// cycleArc shifts an arc into the coordinates of its own cycle, keeping its
// width.
func cycleArc(a Arc) Arc {
	pos := a.Begin.CyclePos()
	return Arc{Begin: pos, End: pos.Add(a.Width())}
}

// Bind sequences a pattern through a function producing patterns. It is
// Unwrap over Map, which makes Pattern a monad with Pure as return.
func Bind[A, B any](p Pattern[A], f func(A) Pattern[B]) Pattern[B] {
	return Unwrap(Map(f, p))
}

// TemporalParam lifts an operator taking a plain parameter into one taking a
// pattern of parameters, so the parameter itself can change over time.
func TemporalParam[A, B, C any](f func(A, Pattern[B]) Pattern[C], pa Pattern[A], p Pattern[B]) Pattern[C] {
	return Unwrap(Map(func(a A) Pattern[C] { return f(a, p) }, pa))
}

// TemporalParam2 is TemporalParam for operators with two time-varying
// parameters.
func TemporalParam2[A, B, C, D any](f func(A, B, Pattern[C]) Pattern[D], pa Pattern[A], pb Pattern[B], p Pattern[C]) Pattern[D] {
	pf := Map(func(a A) func(B) Pattern[D] {
		return func(b B) Pattern[D] { return f(a, b, p) }
	}, pa)
	return Unwrap(App(pf, pb))
}

// TemporalParam3 is TemporalParam for operators with three time-varying
// parameters.
func TemporalParam3[A, B, C, D, E any](f func(A, B, C, Pattern[D]) Pattern[E], pa Pattern[A], pb Pattern[B], pc Pattern[C], p Pattern[D]) Pattern[E] {
	pf := Map(func(a A) func(B) func(C) Pattern[E] {
		return func(b B) func(C) Pattern[E] {
			return func(c C) Pattern[E] { return f(a, b, c, p) }
		}
	}, pa)
	return Unwrap(App(App(pf, pb), pc))
}
