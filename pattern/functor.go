package pattern

// Map applies f to every event value, leaving the timing untouched.
func Map[A, B any](f func(A) B, p Pattern[A]) Pattern[B] {
	return Pattern[B]{Query: func(a Arc) []Event[B] {
		evs := p.Query(a)
		out := make([]Event[B], len(evs))
		for i, e := range evs {
			out[i] = Event[B]{Whole: e.Whole, Part: e.Part, Value: f(e.Value)}
		}
		return out
	}}
}

// FilterEvents keeps only the events passing pred.
func FilterEvents[A any](pred func(Event[A]) bool, p Pattern[A]) Pattern[A] {
	return Pattern[A]{Query: func(a Arc) []Event[A] {
		var out []Event[A]
		for _, e := range p.Query(a) {
			if pred(e) {
				out = append(out, e)
			}
		}
		return out
	}}
}

// FilterValues keeps only the events whose value passes pred.
func FilterValues[A any](pred func(A) bool, p Pattern[A]) Pattern[A] {
	return FilterEvents(func(e Event[A]) bool { return pred(e.Value) }, p)
}

// FilterJust drops the empty slots from a pattern of optional values.
func FilterJust[A any](p Pattern[*A]) Pattern[A] {
	present := FilterValues(func(v *A) bool { return v != nil }, p)
	return Map(func(v *A) A { return *v }, present)
}
