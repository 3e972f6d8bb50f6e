package pattern

// Overlay layers two patterns; a query answers with the left pattern's
// events followed by the right's.
func Overlay[A any](a, b Pattern[A]) Pattern[A] {
	return Pattern[A]{Query: func(q Arc) []Event[A] {
		out := a.Query(q)
		return append(out, b.Query(q)...)
	}}
}

// Stack layers any number of patterns, leftmost first.
func Stack[A any](ps []Pattern[A]) Pattern[A] {
	out := Silence[A]()
	for i := len(ps) - 1; i >= 0; i-- {
		out = Overlay(ps[i], out)
	}
	return out
}

// Cat concatenates patterns cycle by cycle: cycle n of the result is cycle
// n/len of pattern n%len, so each pattern contributes one full cycle in
// turn.
func Cat[A any](ps []Pattern[A]) Pattern[A] {
	if len(ps) == 0 {
		return Silence[A]()
	}
	n := int64(len(ps))
	return SplitQueries(Pattern[A]{Query: func(a Arc) []Event[A] {
		c := a.Begin.CycleInt()
		i := ((c % n) + n) % n
		// Re-base the query into the chosen pattern's own cycle numbering,
		// then shift the results back out.
		offset := TimeFromInt(c - (c-i)/n)
		shifted := Arc{Begin: a.Begin.Sub(offset), End: a.End.Sub(offset)}
		return WithResultTime(func(t Time) Time { return t.Add(offset) }, ps[i]).Query(shifted)
	}})
}

// Append alternates two patterns, a on even cycles relative to the start and
// b on odd.
func Append[A any](a, b Pattern[A]) Pattern[A] {
	return Cat([]Pattern[A]{a, b})
}

// FastCat squeezes all the patterns into a single cycle, in order.
func FastCat[A any](ps []Pattern[A]) Pattern[A] {
	return Fast(TimeFromInt(int64(len(ps))), Cat(ps))
}

// FastAppend squeezes two patterns into one cycle, a then b.
func FastAppend[A any](a, b Pattern[A]) Pattern[A] {
	return Fast(TimeFromInt(2), Append(a, b))
}
