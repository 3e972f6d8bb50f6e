package pattern

import "math/big"

// Time is a position on the cyclic timeline, measured in cycles. It is an
// exact rational so that cycle boundaries stay exact no matter how long a
// performance runs; floats drift after enough hours of arithmetic.
//
// The zero value is time zero. Time values are immutable and every operation
// returns a fresh value.
type Time struct {
	rat *big.Rat
}

// NewTime builds the time num/den.
func NewTime(num, den int64) Time {
	return Time{rat: big.NewRat(num, den)}
}

// TimeFromInt builds a whole-cycle time.
func TimeFromInt(n int64) Time {
	return Time{rat: new(big.Rat).SetInt64(n)}
}

// TimeFromFloat approximates f with an exact rational.
func TimeFromFloat(f float64) Time {
	return Time{rat: new(big.Rat).SetFloat64(f)}
}

func (t Time) rr() *big.Rat {
	if t.rat == nil {
		return new(big.Rat)
	}
	return t.rat
}

func (t Time) Add(u Time) Time { return Time{rat: new(big.Rat).Add(t.rr(), u.rr())} }
func (t Time) Sub(u Time) Time { return Time{rat: new(big.Rat).Sub(t.rr(), u.rr())} }
func (t Time) Mul(u Time) Time { return Time{rat: new(big.Rat).Mul(t.rr(), u.rr())} }
func (t Time) Neg() Time       { return Time{rat: new(big.Rat).Neg(t.rr())} }

// Div divides t by u. Callers guard against a zero divisor; the pattern
// operators that divide (Fast, Zoom, Compress) all special-case zero rates
// before getting here.
func (t Time) Div(u Time) Time { return Time{rat: new(big.Rat).Quo(t.rr(), u.rr())} }

// Cmp compares t and u, returning -1, 0 or +1.
func (t Time) Cmp(u Time) int { return t.rr().Cmp(u.rr()) }

func (t Time) Equal(u Time) bool { return t.Cmp(u) == 0 }
func (t Time) Less(u Time) bool  { return t.Cmp(u) < 0 }

func (t Time) Min(u Time) Time {
	if u.Less(t) {
		return u
	}
	return t
}

func (t Time) Max(u Time) Time {
	if t.Less(u) {
		return u
	}
	return t
}

// Sam returns the start of the cycle containing t, i.e. the greatest whole
// cycle at or before t.
func (t Time) Sam() Time {
	r := t.rr()
	// big.Int.Div is Euclidean, so this floors for negative times too.
	q := new(big.Int).Div(r.Num(), r.Denom())
	return Time{rat: new(big.Rat).SetInt(q)}
}

// NextSam returns the start of the cycle after the one containing t.
func (t Time) NextSam() Time { return t.Sam().Add(TimeFromInt(1)) }

// CyclePos returns the position of t within its cycle, in [0, 1).
func (t Time) CyclePos() Time { return t.Sub(t.Sam()) }

// CycleInt returns the number of the cycle containing t.
func (t Time) CycleInt() int64 {
	r := t.rr()
	return new(big.Int).Div(r.Num(), r.Denom()).Int64()
}

// Float gives the nearest float64, for handing to waveform functions.
func (t Time) Float() float64 {
	f, _ := t.rr().Float64()
	return f
}

func (t Time) String() string { return t.rr().RatString() }
