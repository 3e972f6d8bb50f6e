package pattern

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number covers the value types the arithmetic operators work over.
type Number interface {
	constraints.Integer | constraints.Float
}

// Each arithmetic operation comes in three flavours, one per apply variant:
// Both takes structure from both patterns, Left from the first, Right from
// the second. Mixing them is how a sparse rhythm can pick values off a dense
// one, or the other way round.

func add[N Number](x, y N) N  { return x + y }
func sub[N Number](x, y N) N  { return x - y }
func mul[N Number](x, y N) N  { return x * y }
func div[N Number](x, y N) N  { return x / y }
func mod[N Number](x, y N) N  { return N(math.Mod(float64(x), float64(y))) }
func left[N Number](x, _ N) N { return x }

func right[N Number](_, y N) N { return y }

func AddBoth[N Number](a, b Pattern[N]) Pattern[N]  { return Lift2(add[N], a, b) }
func AddLeft[N Number](a, b Pattern[N]) Pattern[N]  { return Lift2Left(add[N], a, b) }
func AddRight[N Number](a, b Pattern[N]) Pattern[N] { return Lift2Right(add[N], a, b) }

func SubBoth[N Number](a, b Pattern[N]) Pattern[N]  { return Lift2(sub[N], a, b) }
func SubLeft[N Number](a, b Pattern[N]) Pattern[N]  { return Lift2Left(sub[N], a, b) }
func SubRight[N Number](a, b Pattern[N]) Pattern[N] { return Lift2Right(sub[N], a, b) }

func MulBoth[N Number](a, b Pattern[N]) Pattern[N]  { return Lift2(mul[N], a, b) }
func MulLeft[N Number](a, b Pattern[N]) Pattern[N]  { return Lift2Left(mul[N], a, b) }
func MulRight[N Number](a, b Pattern[N]) Pattern[N] { return Lift2Right(mul[N], a, b) }

func DivBoth[N Number](a, b Pattern[N]) Pattern[N]  { return Lift2(div[N], a, b) }
func DivLeft[N Number](a, b Pattern[N]) Pattern[N]  { return Lift2Left(div[N], a, b) }
func DivRight[N Number](a, b Pattern[N]) Pattern[N] { return Lift2Right(div[N], a, b) }

func ModBoth[N Number](a, b Pattern[N]) Pattern[N]  { return Lift2(mod[N], a, b) }
func ModLeft[N Number](a, b Pattern[N]) Pattern[N]  { return Lift2Left(mod[N], a, b) }
func ModRight[N Number](a, b Pattern[N]) Pattern[N] { return Lift2Right(mod[N], a, b) }

// The Keep operators carry one side's values while the structure comes from
// wherever the variant says. KeepLeftRight, say, plays the left pattern's
// values on the right pattern's rhythm — handy for overriding values while
// keeping a timing skeleton.

func KeepLeftBoth[N Number](a, b Pattern[N]) Pattern[N]  { return Lift2(left[N], a, b) }
func KeepLeftLeft[N Number](a, b Pattern[N]) Pattern[N]  { return Lift2Left(left[N], a, b) }
func KeepLeftRight[N Number](a, b Pattern[N]) Pattern[N] { return Lift2Right(left[N], a, b) }

func KeepRightBoth[N Number](a, b Pattern[N]) Pattern[N]  { return Lift2(right[N], a, b) }
func KeepRightLeft[N Number](a, b Pattern[N]) Pattern[N]  { return Lift2Left(right[N], a, b) }
func KeepRightRight[N Number](a, b Pattern[N]) Pattern[N] { return Lift2Right(right[N], a, b) }
