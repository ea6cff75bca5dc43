package token

import (
	"fmt"

	"modernc.org/mathutil"
)

// Rational is a reduced numerator/denominator pair used for the
// language's rational (fixed/float) literals. Reduction uses
// modernc.org/mathutil.GCDUint64 the same way modernc.org/gc leans on
// mathutil for its own constant arithmetic, instead of hand-rolling
// Euclid's algorithm.
type Rational struct {
	Num, Den int64
}

// NewRational builds a Rational in lowest terms. den must be non-zero.
func NewRational(num, den int64) *Rational {
	if den < 0 {
		num, den = -num, -den
	}
	if num == 0 {
		return &Rational{Num: 0, Den: 1}
	}
	g := int64(mathutil.GCDUint64(uint64(abs64(num)), uint64(den)))
	if g == 0 {
		g = 1
	}
	return &Rational{Num: num / g, Den: den / g}
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// Float64 returns the nearest float64 approximation.
func (r *Rational) Float64() float64 {
	return float64(r.Num) / float64(r.Den)
}

func (r *Rational) String() string {
	if r.Den == 1 {
		return fmt.Sprintf("%d", r.Num)
	}
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}
