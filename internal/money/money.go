// Package money holds the fixed-point amount type used by the settlement
// engine and its conversions to and from decimal values at the API boundary.
//
// All arithmetic happens on integer minor units (cents). Decimal values only
// appear when parsing requests and rendering responses.
package money

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// MinorUnitDigits is the number of fraction digits of the single currency
// the service operates in.
const MinorUnitDigits = 2

// MaxAmount is the largest single amount accepted (ten trillion minor units).
// It keeps every sum over a realistic project far away from int64 overflow.
const MaxAmount Cents = 10_000_000_000_000

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrPrecision     = errors.New("amount has more precision than the currency minor unit")
	ErrOverflow      = errors.New("amount arithmetic overflow")
)

// Cents is an amount in minor currency units.
type Cents int64

// FromDecimal converts a decimal amount to minor units. It never rounds: an
// amount with sub-cent precision is rejected.
func FromDecimal(d decimal.Decimal) (Cents, error) {
	scaled := d.Shift(MinorUnitDigits)
	if !scaled.IsInteger() {
		return 0, fmt.Errorf("%w: %s", ErrPrecision, d.String())
	}
	if scaled.Abs().GreaterThan(decimal.NewFromInt(int64(MaxAmount))) {
		return 0, fmt.Errorf("%w: %s exceeds maximum", ErrInvalidAmount, d.String())
	}
	return Cents(scaled.IntPart()), nil
}

// Parse reads a decimal string such as "12.50" into minor units.
func Parse(s string) (Cents, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return FromDecimal(d)
}

// Decimal returns the amount as a decimal in major units.
func (c Cents) Decimal() decimal.Decimal {
	return decimal.New(int64(c), -MinorUnitDigits)
}

// String renders the amount with exactly MinorUnitDigits fraction digits.
func (c Cents) String() string {
	return c.Decimal().StringFixed(MinorUnitDigits)
}

// Abs returns the magnitude of c.
func (c Cents) Abs() Cents {
	if c < 0 {
		return -c
	}
	return c
}

// Within reports whether |c| <= tolerance.
func Within(c, tolerance Cents) bool {
	return c.Abs() <= tolerance
}

// Add returns a+b, failing instead of wrapping around.
func Add(a, b Cents) (Cents, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, a, b)
	}
	return a + b, nil
}

// SplitEven divides amount into n equal shares rounded half-to-even to the
// minor unit. The residual is amount - share*n and always satisfies
// |residual| < n; callers assign it to a single party so the parts still sum
// to amount exactly.
func SplitEven(amount Cents, n int) (share, residual Cents, err error) {
	if n <= 0 {
		return 0, 0, fmt.Errorf("%w: cannot split across %d parts", ErrInvalidAmount, n)
	}
	if amount < 0 {
		return 0, 0, fmt.Errorf("%w: cannot split negative amount %d", ErrInvalidAmount, amount)
	}

	parts := Cents(n)
	q, r := amount/parts, amount%parts
	switch {
	case 2*r > parts:
		q++
	case 2*r == parts && q%2 == 1:
		q++
	}

	// Rounding up near the top of the range can leave share*n unrepresentable.
	if q > math.MaxInt64/parts {
		return 0, 0, fmt.Errorf("%w: %d * %d", ErrOverflow, q, parts)
	}
	return q, amount - q*parts, nil
}
