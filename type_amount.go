package veedor

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount represents an exact monetary magnitude in a given currency.
//
// Registry amounts are published in thousands of pesos; normalization can
// turn them into fractional values, so Amount keeps the exact decimal rather
// than a float.
type Amount struct {
	value decimal.Decimal
	cur   string
}

// Thousands returns the amount for a raw registry figure, expressed in
// thousands of `currency` units.
func Thousands(n int64, currency string) Amount {
	return Amount{value: decimal.NewFromInt(n), cur: currency}
}

// Zero returns the explicit zero amount in the given currency. It is used by
// the dollar valuation mode when no exchange rate exists: "cannot state a
// dollar value" renders as zero, not as absence.
func Zero(currency string) Amount {
	return Amount{cur: currency}
}

// currency returns the money's currency, never nil.
func (a Amount) currency() money.Currency {
	// to get a never nil currency we go through the Money constructor
	return *money.New(0, a.cur).Currency()
}

// String returns the string representation of the amount in its currency
// format.
func (a Amount) String() string {
	cur := a.currency()
	dec := a.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString is like String but prefixes positive values with "+" and
// renders zero as "-".
func (a Amount) SignedString() string {
	if a.value.IsZero() {
		return "-"
	}
	if a.value.IsPositive() {
		return "+" + a.String()
	}
	return a.String()
}

func (a Amount) Currency() string     { return a.cur }
func (a Amount) Equal(b Amount) bool  { return a.value.Equal(b.value) && a.cur == b.cur }
func (a Amount) IsZero() bool         { return a.value.IsZero() }
func (a Amount) LessThan(b Amount) bool { return a.value.LessThan(b.value) }

// Value returns the exact decimal magnitude.
func (a Amount) Value() decimal.Decimal { return a.value }

// Add returns the sum of both amounts.
func (a Amount) Add(b Amount) Amount {
	return Amount{value: a.value.Add(b.value), cur: sameCur(a, b)}
}

// Rescale multiplies the amount by num/den, keeping the currency. It is how
// the inflation adjustment scales a nominal figure to the latest index.
func (a Amount) Rescale(num, den float64) Amount {
	v := a.value.Mul(decimal.NewFromFloat(num)).Div(decimal.NewFromFloat(den))
	return Amount{value: v, cur: a.cur}
}

// Convert divides the amount (brought back to whole units) by the exchange
// rate, switching to the target currency.
func (a Amount) Convert(rate float64, currency string) Amount {
	v := a.value.Mul(decimal.NewFromInt(1000)).Div(decimal.NewFromFloat(rate))
	return Amount{value: v, cur: currency}
}

// makes the "" currency totally weak.
func sameCur(a, b Amount) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + " != " + b.cur)
	}
	return a.cur
}

func (a Amount) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", a.cur)
	w.Append("amount", a.value.Round(int32(a.currency().Fraction)))
	return w.MarshalJSON()
}
