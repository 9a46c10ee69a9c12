package biztrack

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// ledgerCurrency is the single currency the game economy runs in. The type
// keeps full decimal precision internally; currency metadata (symbol,
// fraction digits, grouping) comes from go-money at formatting time.
const ledgerCurrency = "USD"

// Money represents a monetary value in the ledger currency.
type Money struct {
	value decimal.Decimal // as major unit value
}

func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		return decimal.Decimal{}
	}
}

// currency returns the full ledger currency metadata.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, ledgerCurrency).Currency()
}

// String returns the formatted representation, e.g. "$1,234.50".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// WholeString formats the value rounded to whole units, e.g. "$90".
// It is the format used inside per-day customer breakdown strings.
func (m Money) WholeString() string {
	return "$" + m.value.Round(0).String()
}

func (m Money) Decimal() decimal.Decimal { return m.value }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsPositive() bool         { return m.value.IsPositive() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool    { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value)} }
func (m Money) MulInt(n int) Money {
	return Money{value: m.value.Mul(decimal.NewFromInt(int64(n)))}
}
func (m Money) DivInt(n int) Money {
	return Money{value: m.value.Div(decimal.NewFromInt(int64(n)))}
}

// Round2 rounds to two decimal places. Accumulation keeps full precision;
// this is only applied when a value lands in a report row.
func (m Money) Round2() Money { return Money{value: m.value.Round(2)} }

// Float2 returns the value rounded to two decimals as a float64, for
// spreadsheet cells and chart series.
func (m Money) Float2() float64 { return m.value.Round(2).InexactFloat64() }
