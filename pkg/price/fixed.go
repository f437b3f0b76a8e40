package price

import (
	"fmt"
	"math"

	money "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

var _ Codec[decimal.Decimal] = DecimalCodec{}
var _ Codec[*money.Money] = &MoneyCodec{}

// DecimalCodec stores prices as fixed-point decimals rounded to a number of decimal places
type DecimalCodec struct {
	places int32
}

// Decimal returns a codec rounding to places decimal places (e.g., 2 for cents)
func Decimal(places int32) DecimalCodec {
	return DecimalCodec{places: places}
}

func (d DecimalCodec) FromFloat(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, notFinite(f, "decimal")
	}
	return decimal.NewFromFloat(f).Round(d.places), nil
}

func (d DecimalCodec) Float(v decimal.Decimal) float64 {
	return v.InexactFloat64()
}

// MoneyCodec stores prices as an integer amount of minor units (cents, pence, ...) of a currency
type MoneyCodec struct {
	currency string
	scale    float64
}

// Money returns a codec for the ISO 4217 currency code.  The currency's fraction digits set the scale of the minor unit.
func Money(code string) (*MoneyCodec, error) {
	c := money.GetCurrency(code)
	if c == nil {
		return nil, fmt.Errorf("unknown currency code: %s", code)
	}
	return &MoneyCodec{
		currency: c.Code,
		scale:    math.Pow10(c.Fraction),
	}, nil
}

func (m *MoneyCodec) FromFloat(f float64) (*money.Money, error) {
	typ := "money(" + m.currency + ")"
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, notFinite(f, typ)
	}
	minor := math.Round(f * m.scale)
	if minor < math.MinInt64 || minor >= math.MaxInt64 {
		return nil, overflow(f, typ)
	}
	return money.New(int64(minor), m.currency), nil
}

func (m *MoneyCodec) Float(v *money.Money) float64 {
	return float64(v.Amount()) / m.scale
}
