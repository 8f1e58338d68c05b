package tinvest

import (
	"math"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/artemevsevev/t-invest-sdk-go/pkg/investapi"
)

// The API carries prices as units plus a nano part scaled by 1e9, with
// the sign repeated on both parts.

var nanoScale = decimal.New(1, 9)

// QuotationToDecimal combines units and nano into one decimal value.
// A nil quotation converts to zero.
func QuotationToDecimal(q *investapi.Quotation) decimal.Decimal {
	if q == nil {
		return decimal.Zero
	}
	return unitsNanoToDecimal(q.Units, q.Nano)
}

// MoneyValueToDecimal combines units and nano into one decimal value,
// dropping the currency. A nil value converts to zero.
func MoneyValueToDecimal(m *investapi.MoneyValue) decimal.Decimal {
	if m == nil {
		return decimal.Zero
	}
	return unitsNanoToDecimal(m.Units, m.Nano)
}

func unitsNanoToDecimal(units int64, nano int32) decimal.Decimal {
	return decimal.NewFromInt(units).Add(decimal.New(int64(nano), -9))
}

// DecimalToQuotation splits a decimal into units and nano parts. It
// fails when the integer part does not fit int64 or the fractional part
// carries more than nine decimal places.
func DecimalToQuotation(d decimal.Decimal) (*investapi.Quotation, error) {
	units, nano, err := decimalToUnitsNano(d)
	if err != nil {
		return nil, err
	}
	return &investapi.Quotation{Units: units, Nano: nano}, nil
}

// DecimalToMoneyValue splits a decimal like DecimalToQuotation and
// attaches the currency code.
func DecimalToMoneyValue(d decimal.Decimal, currency string) (*investapi.MoneyValue, error) {
	units, nano, err := decimalToUnitsNano(d)
	if err != nil {
		return nil, err
	}
	return &investapi.MoneyValue{Currency: currency, Units: units, Nano: nano}, nil
}

func decimalToUnitsNano(d decimal.Decimal) (int64, int32, error) {
	trunc := d.Truncate(0)
	if trunc.Cmp(decimal.NewFromInt(math.MaxInt64)) > 0 || trunc.Cmp(decimal.NewFromInt(math.MinInt64)) < 0 {
		return 0, 0, errors.Errorf("can't convert decimal %s to quotation", d)
	}
	units := trunc.IntPart()

	frac := d.Sub(trunc).Mul(nanoScale)
	if !frac.IsInteger() {
		return 0, 0, errors.Errorf("can't convert decimal %s to quotation", d)
	}
	nano := frac.IntPart()
	if nano > math.MaxInt32 || nano < math.MinInt32 {
		return 0, 0, errors.Errorf("can't convert decimal %s to quotation", d)
	}
	return units, int32(nano), nil
}
