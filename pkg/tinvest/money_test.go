package tinvest

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artemevsevev/t-invest-sdk-go/pkg/investapi"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestQuotationToDecimal(t *testing.T) {
	cases := []struct {
		units int64
		nano  int32
		want  string
	}{
		{0, 0, "0"},
		{100, 0, "100"},
		{-100, 0, "-100"},
		{114, 250000000, "114.25"},
		{-200, -200000000, "-200.20"},
		{0, -10000000, "-0.01"},
		{999, 999999999, "999.999999999"},
		{-999, -999999999, "-999.999999999"},
	}
	for _, tc := range cases {
		got := QuotationToDecimal(&investapi.Quotation{Units: tc.units, Nano: tc.nano})
		assert.True(t, dec(t, tc.want).Equal(got), "units=%d nano=%d: got %s want %s", tc.units, tc.nano, got, tc.want)
	}
}

func TestQuotationToDecimal_Nil(t *testing.T) {
	assert.True(t, QuotationToDecimal(nil).IsZero())
}

func TestMoneyValueToDecimal(t *testing.T) {
	cases := []struct {
		units int64
		nano  int32
		want  string
	}{
		{0, 0, "0"},
		{100, 0, "100"},
		{-100, 0, "-100"},
		{114, 250000000, "114.25"},
		{-200, -200000000, "-200.20"},
		{0, -10000000, "-0.01"},
		{999, 999999999, "999.999999999"},
		{-999, -999999999, "-999.999999999"},
	}
	for _, tc := range cases {
		got := MoneyValueToDecimal(&investapi.MoneyValue{Currency: "rub", Units: tc.units, Nano: tc.nano})
		assert.True(t, dec(t, tc.want).Equal(got), "units=%d nano=%d: got %s want %s", tc.units, tc.nano, got, tc.want)
	}
}

func TestMoneyValueToDecimal_Nil(t *testing.T) {
	assert.True(t, MoneyValueToDecimal(nil).IsZero())
}

func TestDecimalToQuotation(t *testing.T) {
	cases := []struct {
		in    string
		units int64
		nano  int32
	}{
		{"0", 0, 0},
		{"114.25", 114, 250000000},
		{"-200.20", -200, -200000000},
		{"-0.01", 0, -10000000},
		{"999.999999999", 999, 999999999},
		{"-999.999999999", -999, -999999999},
	}
	for _, tc := range cases {
		q, err := DecimalToQuotation(dec(t, tc.in))
		require.NoError(t, err, "input %s", tc.in)
		assert.Equal(t, tc.units, q.Units, "input %s", tc.in)
		assert.Equal(t, tc.nano, q.Nano, "input %s", tc.in)
	}
}

func TestDecimalToQuotation_OutOfRange(t *testing.T) {
	_, err := DecimalToQuotation(dec(t, "9223372036854775808")) // MaxInt64 + 1
	assert.Error(t, err)

	_, err = DecimalToQuotation(dec(t, "-9223372036854775809")) // MinInt64 - 1
	assert.Error(t, err)

	_, err = DecimalToQuotation(dec(t, "0.0000000001")) // finer than nano
	assert.Error(t, err)
}

func TestDecimalToMoneyValue(t *testing.T) {
	m, err := DecimalToMoneyValue(dec(t, "114.25"), "rub")
	require.NoError(t, err)
	assert.Equal(t, "rub", m.Currency)
	assert.Equal(t, int64(114), m.Units)
	assert.Equal(t, int32(250000000), m.Nano)
}

func TestDecimalQuotationRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "1", "-1", "114.25", "-200.20", "-0.01", "999.999999999", "123456789.000000001"} {
		d := dec(t, s)
		q, err := DecimalToQuotation(d)
		require.NoError(t, err, "input %s", s)
		assert.True(t, d.Equal(QuotationToDecimal(q)), "input %s", s)
	}
}
