package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyAnnualRoundTrip(t *testing.T) {
	monthly := New(2400)
	annual := monthly.Annual()
	assert.Equal(t, "28800.00", annual.String())
	assert.Equal(t, "2400.00", annual.Monthly().String())
}

func TestRound(t *testing.T) {
	m := New(1999.505)
	assert.Equal(t, "1999.50", m.Round().String()) // banker's rounding
}

func TestFromString(t *testing.T) {
	m, err := FromString("1234.56")
	require.NoError(t, err)
	assert.Equal(t, "$1234.56", m.Format())

	_, err = FromString("not-a-number")
	assert.Error(t, err)
}

func TestArithmeticAndComparisons(t *testing.T) {
	a := New(100)
	b := New(250.50)

	assert.Equal(t, "350.50", a.Add(b).String())
	assert.Equal(t, "-150.50", a.Sub(b).String())
	assert.True(t, a.Sub(b).IsNegative())
	assert.Equal(t, "200.00", a.Mul(decimal.NewFromInt(2)).String())
	assert.Equal(t, a, Min(a, b))
	assert.Equal(t, b, Max(a, b))
	assert.Equal(t, "0.00", Zero().String())
}

func TestFromDecimal(t *testing.T) {
	d := decimal.NewFromFloat(42.424)
	assert.Equal(t, "42.42", FromDecimal(d).Round().String())
}
