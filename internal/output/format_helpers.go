package output

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/retirekit/income-engine/pkg/money"
)

// FormatCurrency formats a decimal as USD currency with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string { return money.FromDecimal(amount).Format() }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatProbability renders a survival probability with 4 decimals.
func FormatProbability(p float64) string { return strconv.FormatFloat(p, 'f', 4, 64) }

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
