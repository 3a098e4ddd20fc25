// Package currency knows the minor units of the currencies orders are paid in.
package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

// defaultDecimalPlaces applies to currencies missing from minorUnits.
const defaultDecimalPlaces = 2

// minorUnits lists ISO 4217 exponents of the marketplace site currencies and
// of the zero-decimal currencies that differ from the default.
var minorUnits = map[string]int32{
	"ARS": 2, "BOB": 2, "BRL": 2, "COP": 2, "CRC": 2, "DOP": 2,
	"GTQ": 2, "HNL": 2, "MXN": 2, "NIO": 2, "PAB": 2, "PEN": 2,
	"USD": 2, "UYU": 2, "VES": 2,
	"CLP": 0, "PYG": 0, "JPY": 0, "KRW": 0, "VND": 0, "XAF": 0, "XOF": 0,
}

// DecimalPlaces returns the number of decimal places for the currency code.
func DecimalPlaces(code string) int32 {
	if n, ok := minorUnits[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return n
	}
	return defaultDecimalPlaces
}

// Round rounds amount half away from zero to the precision of the currency.
func Round(amount decimal.Decimal, code string) decimal.Decimal {
	return amount.Round(DecimalPlaces(code))
}
