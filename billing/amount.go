package billing

import "github.com/shopspring/decimal"

// Amount formats an amount given in minor units (cents) as the decimal
// string Beanstream expects, e.g. 1000 -> "10.00".
func Amount(minorUnits int64) string {
	return decimal.New(minorUnits, -2).StringFixed(2)
}
