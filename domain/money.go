package domain

import "github.com/shopspring/decimal"

// Round2 rounds a monetary value to cents. Internal accumulation stays
// unrounded; only output-boundary fields pass through here.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
