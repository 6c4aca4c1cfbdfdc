package service

import (
	"fmt"

	"budgetpilot/domain"
)

// reliabilityMultipliers discount irregular income by how certain it is.
var reliabilityMultipliers = map[string]float64{
	domain.ReliabilityLow:    0.5,
	domain.ReliabilityMedium: 0.75,
	domain.ReliabilityHigh:   1.0,
}

// NormalizeMonthlyIncome converts a per-period net pay amount into a single
// monthly figure and adds reliability-discounted irregular income. An
// unrecognized reliability tier falls back to the medium multiplier rather
// than failing; an unrecognized pay frequency is invalid input.
func NormalizeMonthlyIncome(payFrequency string, netPayAmount, irregularAvg float64, irregularReliability string) (float64, error) {
	var base float64
	switch payFrequency {
	case domain.PayWeekly:
		base = netPayAmount * WeeksPerYear / MonthsPerYear
	case domain.PayBiweekly:
		base = netPayAmount * BiweeksPerYear / MonthsPerYear
	case domain.PayMonthly:
		base = netPayAmount
	default:
		return 0, fmt.Errorf("%w: unknown pay frequency %q", ErrInvalidInput, payFrequency)
	}

	mult, ok := reliabilityMultipliers[irregularReliability]
	if !ok {
		mult = reliabilityMultipliers[domain.ReliabilityMedium]
	}
	return base + irregularAvg*mult, nil
}
