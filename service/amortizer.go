package service

import (
	"math"
	"time"

	"budgetpilot/domain"
)

// PaymentForGoal computes the monthly payment needed to retire a balance in
// the given number of months. Zero or negative months means pay it all now.
// With a nonzero APR it uses the fixed-payment amortization formula
// P = r*B / (1 - (1+r)^-n) with r the monthly periodic rate; otherwise
// simple division.
func PaymentForGoal(balance float64, months int, apr *float64) float64 {
	if months <= 0 {
		return balance
	}
	if apr == nil || *apr == 0 {
		return balance / float64(months)
	}

	monthlyRate := (*apr / 100) / MonthsPerYear
	if monthlyRate == 0 {
		// apr rounded down to zero; avoid the exponent term entirely
		return balance / float64(months)
	}
	n := float64(months)
	return balance * (monthlyRate / (1 - math.Pow(1+monthlyRate, -n)))
}

// PayoffMonths resolves a payoff goal to a month count. ok=false means no
// goal is set and minimum payments apply. A custom date in the past or on
// the reference date still yields at least one month.
func PayoffMonths(goal string, goalDate *time.Time, today time.Time) (int, bool) {
	switch goal {
	case domain.GoalASAP:
		return MinPayoffMonths, true
	case domain.Goal6Mo:
		return 6, true
	case domain.Goal12Mo:
		return 12, true
	case domain.Goal24Mo:
		return 24, true
	case domain.GoalCustomDate:
		if goalDate == nil {
			return 0, false
		}
		days := goalDate.Sub(today).Hours() / 24
		months := int(math.Round(days / DaysPerMonth))
		if months < MinPayoffMonths {
			months = MinPayoffMonths
		}
		return months, true
	}
	return 0, false
}

// RequiredMonthlyDebtPayment sums the required payment across all debt
// items. Without a goal that is each item's contractual minimum. With a goal
// each item pays the larger of its minimum and its goal-driven payment: a
// goal can accelerate payoff, never let a payment fall below the minimum.
func RequiredMonthlyDebtPayment(items []domain.DebtItem, goal string, goalDate *time.Time, today time.Time) float64 {
	if len(items) == 0 {
		return 0
	}

	months, hasGoal := PayoffMonths(goal, goalDate, today)
	if !hasGoal {
		total := 0.0
		for _, item := range items {
			total += item.MinPaymentMonthly
		}
		return total
	}

	total := 0.0
	for _, item := range items {
		required := PaymentForGoal(item.Balance, months, item.APR)
		if item.MinPaymentMonthly > required {
			required = item.MinPaymentMonthly
		}
		total += required
	}
	return total
}
