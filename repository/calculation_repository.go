package repository

import (
	"time"

	"budgetpilot/domain"
)

// CalculationRecord is a summary of one completed calculation.
type CalculationRecord struct {
	ID               string    `json:"id"`
	CreatedAt        time.Time `json:"created_at"`
	Currency         string    `json:"currency"`
	Feasible         bool      `json:"feasible"`
	IncomeMonthly    float64   `json:"income_monthly"`
	EssentialMonthly float64   `json:"essential_monthly"`
	SafeToSpendToday float64   `json:"safe_to_spend_today"`
}

type CalculationRepository interface {
	Save(input domain.BudgetInput, output domain.BudgetOutput) error
	Recent(n int) []CalculationRecord
}
