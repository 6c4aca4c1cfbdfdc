package domain

// MonthlyTotals is derived on every calculation, never partially reused.
// Essential is fixed + subscriptions + savings + required debt payments.
type MonthlyTotals struct {
	FixedMonthly        float64 `json:"fixed_monthly"`
	SubsMonthly         float64 `json:"subs_monthly"`
	FlexibleCapsMonthly float64 `json:"flexible_caps_monthly"`
	SavingsMonthly      float64 `json:"savings_monthly"`
	DebtRequiredMonthly float64 `json:"debt_required_monthly"`
	EssentialMonthly    float64 `json:"essential_monthly"`
}

// Suggestion is one what-if scenario: a single parameter change, the per-day
// safe-to-spend under that change, and the signed delta versus the current
// figure.
type Suggestion struct {
	Title            string         `json:"title"`
	Changes          map[string]any `json:"changes"`
	SafeToSpendToday float64        `json:"safe_to_spend_today"`
	Delta            float64        `json:"delta"`
}

type BudgetOutput struct {
	Feasible               bool          `json:"feasible"`
	Currency               string        `json:"currency"`
	DaysUntilPayday        int           `json:"days_until_payday"`
	IncomeMonthly          float64       `json:"income_monthly"`
	Totals                 MonthlyTotals `json:"totals"`
	SafeToSpendUntilPayday float64       `json:"safe_to_spend_until_payday"`
	SafeToSpendToday       float64       `json:"safe_to_spend_today"`
	Warnings               []string      `json:"warnings"`
	Suggestions            []Suggestion  `json:"suggestions"`
}
