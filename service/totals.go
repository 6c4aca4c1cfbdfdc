package service

import (
	"time"

	"budgetpilot/domain"
)

// computeMonthlyTotals sums enabled recurring costs and folds in the
// required debt payment. Percent-mode savings stays at zero here: the caller
// resolves it once monthly income is known and recomputes essential.
func computeMonthlyTotals(in domain.BudgetInput, goalDate *time.Time, today time.Time) domain.MonthlyTotals {
	fixed := 0.0
	for _, exp := range in.FixedExpenses {
		if exp.Enabled {
			fixed += exp.AmountMonthly
		}
	}

	subs := 0.0
	for _, sub := range in.Subscriptions {
		if sub.Enabled {
			subs += sub.AmountMonthly
		}
	}

	savings := 0.0
	if in.Savings.Enabled && in.Savings.Mode == domain.SavingsFixedAmount {
		savings = in.Savings.Value
	}

	debtRequired := 0.0
	if in.Debts.Enabled {
		debtRequired = RequiredMonthlyDebtPayment(in.Debts.Items, in.Debts.PayoffGoal, goalDate, today)
	}

	return domain.MonthlyTotals{
		FixedMonthly:        fixed,
		SubsMonthly:         subs,
		FlexibleCapsMonthly: in.FlexibleCaps.Total(),
		SavingsMonthly:      savings,
		DebtRequiredMonthly: debtRequired,
		EssentialMonthly:    fixed + subs + savings + debtRequired,
	}
}
