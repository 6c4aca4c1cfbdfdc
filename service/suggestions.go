package service

import (
	"fmt"
	"time"

	"budgetpilot/domain"
)

// generateSuggestions builds what-if scenarios from a fixed decision table
// driven by feasibility. Each candidate applies exactly one change to a deep
// copy of the original input and re-runs the pipeline with suggestions
// disabled. Candidates whose preconditions are unmet are omitted; generation
// itself never fails.
func generateSuggestions(in domain.BudgetInput, current domain.BudgetOutput, today time.Time) []domain.Suggestion {
	if current.Feasible {
		return optimizationSuggestions(in, current, today)
	}
	return recoverySuggestions(in, current, today)
}

// recoverySuggestions proposes ways to bring an infeasible plan back under
// income. Each candidate is computed against an unmodified copy of the
// original input, not against the others.
func recoverySuggestions(in domain.BudgetInput, current domain.BudgetOutput, today time.Time) []domain.Suggestion {
	suggestions := []domain.Suggestion{}

	if in.Savings.Enabled {
		modified := in.Clone()
		modified.Savings.Enabled = false
		modified.Savings.Value = 0
		if s, ok := whatIf(modified, today, "Reduce savings to $0",
			map[string]any{"savings": map[string]any{"enabled": false, "value": 0.0}},
			current.SafeToSpendToday); ok {
			suggestions = append(suggestions, s)
		}
	}

	if in.Debts.Enabled && in.Debts.PayoffGoal != "" {
		modified := in.Clone()
		modified.Debts.PayoffGoal = domain.Goal24Mo
		modified.Debts.PayoffGoalDate = ""
		if s, ok := whatIf(modified, today, "Extend debt payoff goal to 24 months",
			map[string]any{"debts": map[string]any{"payoffGoal": domain.Goal24Mo}},
			current.SafeToSpendToday); ok {
			suggestions = append(suggestions, s)
		}

		// offered alongside the extension, not instead of it
		minimums := in.Clone()
		minimums.Debts.PayoffGoal = ""
		minimums.Debts.PayoffGoalDate = ""
		if s, ok := whatIf(minimums, today, "Use minimum debt payments only",
			map[string]any{"debts": map[string]any{"payoffGoal": nil}},
			current.SafeToSpendToday); ok {
			suggestions = append(suggestions, s)
		}
	}

	if in.FlexibleCaps.Total() > 0 {
		modified := in.Clone()
		modified.FlexibleCaps.Scale(FlexibleCutFactor)
		if s, ok := whatIf(modified, today, "Reduce flexible spending caps by 20%",
			flexibleCapsChanges(modified.FlexibleCaps), current.SafeToSpendToday); ok {
			suggestions = append(suggestions, s)
		}
	}

	return suggestions
}

// optimizationSuggestions proposes refinements for a plan that already fits.
func optimizationSuggestions(in domain.BudgetInput, current domain.BudgetOutput, today time.Time) []domain.Suggestion {
	suggestions := []domain.Suggestion{}

	if in.Savings.Enabled {
		modified := in.Clone()
		var title string
		if in.Savings.Mode == domain.SavingsPercent {
			newValue := in.Savings.Value + SavingsStepPercent
			if newValue > SavingsPercentCap {
				newValue = SavingsPercentCap
			}
			modified.Savings.Value = newValue
			title = fmt.Sprintf("Increase savings to %g%%", newValue)
		} else {
			modified.Savings.Value = in.Savings.Value + SavingsStepFixed
			title = "Increase savings by $50/month"
		}
		if s, ok := whatIf(modified, today, title,
			map[string]any{"savings": map[string]any{"value": modified.Savings.Value}},
			current.SafeToSpendToday); ok {
			suggestions = append(suggestions, s)
		}
	} else {
		modified := in.Clone()
		modified.Savings.Enabled = true
		modified.Savings.Mode = domain.SavingsFixedAmount
		modified.Savings.Value = SavingsStarterAmount
		if s, ok := whatIf(modified, today, "Start saving $50/month",
			map[string]any{"savings": map[string]any{
				"enabled": true, "mode": domain.SavingsFixedAmount, "value": SavingsStarterAmount,
			}},
			current.SafeToSpendToday); ok {
			suggestions = append(suggestions, s)
		}
	}

	if in.Debts.Enabled && len(in.Debts.Items) > 0 && in.Debts.PayoffGoal != domain.Goal12Mo {
		modified := in.Clone()
		modified.Debts.PayoffGoal = domain.Goal12Mo
		modified.Debts.PayoffGoalDate = ""
		if s, ok := whatIf(modified, today, "Pay off debt in 12 months",
			map[string]any{"debts": map[string]any{"payoffGoal": domain.Goal12Mo}},
			current.SafeToSpendToday); ok {
			suggestions = append(suggestions, s)
		}
	}

	if in.FlexibleCaps.Total() > 0 {
		modified := in.Clone()
		modified.FlexibleCaps.Scale(FlexibleBufferFactor)
		if s, ok := whatIf(modified, today, "Add 5% buffer to flexible spending",
			flexibleCapsChanges(modified.FlexibleCaps), current.SafeToSpendToday); ok {
			suggestions = append(suggestions, s)
		}
	}

	return suggestions
}

// whatIf re-runs the pipeline for one perturbed input. ok=false drops the
// candidate silently.
func whatIf(modified domain.BudgetInput, today time.Time, title string, changes map[string]any, currentPerDay float64) (domain.Suggestion, bool) {
	out, err := calculate(modified, today, false)
	if err != nil {
		return domain.Suggestion{}, false
	}
	return domain.Suggestion{
		Title:            title,
		Changes:          changes,
		SafeToSpendToday: out.SafeToSpendToday,
		Delta:            domain.Round2(out.SafeToSpendToday - currentPerDay),
	}, true
}

func flexibleCapsChanges(caps domain.FlexibleCaps) map[string]any {
	return map[string]any{"flexibleCaps": map[string]any{
		"eatingOut":     caps.EatingOut,
		"entertainment": caps.Entertainment,
		"shopping":      caps.Shopping,
		"misc":          caps.Misc,
	}}
}
