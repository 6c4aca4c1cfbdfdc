package service

import (
	"testing"

	"budgetpilot/domain"
)

func suggestionTitles(suggestions []domain.Suggestion) []string {
	titles := make([]string, len(suggestions))
	for i, s := range suggestions {
		titles[i] = s.Title
	}
	return titles
}

func TestSuggestions_InfeasibleDecisionTable(t *testing.T) {
	in := baseInput(3000, 14)
	in.FixedExpenses = []domain.FixedExpense{
		{Name: "Rent", AmountMonthly: 2500, Enabled: true},
	}
	in.Savings = domain.Savings{Enabled: true, Mode: domain.SavingsFixedAmount, Value: 600}
	in.Debts = domain.Debts{
		Enabled: true,
		Items: []domain.DebtItem{
			{Type: "loan", Balance: 1200, MinPaymentMonthly: 100},
		},
		PayoffGoal: domain.GoalASAP,
	}
	in.FlexibleCaps = domain.FlexibleCaps{EatingOut: 100, Entertainment: 50, Shopping: 50, Misc: 25}

	out, err := calculate(in, testToday, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Feasible {
		t.Fatal("plan should be infeasible")
	}

	want := []string{
		"Reduce savings to $0",
		"Extend debt payoff goal to 24 months",
		"Use minimum debt payments only",
		"Reduce flexible spending caps by 20%",
	}
	got := suggestionTitles(out.Suggestions)
	if len(got) != len(want) {
		t.Fatalf("expected %d suggestions, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("suggestion %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestSuggestions_InfeasibleWithoutSavingsOrDebt(t *testing.T) {
	in := baseInput(1000, 14)
	in.FixedExpenses = []domain.FixedExpense{
		{Name: "Rent", AmountMonthly: 1500, Enabled: true},
	}

	out, err := calculate(in, testToday, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Feasible {
		t.Fatal("plan should be infeasible")
	}
	// no savings, no debt goal, no flexible caps: nothing to suggest
	if len(out.Suggestions) != 0 {
		t.Errorf("expected no suggestions, got %v", suggestionTitles(out.Suggestions))
	}
}

func TestSuggestions_FeasibleSavingsDisabled(t *testing.T) {
	in := baseInput(5000, 14)
	in.BalanceNow = 2000
	in.FixedExpenses = []domain.FixedExpense{
		{Name: "Rent", AmountMonthly: 2000, Enabled: true},
	}

	out, err := calculate(in, testToday, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := suggestionTitles(out.Suggestions)
	if len(got) != 1 || got[0] != "Start saving $50/month" {
		t.Errorf("expected the starter-savings suggestion, got %v", got)
	}
}

func TestSuggestions_FeasiblePercentSavingsCapped(t *testing.T) {
	in := baseInput(10000, 14)
	in.BalanceNow = 5000
	in.Savings = domain.Savings{Enabled: true, Mode: domain.SavingsPercent, Value: 48}

	out, err := calculate(in, testToday, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Suggestions) == 0 {
		t.Fatal("expected a savings suggestion")
	}
	s := out.Suggestions[0]
	if s.Title != "Increase savings to 50%" {
		t.Errorf("expected capped title, got %q", s.Title)
	}
	changes, ok := s.Changes["savings"].(map[string]any)
	if !ok {
		t.Fatalf("unexpected changes shape: %v", s.Changes)
	}
	if changes["value"] != 50.0 {
		t.Errorf("expected value capped at 50, got %v", changes["value"])
	}
}

func TestSuggestions_FeasibleSkips12MoWhenAlreadySet(t *testing.T) {
	in := baseInput(6000, 14)
	in.BalanceNow = 3000
	in.Debts = domain.Debts{
		Enabled: true,
		Items: []domain.DebtItem{
			{Type: "loan", Balance: 2400, MinPaymentMonthly: 100},
		},
		PayoffGoal: domain.Goal12Mo,
	}

	out, err := calculate(in, testToday, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, title := range suggestionTitles(out.Suggestions) {
		if title == "Pay off debt in 12 months" {
			t.Error("12mo goal suggestion should be skipped when already set")
		}
	}
}

func TestSuggestions_FeasibleFlexibleBuffer(t *testing.T) {
	in := baseInput(6000, 14)
	in.BalanceNow = 3000
	in.FlexibleCaps = domain.FlexibleCaps{EatingOut: 200, Entertainment: 100, Shopping: 100, Misc: 100}

	out, err := calculate(in, testToday, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := false
	for _, s := range out.Suggestions {
		if s.Title == "Add 5% buffer to flexible spending" {
			found = true
			caps, ok := s.Changes["flexibleCaps"].(map[string]any)
			if !ok {
				t.Fatalf("unexpected changes shape: %v", s.Changes)
			}
			if caps["eatingOut"] != 200*FlexibleBufferFactor {
				t.Errorf("expected eatingOut %.2f, got %v", 200*FlexibleBufferFactor, caps["eatingOut"])
			}
		}
	}
	if !found {
		t.Error("expected the flexible buffer suggestion")
	}
}

func TestSuggestions_OriginalInputUntouched(t *testing.T) {
	in := baseInput(3000, 14)
	in.FixedExpenses = []domain.FixedExpense{
		{Name: "Rent", AmountMonthly: 2500, Enabled: true},
	}
	in.Savings = domain.Savings{Enabled: true, Mode: domain.SavingsFixedAmount, Value: 600}
	in.FlexibleCaps = domain.FlexibleCaps{EatingOut: 100, Entertainment: 50, Shopping: 50, Misc: 25}

	if _, err := calculate(in, testToday, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !in.Savings.Enabled || in.Savings.Value != 600 {
		t.Error("suggestion generation mutated the original savings record")
	}
	if in.FlexibleCaps.EatingOut != 100 {
		t.Error("suggestion generation mutated the original flexible caps")
	}
}

func TestSuggestions_DeltaSignsMatchDirection(t *testing.T) {
	in := baseInput(6000, 14)
	in.BalanceNow = 3000
	in.FixedExpenses = []domain.FixedExpense{
		{Name: "Rent", AmountMonthly: 2000, Enabled: true},
	}
	in.Savings = domain.Savings{Enabled: true, Mode: domain.SavingsFixedAmount, Value: 200}

	out, err := calculate(in, testToday, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range out.Suggestions {
		if s.Title == "Increase savings by $50/month" && s.Delta > 0 {
			t.Errorf("raising savings should not raise safe-to-spend, delta=%.2f", s.Delta)
		}
	}
}
