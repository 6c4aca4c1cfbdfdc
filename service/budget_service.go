package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog/log"

	"budgetpilot/domain"
	"budgetpilot/repository"
)

const isoDate = "2006-01-02"

type BudgetService struct {
	repo  repository.CalculationRepository
	cache repository.CacheRepository
}

// NewBudgetService creates a BudgetService with the given calculation log
// and cache.
func NewBudgetService(repo repository.CalculationRepository, cache repository.CacheRepository) *BudgetService {
	return &BudgetService{repo: repo, cache: cache}
}

// Calculate runs the full pipeline for one budget input. Results are cached
// by canonical input plus resolved reference date, so identical requests on
// the same day return identical output. The calculation log save is not
// critical: a failure is logged, never surfaced.
func (s *BudgetService) Calculate(ctx context.Context, input domain.BudgetInput) (domain.BudgetOutput, error) {
	input.ApplyDefaults()

	today, err := referenceDate(input.Today)
	if err != nil {
		return domain.BudgetOutput{}, err
	}

	key, keyErr := cacheKey(input, today)
	if keyErr == nil {
		if raw, ok := s.cache.Get(ctx, key); ok {
			var out domain.BudgetOutput
			if err := json.Unmarshal([]byte(raw), &out); err == nil {
				return out, nil
			}
		}
	}

	out, err := calculate(input, today, true)
	if err != nil {
		return domain.BudgetOutput{}, err
	}

	if keyErr == nil {
		if raw, err := json.Marshal(out); err == nil {
			if err := s.cache.Set(ctx, key, string(raw)); err != nil {
				log.Warn().Err(err).Msg("failed to cache calculation")
			}
		}
	}

	if err := s.repo.Save(input, out); err != nil {
		log.Warn().Err(err).Msg("failed to save calculation")
	}

	return out, nil
}

// Recent returns summaries of the most recent calculations, newest first.
func (s *BudgetService) Recent(n int) []repository.CalculationRecord {
	return s.repo.Recent(n)
}

// calculate is the pure pipeline: normalize income, aggregate totals,
// resolve percent-mode savings, evaluate feasibility, prorate safe-to-spend,
// then optionally generate suggestions. Nested what-if runs always pass
// withSuggestions=false, bounding recursion at depth one.
func calculate(in domain.BudgetInput, today time.Time, withSuggestions bool) (domain.BudgetOutput, error) {
	nextPay, err := parseDate(in.Income.NextPayDate)
	if err != nil {
		return domain.BudgetOutput{}, fmt.Errorf("%w: next pay date: %v", ErrInvalidInput, err)
	}
	daysUntilPayday := int(nextPay.Sub(today).Hours() / 24)
	if daysUntilPayday < 1 {
		// a past or same-day pay date is treated as due immediately
		daysUntilPayday = 1
	}

	irregularAvg := 0.0
	irregularReliability := domain.ReliabilityMedium
	if irr := in.Income.Irregular; irr != nil && irr.Enabled {
		irregularAvg = irr.MonthlyAvg
		irregularReliability = irr.Reliability
	}

	incomeMonthly, err := NormalizeMonthlyIncome(in.Income.PayFrequency, in.Income.NetPayAmount, irregularAvg, irregularReliability)
	if err != nil {
		return domain.BudgetOutput{}, err
	}

	var goalDate *time.Time
	if in.Debts.Enabled && in.Debts.PayoffGoal == domain.GoalCustomDate && in.Debts.PayoffGoalDate != "" {
		gd, err := parseDate(in.Debts.PayoffGoalDate)
		if err != nil {
			return domain.BudgetOutput{}, fmt.Errorf("%w: payoff goal date: %v", ErrInvalidInput, err)
		}
		goalDate = &gd
	}

	totals := computeMonthlyTotals(in, goalDate, today)
	if in.Savings.Enabled && in.Savings.Mode == domain.SavingsPercent {
		totals.SavingsMonthly = incomeMonthly * (in.Savings.Value / 100)
		totals.EssentialMonthly = totals.FixedMonthly + totals.SubsMonthly + totals.SavingsMonthly + totals.DebtRequiredMonthly
	}

	feasible := totals.EssentialMonthly <= incomeMonthly
	warnings := []string{}
	safeUntilPayday := 0.0
	safePerDay := 0.0

	if !feasible {
		shortfall := totals.EssentialMonthly - incomeMonthly
		warnings = append(warnings, fmt.Sprintf(
			"Plan is not feasible. Monthly shortfall: $%.2f. Essential expenses ($%.2f) exceed income ($%.2f).",
			shortfall, totals.EssentialMonthly, incomeMonthly))
	} else {
		// No additional income is assumed before payday: the current balance
		// is the sole cushion against the prorated essential reserve.
		reserved := totals.EssentialMonthly * (float64(daysUntilPayday) / DaysPerMonth)
		safeUntilPayday = in.BalanceNow - reserved
		if safeUntilPayday < 0 {
			safeUntilPayday = 0
		}
		safePerDay = safeUntilPayday / float64(daysUntilPayday)
	}

	out := domain.BudgetOutput{
		Feasible:        feasible,
		Currency:        in.Currency,
		DaysUntilPayday: daysUntilPayday,
		IncomeMonthly:   domain.Round2(incomeMonthly),
		Totals: domain.MonthlyTotals{
			FixedMonthly:        domain.Round2(totals.FixedMonthly),
			SubsMonthly:         domain.Round2(totals.SubsMonthly),
			FlexibleCapsMonthly: domain.Round2(totals.FlexibleCapsMonthly),
			SavingsMonthly:      domain.Round2(totals.SavingsMonthly),
			DebtRequiredMonthly: domain.Round2(totals.DebtRequiredMonthly),
			EssentialMonthly:    domain.Round2(totals.EssentialMonthly),
		},
		SafeToSpendUntilPayday: domain.Round2(safeUntilPayday),
		SafeToSpendToday:       domain.Round2(safePerDay),
		Warnings:               warnings,
		Suggestions:            []domain.Suggestion{},
	}

	if withSuggestions {
		out.Suggestions = generateSuggestions(in, out, today)
	}
	return out, nil
}

// referenceDate resolves the optional "today" field, defaulting to the
// current calendar date.
func referenceDate(today string) (time.Time, error) {
	if today == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	t, err := parseDate(today)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: today: %v", ErrInvalidInput, err)
	}
	return t, nil
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(isoDate, s)
}

// cacheKey hashes the canonical input JSON with the resolved reference date
// folded in, so a defaulted "today" can never serve a stale day's figures.
func cacheKey(in domain.BudgetInput, today time.Time) (string, error) {
	in.Today = today.Format(isoDate)
	raw, err := json.Marshal(in)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("budget:%016x", xxhash.Sum64(raw)), nil
}
