package service

const (
	// DaysPerMonth is the average month length used uniformly for
	// monthly-to-daily conversion and goal-date proration.
	DaysPerMonth = 30.44

	WeeksPerYear    = 52
	BiweeksPerYear  = 26
	MonthsPerYear   = 12
	MinPayoffMonths = 1

	// Suggestion tuning.
	SavingsStepPercent   = 5.0  // percentage points added per suggestion
	SavingsPercentCap    = 50.0 // ceiling for percent-mode savings suggestions
	SavingsStepFixed     = 50.0 // dollars added per suggestion
	SavingsStarterAmount = 50.0 // fixed-mode amount when enabling savings
	FlexibleCutFactor    = 0.8  // 20% cut for infeasible plans
	FlexibleBufferFactor = 1.05 // 5% buffer for feasible plans
)
