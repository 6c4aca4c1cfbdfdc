package domain

import "encoding/json"

// Pay frequencies accepted by the income normalizer.
const (
	PayWeekly   = "weekly"
	PayBiweekly = "biweekly"
	PayMonthly  = "monthly"
)

// Reliability tiers for irregular income.
const (
	ReliabilityLow    = "low"
	ReliabilityMedium = "medium"
	ReliabilityHigh   = "high"
)

// Savings modes.
const (
	SavingsFixedAmount = "fixedAmount"
	SavingsPercent     = "percent"
)

// Debt payoff goals. An empty goal means minimum payments only.
const (
	GoalASAP       = "ASAP"
	Goal6Mo        = "6mo"
	Goal12Mo       = "12mo"
	Goal24Mo       = "24mo"
	GoalCustomDate = "customDate"
)

const DefaultCurrency = "CAD"

type IrregularIncome struct {
	Enabled     bool    `json:"enabled"`
	MonthlyAvg  float64 `json:"monthlyAvg"`
	Reliability string  `json:"reliability"`
}

type Income struct {
	PayFrequency string           `json:"payFrequency"`
	NetPayAmount float64          `json:"netPayAmount"`
	NextPayDate  string           `json:"nextPayDate"`
	Irregular    *IrregularIncome `json:"irregular,omitempty"`
}

// FixedExpense is a recurring monthly cost. Disabled entries are kept in the
// record but excluded from all totals: paused, not removed.
type FixedExpense struct {
	Name          string  `json:"name"`
	AmountMonthly float64 `json:"amountMonthly"`
	Enabled       bool    `json:"enabled"`
}

// UnmarshalJSON defaults enabled to true when the field is absent.
func (f *FixedExpense) UnmarshalJSON(data []byte) error {
	type alias FixedExpense
	aux := struct {
		Enabled *bool `json:"enabled"`
		*alias
	}{alias: (*alias)(f)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	f.Enabled = aux.Enabled == nil || *aux.Enabled
	return nil
}

type Subscription struct {
	Name          string  `json:"name"`
	AmountMonthly float64 `json:"amountMonthly"`
	Enabled       bool    `json:"enabled"`
}

func (s *Subscription) UnmarshalJSON(data []byte) error {
	type alias Subscription
	aux := struct {
		Enabled *bool `json:"enabled"`
		*alias
	}{alias: (*alias)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	s.Enabled = aux.Enabled == nil || *aux.Enabled
	return nil
}

// FlexibleCaps are soft monthly ceilings for discretionary spending. Their
// sum is an allotment, not a hard constraint anywhere in the engine.
type FlexibleCaps struct {
	EatingOut     float64 `json:"eatingOut"`
	Entertainment float64 `json:"entertainment"`
	Shopping      float64 `json:"shopping"`
	Misc          float64 `json:"misc"`
}

func (c FlexibleCaps) Total() float64 {
	return c.EatingOut + c.Entertainment + c.Shopping + c.Misc
}

// Scale multiplies all four caps in place.
func (c *FlexibleCaps) Scale(factor float64) {
	c.EatingOut *= factor
	c.Entertainment *= factor
	c.Shopping *= factor
	c.Misc *= factor
}

type Savings struct {
	Enabled bool    `json:"enabled"`
	Mode    string  `json:"mode"`
	Value   float64 `json:"value"`
}

type DebtItem struct {
	Type              string   `json:"type"`
	Balance           float64  `json:"balance"`
	MinPaymentMonthly float64  `json:"minPaymentMonthly"`
	APR               *float64 `json:"apr,omitempty"` // annual rate 0-100; nil or 0 means interest-free
}

type Debts struct {
	Enabled        bool       `json:"enabled"`
	Items          []DebtItem `json:"items"`
	PayoffGoal     string     `json:"payoffGoal,omitempty"`
	PayoffGoalDate string     `json:"payoffGoalDate,omitempty"` // required only for customDate
}

// BudgetInput is the validated record the engine is handed. Monetary fields
// are not defensively clamped: negative inputs propagate arithmetically.
type BudgetInput struct {
	Currency      string         `json:"currency"`
	Today         string         `json:"today,omitempty"` // ISO date; empty means current date
	BalanceNow    float64        `json:"balance_now"`
	Income        Income         `json:"income"`
	FixedExpenses []FixedExpense `json:"fixedExpenses"`
	Subscriptions []Subscription `json:"subscriptions"`
	FlexibleCaps  FlexibleCaps   `json:"flexibleCaps"`
	Savings       Savings        `json:"savings"`
	Debts         Debts          `json:"debts"`
}

// ApplyDefaults fills optional fields in place. Defaults are constructed per
// call so no two inputs ever share a sub-record.
func (in *BudgetInput) ApplyDefaults() {
	if in.Currency == "" {
		in.Currency = DefaultCurrency
	}
	if in.Income.PayFrequency == "" {
		in.Income.PayFrequency = PayMonthly
	}
	if in.Savings.Mode == "" {
		in.Savings.Mode = SavingsFixedAmount
	}
}

// Clone returns a deep copy. The suggestion generator mutates one parameter
// per candidate and must never touch the original input.
func (in BudgetInput) Clone() BudgetInput {
	out := in
	if in.Income.Irregular != nil {
		irr := *in.Income.Irregular
		out.Income.Irregular = &irr
	}
	out.FixedExpenses = append([]FixedExpense(nil), in.FixedExpenses...)
	out.Subscriptions = append([]Subscription(nil), in.Subscriptions...)
	if in.Debts.Items != nil {
		out.Debts.Items = make([]DebtItem, len(in.Debts.Items))
		for i, item := range in.Debts.Items {
			out.Debts.Items[i] = item
			if item.APR != nil {
				apr := *item.APR
				out.Debts.Items[i].APR = &apr
			}
		}
	}
	return out
}
