package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"budgetpilot/domain"
)

// maxRecords caps the in-memory log; older entries are dropped first.
const maxRecords = 100

// CalculationRepositoryMemory is a bounded in-memory implementation of
// CalculationRepository. Nothing is persisted across restarts.
type CalculationRepositoryMemory struct {
	mu      sync.Mutex
	records []CalculationRecord
}

func NewCalculationRepositoryMemory() *CalculationRepositoryMemory {
	return &CalculationRepositoryMemory{
		records: []CalculationRecord{},
	}
}

// Save stores a summary of the calculation in memory.
func (r *CalculationRepositoryMemory) Save(input domain.BudgetInput, output domain.BudgetOutput) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, CalculationRecord{
		ID:               uuid.NewString(),
		CreatedAt:        time.Now().UTC(),
		Currency:         output.Currency,
		Feasible:         output.Feasible,
		IncomeMonthly:    output.IncomeMonthly,
		EssentialMonthly: output.Totals.EssentialMonthly,
		SafeToSpendToday: output.SafeToSpendToday,
	})
	if len(r.records) > maxRecords {
		r.records = r.records[len(r.records)-maxRecords:]
	}
	return nil
}

// Recent returns up to n records, newest first.
func (r *CalculationRepositoryMemory) Recent(n int) []CalculationRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n <= 0 || n > len(r.records) {
		n = len(r.records)
	}
	out := make([]CalculationRecord, 0, n)
	for i := len(r.records) - 1; i >= len(r.records)-n; i-- {
		out = append(out, r.records[i])
	}
	return out
}
