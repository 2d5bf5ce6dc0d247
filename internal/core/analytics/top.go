package analytics

import (
	"slices"

	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultTopN is the number of transactions returned when n is not positive.
const DefaultTopN = 5

// TopTransactions returns the n largest entries by amount and their share of the total amount
// moved by all entries. The input slice is not reordered.
func TopTransactions(entries []domain.Entry, n int) domain.TopTransactions {
	if n <= 0 {
		n = DefaultTopN
	}

	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b domain.Entry) int {
		return b.Amount.Cmp(a.Amount)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}

	grand := decimal.Zero
	for _, e := range entries {
		grand = grand.Add(e.Amount)
	}

	result := domain.TopTransactions{
		Items:          make([]domain.TopTransaction, 0, len(sorted)),
		CombinedAmount: decimal.Zero,
		GrandTotal:     grand,
	}
	for _, e := range sorted {
		result.CombinedAmount = result.CombinedAmount.Add(e.Amount)
		result.Items = append(result.Items, domain.TopTransaction{
			EntryID:         e.EntryID,
			Date:            dateKey(e.Date),
			Kind:            e.Kind,
			Description:     e.Description,
			CategoryName:    e.CategoryName,
			ResponsibleName: e.ResponsibleName,
			Amount:          e.Amount,
		})
	}
	result.Share = percentOf(result.CombinedAmount, grand)
	return result
}
