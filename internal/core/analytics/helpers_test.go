package analytics_test

import (
	"testing"
	"time"

	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func mustDate(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func newEntry(date string, kind domain.EntryKind, amount int64) domain.Entry {
	d := mustDate(date)
	return domain.Entry{
		Date:   d,
		Month:  int(d.Month()),
		Year:   d.Year(),
		Kind:   kind,
		Amount: decimal.NewFromInt(amount),
		Status: domain.StatusPaid,
	}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	w := decimal.RequireFromString(want)
	assert.Truef(t, w.Equal(got), "want %s, got %s %v", w, got, msgAndArgs)
}
