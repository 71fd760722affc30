package accounting

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/business_dashboard/internal/core/domain"
)

// MonthKeyLayout is the time layout of a bucket key (YYYY-MM).
const MonthKeyLayout = "2006-01"

// TrailingMonths is the size of the report window, current month included.
const TrailingMonths = 12

// MonthKey returns the YYYY-MM bucket key of t.
func MonthKey(t time.Time) string {
	return t.Format(MonthKeyLayout)
}

// TrailingMonthKeys returns the keys of the n calendar months ending at now's
// month, oldest first.
func TrailingMonthKeys(now time.Time, n int) []string {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	keys := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		keys = append(keys, MonthKey(first.AddDate(0, -i, 0)))
	}
	return keys
}

// MonthBuckets is an accumulator of revenue/expense per month key.
// It is pre-seeded with a window of months and grows on demand for
// keys outside that window. Dates are bucketed in the window's location.
type MonthBuckets struct {
	buckets map[string]*domain.MonthlyBucket
	starts  map[string]time.Time
	loc     *time.Location
	window  []string
	extra   []string
}

// NewMonthBuckets seeds zeroed buckets for the trailing window ending at now.
func NewMonthBuckets(now time.Time, months int) *MonthBuckets {
	keys := TrailingMonthKeys(now, months)
	mb := &MonthBuckets{
		buckets: make(map[string]*domain.MonthlyBucket, len(keys)),
		starts:  make(map[string]time.Time, len(keys)),
		loc:     now.Location(),
		window:  keys,
	}
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, mb.loc)
	for i, k := range keys {
		mb.buckets[k] = &domain.MonthlyBucket{Month: k, Revenue: decimal.Zero, Expense: decimal.Zero}
		mb.starts[k] = first.AddDate(0, i-len(keys)+1, 0)
	}
	return mb
}

func (mb *MonthBuckets) bucket(date time.Time) *domain.MonthlyBucket {
	local := date.In(mb.loc)
	key := MonthKey(local)
	b, ok := mb.buckets[key]
	if !ok {
		b = &domain.MonthlyBucket{Month: key, Revenue: decimal.Zero, Expense: decimal.Zero}
		mb.buckets[key] = b
		mb.starts[key] = time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, mb.loc)
		mb.extra = append(mb.extra, key)
	}
	return b
}

// Add accumulates an already normalized amount into the bucket of date.
func (mb *MonthBuckets) Add(date time.Time, txnType domain.TransactionType, amount decimal.Decimal) {
	b := mb.bucket(date)
	switch txnType {
	case domain.Income:
		b.Revenue = b.Revenue.Add(amount)
	case domain.Expense:
		b.Expense = b.Expense.Add(amount)
	}
}

// sortChronologically orders keys by month start. Keys do not sort as text
// once a year has more than four digits.
func (mb *MonthBuckets) sortChronologically(keys []string) {
	sort.Slice(keys, func(i, j int) bool {
		return mb.starts[keys[i]].Before(mb.starts[keys[j]])
	})
}

// OutOfWindow returns the keys created on demand, oldest first.
func (mb *MonthBuckets) OutOfWindow() []string {
	out := make([]string, len(mb.extra))
	copy(out, mb.extra)
	mb.sortChronologically(out)
	return out
}

// Sorted returns every bucket oldest first.
func (mb *MonthBuckets) Sorted() []domain.MonthlyBucket {
	keys := make([]string, 0, len(mb.buckets))
	for k := range mb.buckets {
		keys = append(keys, k)
	}
	mb.sortChronologically(keys)
	out := make([]domain.MonthlyBucket, 0, len(keys))
	for _, k := range keys {
		out = append(out, *mb.buckets[k])
	}
	return out
}

// Window returns only the pre-seeded buckets, oldest first.
func (mb *MonthBuckets) Window() []domain.MonthlyBucket {
	out := make([]domain.MonthlyBucket, 0, len(mb.window))
	for _, k := range mb.window {
		out = append(out, *mb.buckets[k])
	}
	return out
}
