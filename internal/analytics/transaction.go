package analytics

import (
	"errors"
	"strings"
	"time"
)

// TransactionType classifies a transaction as money in or money out.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

var ErrUnknownTransactionType = errors.New("unknown transaction type")

// ParseTransactionType matches INCOME or EXPENSE case-insensitively.
func ParseTransactionType(s string) (TransactionType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(Income):
		return Income, nil
	case string(Expense):
		return Expense, nil
	}
	return "", ErrUnknownTransactionType
}

// Transaction is the read-only view of a stored transaction that every
// aggregation works on. A zero Date marks a date that could not be parsed.
type Transaction struct {
	ID       string
	Amount   float64
	Type     TransactionType
	Category string
	Date     time.Time
}

const (
	dayLayout   = "2006-01-02"
	monthLayout = "2006-01"
)

// ParseDate reads a calendar date from either a plain ISO date or an RFC3339
// timestamp. The day is taken as written; any offset is ignored.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if d, err := time.Parse(dayLayout, s); err == nil {
		return d, true
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return Day(ts), true
	}
	return time.Time{}, false
}

// Day reduces t to midnight UTC of the calendar day t shows in its own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
