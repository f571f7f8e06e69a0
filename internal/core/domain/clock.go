package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/produce_ledger/internal/apperrors"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// Clock returns the current local wall-clock time.
type Clock func() time.Time

// FormatDate renders t as an ISO calendar date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatTime renders t as HH:MM:SS.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// ValidateDate checks that s is a YYYY-MM-DD calendar date.
func ValidateDate(field, s string) error {
	if _, err := time.Parse(DateLayout, s); err != nil {
		return fmt.Errorf("%w: %s must be a YYYY-MM-DD date, got %q", apperrors.ErrValidation, field, s)
	}
	return nil
}

// PreviousDate returns the calendar day before date.
func PreviousDate(date string) (string, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, date)
	}
	return FormatDate(t.AddDate(0, 0, -1)), nil
}
