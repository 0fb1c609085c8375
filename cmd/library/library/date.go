package library

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the persisted date format: zero padded day/month/year.
const DateLayout = "02/01/2006"

// Date is a calendar day without a time component. Loans and fines carry
// date-only precision, matching the dd/mm/yyyy representation on disk.
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar day.
func NewDate(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// Today is the current calendar day.
func Today() Date {
	return NewDate(time.Now())
}

// ParseDate reads a dd/mm/yyyy string.
func ParseDate(value string) (Date, error) {
	t, err := time.ParseInLocation(DateLayout, value, time.UTC)
	if err != nil {
		return Date{}, fmt.Errorf("parsing date %q: %w", value, err)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

// AddDays moves the date forward by the given number of calendar days.
func (d Date) AddDays(days int) Date {
	return Date{d.AddDate(0, 0, days)}
}

// DaysOverdue is the number of whole days the moment now lies past the
// date d. Partial days truncate, so a moment on the day d itself counts
// as zero, and moments before d never go negative.
func (d Date) DaysOverdue(now time.Time) int {
	days := int(NewDate(now).Sub(d.Time).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	parsed, err := ParseDate(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
