package temporal

import (
	"fmt"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
)

// Month is a month of a particular year.
type Month struct {
	year  int
	month time.Month
}

// NewMonth returns year-month, carrying months outside 1..12 into the year.
func NewMonth(year int, month time.Month) Month {
	n := year*12 + int(month) - 1
	return monthFromIndex(n)
}

func MonthOf(t time.Time) Month { return NewMonth(t.Year(), t.Month()) }

func monthFromIndex(n int) Month {
	y, m := n/12, n%12
	if m < 0 {
		y, m = y-1, m+12
	}
	return Month{year: y, month: time.Month(m + 1)}
}

func ParseMonth(text string) (Month, error) {
	t, err := time.Parse("2006-01", text)
	if err != nil {
		return Month{}, errors.Wrapf(err, "can not parse month %q", text)
	}
	return MonthOf(t), nil
}

func (m Month) Year() int         { return m.year }
func (m Month) Month() time.Month { return m.month }

func (m Month) index() int { return m.year*12 + int(m.month) - 1 }

func (m Month) AddMonths(n int) Month { return monthFromIndex(m.index() + n) }

// First returns the first day of m.
func (m Month) First() Date { return NewDate(m.year, m.month, 1) }

func (m Month) Compare(other Month) int {
	switch a, b := m.index(), other.index(); {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (m Month) String() string { return fmt.Sprintf("%04d-%02d", m.year, int(m.month)) }

// Year is a calendar year.
type Year int

func ParseYear(text string) (Year, error) {
	y, err := strconv.Atoi(text)
	if err != nil {
		return 0, errors.Wrapf(err, "can not parse year %q", text)
	}
	return Year(y), nil
}

func (y Year) Compare(other Year) int {
	switch {
	case y < other:
		return -1
	case y > other:
		return 1
	}
	return 0
}

func (y Year) String() string { return fmt.Sprintf("%04d", int(y)) }
