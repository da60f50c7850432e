package temporal

import (
	"iter"

	"github.com/hoyle1974/chrono/interval"
)

// MonthInterval, YearInterval and ZoneOffsetInterval carry no behaviour of
// their own beyond the generic algebra.
type (
	MonthInterval      = interval.Interval[Month]
	YearInterval       = interval.Interval[Year]
	ZoneOffsetInterval = interval.Interval[ZoneOffset]
)

func NewMonthInterval(start, end Month) (MonthInterval, error) { return interval.New(start, end) }

// ParseMonthInterval reads "2024-01/2024-07".
func ParseMonthInterval(text string) (MonthInterval, error) {
	return interval.ParseWith(text, ParseMonth, ParseMonth, NewMonthInterval)
}

// StreamMonths walks i by step, which may only use years and months.
func StreamMonths(i MonthInterval, step Step) (iter.Seq[Month], error) {
	return interval.Stream[Month, Step](i, step, monthStepper{})
}

// MonthsOf returns the months touched by the dates of i. An empty date
// interval gives an empty interval at the month of its start.
func MonthsOf(i DateInterval) MonthInterval {
	start := NewMonth(i.start.Year(), i.start.Month())
	end := start
	if !i.IsEmpty() {
		last := i.end.AddDate(0, 0, -1)
		end = NewMonth(last.Year(), last.Month()).AddMonths(1)
	}
	m, _ := NewMonthInterval(start, end)
	return m
}

func NewYearInterval(start, end Year) (YearInterval, error) { return interval.New(start, end) }

// ParseYearInterval reads "2020/2025".
func ParseYearInterval(text string) (YearInterval, error) {
	return interval.ParseWith(text, ParseYear, ParseYear, NewYearInterval)
}

// StreamYears walks i by step, which may only use years.
func StreamYears(i YearInterval, step Step) (iter.Seq[Year], error) {
	return interval.Stream[Year, Step](i, step, yearStepper{})
}

// NewZoneOffsetInterval follows ZoneOffset ordering: the start is the offset
// furthest east, so "+10:00/+02:00" is valid and "+02:00/+10:00" is not.
func NewZoneOffsetInterval(start, end ZoneOffset) (ZoneOffsetInterval, error) {
	return interval.New(start, end)
}

func ParseZoneOffsetInterval(text string) (ZoneOffsetInterval, error) {
	return interval.ParseWith(text, ParseZoneOffset, ParseZoneOffset, NewZoneOffsetInterval)
}
