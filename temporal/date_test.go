package temporal

import (
	"fmt"
	"iter"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/hoyle1974/chrono/interval"
	"github.com/stretchr/testify/require"
)

func dates(t *testing.T, text string) DateInterval {
	t.Helper()
	i, err := ParseDateInterval(text)
	require.NoError(t, err)
	return i
}

func strs[T fmt.Stringer](seq iter.Seq[T]) []string {
	var out []string
	for v := range seq {
		out = append(out, v.String())
	}
	return out
}

func Test_DateOverlappingMonths(t *testing.T) {
	i := dates(t, "2024-01-01/2024-03-01")
	j := dates(t, "2024-02-01/2024-04-01")

	require.True(t, i.Overlaps(j))
	o, ok := i.Overlap(j)
	require.True(t, ok)
	require.Equal(t, "2024-02-01/2024-03-01", o.String())

	_, ok = i.Gap(j)
	require.False(t, ok)

	require.Equal(t, "2024-01-01/2024-04-01", i.Join(j).String())
}

func Test_DateGap(t *testing.T) {
	i := dates(t, "2024-01-01/2024-01-10")
	k := dates(t, "2024-01-20/2024-01-25")

	require.False(t, i.Overlaps(k))
	g, ok := i.Gap(k)
	require.True(t, ok)
	require.Equal(t, "2024-01-10/2024-01-20", g.String())

	// and from the other side
	g, ok = k.Gap(i)
	require.True(t, ok)
	require.Equal(t, "2024-01-10/2024-01-20", g.String())
}

func Test_DateContains(t *testing.T) {
	i := dates(t, "2024-01-01/2024-01-10")
	if !i.Contains(NewDate(2024, 1, 1)) {
		t.Fatalf("start date should be contained")
	}
	if !i.Contains(NewDate(2024, 1, 9)) {
		t.Fatalf("last date should be contained")
	}
	if i.Contains(NewDate(2024, 1, 10)) {
		t.Fatalf("end date should not be contained")
	}
	require.Equal(t, 9, i.Days())
}

func Test_DateIntervalInvalid(t *testing.T) {
	_, err := ParseDateInterval("2024-02-01/2024-01-01")
	require.True(t, errors.Is(err, interval.ErrInvalidRange), "got %v", err)

	_, err = ParseDateInterval("2024-02-01")
	var pe *interval.ParseError
	require.True(t, errors.As(err, &pe))
	require.Equal(t, 0, pe.Offset)

	_, err = ParseDateInterval("2024-02-01/2024-13-01")
	require.True(t, errors.As(err, &pe))
	require.Equal(t, 11, pe.Offset)
}

func Test_DateStream(t *testing.T) {
	seq, err := dates(t, "2024-01-30/2024-02-03").Stream(Days(1))
	require.NoError(t, err)
	require.Equal(t, []string{"2024-01-30", "2024-01-31", "2024-02-01", "2024-02-02"}, strs(seq))

	seq, err = dates(t, "2024-01-15/2024-05-01").Stream(Months(1))
	require.NoError(t, err)
	require.Equal(t, []string{"2024-01-15", "2024-02-15", "2024-03-15", "2024-04-15"}, strs(seq))

	seq, err = dates(t, "2024-01-01/2024-01-01").Stream(Days(1))
	require.NoError(t, err)
	require.Empty(t, strs(seq))

	_, err = dates(t, "2024-01-01/2024-02-01").Stream(Every(time.Hour))
	require.True(t, errors.Is(err, interval.ErrUnsupportedStep), "got %v", err)
}

func Test_DateSpan(t *testing.T) {
	s, err := ParseDateSpan("2024-01-01/31d")
	require.NoError(t, err)
	require.Equal(t, "2024-02-01", s.End().String())
	require.Equal(t, 31, s.Days())
	require.Equal(t, "2024-01-01/31d", s.String())
	require.Equal(t, "2024-01-01/2024-02-01", s.ToInterval().String())
	require.True(t, s.ToInterval().ToSpan().Equal(s))

	w, err := ParseDateSpan("2024-01-01/2w")
	require.NoError(t, err)
	require.Equal(t, 14, w.Days())

	h, err := ParseDateSpan("2024-01-01/48h")
	require.NoError(t, err)
	require.Equal(t, 2, h.Days())

	_, err = ParseDateSpan("2024-01-01/36h")
	require.Error(t, err)
	_, err = NewDateSpan(NewDate(2024, 1, 1), -1)
	require.True(t, errors.Is(err, interval.ErrInvalidRange))
	_, err = s.WithDuration(-1)
	require.True(t, errors.Is(err, interval.ErrInvalidRange))
	_, err = ParseDateSpan("2024-01-01/1mo")
	require.Error(t, err)
}

func Test_DateSpanCenturies(t *testing.T) {
	for _, tt := range []struct {
		text string
		days int
	}{
		{"1600-01-01/2024-01-01", 154863},
		{"0001-01-01/9999-12-31", 3652058},
		{"1899-12-31/1900-03-01", 60},
	} {
		t.Run(tt.text, func(t *testing.T) {
			i := dates(t, tt.text)
			require.Equal(t, tt.days, i.Days())

			s := i.ToSpan()
			require.Equal(t, tt.days, s.Days())
			require.True(t, s.ToInterval().Equal(i), "got %v", s.ToInterval())

			back, err := DateIntervalFor(i.Start(), tt.days)
			require.NoError(t, err)
			require.True(t, back.Equal(i))
		})
	}
	require.Equal(t, -154863, NewDate(2024, 1, 1).DaysUntil(NewDate(1600, 1, 1)))
}

func Test_DateSpanQuantize(t *testing.T) {
	s, err := ParseDateSpan("2024-01-01/31d")
	require.NoError(t, err)

	seq, err := s.Quantize(7)
	require.NoError(t, err)
	require.Equal(t, []string{"2024-01-01", "2024-01-08", "2024-01-15", "2024-01-22"}, strs(seq))

	weeks, err := s.Length(7)
	require.NoError(t, err)
	require.Equal(t, int64(4), weeks)

	_, err = s.Quantize(0)
	require.True(t, errors.Is(err, interval.ErrUnsupportedStep))
	_, err = s.Length(-7)
	require.True(t, errors.Is(err, interval.ErrUnsupportedStep))
}

func Test_DateSpanInterpolate(t *testing.T) {
	s, err := NewDateSpan(NewDate(2024, 1, 1), 31)
	require.NoError(t, err)

	d, err := s.Interpolate(0.5, 1, 1)
	require.NoError(t, err)
	require.Equal(t, "2024-01-17", d.String())

	pos, err := s.Position(NewDate(2024, 1, 17), 31, 1)
	require.NoError(t, err)
	require.InDelta(t, 16.0, pos, 1e-9)
}

func Test_DateIntervalFor(t *testing.T) {
	i, err := DateIntervalFor(NewDate(2024, 2, 28), 2)
	require.NoError(t, err)
	require.Equal(t, "2024-02-28/2024-03-01", i.String())

	_, err = DateIntervalFor(NewDate(2024, 2, 28), -1)
	require.True(t, errors.Is(err, interval.ErrInvalidRange))
}

func Test_DateIntervalOf(t *testing.T) {
	generic, err := interval.New(NewDate(2024, 1, 1), NewDate(2024, 1, 5))
	require.NoError(t, err)
	i, err := DateIntervalOf(generic)
	require.NoError(t, err)
	require.Equal(t, "2024-01-01/2024-01-05", i.String())
	require.True(t, i.Equal(generic))

	same, err := DateIntervalOf(i)
	require.NoError(t, err)
	require.Equal(t, i, same)
}

func Test_MonthDates(t *testing.T) {
	require.Equal(t, "2024-02-01/2024-03-01", MonthDates(NewMonth(2024, time.February)).String())
	require.Equal(t, 29, MonthDates(NewMonth(2024, time.February)).Days())

	m := MonthsOf(dates(t, "2024-01-15/2024-03-01"))
	require.Equal(t, "2024-01/2024-03", m.String())

	m = MonthsOf(dates(t, "2024-01-15/2024-01-15"))
	require.True(t, m.IsEmpty())
}

func Test_DateInstants(t *testing.T) {
	i := dates(t, "2024-01-01/2024-01-03").Instants(time.UTC)
	require.Equal(t, 48*time.Hour, i.Duration())
}

func Test_DateRoundTrip(t *testing.T) {
	for _, text := range []string{"2024-01-01/2024-01-01", "1999-12-31/2000-01-01"} {
		require.Equal(t, text, dates(t, text).String())
	}
	require.Equal(t, "2024-03-01", NewDate(2024, 2, 30).String())

	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	require.Equal(t, 0, d.Compare(NewDate(2024, 2, 29)))
	_, err = ParseDate("2023-02-29")
	require.Error(t, err)
}
