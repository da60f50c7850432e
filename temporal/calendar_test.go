package temporal

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/hoyle1974/chrono/interval"
	"github.com/stretchr/testify/require"
)

func Test_MonthInterval(t *testing.T) {
	i, err := ParseMonthInterval("2024-11/2025-03")
	require.NoError(t, err)
	require.Equal(t, "2024-11/2025-03", i.String())

	seq, err := StreamMonths(i, Months(1))
	require.NoError(t, err)
	require.Equal(t, []string{"2024-11", "2024-12", "2025-01", "2025-02"}, strs(seq))

	seq, err = StreamMonths(i, Step{Months: 3})
	require.NoError(t, err)
	require.Equal(t, []string{"2024-11", "2025-02"}, strs(seq))

	_, err = StreamMonths(i, Days(1))
	require.True(t, errors.Is(err, interval.ErrUnsupportedStep))
}

func Test_NewMonth(t *testing.T) {
	require.Equal(t, "2025-01", NewMonth(2024, 13).String())
	require.Equal(t, "2023-12", NewMonth(2024, 0).String())
	require.Equal(t, "2023-11", NewMonth(2024, time.January).AddMonths(-2).String())
	require.Equal(t, -1, NewMonth(2023, time.December).Compare(NewMonth(2024, time.January)))
}

func Test_YearInterval(t *testing.T) {
	i, err := ParseYearInterval("2020/2025")
	require.NoError(t, err)
	require.Equal(t, "2020/2025", i.String())
	require.True(t, i.Contains(2024))
	require.False(t, i.Contains(2025))

	seq, err := StreamYears(i, Years(2))
	require.NoError(t, err)
	require.Equal(t, []string{"2020", "2022", "2024"}, strs(seq))

	_, err = StreamYears(i, Months(12))
	require.True(t, errors.Is(err, interval.ErrUnsupportedStep))

	_, err = ParseYearInterval("2025/2020")
	require.True(t, errors.Is(err, interval.ErrInvalidRange))
}

func Test_ZoneOffsetOrdering(t *testing.T) {
	east, err := ParseZoneOffset("+10:00")
	require.NoError(t, err)
	west, err := ParseZoneOffset("-05:00")
	require.NoError(t, err)

	if east.Compare(UTC) >= 0 || UTC.Compare(west) >= 0 {
		t.Fatalf("expected %v < %v < %v", east, UTC, west)
	}

	i, err := ParseZoneOffsetInterval("+10:00/-05:00")
	require.NoError(t, err)
	require.True(t, i.Contains(UTC))
	require.False(t, i.Contains(west))

	_, err = ParseZoneOffsetInterval("-05:00/+10:00")
	require.True(t, errors.Is(err, interval.ErrInvalidRange))
}

func Test_ZoneOffsetParse(t *testing.T) {
	for _, text := range []string{"Z", "+05:30", "-03:00", "+18:00", "+01:02:03"} {
		z, err := ParseZoneOffset(text)
		require.NoError(t, err)
		require.Equal(t, text, z.String())
	}

	z, err := ParseZoneOffset("+02")
	require.NoError(t, err)
	require.Equal(t, 2*time.Hour, z.Duration())

	for _, text := range []string{"", "+", "05:00", "+19:00", "+05:60", "+5:00", "+05:00:00:00"} {
		if _, err := ParseZoneOffset(text); err == nil {
			t.Fatalf("expected %q to be rejected", text)
		}
	}

	at := time.Date(2024, 1, 1, 12, 0, 0, 0, z.Location())
	require.Equal(t, z, ZoneOffsetOf(at))
}
