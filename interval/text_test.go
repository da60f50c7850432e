package interval

import (
	"strconv"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func atoi(s string) (num, error) {
	n, err := strconv.Atoi(s)
	return num(n), err
}

func parseNum(text string) (Interval[num], error) {
	return ParseWith(text, atoi, atoi, New[num])
}

func TestSplit(t *testing.T) {
	a, b, off, err := Split("12/345")
	require.NoError(t, err)
	require.Equal(t, "12", a)
	require.Equal(t, "345", b)
	require.Equal(t, 3, off)

	a, b, off, err = Split("1/2/3")
	require.NoError(t, err)
	require.Equal(t, "1", a)
	require.Equal(t, "2/3", b)
	require.Equal(t, 2, off)
}

func TestParseWith(t *testing.T) {
	i, err := parseNum("10/20")
	require.NoError(t, err)
	require.True(t, i.Equal(iv(10, 20)))

	again, err := parseNum(i.String())
	require.NoError(t, err)
	require.True(t, again.Equal(i))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		text   string
		offset int
		msg    string
	}{
		{text: "1020", offset: 0, msg: "cannot parse, no forward slash found"},
		{text: "", offset: 0, msg: "cannot parse, no forward slash found"},
		{text: "x/20", offset: 0, msg: "cannot parse, invalid start"},
		{text: "/20", offset: 0, msg: "cannot parse, invalid start"},
		{text: "10/y", offset: 3, msg: "cannot parse, invalid end"},
		{text: "10/", offset: 3, msg: "cannot parse, invalid end"},
		{text: "1/2/3", offset: 2, msg: "cannot parse, invalid end"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			_, err := parseNum(tt.text)
			var pe *ParseError
			require.True(t, errors.As(err, &pe), "got %v", err)
			require.Equal(t, tt.offset, pe.Offset)
			require.Equal(t, tt.msg, pe.Msg)
			require.Equal(t, tt.text, pe.Text)
		})
	}
}

func TestParseInvalidRange(t *testing.T) {
	_, err := parseNum("20/10")
	require.True(t, errors.Is(err, ErrInvalidRange), "got %v", err)
	var pe *ParseError
	require.False(t, errors.As(err, &pe))
}
