package interval

import (
	"fmt"
	"strings"
)

// Separator splits the start token from the end or duration token in the
// text form of intervals and spans, as in "2024-01-01/2024-02-01".
const Separator = '/'

// ParseError describes text that could not be read as an interval or span.
// Offset is the byte offset of the token that failed.
type ParseError struct {
	Text   string
	Offset int
	Msg    string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %q at offset %d: %v", e.Msg, e.Text, e.Offset, e.Err)
	}
	return fmt.Sprintf("%s: %q at offset %d", e.Msg, e.Text, e.Offset)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Split returns the text before and after the first Separator, along with
// the offset at which the second token starts.
func Split(text string) (first, second string, offset int, err error) {
	i := strings.IndexByte(text, Separator)
	if i < 0 {
		return "", "", 0, &ParseError{Text: text, Msg: "cannot parse, no forward slash found"}
	}
	return text[:i], text[i+1:], i + 1, nil
}

// ParseWith splits text and parses both tokens, then hands them to build.
// Token failures are reported as a *ParseError naming the side that failed.
// Errors from build are returned unchanged.
func ParseWith[A, B, R any](text string, first func(string) (A, error), second func(string) (B, error), build func(A, B) (R, error)) (R, error) {
	var zero R
	a, b, offset, err := Split(text)
	if err != nil {
		return zero, err
	}
	x, err := first(a)
	if err != nil {
		return zero, &ParseError{Text: text, Offset: 0, Msg: "cannot parse, invalid start", Err: err}
	}
	y, err := second(b)
	if err != nil {
		return zero, &ParseError{Text: text, Offset: offset, Msg: "cannot parse, invalid end", Err: err}
	}
	return build(x, y)
}
