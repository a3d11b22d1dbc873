package columns

import (
	"regexp"
	"strconv"
)

// Range is an inclusive span of column indices requested on the command
// line. Start and End may be negative, counting from the end of a line's
// column list, and are not checked against any particular line until
// extraction time. Start == End selects a single column; Start > End
// selects a descending span.
type Range struct {
	Start int
	End   int
}

// rangeRe matches "<int>:<int>" with optional signs and nothing else.
var rangeRe = regexp.MustCompile(`^(-?\d+):(-?\d+)$`)

// ParseRange parses a single argument token as a column or column range.
// "7" yields {7, 7} and "3:-2" yields {3, -2}. The boolean reports whether
// the token was a range at all; false is not an error, it marks the token
// as the first filename.
func ParseRange(token string) (Range, bool) {
	if n, err := strconv.Atoi(token); err == nil {
		return Range{Start: n, End: n}, true
	}
	m := rangeRe.FindStringSubmatch(token)
	if m == nil {
		return Range{}, false
	}
	start, err := strconv.Atoi(m[1])
	if err != nil {
		return Range{}, false
	}
	end, err := strconv.Atoi(m[2])
	if err != nil {
		return Range{}, false
	}
	return Range{Start: start, End: end}, true
}
