// Package split turns lines into column lists using a delimiter regex.
package split

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/dlclark/regexp2"
)

// matchTimeout bounds regexp2 backtracking on a single line.
const matchTimeout = 5 * time.Second

// Splitter splits lines into columns around a delimiter regex.
//
// Patterns are compiled with the standard library's RE2 engine when they
// can be. Patterns needing features RE2 rejects, such as lookarounds or
// backreferences, fall back to regexp2's backtracking engine with a match
// timeout so a pathological pattern cannot hang the line loop.
type Splitter struct {
	re  *regexp.Regexp
	re2 *regexp2.Regexp
}

// New compiles pattern as a column delimiter.
func New(pattern string) (*Splitter, error) {
	if pattern == "" {
		return nil, fmt.Errorf("delimiter must not be empty")
	}
	re, err := regexp.Compile(pattern)
	if err == nil {
		return &Splitter{re: re}, nil
	}
	// Try RE2 compatibility mode first, then full backtracking mode for
	// advanced features like (?x).
	re2, err2 := regexp2.Compile(pattern, regexp2.RE2)
	if err2 != nil {
		re2, err2 = regexp2.Compile(pattern, regexp2.None)
		if err2 != nil {
			return nil, fmt.Errorf("failed to compile delimiter %q: %w", pattern, err)
		}
	}
	re2.MatchTimeout = matchTimeout
	return &Splitter{re2: re2}, nil
}

// Split divides line at every delimiter match. Pieces are returned in
// order, including empty ones; the delimiter text itself is dropped.
func (s *Splitter) Split(line string) []string {
	if s.re != nil {
		return s.re.Split(line, -1)
	}
	return s.splitBacktracking(line)
}

// splitBacktracking mirrors regexp.Split on the regexp2 engine. regexp2
// reports match positions in runes, not bytes, so the line is sliced as
// runes.
func (s *Splitter) splitBacktracking(line string) []string {
	runes := []rune(line)
	var pieces []string
	last := 0
	m, err := s.re2.FindStringMatch(line)
	for err == nil && m != nil {
		pieces = append(pieces, string(runes[last:m.Index]))
		last = m.Index + m.Length
		m, err = s.re2.FindNextMatch(m)
	}
	if err != nil {
		// Timeouts and other engine errors leave the remainder unsplit so
		// the line still flows through.
		fmt.Fprintf(os.Stderr, "[warn] delimiter match aborted (leaving rest of line unsplit): %v\n", err)
	}
	pieces = append(pieces, string(runes[last:]))
	return pieces
}

// Fields builds the column list for one line: column 0 is the whole
// unsplit line, columns 1..N are the delimiter-split pieces with empty
// leading and trailing pieces removed. Interior empty pieces survive, and
// column 0 is present even when the line is empty.
func (s *Splitter) Fields(line string) []string {
	pieces := s.Split(line)
	start := 0
	for start < len(pieces) && pieces[start] == "" {
		start++
	}
	end := len(pieces)
	for end > start && pieces[end-1] == "" {
		end--
	}
	fields := make([]string, 0, 1+end-start)
	fields = append(fields, line)
	fields = append(fields, pieces[start:end]...)
	return fields
}
