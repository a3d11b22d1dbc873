// Package extract selects columns from a line's column list.
package extract

import "github.com/tobinjt/colx/pkg/columns"

// Fields returns the columns selected by ranges, in range order, duplicates
// included. Within each range the indices are walked from Start to End
// inclusive, ascending or descending as the endpoints dictate. A negative
// index i is resolved against the current line as i + len(fields); indices
// out of bounds for the line are skipped without error, and an endpoint
// arbitrarily far outside the line costs no more than the line's width.
func Fields(ranges []columns.Range, fields []string) []string {
	selected := []string{}
	for _, r := range ranges {
		lo, hi := r.Start, r.End
		if lo > hi {
			lo, hi = hi, lo
		}
		// Indices outside [-len(fields), len(fields)-1] never resolve to
		// a column, so the walk covers only the range's overlap with that
		// window.
		lo = max(lo, -len(fields))
		hi = min(hi, len(fields)-1)
		if r.Start <= r.End {
			for i := lo; i <= hi; i++ {
				selected = append(selected, fields[resolve(i, len(fields))])
			}
		} else {
			for i := hi; i >= lo; i-- {
				selected = append(selected, fields[resolve(i, len(fields))])
			}
		}
	}
	return selected
}

// resolve maps a possibly negative column index onto the field list.
func resolve(i, n int) int {
	if i < 0 {
		return i + n
	}
	return i
}
