// Package colx extracts columns from delimited text.
//
// Lines are split around a delimiter regex. Column numbering starts at 1;
// column 0 is the entire unsplit line, just like awk. Negative columns
// count back from the end of each line, so -1 is the last column. Columns
// are requested singly ("3") or as inclusive, possibly descending ranges
// ("2:4", "4:2", "-1:-3"); indices out of bounds for a given line are
// silently skipped.
//
// # Basic Usage
//
// Create an extractor and feed it lines:
//
//	ex, err := colx.New(colx.WithRanges([]colx.Range{{Start: 2, End: 3}}))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(ex.ExtractLine("alpha beta gamma delta"))
//	// Output: beta gamma
//
// # Streams
//
// Process whole files, with "-" meaning stdin:
//
//	in, err := source.Open(filenames)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer in.Close()
//
//	lines, err := ex.Run(in, os.Stdout)
package colx

import (
	"bufio"
	"fmt"
	"io"

	"github.com/tobinjt/colx/pkg/columns"
	"github.com/tobinjt/colx/pkg/extract"
	"github.com/tobinjt/colx/pkg/render"
	"github.com/tobinjt/colx/pkg/split"
)

// Re-export the argument-side types for convenience.
// Users can import just "github.com/tobinjt/colx" without subpackages.
type (
	// Range is an inclusive, possibly descending span of column indices.
	Range = columns.Range
)

// ParseRange parses a single token as a column or column range. The
// boolean reports whether the token was a range at all; false marks the
// token as a filename, not an error.
func ParseRange(token string) (Range, bool) {
	return columns.ParseRange(token)
}

// SplitArgs separates leading column ranges from trailing filenames.
func SplitArgs(args []string) ([]Range, []string) {
	return columns.SplitArgs(args)
}

// maxLineBytes caps how long a single input line may be.
const maxLineBytes = 1024 * 1024

// Extractor holds a compiled column extraction pipeline: which columns to
// take, how to split lines into columns and how to join the output.
type Extractor struct {
	ranges    []columns.Range
	splitter  *split.Splitter
	separator string
	styles    *render.Styles
}

// extractorConfig holds extractor configuration.
type extractorConfig struct {
	ranges    []columns.Range
	delimiter string
	separator string
	styles    *render.Styles
}

// Option configures an Extractor.
type Option func(*extractorConfig)

// WithRanges sets the column ranges to extract. At least one range is
// required.
func WithRanges(ranges []Range) Option {
	return func(c *extractorConfig) {
		c.ranges = ranges
	}
}

// WithDelimiter sets the regex that splits lines into columns.
// Default is a single space.
func WithDelimiter(pattern string) Option {
	return func(c *extractorConfig) {
		c.delimiter = pattern
	}
}

// WithSeparator sets the string joining output columns. Backslash escape
// sequences are expanded, so `\t` means a tab. Default is a single space.
func WithSeparator(sep string) Option {
	return func(c *extractorConfig) {
		c.separator = sep
	}
}

// WithStyles sets the color styles applied to output columns.
// Default is colors off.
func WithStyles(styles *render.Styles) Option {
	return func(c *extractorConfig) {
		c.styles = styles
	}
}

// New creates an Extractor with the given options.
//
// By default, the extractor:
//   - Splits lines on a single space
//   - Joins output columns with a single space
//   - Does not color output (enable with WithStyles)
//
// Example:
//
//	ex, err := colx.New(
//	    colx.WithRanges(ranges),
//	    colx.WithDelimiter(`\s+`),
//	    colx.WithSeparator("\t"),
//	)
func New(opts ...Option) (*Extractor, error) {
	config := &extractorConfig{
		delimiter: " ",
		separator: " ",
	}

	for _, opt := range opts {
		opt(config)
	}

	if len(config.ranges) == 0 {
		return nil, fmt.Errorf("at least one column or column range must be provided")
	}

	splitter, err := split.New(config.delimiter)
	if err != nil {
		return nil, err
	}

	styles := config.styles
	if styles == nil {
		styles = render.NewStyles(false)
	}

	return &Extractor{
		ranges:    config.ranges,
		splitter:  splitter,
		separator: render.Unescape(config.separator),
		styles:    styles,
	}, nil
}

// Ranges returns a copy of the column ranges the extractor selects.
func (e *Extractor) Ranges() []Range {
	ranges := make([]Range, len(e.ranges))
	copy(ranges, e.ranges)
	return ranges
}

// ExtractLine returns line's selected columns joined by the separator.
// A line none of whose columns are selected yields an empty string.
func (e *Extractor) ExtractLine(line string) string {
	fields := e.splitter.Fields(line)
	return e.styles.Join(extract.Fields(e.ranges, fields), e.separator)
}

// Run extracts columns from every line of r and writes one output line per
// input line to w. It returns the number of input lines processed. A read
// error stops the loop and is reported after the lines already produced
// have been flushed.
func (e *Extractor) Run(r io.Reader, w io.Writer) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)
	out := bufio.NewWriter(w)
	lines := 0
	for scanner.Scan() {
		lines++
		if _, err := fmt.Fprintln(out, e.ExtractLine(scanner.Text())); err != nil {
			return lines, fmt.Errorf("writing output: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		out.Flush()
		return lines, fmt.Errorf("reading input: %w", err)
	}
	if err := out.Flush(); err != nil {
		return lines, fmt.Errorf("writing output: %w", err)
	}
	return lines, nil
}
