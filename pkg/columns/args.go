package columns

// SplitArgs separates leading column ranges from trailing filenames.
// Tokens are consumed as ranges until the first token ParseRange rejects;
// that token and everything after it are filenames, even tokens that would
// themselves parse as ranges.
func SplitArgs(args []string) ([]Range, []string) {
	ranges := []Range{}
	for i, arg := range args {
		r, ok := ParseRange(arg)
		if !ok {
			return ranges, args[i:]
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}
