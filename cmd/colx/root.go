package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/tobinjt/colx"
	"github.com/tobinjt/colx/pkg/config"
	"github.com/tobinjt/colx/pkg/render"
	"github.com/tobinjt/colx/pkg/source"
)

var (
	verbose bool
	quiet   bool

	flagDelimiter string
	flagSeparator string
	flagColor     = colorMode("auto")
	flagConfig    string
)

var rootCmd = &cobra.Command{
	Use:   "colx [flags] COLUMNS... [FILES...]",
	Short: "colx - extract columns from delimited text",
	Long: `Extract the specified columns from FILES or stdin.

Column numbering starts at 1, not 0; column 0 is the entire input line,
just like awk. Column numbers that do not exist in a line are silently
ignored. When a line is split, empty leading and trailing columns are
discarded; interior empty columns are kept.

Negative column numbers count back from the end of the line: -1 is the
last column, -2 the second last. Lines with a variable number of columns
make negative numbers resolve differently per line. Put -- before the
first negative column so it is not parsed as a flag.

Column ranges like 3:8, -3:1, 7:-7 and -1:-3 are accepted. Both endpoints
are required and the range is inclusive; a descending range reverses the
columns. An endpoint past the end of the line is not an error, so 3:1000
prints everything from column 3 onwards.

Leading arguments that parse as columns or ranges select columns; the
remaining arguments are filenames. The filename - means stdin, and no
filenames at all also means stdin.`,
	Args:    cobra.ArbitraryArgs,
	Version: version,
	RunE:    runRoot,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode (errors only)")

	rootCmd.Flags().StringVarP(&flagDelimiter, "delimiter", "d", " ", "Regex that splits lines into columns")
	rootCmd.Flags().StringVarP(&flagSeparator, "separator", "s", " ", "Separator between output columns; backslash escapes are expanded")
	rootCmd.Flags().Var(&flagColor, "color", "Color output columns: auto, always or never")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML defaults file")

	// Flag parsing stops at the first positional argument, so filenames
	// that look like flags survive.
	rootCmd.Flags().SetInterspersed(false)

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runRoot(cmd *cobra.Command, args []string) error {
	ranges, filenames := colx.SplitArgs(args)
	if len(ranges) == 0 {
		return fmt.Errorf("at least one column or column range must be provided")
	}

	cfg, err := loadDefaults(cmd)
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd.Flags(), &cfg)

	enabled, err := colorEnabled(cfg.Color)
	if err != nil {
		return err
	}

	ex, err := colx.New(
		colx.WithRanges(ranges),
		colx.WithDelimiter(cfg.Delimiter),
		colx.WithSeparator(cfg.Separator),
		colx.WithStyles(render.NewStyles(enabled)),
	)
	if err != nil {
		return err
	}

	in, err := source.Open(filenames)
	if err != nil {
		return err
	}
	defer in.Close()

	if verbose {
		if len(filenames) == 0 {
			fmt.Fprintln(cmd.ErrOrStderr(), "colx: reading stdin")
		}
		for _, filename := range filenames {
			fmt.Fprintf(cmd.ErrOrStderr(), "colx: reading %s\n", filename)
		}
	}

	lines, err := ex.Run(in, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "colx: processed %d lines\n", lines)
	}
	return nil
}

// loadDefaults resolves the starting configuration. An explicit --config
// file must load cleanly; the implicit per-user config file is best
// effort, and a broken one falls back to built-in defaults with a warning.
func loadDefaults(cmd *cobra.Command) (config.Config, error) {
	if flagConfig != "" {
		return config.Load(flagConfig)
	}
	cfg, err := config.LoadDefault()
	if err != nil {
		if !quiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v; using built-in defaults\n", err)
		}
		return config.Default(), nil
	}
	return cfg, nil
}

// applyFlagOverrides layers explicitly set flags over the config file
// defaults.
func applyFlagOverrides(flags *pflag.FlagSet, cfg *config.Config) {
	if flags.Changed("delimiter") {
		cfg.Delimiter = flagDelimiter
	}
	if flags.Changed("separator") {
		cfg.Separator = flagSeparator
	}
	if flags.Changed("color") {
		cfg.Color = string(flagColor)
	}
}

// colorEnabled resolves a color mode to a concrete on/off decision.
// "auto" enables color only when stdout is a terminal and NO_COLOR is
// unset.
func colorEnabled(mode string) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		if os.Getenv("NO_COLOR") != "" {
			return false, nil
		}
		return term.IsTerminal(int(os.Stdout.Fd())), nil
	default:
		return false, fmt.Errorf("invalid color mode %q (expected auto, always or never)", mode)
	}
}

// colorMode is a pflag.Value restricted to auto, always and never, so a
// bad --color value fails at parse time.
type colorMode string

var _ pflag.Value = (*colorMode)(nil)

func (c *colorMode) String() string { return string(*c) }

func (c *colorMode) Set(v string) error {
	switch v {
	case "auto", "always", "never":
		*c = colorMode(v)
		return nil
	}
	return fmt.Errorf("must be one of: auto, always, never")
}

func (c *colorMode) Type() string { return "mode" }
