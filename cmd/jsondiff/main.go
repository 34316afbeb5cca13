package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"

	jsondiff "github.com/hardselius/serde-json-assert"
)

var version = "dev"

type options struct {
	strict           bool
	ignoreArrayOrder bool
	assumeFloat      bool
	epsilon          float64
	jsonOut          bool
	colorMode        string
	stats            bool

	// set by run when the documents disagree, mapped to exit code 1
	found bool
}

func main() {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "jsondiff [flags] LEFT RIGHT",
		Short: "compare two JSON or YAML documents structurally",
		Long: `jsondiff compares two JSON (or YAML) documents structurally and reports
every located disagreement. By default the right-hand document is treated
as the expected subset of the left: extra keys on the left are ignored.
Pass --strict to require both documents to match exactly.`,
		Version:      version,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0], args[1])
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.strict, "strict", false, "require both documents to match exactly")
	flags.BoolVar(&opts.ignoreArrayOrder, "ignore-array-order", false, "compare arrays as multisets instead of by position")
	flags.BoolVar(&opts.assumeFloat, "assume-float", false, "compare all numbers as 64-bit floats")
	flags.Float64Var(&opts.epsilon, "epsilon", 0, "tolerated margin when comparing floats (0 means exact)")
	flags.BoolVar(&opts.jsonOut, "json", false, "emit differences as JSON instead of text")
	flags.StringVar(&opts.colorMode, "color", "auto", "colorize output: auto, always or never")
	flags.BoolVar(&opts.stats, "stats", false, "print a summary line after the differences")

	if err := cmd.Execute(); err != nil {
		os.Exit(2)
	}
	if opts.found {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, opts *options, leftPath, rightPath string) error {
	left, err := loadDocument(leftPath)
	if err != nil {
		return errors.Wrapf(err, "loading %s", leftPath)
	}
	right, err := loadDocument(rightPath)
	if err != nil {
		return errors.Wrapf(err, "loading %s", rightPath)
	}

	diffs := jsondiff.Diff(left, right, buildConfig(opts))
	opts.found = len(diffs) > 0

	colorTTY := useColor(opts)
	out := cmd.OutOrStdout()

	if opts.jsonOut {
		data, err := json.MarshalIndent(diffs, "", "  ")
		if err != nil {
			return errors.Wrap(err, "encoding differences")
		}
		if colorTTY {
			data = pretty.Color(data, nil)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if err := jsondiff.FormatPretty(out, diffs, colorTTY); err != nil {
		return err
	}
	if opts.stats {
		if len(diffs) > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, jsondiff.FormatPrettyStats(jsondiff.DiffStats(diffs)))
	}
	return nil
}

func buildConfig(opts *options) jsondiff.Config {
	mode := jsondiff.Inclusive
	if opts.strict {
		mode = jsondiff.Strict
	}
	cfg := jsondiff.NewConfig(mode)
	if opts.ignoreArrayOrder {
		cfg = cfg.WithArraySortingMode(jsondiff.SortingIgnore)
	}
	if opts.assumeFloat {
		cfg = cfg.WithNumericMode(jsondiff.NumericAssumeFloat)
	}
	if opts.epsilon != 0 {
		cfg = cfg.WithEpsilon(opts.epsilon)
	}
	return cfg
}

func useColor(opts *options) bool {
	switch opts.colorMode {
	case "always":
		color.NoColor = false
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
}
