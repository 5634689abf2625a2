package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"digital.vasic.fluentassertions/pkg/config"
	"digital.vasic.fluentassertions/pkg/strdiff"
)

var errMismatch = errors.New("strings differ")

type diffOptions struct {
	files      bool
	ignoreCase bool
	radius     int
	noColor    bool
}

func newDiffCmd() *cobra.Command {
	opts := diffOptions{radius: -1}

	cmd := &cobra.Command{
		Use:   "diff <actual> <expected>",
		Short: "Locate the first difference between two strings",
		Long: `Locate the first rune where actual differs from expected and
show the surrounding text, as a failed string assertion would.

Examples:
  fluentassert diff abcdef abcxef
  fluentassert diff --files got.txt want.txt
  fluentassert diff --ignore-case --radius 10 "Hello" "hello!"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			actual, expected, err := readInputs(args, opts.files)
			if err != nil {
				return err
			}
			radius := opts.radius
			if radius < 0 {
				radius = config.Current().ContextRadius
			}
			noColor := opts.noColor || config.Current().NoColor
			return writeDiff(cmd.OutOrStdout(), actual, expected, radius, opts.ignoreCase, noColor)
		},
	}

	cmd.Flags().BoolVarP(&opts.files, "files", "f", false, "Treat the arguments as file paths")
	cmd.Flags().BoolVarP(&opts.ignoreCase, "ignore-case", "i", false, "Compare with Unicode case folding")
	cmd.Flags().IntVarP(&opts.radius, "radius", "r", -1, "Runes shown on each side of the difference (default from config)")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	return cmd
}

func readInputs(args []string, files bool) (actual, expected string, err error) {
	if !files {
		return args[0], args[1], nil
	}
	a, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("read actual: %w", err)
	}
	e, err := os.ReadFile(args[1])
	if err != nil {
		return "", "", fmt.Errorf("read expected: %w", err)
	}
	return string(a), string(e), nil
}

// writeDiff prints the mismatch report and returns errMismatch when
// the strings differ.
func writeDiff(w io.Writer, actual, expected string, radius int, ignoreCase, noColor bool) error {
	index := strdiff.IndexOfFirstMismatch(actual, expected)
	if ignoreCase {
		index = strdiff.IndexOfFirstMismatchFold(actual, expected)
	}

	actualLen := utf8.RuneCountInString(actual)
	expectedLen := utf8.RuneCountInString(expected)
	if index == strdiff.NoMismatch && actualLen == expectedLen {
		fmt.Fprintln(w, "strings are identical")
		return nil
	}
	if index == strdiff.NoMismatch {
		index = actualLen
	}

	header := color.New(color.FgRed, color.Bold)
	if noColor {
		header.DisableColor()
	}

	header.Fprintf(w, "differs at index %d\n", index)
	if actualLen != expectedLen {
		fmt.Fprintf(w, "length:   actual %d, expected %d\n", actualLen, expectedLen)
	}
	fmt.Fprintf(w, "near:     %s\n", strconv.Quote(strdiff.Window(actual, index, radius)))
	fmt.Fprintf(w, "segment:  %s\n", strconv.Quote(strdiff.Segment(actual, index)))

	if strdiff.IsMultiline(actual) || strdiff.IsMultiline(expected) {
		line, column := strdiff.LineColumn(actual, index)
		fmt.Fprintf(w, "position: line %d, column %d\n", line, column)
		if diff := strdiff.Diff(actual, expected); diff != "" {
			fmt.Fprint(w, "\n", diff)
		}
	}

	return errMismatch
}
