package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/ivoronin/fillfile/internal/color"
	"github.com/ivoronin/fillfile/internal/filler"
	"github.com/ivoronin/fillfile/internal/request"
	"github.com/ivoronin/fillfile/internal/size"
	"github.com/spf13/cobra"
)

// errFailed signals a failure that has already been reported to the user.
var errFailed = errors.New("create failed")

// createOptions holds CLI flags for the root command.
type createOptions struct {
	color   color.Mode
	verbose bool
}

// newRootCmd creates the fillfile command.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &createOptions{
		color: color.Always,
	}

	cmd := &cobra.Command{
		Use:   "fillfile <export-path> <size-spec>",
		Short: "Create a file of an exact size",
		Long: `Creates (or overwrites) a file filled with '0' characters.

The size is a number followed by a unit, case-insensitive:
  b                 bytes
  kb, mb, gb        powers of 1000
  kib, mib, gib     powers of 1024

Fractional sizes are rounded to the nearest byte, halves away from zero.
For example:
  fillfile dummy.bin 10MiB
  fillfile dummy.bin 2.5gb

Arguments starting with '-' are read as flags; put them after "--":
  fillfile -- dummy.bin -5kb`,
		Version:       version + " (" + commit + ")",
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return runCreate(args, opts, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	// Bind flags to options
	cmd.Flags().Var(&opts.color, "color", "When to color output: always, auto or never")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log each step to stderr")

	return cmd
}

// runCreate executes the create flow: validate → write → verify → report.
func runCreate(args []string, opts *createOptions, stdout, stderr io.Writer) error {
	out := color.NewPainter(stdout, opts.color)
	errOut := color.NewPainter(stderr, opts.color)

	req := request.FromArgs(args)
	opts.logf(stderr, "request: %s (color stdout=%t stderr=%t)", req, out.Enabled(), errOut.Enabled())

	res := request.Validate(req)
	if !res.OK() {
		printErrors(stderr, errOut, res.Messages())
		opts.logf(stderr, "validation failed: %v", res.Err())
		return errFailed
	}
	opts.logf(stderr, "parsed %s as %s (%s)", req.ExportSizeSpec, size.Format(res.Bytes), size.Human(res.Bytes))

	if err := filler.Write(res.Path, res.Bytes); err != nil {
		printErrors(stderr, errOut, []string{"Failed to create " + res.Path})
		opts.logf(stderr, "cause: %v", err)
		return errFailed
	}
	opts.logf(stderr, "verified %s", res.Path)

	printSuccess(stdout, out, res.Path, res.Bytes)
	return nil
}

// logf writes a line to w when verbose output is on.
func (o *createOptions) logf(w io.Writer, format string, args ...any) {
	if o.verbose {
		fmt.Fprintf(w, format+"\n", args...)
	}
}
