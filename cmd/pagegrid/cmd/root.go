// Package cmd provides the Cobra CLI command structure for pagegrid.
//
// This package defines the root command, which takes exactly four positional
// arguments, counts the regular files of a directory, prints the grid cell
// size and writes the page canvas as SVG.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/otuschhoff/pagegrid/pkg/document"
	"github.com/otuschhoff/pagegrid/pkg/geometry"
	"github.com/otuschhoff/pagegrid/pkg/output"
	"github.com/otuschhoff/pagegrid/pkg/stat"
	"github.com/spf13/cobra"
)

// usageLine is printed on an argument count mismatch.
const usageLine = "Usage: pagegrid <output_file_name> <directory_path> <rows> <columns>"

var rootCmd *cobra.Command

func init() {
	rootCmd = NewRootCmd()
}

// options holds flag state for one command instance.
type options struct {
	verbose bool
}

// NewRootCmd creates a new root command instance.
// Each call returns an independent command tree with its own flag state.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "pagegrid <output_file_name> <directory_path> <rows> <columns>",
		Short: "Count files and write a page-sized SVG canvas",
		Long: `pagegrid counts the regular files directly inside a directory, prints the
pixel size of one cell of a rows x columns grid laid over a 279.4 x 431.8 cm
page at 96 DPI, and writes the blank page canvas as an SVG document.

Examples:
  pagegrid out.svg ./photos 4 3
  pagegrid -v sheet.svg /var/data 10 10`,
		Args:          exactArgs(4),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrid(cmd, args, opts)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"Enable debug logging and the layout table on stderr")

	return cmd
}

// exactArgs rejects any argument count other than n with a UsageError.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return &UsageError{Got: len(args), Want: n}
		}
		return nil
	}
}

// runGrid parses the grid, counts files, reports the layout and writes the
// canvas. Nothing is written to the output path unless every earlier stage
// succeeded.
func runGrid(cmd *cobra.Command, args []string, opts *options) error {
	ctx := cmd.Context()
	stderr := cmd.ErrOrStderr()
	logger := newLogger(opts.verbose, stderr)

	outputPath, dirPath := args[0], args[1]

	rows, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid number of rows: %w", err)
	}
	columns, err := strconv.Atoi(args[3])
	if err != nil {
		return fmt.Errorf("invalid number of columns: %w", err)
	}

	grid := geometry.Grid{Rows: rows, Columns: columns}
	if err := grid.Validate(); err != nil {
		return err
	}

	fileCount, err := stat.CountFiles(dirPath)
	if err != nil {
		return &ContextError{Op: "error counting files", Err: err}
	}
	logger.Debug("scanned directory", "path", dirPath, "files", fileCount)

	report := output.NewFormatter(cmd.OutOrStdout(), false)
	if err := report.FileCount(dirPath, fileCount); err != nil {
		return err
	}

	layout, err := geometry.Compute(grid)
	if err != nil {
		return err
	}
	logger.Debug("computed layout",
		"canvas_width", layout.CanvasWidth,
		"canvas_height", layout.CanvasHeight,
		"rows", grid.Rows,
		"columns", grid.Columns)

	if err := report.Cells(layout); err != nil {
		return err
	}

	if opts.verbose {
		diag := output.NewFormatter(stderr, false)
		fmt.Fprint(stderr, diag.LayoutTable(layout, grid))
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	doc := document.Build(layout.CanvasWidth, layout.CanvasHeight)
	if err := document.Save(doc, outputPath); err != nil {
		return err
	}
	logger.Debug("wrote document", "path", outputPath)

	return nil
}

// RunCLI executes cmd with the given args, writing output to stdout and
// diagnostics to stderr. It returns the process exit code.
func RunCLI(ctx context.Context, cmd *cobra.Command, args []string, stdout, stderr io.Writer) int {
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	// cobra reads os.Args when given nil.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprint(stderr, FormatError(err))
		return 1
	}
	return 0
}

// Execute runs the root command against the process arguments and returns
// the exit code.
func Execute(ctx context.Context) int {
	return RunCLI(ctx, rootCmd, os.Args[1:], os.Stdout, os.Stderr)
}
