// Package main provides the entry point for the pagegrid CLI tool.
//
// The pagegrid command counts the regular files in a directory and writes a
// blank page-sized SVG canvas, printing the pixel size of a grid cell.
//
// Usage:
//
//	pagegrid <output_file_name> <directory_path> <rows> <columns>
//
// Examples:
//
//	pagegrid out.svg ./photos 4 3
//	pagegrid --verbose sheet.svg /var/data 10 10
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/otuschhoff/pagegrid/cmd/pagegrid/cmd"
)

func main() {
	// Cancelled on SIGINT so an interrupted run does not write the output file.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cmd.Execute(ctx)
	cancel()
	os.Exit(code)
}
