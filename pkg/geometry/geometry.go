// Package geometry converts the fixed physical page size to pixels and
// divides the resulting canvas into a grid of cells.
package geometry

import (
	"errors"
	"fmt"
)

// Physical page size, in centimeters.
const (
	PageWidth  = 279.4
	PageHeight = 431.8
)

// DPI is the output resolution in pixels per inch.
const DPI = 96.0

// CmPerInch is the number of centimeters in one inch.
const CmPerInch = 2.54

// PixelsPerCm is the number of pixels per centimeter at DPI.
// 1 inch = 2.54 cm, 1 inch = 96 pixels
const PixelsPerCm = DPI / CmPerInch

// ErrInvalidGrid is returned when a grid has a non-positive row or column count.
var ErrInvalidGrid = errors.New("rows and columns must be positive")

// Grid is the number of rows and columns the canvas is divided into.
type Grid struct {
	Rows    int
	Columns int
}

// Validate reports whether both dimensions are positive.
func (g Grid) Validate() error {
	if g.Rows <= 0 || g.Columns <= 0 {
		return fmt.Errorf("%w: got %d rows, %d columns", ErrInvalidGrid, g.Rows, g.Columns)
	}
	return nil
}

// Layout holds canvas and per-cell dimensions in pixels.
type Layout struct {
	CanvasWidth  float64
	CanvasHeight float64
	CellWidth    float64 // Column width
	CellHeight   float64 // Row height
}

// CmToPixels converts a length in centimeters to pixels.
func CmToPixels(cm float64) float64 {
	return cm * PixelsPerCm
}

// Canvas returns the page size in pixels.
func Canvas() (width, height float64) {
	return CmToPixels(PageWidth), CmToPixels(PageHeight)
}

// Compute returns the canvas size and the size of one cell of grid.
func Compute(grid Grid) (Layout, error) {
	if err := grid.Validate(); err != nil {
		return Layout{}, err
	}

	width, height := Canvas()

	return Layout{
		CanvasWidth:  width,
		CanvasHeight: height,
		CellWidth:    width / float64(grid.Columns),
		CellHeight:   height / float64(grid.Rows),
	}, nil
}
