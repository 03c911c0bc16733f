// Package document builds and writes the SVG canvas.
//
// The document is an etree element tree: an <svg> root carrying the viewBox
// and a single white <rect> covering the whole canvas.
package document

import (
	"fmt"
	"io"
	"strconv"

	"github.com/beevik/etree"
)

// Namespace is the SVG XML namespace set on the root element.
const Namespace = "http://www.w3.org/2000/svg"

// Background is the fill of the canvas rectangle.
const Background = "white"

// Build returns a document whose viewBox and background rectangle both span
// width × height pixels.
func Build(width, height float64) *etree.Document {
	doc := etree.NewDocument()

	root := doc.CreateElement("svg")
	root.CreateAttr("viewBox", viewBox(width, height))
	root.CreateAttr("xmlns", Namespace)

	rect := root.CreateElement("rect")
	rect.CreateAttr("fill", Background)
	rect.CreateAttr("height", formatFloat(height))
	rect.CreateAttr("width", formatFloat(width))

	doc.Indent(2)
	return doc
}

// Save serializes doc to the file at path, creating or truncating it.
func Save(doc *etree.Document, path string) error {
	if err := doc.WriteToFile(path); err != nil {
		return fmt.Errorf("failed to save SVG file '%s': %w", path, err)
	}
	return nil
}

// Write serializes doc to w.
func Write(doc *etree.Document, w io.Writer) (int64, error) {
	n, err := doc.WriteTo(w)
	if err != nil {
		return n, fmt.Errorf("failed to write SVG: %w", err)
	}
	return n, nil
}

// viewBox formats the "min-x min-y width height" attribute value.
func viewBox(width, height float64) string {
	return "0 0 " + formatFloat(width) + " " + formatFloat(height)
}

// formatFloat renders v in the shortest form that round-trips.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
