// Package render turns a computed color grid into terminal text: one
// escape-prefixed, reset-terminated swatch per cell, plus optional
// legend annotation.
package render

import "github.com/termtools/huegrid/pkg/grid"

// Renderer converts a grid to formatted output.
type Renderer interface {
	Render(g grid.Grid) string
}
