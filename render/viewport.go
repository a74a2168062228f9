package render

import (
	"math"

	"github.com/lixenwraith/rollball/vmath"
)

const (
	// HUDRows is the number of rows above the arena reserved for text
	HUDRows = 7
	// cellAspect is how many columns match one row in physical size
	cellAspect = 2.0
)

// Viewport maps the arena floor (X right, Z down) onto terminal cells
type Viewport struct {
	OriginX, OriginY int
	ColsPerUnit      float64
	RowsPerUnit      float64
	Half             float64
	Cols, Rows       int
}

// FitViewport centres a square arena of half extent half under the HUD
func FitViewport(screenW, screenH int, half float64) Viewport {
	// Projection is inclusive of both edges; walls take a cell each side and the help line one row
	availW := float64(screenW - 4)
	availH := float64(screenH - HUDRows - 4)
	if availW < 1 || availH < 1 || half <= 0 {
		return Viewport{Half: half}
	}

	rpu := math.Min(availH/(2*half), availW/(2*half*cellAspect))
	cpu := rpu * cellAspect

	cols := int(math.Round(2 * half * cpu))
	rows := int(math.Round(2 * half * rpu))
	return Viewport{
		OriginX:     (screenW - cols) / 2,
		OriginY:     HUDRows + 1 + (int(availH)-rows)/2,
		ColsPerUnit: cpu,
		RowsPerUnit: rpu,
		Half:        half,
		Cols:        cols,
		Rows:        rows,
	}
}

// Valid reports whether the terminal was large enough to place the arena
func (v Viewport) Valid() bool {
	return v.Cols > 0 && v.Rows > 0
}

// Project converts a world position to a cell; Y is ignored
func (v Viewport) Project(p vmath.Vec3F) (int, int) {
	x := v.OriginX + int(math.Round((p.X+v.Half)*v.ColsPerUnit))
	y := v.OriginY + int(math.Round((p.Z+v.Half)*v.RowsPerUnit))
	return x, y
}

// Contains reports whether a cell lies inside the arena rectangle
func (v Viewport) Contains(x, y int) bool {
	return x >= v.OriginX && x <= v.OriginX+v.Cols && y >= v.OriginY && y <= v.OriginY+v.Rows
}
