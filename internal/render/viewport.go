package render

import "math"

// Viewport maps the centered, y-up world onto a W x H grid whose origin is
// the top-left cell.
type Viewport struct {
	WorldW, WorldH float64
	W, H           int
}

// ToCell returns the cell containing world point (x, y) and whether that cell
// lies on the grid.
func (v Viewport) ToCell(x, y float64) (int, int, bool) {
	if v.WorldW <= 0 || v.WorldH <= 0 {
		return 0, 0, false
	}
	fx := (x + v.WorldW/2) / v.WorldW * float64(v.W)
	fy := (v.WorldH/2 - y) / v.WorldH * float64(v.H)
	if math.IsNaN(fx) || math.IsNaN(fy) {
		return 0, 0, false
	}
	cx, cy := int(math.Floor(fx)), int(math.Floor(fy))
	return cx, cy, cx >= 0 && cx < v.W && cy >= 0 && cy < v.H
}

// ToWorld returns the world coordinates of the center of cell (col, row).
// Input layers use it to turn pointer positions into launch coordinates.
func (v Viewport) ToWorld(col, row int) (float64, float64) {
	x := (float64(col)+0.5)/float64(v.W)*v.WorldW - v.WorldW/2
	y := v.WorldH/2 - (float64(row)+0.5)/float64(v.H)*v.WorldH
	return x, y
}
