package core

// RGB is a linear light sample. Components are not clamped while accumulating.
type RGB struct {
	R, G, B float32
}

// ColorGrid accumulates additive light per cell in row-major order.
type ColorGrid struct {
	W, H int
	data []RGB
}

// NewColorGrid allocates a grid with the given dimensions.
func NewColorGrid(w, h int) *ColorGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ColorGrid{W: w, H: h, data: make([]RGB, w*h)}
}

// Cells exposes the backing slice so callers can read values directly.
func (g *ColorGrid) Cells() []RGB { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ColorGrid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell.
func (g *ColorGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Add blends color (r, g, b) weighted by alpha into the cell at (x, y).
// Out-of-range coordinates are ignored.
func (g *ColorGrid) Add(x, y int, r, gr, b, alpha float32) {
	if alpha <= 0 || !g.InBounds(x, y) {
		return
	}
	c := &g.data[g.Index(x, y)]
	c.R += r * alpha
	c.G += gr * alpha
	c.B += b * alpha
}

// Resize reallocates the grid when the dimensions change and clears it.
func (g *ColorGrid) Resize(w, h int) {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	if w == g.W && h == g.H {
		g.Clear()
		return
	}
	g.W, g.H = w, h
	if cap(g.data) >= w*h {
		g.data = g.data[:w*h]
		g.Clear()
		return
	}
	g.data = make([]RGB, w*h)
}

// Clear fills the grid with black.
func (g *ColorGrid) Clear() {
	for i := range g.data {
		g.data[i] = RGB{}
	}
}
