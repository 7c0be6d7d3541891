package fireworks

// TrailPoint is a fading positional sample left behind by a moving entity.
type TrailPoint struct {
	X, Y        float64
	Color       Color
	Alpha       float64
	Life        float64
	LifeAtSpawn float64
}

// Fade returns the render opacity of the point: the remaining fraction of its
// life scaled by the alpha its source had when sampled.
func (t TrailPoint) Fade() float64 {
	if t.LifeAtSpawn <= 0 || t.Life <= 0 {
		return 0
	}
	return t.Life / t.LifeAtSpawn * t.Alpha
}

// trailRing stores trail points oldest-first in a bounded ring. Every point
// is born with the same life and all points decay by the same dt, so remaining
// life never decreases from head to tail and dead points collect at the head.
type trailRing struct {
	buf  []TrailPoint
	head int
	n    int
	max  int
}

func newTrailRing(max int) trailRing {
	if max < 1 {
		max = 1
	}
	return trailRing{max: max}
}

func (r *trailRing) Len() int { return r.n }

// at returns the i-th oldest point.
func (r *trailRing) at(i int) *TrailPoint {
	return &r.buf[(r.head+i)%len(r.buf)]
}

// push records p and reports whether the oldest point had to be evicted.
func (r *trailRing) push(p TrailPoint) bool {
	if r.n < len(r.buf) {
		r.buf[(r.head+r.n)%len(r.buf)] = p
		r.n++
		return false
	}
	if len(r.buf) < r.max {
		r.grow()
		r.buf[r.n] = p
		r.n++
		return false
	}
	r.buf[r.head] = p
	r.head = (r.head + 1) % len(r.buf)
	return true
}

// grow unrolls the ring into a larger backing slice with head at zero.
func (r *trailRing) grow() {
	size := 2 * len(r.buf)
	if size < 64 {
		size = 64
	}
	if size > r.max {
		size = r.max
	}
	next := make([]TrailPoint, size)
	for i := 0; i < r.n; i++ {
		next[i] = *r.at(i)
	}
	r.buf = next
	r.head = 0
}

// decay ages every point by dt and drops the dead ones from the head.
func (r *trailRing) decay(dt float64) {
	for i := 0; i < r.n; i++ {
		r.at(i).Life -= dt
	}
	for r.n > 0 && r.at(0).Life <= 0 {
		r.head = (r.head + 1) % len(r.buf)
		r.n--
	}
}

func (r *trailRing) reset() {
	r.head = 0
	r.n = 0
}

func (r *trailRing) appendTo(dst []TrailPoint) []TrailPoint {
	for i := 0; i < r.n; i++ {
		dst = append(dst, *r.at(i))
	}
	return dst
}

// recordTrail samples a trail point at the given pre-integration state.
func (s *Simulation) recordTrail(x, y float64, c Color, alpha float64) {
	life := s.cfg.Params.TrailLife
	if s.trails.push(TrailPoint{X: x, Y: y, Color: c, Alpha: alpha, Life: life, LifeAtSpawn: life}) {
		s.stats.TrailsEvicted++
	}
}
