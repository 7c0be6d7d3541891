package fireworks

// Body is the integrable state shared by rockets and particles.
type Body struct {
	X, Y   float64
	VX, VY float64
}

// Forces parameterizes one integration step. Drag is a linear coefficient
// applied against the current velocity on both axes.
type Forces struct {
	AccelX float64
	AccelY float64
	Drag   float64
}

// Integrate advances b by dt using a semi-implicit Euler step: velocity is
// updated first and the new velocity moves the position.
func Integrate(b *Body, f Forces, dt float64) {
	b.VX += f.AccelX * dt
	b.VX -= f.Drag * b.VX * dt
	b.VY -= f.Drag * b.VY * dt
	b.VY += f.AccelY * dt
	b.X += b.VX * dt
	b.Y += b.VY * dt
}

func (s *Simulation) rocketForces(r *Rocket) Forces {
	return Forces{AccelY: r.Thrust + s.cfg.Params.Gravity}
}

func (s *Simulation) particleForces() Forces {
	p := s.cfg.Params
	return Forces{AccelX: p.WindX, AccelY: p.Gravity, Drag: p.DragCoef}
}
