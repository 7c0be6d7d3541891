package core

// Size is the extent of a world in world units.
type Size struct {
	W int
	H int
}

// Sim is a time-driven simulation advanced by elapsed seconds. Frontends only
// need this much to host a HUD or an overlay.
type Sim interface {
	Name() string
	Size() Size
	// Reset discards all entities. A zero seed selects the configured seed.
	Reset(seed int64)
	// Tick advances the world by dt seconds.
	Tick(dt float64) error
}
