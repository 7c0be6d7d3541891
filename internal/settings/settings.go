// Package settings persists user preferences between runs. Only preferences
// are stored; simulation state is never saved.
package settings

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName is the gdata application directory used by the frontends.
const AppName = "fireworks"

const (
	prefsObject   = "preferences"
	prefsProperty = "display"
)

// Preferences are the user choices restored on startup. A zero BurstCount
// means none was stored and the simulation keeps its configured value.
type Preferences struct {
	BurstCount int  `yaml:"burstCount"`
	Muted      bool `yaml:"muted"`
}

// DefaultPreferences returns the preferences used when nothing is stored.
func DefaultPreferences() Preferences {
	return Preferences{}
}

// BurstCounter is the part of a simulation the preferences apply to.
type BurstCounter interface {
	BurstCount() int
	SetBurstCount(n int) int
}

// Manager loads and saves Preferences. A nil store runs in memory only.
type Manager struct {
	store *gdata.Manager
	prefs Preferences
}

// OpenStore opens the platform data directory for appName.
func OpenStore(appName string) (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open settings store: %w", err)
	}
	return m, nil
}

// NewManager returns a manager backed by store and loads any saved
// preferences. A failed load is logged and the defaults are used.
func NewManager(store *gdata.Manager) *Manager {
	m := &Manager{store: store, prefs: DefaultPreferences()}
	if err := m.Load(); err != nil {
		log.Printf("[Settings] Warning: %v (using defaults)", err)
	}
	return m
}

// Load replaces the in-memory preferences with the stored ones. Missing data
// yields the defaults without error.
func (m *Manager) Load() error {
	m.prefs = DefaultPreferences()
	if m.store == nil || !m.store.ObjectPropExists(prefsObject, prefsProperty) {
		return nil
	}
	data, err := m.store.LoadObjectProp(prefsObject, prefsProperty)
	if err != nil {
		return fmt.Errorf("failed to load preferences: %w", err)
	}
	var loaded Preferences
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal preferences: %w", err)
	}
	if loaded.BurstCount < 0 {
		loaded.BurstCount = 0
	}
	m.prefs = loaded
	return nil
}

// Save writes the in-memory preferences. Without a store it does nothing.
func (m *Manager) Save() error {
	if m.store == nil {
		return nil
	}
	data, err := yaml.Marshal(m.prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}
	if err := m.store.SaveObjectProp(prefsObject, prefsProperty, data); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}

// Preferences returns the current in-memory preferences.
func (m *Manager) Preferences() Preferences { return m.prefs }

// SetMuted records the mute choice.
func (m *Manager) SetMuted(muted bool) { m.prefs.Muted = muted }

// Apply pushes a stored burst count into sim, subject to the simulation's own
// floor. Without a stored count the simulation's configured value is kept
// and recorded instead.
func (m *Manager) Apply(sim BurstCounter) {
	if m.prefs.BurstCount <= 0 {
		m.prefs.BurstCount = sim.BurstCount()
		return
	}
	m.prefs.BurstCount = sim.SetBurstCount(m.prefs.BurstCount)
}

// Capture copies the current burst count out of sim.
func (m *Manager) Capture(sim BurstCounter) {
	m.prefs.BurstCount = sim.BurstCount()
}
