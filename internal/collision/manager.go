package collision

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"arena3d/internal/registry"
)

// Handle references a volume owned by a Manager.
type Handle = registry.Handle[Shape]

// InvalidHandle is the sentinel used where no volume is meant.
func InvalidHandle() Handle {
	return registry.Invalid[Shape]()
}

// Manager owns the set of active collision volumes and answers spatial
// queries against them. It is single-threaded by contract: gameplay code
// calls it from the simulation loop once per tick, and no operation blocks
// or suspends. Callers hold only handles; volume storage belongs to the
// manager.
type Manager struct {
	volumes *registry.Registry[Shape]
}

func NewManager() *Manager {
	log.Println("Collision: manager initialized")
	return &Manager{
		volumes: registry.New[Shape](),
	}
}

// AddCollision stores a copy of the shape and returns its handle. Always
// succeeds.
func (m *Manager) AddCollision(shape Shape) Handle {
	h := m.volumes.Allocate()
	m.volumes.Insert(h, shape)
	return h
}

// RemoveCollision deletes the volume. Removing an absent handle is a no-op.
func (m *Manager) RemoveCollision(h Handle) {
	m.volumes.Remove(h)
}

// UpdatePosition moves a volume, preserving its kind, extents, radius and
// Block flag. The handle must refer to a live volume; a stale handle is a
// caller bug and panics.
func (m *Manager) UpdatePosition(h Handle, position rl.Vector3) {
	shape := m.volumes.MustGet(h)
	shape.Position = position
	m.volumes.Insert(h, shape)
}

// Get returns the stored volume, or false when the handle is absent.
func (m *Manager) Get(h Handle) (Shape, bool) {
	return m.volumes.Get(h)
}

// Len reports the number of live volumes.
func (m *Manager) Len() int {
	return m.volumes.Len()
}
