package assets

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"arena3d/internal/registry"
)

// Texture is a loaded GPU texture plus the path it came from.
type Texture struct {
	rl.Texture2D
	Path string
}

// Model is a loaded model plus the path it came from.
type Model struct {
	rl.Model
	Path string
}

type (
	TextureHandle  = registry.Handle[Texture]
	ModelHandle    = registry.Handle[Model]
	MaterialHandle = registry.Handle[Material]
)

func InvalidTexture() TextureHandle   { return registry.Invalid[Texture]() }
func InvalidModel() ModelHandle       { return registry.Invalid[Model]() }
func InvalidMaterial() MaterialHandle { return registry.Invalid[Material]() }

// Manager owns one handle registry per asset kind and deduplicates loads by
// path. Loaded assets are never unloaded, so named registry entries only
// grow. Callers keep handles, not references.
type Manager struct {
	textures  *registry.Registry[Texture]
	models    *registry.Registry[Model]
	materials *registry.Registry[Material]
}

func NewManager() *Manager {
	log.Println("Assets: manager initialized")
	return &Manager{
		textures:  registry.New[Texture](),
		models:    registry.New[Model](),
		materials: registry.New[Material](),
	}
}

// LoadTexture loads a texture from disk, or returns the cached handle if
// this path was loaded before. Requires an initialized raylib context.
func (m *Manager) LoadTexture(path string) TextureHandle {
	if h, ok := m.textures.LookupByName(path); ok {
		return h
	}

	log.Printf("Assets: loading texture %s", path)
	h := m.textures.Allocate()
	m.textures.InsertNamed(path, h, Texture{
		Texture2D: rl.LoadTexture(path),
		Path:      path,
	})
	return h
}

// LoadModel loads a model from disk with load-or-get-cached semantics, as
// LoadTexture does.
func (m *Manager) LoadModel(path string) ModelHandle {
	if h, ok := m.models.LookupByName(path); ok {
		return h
	}

	log.Printf("Assets: loading model %s", path)
	h := m.models.Allocate()
	m.models.InsertNamed(path, h, Model{
		Model: rl.LoadModel(path),
		Path:  path,
	})
	return h
}

func (m *Manager) Texture(h TextureHandle) (Texture, bool) {
	return m.textures.Get(h)
}

func (m *Manager) Model(h ModelHandle) (Model, bool) {
	return m.models.Get(h)
}

func (m *Manager) Material(h MaterialHandle) (Material, bool) {
	return m.materials.Get(h)
}
