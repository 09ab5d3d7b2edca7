package registry

import (
	"fmt"
	"math"
)

const invalidIndex uint32 = math.MaxUint32

// Handle is an opaque reference to a resource owned by a Registry. The type
// parameter ties a handle to the resource kind that issued it, so a texture
// handle can never be passed where a model handle is expected.
type Handle[T any] struct {
	index uint32
}

// Invalid returns the sentinel handle for resource type T.
func Invalid[T any]() Handle[T] {
	return Handle[T]{index: invalidIndex}
}

func (h Handle[T]) IsValid() bool {
	return h.index != invalidIndex
}

// Index exposes the raw index for logging and serialization.
func (h Handle[T]) Index() uint32 {
	return h.index
}

// Registry is the single source of truth for one resource collection,
// addressed only via handles. The optional name index supports
// load-or-get-cached asset semantics; collections that don't need it
// (collision volumes, pooled particles) simply never call InsertNamed.
type Registry[T any] struct {
	namesToHandles     map[string]Handle[T]
	handlesToResources map[Handle[T]]T
	nextHandle         Handle[T]
}

func New[T any]() *Registry[T] {
	return &Registry[T]{
		namesToHandles:     make(map[string]Handle[T]),
		handlesToResources: make(map[Handle[T]]T),
		nextHandle:         Handle[T]{index: invalidIndex},
	}
}

// Allocate hands out the next handle. Indices start at 0 and only grow;
// freed indices are never reissued within the registry's lifetime, so a
// removed resource's handle stays dead. Call exactly once per resource.
func (r *Registry[T]) Allocate() Handle[T] {
	if !r.nextHandle.IsValid() {
		r.nextHandle.index = 0
	}
	h := r.nextHandle
	r.nextHandle.index++
	return h
}

// Insert stores the resource under the handle, overwriting silently if the
// handle is already present. Uniqueness is the caller's job via Allocate.
func (r *Registry[T]) Insert(h Handle[T], resource T) {
	r.handlesToResources[h] = resource
}

// InsertNamed additionally records a name for the handle. Callers are
// expected to check LookupByName first to avoid loading duplicates; the
// registry does not enforce that.
func (r *Registry[T]) InsertNamed(name string, h Handle[T], resource T) {
	r.namesToHandles[name] = h
	r.handlesToResources[h] = resource
}

func (r *Registry[T]) LookupByName(name string) (Handle[T], bool) {
	h, ok := r.namesToHandles[name]
	return h, ok
}

func (r *Registry[T]) Get(h Handle[T]) (T, bool) {
	resource, ok := r.handlesToResources[h]
	return resource, ok
}

// MustGet returns the resource for a handle the caller knows is live.
// Handles are only ever issued by this registry, so absence means the
// caller broke the validity invariant; that is a bug, not a runtime
// condition, and it panics.
func (r *Registry[T]) MustGet(h Handle[T]) T {
	resource, ok := r.handlesToResources[h]
	if !ok {
		panic(fmt.Sprintf("registry: stale or foreign handle %d dereferenced", h.index))
	}
	return resource
}

// Remove deletes the handle's resource. A stale name entry pointing at the
// removed handle is left behind; the named path is only used by asset
// collections, which never unload.
func (r *Registry[T]) Remove(h Handle[T]) {
	delete(r.handlesToResources, h)
}

func (r *Registry[T]) Len() int {
	return len(r.handlesToResources)
}

// Each calls fn for every live entry until fn returns false. Iteration
// order is unspecified.
func (r *Registry[T]) Each(fn func(Handle[T], T) bool) {
	for h, resource := range r.handlesToResources {
		if !fn(h, resource) {
			return
		}
	}
}
