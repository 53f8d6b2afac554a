package model

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownObject is returned when no object type is registered for a path.
var ErrUnknownObject = errors.New("unknown object")

// Factory constructs a new, default-populated object.
type Factory func() Object

type registration struct {
	meta    *ObjectMetadata
	factory Factory
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]registration)
)

// Register adds an object type. Generated packages call it from init.
// Registering the same path twice panics.
func Register(meta *ObjectMetadata, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[meta.Path]; exists {
		panic(fmt.Sprintf("model: object %s registered twice", meta.Path))
	}
	registry[meta.Path] = registration{meta: meta, factory: factory}
}

// Lookup returns the metadata for a template or concrete path.
func Lookup(path string) (*ObjectMetadata, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	r, ok := registry[TemplateOf(path)]
	if !ok {
		return nil, false
	}
	return r.meta, true
}

// New constructs the object registered for a template or concrete path.
func New(path string) (Object, error) {
	registryMu.RLock()
	r, ok := registry[TemplateOf(path)]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownObject, path)
	}
	return r.factory(), nil
}

// Registered returns all registered metadata sorted by path.
func Registered() []*ObjectMetadata {
	registryMu.RLock()
	defer registryMu.RUnlock()

	out := make([]*ObjectMetadata, 0, len(registry))
	for _, r := range registry {
		out = append(out, r.meta)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Path < out[j].Path
	})
	return out
}
