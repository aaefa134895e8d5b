package world

import "github.com/achilleasa/diorama/scene"

// A Registry maps block kinds to the materials used when baking a world.
type Registry struct {
	materials map[BlockKind]scene.Material
}

// Create a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		materials: make(map[BlockKind]scene.Material),
	}
}

// Assign a material to a block kind, replacing any previous assignment.
func (r *Registry) Set(kind BlockKind, mat scene.Material) {
	r.materials[kind] = mat
}

// Lookup the material for a block kind.
func (r *Registry) Get(kind BlockKind) (scene.Material, bool) {
	mat, ok := r.materials[kind]
	return mat, ok
}

// Get the number of registered kinds.
func (r *Registry) Len() int {
	return len(r.materials)
}
