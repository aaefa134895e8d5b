package world

import (
	"sort"

	"github.com/achilleasa/diorama/scene"
	"github.com/achilleasa/diorama/types"
)

// Integer block coordinates. The block at (x, y, z) occupies the unit cube
// [x, x+1] x [y, y+1] x [z, z+1].
type Pos struct {
	X, Y, Z int
}

// A placed block.
type Block struct {
	Kind BlockKind

	// If set, this material is used instead of the registry entry for Kind.
	Material *scene.Material
}

// A sparse voxel world.
type World struct {
	blocks map[Pos]Block
}

// Create a new empty world.
func New() *World {
	return &World{
		blocks: make(map[Pos]Block),
	}
}

// Place a block, replacing whatever occupied its position.
func (w *World) Set(x, y, z int, kind BlockKind) {
	w.blocks[Pos{x, y, z}] = Block{Kind: kind}
}

// Place a block that uses a specific material instead of its registry entry.
func (w *World) SetWithMaterial(x, y, z int, kind BlockKind, mat scene.Material) {
	w.blocks[Pos{x, y, z}] = Block{Kind: kind, Material: &mat}
}

// Remove the block at a position.
func (w *World) Remove(x, y, z int) {
	delete(w.blocks, Pos{x, y, z})
}

// Remove all blocks.
func (w *World) Clear() {
	w.blocks = make(map[Pos]Block)
}

// Fill the box spanned by two corners (inclusive) with blocks of the given
// kind. Corners may be specified in any order.
func (w *World) FillBox(x0, y0, z0, x1, y1, z1 int, kind BlockKind) {
	w.fill(x0, y0, z0, x1, y1, z1, Block{Kind: kind})
}

// Fill a box with blocks that use a specific material instead of their
// registry entry.
func (w *World) FillBoxWithMaterial(x0, y0, z0, x1, y1, z1 int, kind BlockKind, mat scene.Material) {
	w.fill(x0, y0, z0, x1, y1, z1, Block{Kind: kind, Material: &mat})
}

func (w *World) fill(x0, y0, z0, x1, y1, z1 int, b Block) {
	x0, x1 = minMax(x0, x1)
	y0, y1 = minMax(y0, y1)
	z0, z1 = minMax(z0, z1)
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			for z := z0; z <= z1; z++ {
				w.blocks[Pos{x, y, z}] = b
			}
		}
	}
}

// Get the block at a position.
func (w *World) Get(x, y, z int) (Block, bool) {
	b, ok := w.blocks[Pos{x, y, z}]
	return b, ok
}

// Get the number of placed blocks (including air).
func (w *World) Len() int {
	return len(w.blocks)
}

// Bake the world into unit boxes. Air blocks and blocks whose kind has no
// registered material (and no override) are skipped. The output is sorted
// by (y, z, x).
func (w *World) Bake(reg *Registry) []*scene.Box {
	positions := make([]Pos, 0, len(w.blocks))
	for p := range w.blocks {
		positions = append(positions, p)
	}
	sort.Slice(positions, func(i, j int) bool {
		a, b := positions[i], positions[j]
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		if a.Z != b.Z {
			return a.Z < b.Z
		}
		return a.X < b.X
	})

	out := make([]*scene.Box, 0, len(positions))
	for _, p := range positions {
		b := w.blocks[p]
		if b.Kind == Air {
			continue
		}

		var mat scene.Material
		switch {
		case b.Material != nil:
			mat = *b.Material
		case reg != nil:
			var ok bool
			if mat, ok = reg.Get(b.Kind); !ok {
				continue
			}
		default:
			continue
		}

		min := types.XYZ(float32(p.X), float32(p.Y), float32(p.Z))
		out = append(out, scene.NewBox(min, min.Add(types.XYZ(1, 1, 1)), mat))
	}
	return out
}

func minMax(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
