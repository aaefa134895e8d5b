package world

import (
	"fmt"
	"strings"
)

// The kind of a voxel block.
type BlockKind uint8

const (
	Air BlockKind = iota
	Grass
	Stone
	Dirt
	Lava
	Diamond
	Water
	Wood
	Leaves
	Iron

	numBlockKinds
)

var blockKindNames = [numBlockKinds]string{
	"air", "grass", "stone", "dirt", "lava", "diamond", "water", "wood", "leaves", "iron",
}

func (k BlockKind) String() string {
	if k >= numBlockKinds {
		return fmt.Sprintf("BlockKind(%d)", uint8(k))
	}
	return blockKindNames[k]
}

// Parse a block kind from its (case-insensitive) name.
func ParseBlockKind(name string) (BlockKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range blockKindNames {
		if n == name {
			return BlockKind(k), nil
		}
	}
	return Air, fmt.Errorf("world: unknown block kind %q", name)
}

// Get all block kinds except Air.
func SolidKinds() []BlockKind {
	kinds := make([]BlockKind, 0, numBlockKinds-1)
	for k := Grass; k < numBlockKinds; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}
