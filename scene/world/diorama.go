package world

import (
	"github.com/achilleasa/diorama/scene"
	"github.com/achilleasa/diorama/types"
)

// Create a registry with solid-color materials for every block kind.
func DefaultRegistry() *Registry {
	dirt := types.RGB(134, 96, 67)
	grassSide := scene.NewSolidTexture(types.RGB(112, 140, 62))
	grassTop := scene.NewSolidTexture(types.RGB(95, 159, 53))
	grassBottom := scene.NewSolidTexture(dirt)

	reg := NewRegistry()
	reg.Set(Grass, scene.Material{
		Albedo:  scene.CubeAlbedo{Faces: [6]*scene.Texture{grassSide, grassSide, grassBottom, grassTop, grassSide, grassSide}},
		Surface: scene.Surface{Specular: 0.10, Shininess: 12, Reflectivity: 0.02, IOR: 1},
	})
	reg.Set(Dirt, scene.NewSolidMaterial(dirt, scene.Surface{Specular: 0.02, Shininess: 6, IOR: 1}))
	reg.Set(Stone, scene.NewSolidMaterial(types.RGB(125, 125, 125), scene.Surface{Specular: 0.03, Shininess: 8, IOR: 1}))
	reg.Set(Iron, scene.NewSolidMaterial(types.RGB(216, 175, 147), scene.Surface{Specular: 0.15, Shininess: 24, Reflectivity: 0.05, IOR: 1}))
	reg.Set(Diamond, scene.NewSolidMaterial(types.RGB(92, 219, 213), scene.Surface{Specular: 0.20, Shininess: 32, Reflectivity: 0.08, IOR: 1}))
	reg.Set(Lava, scene.NewSolidMaterial(types.RGB(207, 92, 15), scene.Surface{Specular: 0.25, Shininess: 32, Reflectivity: 0.02, IOR: 1}))
	reg.Set(Water, scene.NewSolidMaterial(types.RGB(48, 92, 200), scene.Surface{Specular: 0.18, Shininess: 64, Reflectivity: 0.9, Transparency: 0.66, IOR: 1.33}))
	reg.Set(Wood, scene.NewSolidMaterial(types.RGB(102, 81, 51), scene.Surface{Specular: 0.05, Shininess: 16, Reflectivity: 0.02, IOR: 1}))
	reg.Set(Leaves, scene.NewSolidMaterial(types.RGB(58, 122, 40), scene.Surface{Specular: 0.10, Shininess: 12, Transparency: 0.30, IOR: 1.33}))
	return reg
}

// Build the block layout of the built-in diorama: a 5x5 grass and water
// deck with a tree on top, stone walls with diamond ore on two sides, two
// corner columns and a lava floor five blocks below the deck.
func DioramaWorld() *World {
	w := New()

	// Top deck: grass rim and center, water in between.
	for z := -2; z <= 2; z++ {
		for x := -2; x <= 2; x++ {
			rim := x == -2 || x == 2 || z == -2 || z == 2
			if rim || (x == 0 && z == 0) {
				w.Set(x, 0, z, Grass)
			} else {
				w.Set(x, 0, z, Water)
			}
		}
	}

	// Tree
	w.FillBox(0, 1, 0, 0, 3, 0, Wood)
	w.FillBox(-1, 4, -1, 1, 4, 1, Leaves)
	w.Set(-1, 3, 0, Leaves)
	w.Set(1, 3, 0, Leaves)
	w.Set(0, 3, -1, Leaves)
	w.Set(0, 3, 1, Leaves)
	w.Set(0, 5, 0, Leaves)

	// Back walls. The inner three columns of each wall carry an ore pattern.
	w.FillBox(-2, -4, -2, 2, -1, -2, Stone)
	w.FillBox(-2, -4, -2, -2, -1, 2, Stone)
	for i := -1; i <= 1; i++ {
		for y := -4; y <= -1; y++ {
			kind := wallPattern(-y-1, i+1)
			w.Set(i, y, -2, kind)
			w.Set(-2, y, i, kind)
		}
	}

	// Corner columns: two dirt blocks then stone (or iron) down to the floor.
	w.FillBox(2, -2, -2, 2, -1, -2, Dirt)
	w.FillBox(2, -5, -2, 2, -3, -2, Stone)
	w.FillBox(-2, -2, 2, -2, -1, 2, Dirt)
	w.FillBox(-2, -5, 2, -2, -3, 2, Iron)

	// Bottom floor: stone rim around a lava pool.
	for z := -2; z <= 2; z++ {
		for x := -2; x <= 2; x++ {
			if _, exists := w.Get(x, -5, z); exists {
				continue
			}
			if x > -2 && x < 2 && z > -2 && z < 2 {
				w.Set(x, -5, z, Lava)
			} else {
				w.Set(x, -5, z, Stone)
			}
		}
	}

	return w
}

// Ore layout for the wall rows (top to bottom) and columns.
func wallPattern(row, col int) BlockKind {
	edge := col == 0 || col == 2
	switch row {
	case 1, 3:
		if edge {
			return Diamond
		}
	case 2:
		if !edge {
			return Diamond
		}
	}
	return Stone
}

// Create the built-in diorama scene using the supplied registry. If reg is
// nil, DefaultRegistry is used.
func Diorama(reg *Registry) *scene.Scene {
	if reg == nil {
		reg = DefaultRegistry()
	}

	sc := scene.NewScene()
	sc.Boxes = DioramaWorld().Bake(reg)
	sc.Lights = append(sc.Lights, scene.NewPointLight(types.XYZ(4, 6, 4), types.RGB(255, 255, 255), 1.5))
	sc.Camera = scene.NewOrbitCamera(types.XYZ(0, 2, 0), 10, 1, 0.35)
	return sc
}
