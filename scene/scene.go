package scene

import (
	"bytes"
	"fmt"

	"github.com/achilleasa/diorama/types"
	"github.com/olekukonko/tablewriter"
)

// The color returned for rays that escape a scene without a skybox.
var FlatSkyColor = types.RGB(135, 206, 235)

// A static scene. Scenes are built once and never modified while frames are
// being rendered.
type Scene struct {
	Spheres []*Sphere
	Boxes   []*Box
	Lights  []*Light

	// Optional environment for rays that escape the scene.
	Skybox *Skybox

	// The initial camera. Renderers operate on a copy.
	Camera *OrbitCamera
}

func NewScene() *Scene {
	return &Scene{
		Spheres: make([]*Sphere, 0),
		Boxes:   make([]*Box, 0),
		Lights:  make([]*Light, 0),
	}
}

// Get all scene primitives; spheres first, then boxes.
func (s *Scene) Primitives() []Primitive {
	prims := make([]Primitive, 0, len(s.Spheres)+len(s.Boxes))
	for _, sp := range s.Spheres {
		prims = append(prims, sp)
	}
	for _, b := range s.Boxes {
		prims = append(prims, b)
	}
	return prims
}

// Get the background color along a direction.
func (s *Scene) Background(dir types.Vec3) types.Color {
	if s.Skybox != nil {
		return s.Skybox.Sample(dir)
	}
	return FlatSkyColor
}

// Generate a table with scene statistics.
func (s *Scene) Stats() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Primitive", "Count", "Textured", "Reflective", "Transparent"})

	var textured, reflective, transparent [2]int
	count := func(idx int, m Material) {
		if m.IsTextured() {
			textured[idx]++
		}
		if m.Reflectivity > 0 {
			reflective[idx]++
		}
		if m.Transparency > 0 {
			transparent[idx]++
		}
	}
	for _, sp := range s.Spheres {
		count(0, sp.Material)
	}
	for _, b := range s.Boxes {
		count(1, b.Material)
	}

	table.Append([]string{"Spheres", fmt.Sprint(len(s.Spheres)), fmt.Sprint(textured[0]), fmt.Sprint(reflective[0]), fmt.Sprint(transparent[0])})
	table.Append([]string{"Boxes", fmt.Sprint(len(s.Boxes)), fmt.Sprint(textured[1]), fmt.Sprint(reflective[1]), fmt.Sprint(transparent[1])})

	skybox := "no"
	if s.Skybox != nil {
		skybox = "yes"
	}
	table.SetFooter([]string{"Lights", fmt.Sprint(len(s.Lights)), "", "Skybox", skybox})
	table.Render()

	return buf.String()
}
