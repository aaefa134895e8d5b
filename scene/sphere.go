package scene

import (
	"github.com/achilleasa/diorama/types"
	"github.com/chewxy/math32"
)

type Sphere struct {
	Center   types.Vec3
	Radius   float32
	Material Material
}

// Create new sphere primitive.
func NewSphere(center types.Vec3, radius float32, material Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Intersect solves |o + t*d - c|^2 = r^2 and returns the nearest root beyond
// HitBias.
func (s *Sphere) Intersect(origin, dir types.Vec3) Intersection {
	oc := origin.Sub(s.Center)
	a := dir.Dot(dir)
	b := 2.0 * oc.Dot(dir)
	c := oc.Dot(oc) - s.Radius*s.Radius
	disc := b*b - 4.0*a*c
	if disc < 0 || a == 0 {
		return Miss()
	}

	sqrtDisc := math32.Sqrt(disc)
	t1 := (-b - sqrtDisc) / (2.0 * a)
	t2 := (-b + sqrtDisc) / (2.0 * a)
	if t1 > t2 {
		t1, t2 = t2, t1
	}

	var t float32
	switch {
	case t1 > HitBias:
		t = t1
	case t2 > HitBias:
		t = t2
	default:
		return Miss()
	}

	point := origin.Add(dir.Mul(t))
	normal := point.Sub(s.Center).Normalize()

	return Intersection{
		Hit:      true,
		Distance: t,
		Point:    point,
		Normal:   normal,
		UV:       sphereUV(normal),
		Face:     NoFace,
		Material: s.Material,
	}
}

// Spherical mapping: u follows the azimuth around the Y axis and v the
// elevation.
func sphereUV(n types.Vec3) types.Vec2 {
	u := 0.5 + math32.Atan2(n[2], n[0])/(2.0*math32.Pi)
	v := 0.5 - math32.Asin(clamp(n[1], -1, 1))/math32.Pi
	return types.XY(clamp(u, 0, 1), clamp(v, 0, 1))
}
