// Package geometry provides the primitives rays intersect and the
// aggregates that compose them, including the list aggregate the
// integrator uses as a light sampler.
package geometry

import (
	"math"

	"github.com/Viva-Lambda/isin-izleme-basit/pkg/core"
)

// Sphere represents a sphere primitive
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: material}
}

// Hit tests if a ray intersects the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic in t with the half-b simplification
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Nearest root within range, trying the closer one first
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	hit := &core.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	outwardNormal := hit.Point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	hit.SetFaceNormal(ray, outwardNormal)
	hit.U, hit.V = sphereUV(outwardNormal)

	return hit, true
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(
		s.Center.Subtract(radius),
		s.Center.Add(radius),
	), true
}

// PdfValue returns the solid-angle density of hitting the sphere from
// origin along direction: the inverse of the solid angle the sphere
// subtends, or the uniform sphere density when origin is inside.
func (s *Sphere) PdfValue(origin, direction core.Vec3) float64 {
	if _, ok := s.Hit(core.NewRay(origin, direction), 0.001, math.Inf(1)); !ok {
		return 0
	}

	distSq := s.Center.Subtract(origin).LengthSquared()
	if distSq <= s.Radius*s.Radius {
		// Inside the sphere every direction hits it
		return 1.0 / (4.0 * math.Pi)
	}

	cosThetaMax := math.Sqrt(1.0 - s.Radius*s.Radius/distSq)
	solidAngle := 2.0 * math.Pi * (1.0 - cosThetaMax)
	return 1.0 / solidAngle
}

// RandomDirection samples a direction from origin toward the sphere,
// uniform over the cone the sphere subtends
func (s *Sphere) RandomDirection(origin core.Vec3, smp core.Sampler) core.Vec3 {
	toCenter := s.Center.Subtract(origin)
	distSq := toCenter.LengthSquared()
	if distSq <= s.Radius*s.Radius {
		return core.SampleOnUnitSphere(smp.Get2D())
	}

	cosThetaMax := math.Sqrt(1.0 - s.Radius*s.Radius/distSq)
	return core.SampleCone(toCenter.Normalize(), cosThetaMax, smp.Get2D())
}

// sphereUV maps a point on the unit sphere to (u, v) texture
// coordinates via spherical angles
func sphereUV(p core.Vec3) (u, v float64) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi

	u = phi / (2 * math.Pi)
	v = theta / math.Pi
	return u, v
}
