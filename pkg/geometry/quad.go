package geometry

import (
	"math"

	"github.com/Viva-Lambda/isin-izleme-basit/pkg/core"
)

// Quad represents a parallelogram defined by a corner and two edge vectors
type Quad struct {
	Corner   core.Vec3
	U        core.Vec3 // First edge vector
	V        core.Vec3 // Second edge vector
	Normal   core.Vec3
	Material core.Material

	d    float64   // Plane equation constant: normal · x = d
	w    core.Vec3 // Cached term for barycentric coordinates
	area float64
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, material core.Material) *Quad {
	cross := u.Cross(v)
	normal := cross.Normalize()

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Normal:   normal,
		Material: material,
		d:        normal.Dot(corner),
		w:        normal.Multiply(1.0 / normal.Dot(cross)),
		area:     cross.Length(),
	}
}

// Hit tests if a ray intersects the quad
func (q *Quad) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	denominator := ray.Direction.Dot(q.Normal)

	// Parallel rays never intersect the plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := (q.d - ray.Origin.Dot(q.Normal)) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	hitPoint := ray.At(t)
	hitVector := hitPoint.Subtract(q.Corner)

	// Planar coordinates within the parallelogram
	alpha := q.w.Dot(hitVector.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(hitVector))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return nil, false
	}

	hit := &core.HitRecord{
		T:        t,
		Point:    hitPoint,
		U:        alpha,
		V:        beta,
		Material: q.Material,
	}
	hit.SetFaceNormal(ray, q.Normal)

	return hit, true
}

// BoundingBox returns a box around the quad, padded so axis-aligned
// quads do not collapse to zero thickness
func (q *Quad) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	// Both diagonals are needed; a skewed parallelogram pokes outside
	// the box of the main diagonal alone
	box := boxOfPoints(q.Corner, q.Corner.Add(q.U).Add(q.V)).
		Union(boxOfPoints(q.Corner.Add(q.U), q.Corner.Add(q.V)))

	const pad = 1e-4
	size := box.Size()
	adjust := core.Vec3{}
	if size.X < pad {
		adjust.X = pad
	}
	if size.Y < pad {
		adjust.Y = pad
	}
	if size.Z < pad {
		adjust.Z = pad
	}
	box.Min = box.Min.Subtract(adjust)
	box.Max = box.Max.Add(adjust)

	return box, true
}

func boxOfPoints(a, b core.Vec3) core.AABB {
	return core.NewAABB(
		core.NewVec3(math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z)),
		core.NewVec3(math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z)),
	)
}

// PdfValue returns the solid-angle density of hitting the quad from
// origin along direction: dist²/(cosθ·area)
func (q *Quad) PdfValue(origin, direction core.Vec3) float64 {
	hit, ok := q.Hit(core.NewRay(origin, direction), 0.001, math.Inf(1))
	if !ok {
		return 0
	}

	distSq := hit.T * hit.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(q.Normal)) / direction.Length()
	if cosine < 1e-12 {
		return 0
	}

	return distSq / (cosine * q.area)
}

// RandomDirection samples a direction from origin toward a uniformly
// random point on the quad
func (q *Quad) RandomDirection(origin core.Vec3, smp core.Sampler) core.Vec3 {
	sample := smp.Get2D()
	point := q.Corner.
		Add(q.U.Multiply(sample.X)).
		Add(q.V.Multiply(sample.Y))
	return point.Subtract(origin)
}
