package material

import (
	"github.com/Viva-Lambda/isin-izleme-basit/pkg/core"
)

// Metal is a specular reflector with optional surface roughness
type Metal struct {
	Albedo core.Vec3
	Fuzz   float64 // 0 = perfect mirror, 1 = very rough
}

// NewMetal creates a metal material; fuzz is clamped to [0, 1]
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	if fuzz < 0.0 {
		fuzz = 0.0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter reflects the incoming ray about the normal, perturbed by the
// fuzz factor. A perturbed direction that falls at or below the surface
// absorbs the ray.
func (m *Metal) Scatter(rayIn core.Ray, hit core.HitRecord, s core.Sampler) (core.ScatterRecord, bool) {
	reflected := reflect(rayIn.Direction.Normalize(), hit.Normal)
	if m.Fuzz > 0 {
		perturbation := core.SamplePointInUnitSphere(s.Get3D()).Multiply(m.Fuzz)
		reflected = reflected.Add(perturbation)
	}

	if reflected.Dot(hit.Normal) <= 0 {
		return core.ScatterRecord{}, false
	}

	return core.ScatterRecord{
		Attenuation: m.Albedo,
		Specular:    true,
		SpecularRay: core.NewRayAt(hit.Point, reflected, rayIn.Time),
	}, true
}

// ScatteringPDF returns zero; the reflection is a delta distribution
func (m *Metal) ScatteringPDF(rayIn core.Ray, hit core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted returns zero; metals do not emit
func (m *Metal) Emitted(rayIn core.Ray, hit core.HitRecord) core.Vec3 {
	return core.Vec3{}
}

// reflect mirrors v about the surface normal n: v - 2·dot(v,n)·n
func reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
