// Package material implements the scattering models the integrator
// invokes once per bounce: diffuse, specular metal, dielectric
// refraction, emissive surfaces and isotropic volume scattering.
// Materials are immutable after construction and shared read-only
// across primitives and render workers.
package material

import (
	"math"

	"github.com/Viva-Lambda/isin-izleme-basit/pkg/core"
	"github.com/Viva-Lambda/isin-izleme-basit/pkg/pdf"
)

// Lambertian is a perfectly diffuse material
type Lambertian struct {
	Albedo core.Texture
}

// NewLambertian creates a diffuse material with a solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: solidColor{albedo}}
}

// NewTexturedLambertian creates a diffuse material with a texture
func NewTexturedLambertian(albedo core.Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter always succeeds: the outgoing direction follows the
// cosine-weighted hemisphere around the surface normal
func (l *Lambertian) Scatter(rayIn core.Ray, hit core.HitRecord, s core.Sampler) (core.ScatterRecord, bool) {
	return core.ScatterRecord{
		Attenuation: l.Albedo.Value(hit.U, hit.V, hit.Point),
		Specular:    false,
		PDF:         pdf.NewCosinePdf(hit.Normal),
	}, true
}

// ScatteringPDF returns cos(θ)/π, the same density the cosine Pdf
// reports; they are one distribution evaluated two ways for the
// Monte Carlo weight
func (l *Lambertian) ScatteringPDF(rayIn core.Ray, hit core.HitRecord, scattered core.Ray) float64 {
	cosTheta := hit.Normal.Dot(scattered.Direction.Normalize())
	if cosTheta < 0 {
		return 0
	}
	return cosTheta / math.Pi
}

// Emitted returns zero; diffuse surfaces do not emit
func (l *Lambertian) Emitted(rayIn core.Ray, hit core.HitRecord) core.Vec3 {
	return core.Vec3{}
}

// solidColor is a minimal texture for the plain-color constructors,
// avoiding a dependency on the texture package
type solidColor struct {
	color core.Vec3
}

func (s solidColor) Value(u, v float64, p core.Vec3) core.Vec3 {
	return s.color
}
