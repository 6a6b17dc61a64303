package material

import (
	"math"

	"github.com/Viva-Lambda/isin-izleme-basit/pkg/core"
	"github.com/Viva-Lambda/isin-izleme-basit/pkg/pdf"
)

// Isotropic scatters uniformly over the full sphere of directions.
// Used for participating-media volumes, not solid surfaces.
type Isotropic struct {
	Albedo core.Texture
}

// NewIsotropic creates an isotropic material with a solid color
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: solidColor{albedo}}
}

// NewTexturedIsotropic creates an isotropic material with a texture
func NewTexturedIsotropic(albedo core.Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter always succeeds, sampling uniformly over the sphere
func (i *Isotropic) Scatter(rayIn core.Ray, hit core.HitRecord, s core.Sampler) (core.ScatterRecord, bool) {
	return core.ScatterRecord{
		Attenuation: i.Albedo.Value(hit.U, hit.V, hit.Point),
		Specular:    false,
		PDF:         pdf.NewUniformSpherePdf(),
	}, true
}

// ScatteringPDF returns 1/(4π) for every outgoing direction
func (i *Isotropic) ScatteringPDF(rayIn core.Ray, hit core.HitRecord, scattered core.Ray) float64 {
	return 1.0 / (4.0 * math.Pi)
}

// Emitted returns zero; volumes here do not emit
func (i *Isotropic) Emitted(rayIn core.Ray, hit core.HitRecord) core.Vec3 {
	return core.Vec3{}
}
