package material

import (
	"github.com/Viva-Lambda/isin-izleme-basit/pkg/core"
)

// DiffuseLight is an emissive material. It never scatters; rays that
// hit it terminate with the emitted radiance.
type DiffuseLight struct {
	Emit core.Texture
}

// NewDiffuseLight creates a light with a solid emission color
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: solidColor{emission}}
}

// NewTexturedDiffuseLight creates a light with textured emission
func NewTexturedDiffuseLight(emission core.Texture) *DiffuseLight {
	return &DiffuseLight{Emit: emission}
}

// Scatter always returns false: lights absorb incoming rays
func (dl *DiffuseLight) Scatter(rayIn core.Ray, hit core.HitRecord, s core.Sampler) (core.ScatterRecord, bool) {
	return core.ScatterRecord{}, false
}

// ScatteringPDF returns zero; lights do not scatter
func (dl *DiffuseLight) ScatteringPDF(rayIn core.Ray, hit core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted returns the emission texture on the front face, zero on the
// back: the light is one-sided
func (dl *DiffuseLight) Emitted(rayIn core.Ray, hit core.HitRecord) core.Vec3 {
	if !hit.FrontFace {
		return core.Vec3{}
	}
	return dl.Emit.Value(hit.U, hit.V, hit.Point)
}
