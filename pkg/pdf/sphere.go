package pdf

import (
	"math"

	"github.com/Viva-Lambda/isin-izleme-basit/pkg/core"
)

// UniformSpherePdf is the uniform distribution over all directions,
// density 1/(4π). Isotropic volume scattering samples from it.
type UniformSpherePdf struct{}

// NewUniformSpherePdf creates a uniform distribution over the sphere
func NewUniformSpherePdf() *UniformSpherePdf {
	return &UniformSpherePdf{}
}

// Value returns 1/(4π) for every direction
func (p *UniformSpherePdf) Value(direction core.Vec3) float64 {
	return 1.0 / (4.0 * math.Pi)
}

// Generate draws a uniform direction on the unit sphere
func (p *UniformSpherePdf) Generate(s core.Sampler) core.Vec3 {
	return core.SampleOnUnitSphere(s.Get2D())
}
