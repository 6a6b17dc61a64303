package material

import (
	"math"

	"github.com/Viva-Lambda/isin-izleme-basit/pkg/core"
)

// Dielectric is a transparent material like glass that both reflects
// and refracts. Attenuation is always white: clear glass absorbs
// nothing in this model.
type Dielectric struct {
	RefractiveIndex float64 // e.g. 1.5 for glass; must be > 0
}

// NewDielectric creates a dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter picks reflection or refraction. Total internal reflection
// forces a reflect; otherwise Schlick's reflectance decides
// probabilistically.
func (d *Dielectric) Scatter(rayIn core.Ray, hit core.HitRecord, s core.Sampler) (core.ScatterRecord, bool) {
	var etaRatio float64
	if hit.FrontFace {
		etaRatio = 1.0 / d.RefractiveIndex // entering the material
	} else {
		etaRatio = d.RefractiveIndex // exiting the material
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := etaRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || reflectance(cosTheta, etaRatio) > s.Get1D() {
		direction = reflect(unitDirection, hit.Normal)
	} else {
		direction = refract(unitDirection, hit.Normal, etaRatio)
	}

	return core.ScatterRecord{
		Attenuation: core.NewVec3(1, 1, 1),
		Specular:    true,
		SpecularRay: core.NewRayAt(hit.Point, direction, rayIn.Time),
	}, true
}

// ScatteringPDF returns zero; reflection and refraction are delta
// distributions
func (d *Dielectric) ScatteringPDF(rayIn core.Ray, hit core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted returns zero; glass does not emit
func (d *Dielectric) Emitted(rayIn core.Ray, hit core.HitRecord) core.Vec3 {
	return core.Vec3{}
}

// refract bends uv through a surface with normal n using Snell's law
func refract(uv, n core.Vec3, etaRatio float64) core.Vec3 {
	cosTheta := math.Min(uv.Negate().Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaRatio)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// reflectance is Schlick's approximation of the Fresnel term
func reflectance(cosine, etaRatio float64) float64 {
	r0 := (1 - etaRatio) / (1 + etaRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
