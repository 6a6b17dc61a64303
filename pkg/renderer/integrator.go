package renderer

import (
	"math"

	"github.com/Viva-Lambda/isin-izleme-basit/pkg/core"
	"github.com/Viva-Lambda/isin-izleme-basit/pkg/geometry"
	"github.com/Viva-Lambda/isin-izleme-basit/pkg/pdf"
)

// Integrator estimates the radiance arriving along camera rays by
// recursive Monte Carlo path tracing with mixture importance sampling
// toward the scene lights.
type Integrator struct {
	world       core.Hittable
	lights      *geometry.HittableList
	topColor    core.Vec3
	bottomColor core.Vec3
	maxDepth    int
}

// NewIntegrator creates an integrator over the given scene graph.
// lights may be nil or empty; the material's own distribution is used
// alone in that case. Background radiance is a vertical gradient
// between bottomColor and topColor.
func NewIntegrator(world core.Hittable, lights *geometry.HittableList, topColor, bottomColor core.Vec3, maxDepth int) *Integrator {
	return &Integrator{
		world:       world,
		lights:      lights,
		topColor:    topColor,
		bottomColor: bottomColor,
		maxDepth:    maxDepth,
	}
}

// Li returns the radiance estimate for a camera ray
func (it *Integrator) Li(ray core.Ray, s core.Sampler) core.Vec3 {
	return it.rayColor(ray, it.maxDepth, s)
}

// rayColor is one step of the bounce loop. The depth bound guarantees
// termination regardless of material behavior.
func (it *Integrator) rayColor(ray core.Ray, depth int, s core.Sampler) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, ok := it.world.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		return it.background(ray)
	}

	emitted := hit.Material.Emitted(ray, *hit)

	scatter, ok := hit.Material.Scatter(ray, *hit, s)
	if !ok {
		// Absorbed: emission-only surfaces terminate the path here
		return emitted
	}

	if scatter.Specular {
		return scatter.Attenuation.MultiplyVec(
			it.rayColor(scatter.SpecularRay, depth-1, s))
	}

	// Mix the material's natural distribution with explicit light
	// sampling when the scene has lights to sample.
	var p core.Pdf = scatter.PDF
	if it.lights != nil && it.lights.Len() > 0 {
		lightPdf := pdf.NewHittablePdf(it.lights, hit.Point)
		p = pdf.NewMixturePdf(lightPdf, scatter.PDF)
	}

	direction := p.Generate(s)
	scattered := core.NewRayAt(hit.Point, direction, ray.Time)

	// A zero-density draw contributes nothing; dividing through would
	// poison the estimate with NaN.
	pdfValue := p.Value(direction)
	if pdfValue <= 0 {
		return emitted
	}
	scatteringPdf := hit.Material.ScatteringPDF(ray, *hit, scattered)
	if scatteringPdf <= 0 {
		return emitted
	}

	incoming := it.rayColor(scattered, depth-1, s)
	weight := scatteringPdf / pdfValue

	return emitted.Add(scatter.Attenuation.Multiply(weight).MultiplyVec(incoming))
}

// background returns the environment radiance for a ray that hits
// nothing: a vertical gradient, black when both colors are black
func (it *Integrator) background(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return it.bottomColor.Multiply(1.0 - t).Add(it.topColor.Multiply(t))
}
