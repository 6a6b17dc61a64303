package core

// Texture provides spatially-varying colors for materials.
// UV coordinates drive image lookups, the 3D point drives
// procedural patterns.
type Texture interface {
	Value(u, v float64, p Vec3) Vec3
}

// Pdf is a samplable, evaluable probability distribution over directions
type Pdf interface {
	// Value returns the density (≥ 0) of the distribution along direction
	Value(direction Vec3) float64
	// Generate draws a direction from the distribution
	Generate(s Sampler) Vec3
}

// HitRecord carries geometric and material context from a ray-object
// intersection into material evaluation. Stack-scoped per query.
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Unit surface normal, oriented against the incoming ray
	T         float64  // Parameter t along the ray
	U, V      float64  // Surface texture coordinates
	FrontFace bool     // Whether the ray hit the front face
	Material  Material // Material of the hit object
}

// SetFaceNormal orients the normal against the incoming ray and
// records which face was hit
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// ScatterRecord is the result of one scattering event. For specular
// materials the continuation ray is already fixed; otherwise PDF
// describes the outgoing-direction distribution the integrator should
// importance-sample. Lives for the duration of one bounce.
type ScatterRecord struct {
	Attenuation Vec3 // Per-channel throughput factor
	Specular    bool // Continuation ray fixed, no PDF
	SpecularRay Ray  // Valid only when Specular
	PDF         Pdf  // Valid only when !Specular
}

// Material decides how rays scatter, reflect, refract or terminate at
// a surface interaction. Implementations are immutable after
// construction and safely shared across render workers.
type Material interface {
	// Scatter returns the scattering event for an incoming ray, or
	// false if the ray is absorbed (emissive and absorbing materials).
	Scatter(rayIn Ray, hit HitRecord, s Sampler) (ScatterRecord, bool)

	// ScatteringPDF returns the density (≥ 0) of the material's natural
	// scattering distribution for the given outgoing ray. Used to weight
	// samples drawn from a possibly different importance-sampling Pdf.
	ScatteringPDF(rayIn Ray, hit HitRecord, scattered Ray) float64

	// Emitted returns the radiance emitted at the hit point; zero for
	// non-emissive materials.
	Emitted(rayIn Ray, hit HitRecord) Vec3
}

// Hittable is geometry a ray can intersect. PdfValue and
// RandomDirection support using the object as a light sampling target;
// geometry that is never sampled as a light may return zero and an
// arbitrary direction.
type Hittable interface {
	// Hit returns the closest intersection in (tMin, tMax), if any
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)

	// BoundingBox returns a box enclosing the object over the time
	// interval [t0, t1], or false if the object is unbounded
	BoundingBox(t0, t1 float64) (AABB, bool)

	// PdfValue returns the solid-angle density of hitting this object
	// from origin along direction
	PdfValue(origin, direction Vec3) float64

	// RandomDirection samples a direction from origin toward the object
	RandomDirection(origin Vec3, s Sampler) Vec3
}
