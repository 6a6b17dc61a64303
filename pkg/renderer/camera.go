// Package renderer drives the render: camera ray generation, the
// path-tracing integrator, and the parallel tile loop that assembles
// the image.
package renderer

import (
	"math"

	"github.com/Viva-Lambda/isin-izleme-basit/pkg/core"
)

// CameraConfig describes a positionable thin-lens camera
type CameraConfig struct {
	Center        core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera looks at
	Up            core.Vec3 // World up direction
	VFov          float64   // Vertical field of view in degrees
	AspectRatio   float64   // Width / height
	Aperture      float64   // Lens diameter; 0 disables defocus blur
	FocusDistance float64   // 0 auto-focuses on LookAt
	Time0, Time1  float64   // Shutter interval for motion blur
}

// Camera generates rays for screen coordinates
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v            core.Vec3
	lensRadius      float64
	time0, time1    float64
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.LookAt.Subtract(config.Center).Length()
	}

	theta := config.VFov * math.Pi / 180.0
	halfHeight := math.Tan(theta / 2)
	viewportHeight := 2.0 * halfHeight
	viewportWidth := config.AspectRatio * viewportHeight

	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := config.Center
	horizontal := u.Multiply(viewportWidth * focusDistance)
	vertical := v.Multiply(viewportHeight * focusDistance)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		lensRadius:      config.Aperture / 2,
		time0:           config.Time0,
		time1:           config.Time1,
	}
}

// GetRay generates a ray for screen coordinates (s, t) in [0, 1],
// jittered on the lens disk and stamped with a random shutter time
func (c *Camera) GetRay(s, t float64, smp core.Sampler) core.Ray {
	origin := c.origin
	if c.lensRadius > 0 {
		offset := core.SamplePointInUnitDisk(smp.Get2D()).Multiply(c.lensRadius)
		origin = origin.Add(c.u.Multiply(offset.X)).Add(c.v.Multiply(offset.Y))
	}

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	time := c.time0 + smp.Get1D()*(c.time1-c.time0)
	return core.NewRayAt(origin, direction, time)
}
