package scene

import (
	"github.com/Viva-Lambda/isin-izleme-basit/pkg/core"
	"github.com/Viva-Lambda/isin-izleme-basit/pkg/geometry"
	"github.com/Viva-Lambda/isin-izleme-basit/pkg/material"
	"github.com/Viva-Lambda/isin-izleme-basit/pkg/renderer"
	"github.com/Viva-Lambda/isin-izleme-basit/pkg/texture"
)

// NewDefaultScene creates a simple sky-lit scene: three spheres over a
// checkered ground, lit by the gradient background alone
func NewDefaultScene() *Scene {
	camera := renderer.NewCamera(renderer.CameraConfig{
		Center:        core.NewVec3(-2, 2, 1),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          40.0,
		AspectRatio:   16.0 / 9.0,
		Aperture:      0.1,
		FocusDistance: 0, // focus on the look-at point
	})

	s := New(camera,
		core.NewVec3(0.5, 0.7, 1.0), // sky blue
		core.NewVec3(1.0, 1.0, 1.0)) // white horizon

	checker := texture.NewCheckerColors(1.0,
		core.NewVec3(0.2, 0.3, 0.1),
		core.NewVec3(0.9, 0.9, 0.9))
	ground := material.NewTexturedLambertian(checker)
	s.Add(NewGroundQuad(core.NewVec3(0, -0.5, -1), 100, ground))

	s.Add(geometry.NewSphere(
		core.NewVec3(0, 0, -1),
		0.5,
		material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))))
	s.Add(geometry.NewSphere(
		core.NewVec3(-1, 0, -1),
		0.5,
		material.NewDielectric(1.5)))
	s.Add(geometry.NewSphere(
		core.NewVec3(1, 0, -1),
		0.5,
		material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.1)))

	return s
}
