package scene

import (
	"github.com/Viva-Lambda/isin-izleme-basit/pkg/core"
	"github.com/Viva-Lambda/isin-izleme-basit/pkg/geometry"
	"github.com/Viva-Lambda/isin-izleme-basit/pkg/material"
	"github.com/Viva-Lambda/isin-izleme-basit/pkg/renderer"
)

// NewCornellScene creates a classic Cornell box with quad walls, an
// area light in the ceiling and two spheres
func NewCornellScene() *Scene {
	camera := renderer.NewCamera(renderer.CameraConfig{
		Center:      core.NewVec3(278, 278, -800),
		LookAt:      core.NewVec3(278, 278, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40.0,
		AspectRatio: 1.0,
	})

	s := New(camera, core.Vec3{}, core.Vec3{})
	s.RenderConfig.Width = 400
	s.RenderConfig.Height = 400
	s.RenderConfig.SamplesPerPixel = 200
	s.RenderConfig.MaxDepth = 50

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	boxSize := 555.0

	// Floor, ceiling, back wall
	s.Add(geometry.NewQuad(
		core.NewVec3(0, 0, 0),
		core.NewVec3(boxSize, 0, 0),
		core.NewVec3(0, 0, boxSize),
		white))
	s.Add(geometry.NewQuad(
		core.NewVec3(0, boxSize, 0),
		core.NewVec3(boxSize, 0, 0),
		core.NewVec3(0, 0, boxSize),
		white))
	s.Add(geometry.NewQuad(
		core.NewVec3(0, 0, boxSize),
		core.NewVec3(boxSize, 0, 0),
		core.NewVec3(0, boxSize, 0),
		white))

	// Left wall red, right wall green
	s.Add(geometry.NewQuad(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 0, boxSize),
		core.NewVec3(0, boxSize, 0),
		red))
	s.Add(geometry.NewQuad(
		core.NewVec3(boxSize, 0, 0),
		core.NewVec3(0, boxSize, 0),
		core.NewVec3(0, 0, boxSize),
		green))

	// Ceiling light. Edge order makes the geometric normal point down
	// into the box so the one-sided emitter faces the scene.
	lightSize := 130.0
	lightOffset := (boxSize - lightSize) / 2.0
	s.AddLight(geometry.NewQuad(
		core.NewVec3(lightOffset, boxSize-1, lightOffset),
		core.NewVec3(lightSize, 0, 0),
		core.NewVec3(0, 0, lightSize),
		material.NewDiffuseLight(core.NewVec3(15, 15, 15))))

	s.Add(geometry.NewSphere(
		core.NewVec3(185, 82.5, 169),
		82.5,
		material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 0.0)))
	s.Add(geometry.NewSphere(
		core.NewVec3(370, 90, 351),
		90,
		material.NewDielectric(1.5)))

	return s
}
