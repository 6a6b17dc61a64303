// Package scene assembles cameras, geometry, materials and lights into
// renderable scenes, either from built-in constructors or from YAML
// scene descriptions.
package scene

import (
	"github.com/Viva-Lambda/isin-izleme-basit/pkg/core"
	"github.com/Viva-Lambda/isin-izleme-basit/pkg/geometry"
	"github.com/Viva-Lambda/isin-izleme-basit/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	camera      *renderer.Camera
	objects     []core.Hittable
	lights      *geometry.HittableList
	topColor    core.Vec3
	bottomColor core.Vec3
	world       core.Hittable

	// RenderConfig carries the settings the scene was designed for;
	// callers may override any of them.
	RenderConfig renderer.Config
}

// New creates an empty scene with the given camera and background
// gradient colors
func New(camera *renderer.Camera, topColor, bottomColor core.Vec3) *Scene {
	return &Scene{
		camera:       camera,
		lights:       geometry.NewHittableList(),
		topColor:     topColor,
		bottomColor:  bottomColor,
		RenderConfig: renderer.DefaultConfig(),
	}
}

// Add appends objects to the scene
func (s *Scene) Add(objects ...core.Hittable) {
	s.objects = append(s.objects, objects...)
	s.world = nil
}

// AddLight appends an emissive object to both the scene geometry and
// the list the integrator samples directly
func (s *Scene) AddLight(light core.Hittable) {
	s.objects = append(s.objects, light)
	s.lights.Add(light)
	s.world = nil
}

// Camera returns the scene camera
func (s *Scene) Camera() *renderer.Camera { return s.camera }

// Lights returns the objects sampled directly by the integrator
func (s *Scene) Lights() *geometry.HittableList { return s.lights }

// BackgroundColors returns the background gradient colors
func (s *Scene) BackgroundColors() (core.Vec3, core.Vec3) {
	return s.topColor, s.bottomColor
}

// World returns the scene geometry behind a BVH, building it on first
// use and after any mutation
func (s *Scene) World() core.Hittable {
	if s.world == nil {
		s.world = geometry.NewBVH(s.objects, 0, 1)
	}
	return s.world
}

// NewGroundQuad creates a large horizontal quad centered at the given
// point with its normal pointing up, standing in for an infinite plane
func NewGroundQuad(center core.Vec3, size float64, material core.Material) *geometry.Quad {
	corner := core.NewVec3(center.X-size/2, center.Y, center.Z-size/2)
	u := core.NewVec3(0, 0, size)
	v := core.NewVec3(size, 0, 0)
	return geometry.NewQuad(corner, u, v, material)
}
