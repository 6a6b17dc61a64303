package scene

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/Viva-Lambda/isin-izleme-basit/pkg/core"
	"github.com/Viva-Lambda/isin-izleme-basit/pkg/renderer"
)

const sampleScene = `
camera:
  center: [278, 278, -800]
  look_at: [278, 278, 0]
  vfov: 40
render:
  width: 200
  height: 200
  samples_per_pixel: 10
  max_depth: 8
  seed: 99
background:
  top: [0.5, 0.7, 1.0]
  bottom: [1, 1, 1]
textures:
  - name: tiles
    type: checker
    scale: 2.0
    even: [0.2, 0.3, 0.1]
    odd: [0.9, 0.9, 0.9]
materials:
  - name: floor
    type: lambertian
    texture: tiles
  - name: shiny
    type: metal
    albedo: [0.8, 0.8, 0.9]
    fuzz: 0.05
  - name: glass
    type: dielectric
    ref_idx: 1.5
  - name: lamp
    type: diffuse_light
    emit: [15, 15, 15]
objects:
  - type: quad
    material: floor
    corner: [0, 0, 0]
    u: [555, 0, 0]
    v: [0, 0, 555]
  - type: sphere
    material: shiny
    center: [185, 82, 169]
    radius: 82
  - type: sphere
    material: glass
    center: [370, 90, 351]
    radius: 90
  - type: quad
    material: lamp
    light: true
    corner: [213, 554, 227]
    u: [130, 0, 0]
    v: [0, 0, 130]
`

func TestLoad_SampleScene(t *testing.T) {
	s, err := Load(strings.NewReader(sampleScene))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	wantConfig := renderer.Config{
		Width:           200,
		Height:          200,
		SamplesPerPixel: 10,
		MaxDepth:        8,
		Workers:         0,
		Seed:            99,
	}
	if diff := cmp.Diff(wantConfig, s.RenderConfig); diff != "" {
		t.Errorf("Render config mismatch (-want +got):\n%s", diff)
	}

	top, bottom := s.BackgroundColors()
	approx := cmpopts.EquateApprox(0, 1e-9)
	if diff := cmp.Diff(core.NewVec3(0.5, 0.7, 1.0), top, approx); diff != "" {
		t.Errorf("Top background mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(core.NewVec3(1, 1, 1), bottom, approx); diff != "" {
		t.Errorf("Bottom background mismatch (-want +got):\n%s", diff)
	}

	if len(s.objects) != 4 {
		t.Errorf("Scene should contain 4 objects, got %d", len(s.objects))
	}
	if s.Lights().Len() != 1 {
		t.Errorf("Scene should contain 1 light, got %d", s.Lights().Len())
	}

	// The lamp quad should be visible from below
	ray := core.NewRay(core.NewVec3(278, 278, 292), core.NewVec3(0, 1, 0))
	hit, ok := s.World().Hit(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("Ray toward the ceiling light should hit")
	}
	if !hit.FrontFace {
		t.Error("Ceiling light should face down into the scene")
	}
}

func TestLoad_AspectRatioFromResolution(t *testing.T) {
	s, err := Load(strings.NewReader(`
camera:
  center: [0, 0, 5]
render:
  width: 320
  height: 180
materials:
  - name: gray
    type: lambertian
    albedo: [0.5, 0.5, 0.5]
objects:
  - type: sphere
    material: gray
    center: [0, 0, 0]
    radius: 1
`))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.RenderConfig.Width != 320 || s.RenderConfig.Height != 180 {
		t.Errorf("Render resolution should be 320x180, got %dx%d",
			s.RenderConfig.Width, s.RenderConfig.Height)
	}
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "unknown material reference",
			yaml: `
camera: {center: [0, 0, 5], aspect_ratio: 1}
objects:
  - {type: sphere, material: missing, center: [0, 0, 0], radius: 1}
`,
			want: "unknown material",
		},
		{
			name: "unknown texture reference",
			yaml: `
camera: {center: [0, 0, 5], aspect_ratio: 1}
materials:
  - {name: bad, type: lambertian, texture: missing}
`,
			want: "unknown texture",
		},
		{
			name: "non-positive refractive index",
			yaml: `
camera: {center: [0, 0, 5], aspect_ratio: 1}
materials:
  - {name: bad, type: dielectric, ref_idx: 0}
`,
			want: "ref_idx",
		},
		{
			name: "fuzz out of range",
			yaml: `
camera: {center: [0, 0, 5], aspect_ratio: 1}
materials:
  - {name: bad, type: metal, albedo: [1, 1, 1], fuzz: 1.5}
`,
			want: "fuzz",
		},
		{
			name: "negative sphere radius",
			yaml: `
camera: {center: [0, 0, 5], aspect_ratio: 1}
materials:
  - {name: gray, type: lambertian, albedo: [0.5, 0.5, 0.5]}
objects:
  - {type: sphere, material: gray, center: [0, 0, 0], radius: -1}
`,
			want: "radius",
		},
		{
			name: "degenerate quad edges",
			yaml: `
camera: {center: [0, 0, 5], aspect_ratio: 1}
materials:
  - {name: gray, type: lambertian, albedo: [0.5, 0.5, 0.5]}
objects:
  - {type: quad, material: gray, corner: [0, 0, 0], u: [1, 0, 0], v: [2, 0, 0]}
`,
			want: "parallel",
		},
		{
			name: "reversed shutter interval",
			yaml: `
camera: {center: [0, 0, 5], aspect_ratio: 1, time0: 1, time1: 0}
`,
			want: "shutter",
		},
		{
			name: "unknown field",
			yaml: `
camera: {center: [0, 0, 5], aspect_ratio: 1}
renderr: {width: 100}
`,
			want: "parsing scene file",
		},
		{
			name: "duplicate material name",
			yaml: `
camera: {center: [0, 0, 5], aspect_ratio: 1}
materials:
  - {name: gray, type: lambertian, albedo: [0.5, 0.5, 0.5]}
  - {name: gray, type: dielectric, ref_idx: 1.5}
`,
			want: "duplicate",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tc.yaml))
			if err == nil {
				t.Fatal("Load should fail")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Error %q should mention %q", err.Error(), tc.want)
			}
		})
	}
}
