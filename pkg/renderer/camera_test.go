package renderer

import (
	"math"
	"testing"

	"github.com/Viva-Lambda/isin-izleme-basit/pkg/core"
)

func TestCamera_CenterRayPointsAtTarget(t *testing.T) {
	camera := NewCamera(CameraConfig{
		Center:      core.NewVec3(0, 0, 5),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        60,
		AspectRatio: 16.0 / 9.0,
	})
	sampler := core.NewRandomSampler(42)

	ray := camera.GetRay(0.5, 0.5, sampler)
	want := core.NewVec3(0, 0, -1)
	if ray.Direction.Normalize().Subtract(want).Length() > 1e-9 {
		t.Errorf("Center ray should point at the target, got %v", ray.Direction.Normalize())
	}
	if ray.Origin != camera.origin {
		t.Errorf("Pinhole ray should start at the camera center, got %v", ray.Origin)
	}
}

func TestCamera_ShutterInterval(t *testing.T) {
	camera := NewCamera(CameraConfig{
		Center:      core.NewVec3(0, 0, 5),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        60,
		AspectRatio: 1.0,
		Time0:       0.5,
		Time1:       1.5,
	})
	sampler := core.NewRandomSampler(42)

	for i := 0; i < 100; i++ {
		ray := camera.GetRay(0.5, 0.5, sampler)
		if ray.Time < 0.5 || ray.Time >= 1.5 {
			t.Fatalf("Ray time %v should fall in the shutter interval [0.5, 1.5)", ray.Time)
		}
	}
}

func TestCamera_ApertureSpreadsOrigins(t *testing.T) {
	camera := NewCamera(CameraConfig{
		Center:        core.NewVec3(0, 0, 5),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          60,
		AspectRatio:   1.0,
		Aperture:      0.5,
		FocusDistance: 5.0,
	})
	sampler := core.NewRandomSampler(42)

	spread := false
	for i := 0; i < 100; i++ {
		ray := camera.GetRay(0.5, 0.5, sampler)
		offset := ray.Origin.Subtract(core.NewVec3(0, 0, 5)).Length()
		if offset > 0.25+1e-9 {
			t.Fatalf("Lens offset %v exceeds the aperture radius", offset)
		}
		if offset > 1e-6 {
			spread = true
		}
	}
	if !spread {
		t.Error("Non-zero aperture should jitter ray origins on the lens disk")
	}
}

func TestCamera_VerticalFieldOfView(t *testing.T) {
	camera := NewCamera(CameraConfig{
		Center:      core.NewVec3(0, 0, 1),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90,
		AspectRatio: 1.0,
	})
	sampler := core.NewRandomSampler(42)

	// With a 90° vertical FOV the top edge ray rises at 45°
	top := camera.GetRay(0.5, 1.0, sampler).Direction.Normalize()
	angle := math.Asin(top.Y) * 180 / math.Pi
	if math.Abs(angle-45) > 1e-6 {
		t.Errorf("Top edge ray should rise at 45°, got %v", angle)
	}
}
