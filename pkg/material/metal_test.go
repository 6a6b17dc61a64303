package material

import (
	"testing"

	"github.com/Viva-Lambda/isin-izleme-basit/pkg/core"
)

func TestMetal_PerfectMirrorWhenSmooth(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0.0)
	sampler := core.NewRandomSampler(42)

	normal := core.NewVec3(0, 0, 1)
	hit := testHit(normal)
	incoming := core.NewVec3(1, 0, -1).Normalize()
	rayIn := core.NewRayAt(core.NewVec3(-1, 0, 1), incoming, 0.25)

	scatter, didScatter := metal.Scatter(rayIn, hit, sampler)
	if !didScatter {
		t.Fatal("Mirror reflection above the surface should scatter")
	}
	if !scatter.Specular {
		t.Fatal("Metal scattering should be specular")
	}

	want := reflect(incoming, normal)
	if scatter.SpecularRay.Direction != want {
		t.Errorf("Fuzz 0 should reflect exactly: got %v, expected %v",
			scatter.SpecularRay.Direction, want)
	}
	if scatter.SpecularRay.Time != rayIn.Time {
		t.Errorf("Scattered ray should inherit time %v, got %v",
			rayIn.Time, scatter.SpecularRay.Time)
	}
}

func TestMetal_FuzzClamped(t *testing.T) {
	if m := NewMetal(core.NewVec3(1, 1, 1), 2.5); m.Fuzz != 1.0 {
		t.Errorf("Fuzz should clamp to 1, got %v", m.Fuzz)
	}
	if m := NewMetal(core.NewVec3(1, 1, 1), -0.5); m.Fuzz != 0.0 {
		t.Errorf("Fuzz should clamp to 0, got %v", m.Fuzz)
	}
}

func TestMetal_AbsorbsBelowSurface(t *testing.T) {
	// Grazing incidence with heavy fuzz pushes many perturbed rays
	// below the surface; those bounces must absorb, and every
	// successful scatter must stay above the surface.
	metal := NewMetal(core.NewVec3(0.9, 0.9, 0.9), 1.0)
	sampler := core.NewRandomSampler(42)

	normal := core.NewVec3(0, 0, 1)
	hit := testHit(normal)
	grazing := core.NewVec3(1, 0, -0.01).Normalize()
	rayIn := core.NewRay(core.NewVec3(-1, 0, 1), grazing)

	absorbed := 0
	for i := 0; i < 1000; i++ {
		scatter, didScatter := metal.Scatter(rayIn, hit, sampler)
		if !didScatter {
			absorbed++
			continue
		}
		if scatter.SpecularRay.Direction.Dot(normal) <= 0 {
			t.Fatal("Scattered direction must stay above the surface")
		}
	}

	if absorbed == 0 {
		t.Error("Grazing fuzzy reflection should absorb some rays")
	}
}

func TestMetal_NoEmissionNoDensity(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0.3)
	hit := testHit(core.NewVec3(0, 0, 1))
	rayIn := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	out := core.NewRay(hit.Point, core.NewVec3(0, 0, 1))

	if got := metal.Emitted(rayIn, hit); got != (core.Vec3{}) {
		t.Errorf("Metal should not emit, got %v", got)
	}
	if got := metal.ScatteringPDF(rayIn, hit, out); got != 0 {
		t.Errorf("Delta reflection has no density, got %v", got)
	}
}
