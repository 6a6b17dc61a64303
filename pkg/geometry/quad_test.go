package geometry

import (
	"math"
	"testing"

	"github.com/Viva-Lambda/isin-izleme-basit/pkg/core"
	"github.com/Viva-Lambda/isin-izleme-basit/pkg/material"
)

func testQuad() *Quad {
	// Unit square in the xy-plane at z = -2
	return NewQuad(
		core.NewVec3(-0.5, -0.5, -2),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)),
	)
}

func TestQuad_HitInside(t *testing.T) {
	quad := testQuad()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, ok := quad.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("Ray through the middle should hit")
	}
	if math.Abs(hit.T-2.0) > 1e-9 {
		t.Errorf("Hit distance should be 2, got %v", hit.T)
	}
	if math.Abs(hit.U-0.5) > 1e-9 || math.Abs(hit.V-0.5) > 1e-9 {
		t.Errorf("Center UV should be (0.5, 0.5), got (%v, %v)", hit.U, hit.V)
	}
}

func TestQuad_MissOutsideBounds(t *testing.T) {
	quad := testQuad()

	misses := []core.Vec3{
		{X: 1, Y: 0, Z: -1},  // past the +u edge
		{X: 0, Y: -1, Z: -1}, // past the -v edge
	}
	for _, dir := range misses {
		ray := core.NewRay(core.NewVec3(0, 0, 0), dir)
		if _, ok := quad.Hit(ray, 0.001, math.Inf(1)); ok {
			t.Errorf("Ray along %v should miss the quad", dir)
		}
	}
}

func TestQuad_MissParallel(t *testing.T) {
	quad := testQuad()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))

	if _, ok := quad.Hit(ray, 0.001, math.Inf(1)); ok {
		t.Error("Ray parallel to the quad should miss")
	}
}

func TestQuad_PdfValueHeadOn(t *testing.T) {
	quad := testQuad()
	origin := core.NewVec3(0, 0, 0)

	// Head on: cosine = 1, dist = 2, area = 1 → pdf = 4
	got := quad.PdfValue(origin, core.NewVec3(0, 0, -1))
	if math.Abs(got-4.0) > 1e-9 {
		t.Errorf("PdfValue: got %v, expected 4", got)
	}
}

func TestQuad_RandomDirectionHitsQuad(t *testing.T) {
	quad := testQuad()
	origin := core.NewVec3(0, 0, 0)
	sampler := core.NewRandomSampler(42)

	for i := 0; i < 1000; i++ {
		dir := quad.RandomDirection(origin, sampler)
		if _, ok := quad.Hit(core.NewRay(origin, dir), 0.001, math.Inf(1)); !ok {
			t.Fatalf("Sampled direction %v should hit the quad", dir)
		}
	}
}

func TestQuad_BoundingBoxPadded(t *testing.T) {
	quad := testQuad()

	box, ok := quad.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Quad should be bounded")
	}
	// The axis-aligned quad lies in a plane; the box must still have
	// thickness so slab tests cannot degenerate
	if box.Size().Z <= 0 {
		t.Errorf("Bounding box should be padded in z, got size %v", box.Size())
	}
}
