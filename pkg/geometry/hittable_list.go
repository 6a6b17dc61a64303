package geometry

import (
	"github.com/Viva-Lambda/isin-izleme-basit/pkg/core"
)

// HittableList composes primitives into a single traversable
// collection. When every member supports direction sampling it also
// serves as a light sampler: PdfValue averages the member densities
// and RandomDirection picks a member uniformly.
type HittableList struct {
	Objects []core.Hittable
}

// NewHittableList creates a list from the given objects
func NewHittableList(objects ...core.Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends an object to the list
func (hl *HittableList) Add(object core.Hittable) {
	hl.Objects = append(hl.Objects, object)
}

// Clear removes all objects from the list
func (hl *HittableList) Clear() {
	hl.Objects = nil
}

// Len returns the number of objects in the list
func (hl *HittableList) Len() int {
	return len(hl.Objects)
}

// Hit returns the closest intersection among all members, narrowing
// the search range as closer hits are found
func (hl *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	closestSoFar := tMax

	for _, object := range hl.Objects {
		if hit, ok := object.Hit(ray, tMin, closestSoFar); ok {
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the union of all member boxes, or false when the
// list is empty or any member is unbounded
func (hl *HittableList) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	if len(hl.Objects) == 0 {
		return core.AABB{}, false
	}

	var box core.AABB
	first := true
	for _, object := range hl.Objects {
		memberBox, ok := object.BoundingBox(t0, t1)
		if !ok {
			return core.AABB{}, false
		}
		if first {
			box = memberBox
			first = false
		} else {
			box = box.Union(memberBox)
		}
	}

	return box, true
}

// PdfValue returns the unweighted arithmetic mean of the member
// densities. Every member must support density evaluation for the
// result to be a proper density.
func (hl *HittableList) PdfValue(origin, direction core.Vec3) float64 {
	if len(hl.Objects) == 0 {
		return 0
	}

	weight := 1.0 / float64(len(hl.Objects))
	sum := 0.0
	for _, object := range hl.Objects {
		sum += weight * object.PdfValue(origin, direction)
	}
	return sum
}

// RandomDirection picks one member uniformly at random and delegates
func (hl *HittableList) RandomDirection(origin core.Vec3, smp core.Sampler) core.Vec3 {
	if len(hl.Objects) == 0 {
		return core.NewVec3(1, 0, 0)
	}

	index := int(smp.Get1D() * float64(len(hl.Objects)))
	if index >= len(hl.Objects) {
		index = len(hl.Objects) - 1
	}
	return hl.Objects[index].RandomDirection(origin, smp)
}
