package geometry

import (
	"sort"

	"github.com/Viva-Lambda/isin-izleme-basit/pkg/core"
)

// Leaf threshold: nodes with this many or fewer objects store them
// directly and search linearly
const leafThreshold = 4

// BVH is a bounding volume hierarchy accelerating ray intersection
// over many primitives. Built once during scene setup, read-only
// afterward. It is never used as a light sampler.
type BVH struct {
	root *bvhNode
}

type bvhNode struct {
	box     core.AABB
	left    *bvhNode
	right   *bvhNode
	objects []core.Hittable // Non-nil only for leaves
}

// NewBVH builds a hierarchy over bounded objects for the time interval
// [t0, t1]. Objects without a bounding box cannot be accelerated and
// must stay in a plain list.
func NewBVH(objects []core.Hittable, t0, t1 float64) *BVH {
	if len(objects) == 0 {
		return &BVH{}
	}

	// Copy so sorting does not reorder the caller's slice
	sorted := make([]core.Hittable, len(objects))
	copy(sorted, objects)

	return &BVH{root: buildBVH(sorted, t0, t1)}
}

func buildBVH(objects []core.Hittable, t0, t1 float64) *bvhNode {
	box := boxAround(objects, t0, t1)

	if len(objects) <= leafThreshold {
		return &bvhNode{box: box, objects: objects}
	}

	// Median split along the longest axis of the enclosing box
	axis := box.LongestAxis()
	sort.Slice(objects, func(i, j int) bool {
		boxI, _ := objects[i].BoundingBox(t0, t1)
		boxJ, _ := objects[j].BoundingBox(t0, t1)
		return boxI.AxisValue(axis) < boxJ.AxisValue(axis)
	})

	mid := len(objects) / 2
	return &bvhNode{
		box:   box,
		left:  buildBVH(objects[:mid], t0, t1),
		right: buildBVH(objects[mid:], t0, t1),
	}
}

func boxAround(objects []core.Hittable, t0, t1 float64) core.AABB {
	box, _ := objects[0].BoundingBox(t0, t1)
	for _, object := range objects[1:] {
		memberBox, _ := object.BoundingBox(t0, t1)
		box = box.Union(memberBox)
	}
	return box
}

// Hit returns the closest intersection found in the hierarchy
func (b *BVH) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	if b.root == nil {
		return nil, false
	}
	return b.root.hit(ray, tMin, tMax)
}

func (n *bvhNode) hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	if !n.box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	if n.objects != nil {
		var closest *core.HitRecord
		closestSoFar := tMax
		for _, object := range n.objects {
			if hit, ok := object.Hit(ray, tMin, closestSoFar); ok {
				closestSoFar = hit.T
				closest = hit
			}
		}
		return closest, closest != nil
	}

	leftHit, leftOK := n.left.hit(ray, tMin, tMax)
	if leftOK {
		tMax = leftHit.T
	}
	rightHit, rightOK := n.right.hit(ray, tMin, tMax)
	if rightOK {
		return rightHit, true
	}
	return leftHit, leftOK
}

// BoundingBox returns the box enclosing the whole hierarchy
func (b *BVH) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	if b.root == nil {
		return core.AABB{}, false
	}
	return b.root.box, true
}

// PdfValue returns zero; a BVH is not a light sampling target
func (b *BVH) PdfValue(origin, direction core.Vec3) float64 {
	return 0
}

// RandomDirection returns an arbitrary direction; a BVH is not a light
// sampling target
func (b *BVH) RandomDirection(origin core.Vec3, smp core.Sampler) core.Vec3 {
	return core.NewVec3(1, 0, 0)
}
