package geometry

import (
	"fmt"
	"sort"

	"github.com/photark/go-raytracer/pkg/core"
	"github.com/photark/go-raytracer/pkg/material"
)

// Leaf threshold: ranges with this many or fewer shapes become leaf nodes
const leafThreshold = 2

// bvhNode is one arena slot. Interior nodes reference children by index;
// leaves reference a contiguous range of the reordered shape slice. Using
// indices instead of pointers keeps the whole structure immutable after
// construction and freely shareable across parallel workers.
type bvhNode struct {
	bounds core.AABB
	left   int32 // child node index, -1 for leaves
	right  int32
	start  int32 // leaf shape range [start, start+count)
	count  int32 // 0 for interior nodes
}

// BVH is a bounding volume hierarchy stored as an index-addressed node arena
type BVH struct {
	nodes  []bvhNode
	shapes []Shape // reordered copy of the input shapes
}

// NewBVH constructs a BVH from a slice of shapes. The input slice is copied
// so the caller's ordering is left untouched.
func NewBVH(shapes []Shape) *BVH {
	bvh := &BVH{}
	if len(shapes) == 0 {
		return bvh
	}

	bvh.shapes = make([]Shape, len(shapes))
	copy(bvh.shapes, shapes)
	bvh.nodes = make([]bvhNode, 0, 2*len(shapes))

	bvh.build(0, len(bvh.shapes))
	return bvh
}

// build creates the node for the shape range [start, end) and returns its
// arena index. Shapes are partitioned by a median split along the axis of
// greatest centroid spread.
func (bvh *BVH) build(start, end int) int32 {
	count := end - start
	if count <= leafThreshold {
		bounds := bvh.shapes[start].BoundingBox()
		for i := start + 1; i < end; i++ {
			bounds = bounds.Union(bvh.shapes[i].BoundingBox())
		}
		bvh.nodes = append(bvh.nodes, bvhNode{
			bounds: bounds,
			left:   -1,
			right:  -1,
			start:  int32(start),
			count:  int32(count),
		})
		return int32(len(bvh.nodes) - 1)
	}

	// Axis of greatest centroid spread
	centroids := make([]core.Vec3, 0, count)
	for i := start; i < end; i++ {
		centroids = append(centroids, bvh.shapes[i].BoundingBox().Center())
	}
	axis := core.NewAABBFromPoints(centroids...).LongestAxis()

	sort.Slice(bvh.shapes[start:end], func(i, j int) bool {
		boxI := bvh.shapes[start+i].BoundingBox()
		boxJ := bvh.shapes[start+j].BoundingBox()
		return boxI.Axis(axis) < boxJ.Axis(axis)
	})

	// Reserve this node's slot before recursing so children land after it
	index := int32(len(bvh.nodes))
	bvh.nodes = append(bvh.nodes, bvhNode{left: -1, right: -1})

	mid := start + count/2
	left := bvh.build(start, mid)
	right := bvh.build(mid, end)

	// Interior bounds are the union of the children, which makes the
	// containment invariant hold by construction.
	bvh.nodes[index] = bvhNode{
		bounds: bvh.nodes[left].bounds.Union(bvh.nodes[right].bounds),
		left:   left,
		right:  right,
	}
	return index
}

// Hit returns the closest intersection in (tMin, tMax) across all shapes,
// identical to an exhaustive scan but pruned by bounding boxes. Traversal is
// an explicit stack of node indices.
func (bvh *BVH) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if len(bvh.nodes) == 0 || !ray.IsValid() {
		return nil, false
	}

	var closestHit *material.HitRecord
	closestSoFar := tMax

	stack := make([]int32, 0, 64)
	stack = append(stack, 0) // root is always slot 0

	for len(stack) > 0 {
		index := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := &bvh.nodes[index]
		if !node.bounds.Hit(ray, tMin, closestSoFar) {
			continue
		}

		if node.count > 0 {
			for i := node.start; i < node.start+node.count; i++ {
				if hit, isHit := bvh.shapes[i].Hit(ray, tMin, closestSoFar); isHit {
					closestSoFar = hit.T
					closestHit = hit
				}
			}
			continue
		}

		stack = append(stack, node.left, node.right)
	}

	return closestHit, closestHit != nil
}

// Bounds returns the bounding box of the whole hierarchy
func (bvh *BVH) Bounds() core.AABB {
	if len(bvh.nodes) == 0 {
		return core.AABB{}
	}
	return bvh.nodes[0].bounds
}

// NodeCount returns the number of arena slots
func (bvh *BVH) NodeCount() int {
	return len(bvh.nodes)
}

// ShapeCount returns the number of indexed shapes
func (bvh *BVH) ShapeCount() int {
	return len(bvh.shapes)
}

// CheckInvariants verifies the structural invariants of the arena: every
// interior box contains the union of its children, every leaf box contains
// its shapes, and the leaf ranges partition the shape slice.
func (bvh *BVH) CheckInvariants() error {
	if len(bvh.nodes) == 0 {
		return nil
	}

	covered := make([]bool, len(bvh.shapes))
	for i := range bvh.nodes {
		node := &bvh.nodes[i]
		if !node.bounds.IsValid() {
			return fmt.Errorf("node %d: inverted bounding box", i)
		}

		if node.count > 0 {
			for j := node.start; j < node.start+node.count; j++ {
				if covered[j] {
					return fmt.Errorf("node %d: shape %d in more than one leaf", i, j)
				}
				covered[j] = true
				if !node.bounds.Contains(bvh.shapes[j].BoundingBox()) {
					return fmt.Errorf("node %d: leaf bounds do not contain shape %d", i, j)
				}
			}
			continue
		}

		if node.left < 0 || node.right < 0 ||
			int(node.left) >= len(bvh.nodes) || int(node.right) >= len(bvh.nodes) {
			return fmt.Errorf("node %d: child index out of range", i)
		}
		childUnion := bvh.nodes[node.left].bounds.Union(bvh.nodes[node.right].bounds)
		if !node.bounds.Contains(childUnion) {
			return fmt.Errorf("node %d: bounds do not contain child union", i)
		}
	}

	for j, ok := range covered {
		if !ok {
			return fmt.Errorf("shape %d not reachable from any leaf", j)
		}
	}
	return nil
}
