package pathops

import "math"

// Op is a boolean path operation.
type Op int

const (
	OpUnion Op = iota
	OpSubtract
	OpIntersect
	OpExclude
)

func (op Op) String() string {
	switch op {
	case OpUnion:
		return "union"
	case OpSubtract:
		return "subtract"
	case OpIntersect:
		return "intersect"
	case OpExclude:
		return "exclude"
	}
	return "unknown"
}

// DefaultFlattenTolerance is the maximum deviation between a curve and its
// polyline approximation when no tolerance is given.
const DefaultFlattenTolerance = 0.01

// Options tunes the engine. The zero value of a field selects its default.
type Options struct {
	// FlattenTolerance is the maximum deviation allowed when flattening
	// curved path commands into polygon edges.
	FlattenTolerance float64

	// Epsilon is the clipping tolerance: intersections closer than this to
	// an edge end point are not inserted and resolve through the degenerate
	// handling instead.
	Epsilon float64
}

func (opts *Options) tolerance() float64 {
	if opts != nil && 0.0 < opts.FlattenTolerance {
		return opts.FlattenTolerance
	}
	return DefaultFlattenTolerance
}

func (opts *Options) epsilon() float64 {
	if opts != nil && 0.0 < opts.Epsilon {
		return opts.Epsilon
	}
	return Epsilon
}

// BooleanOperationResult is the outcome of a boolean path operation. It is
// constructed once per call and not modified afterwards.
type BooleanOperationResult struct {
	Success bool
	Paths   []*Path
}

// ComputeBooleanOperation computes the boolean operation op between the
// subject and clip paths and returns the resulting path geometry. Inputs are
// only read; all result geometry is newly allocated, so concurrent calls are
// safe. Degenerate inputs (empty, identical, zero-area) resolve to their
// identities and still succeed; only non-finite coordinates are an error.
func ComputeBooleanOperation(op Op, subject, clip []*Path, opts *Options) (BooleanOperationResult, error) {
	tolerance := opts.tolerance()
	eps := opts.epsilon()

	subjectRings, err := ringsFromPaths(subject, tolerance)
	if err != nil {
		return BooleanOperationResult{}, err
	}
	clipRings, err := ringsFromPaths(clip, tolerance)
	if err != nil {
		return BooleanOperationResult{}, err
	}

	// degenerate shortcuts
	if len(clipRings) == 0 {
		if op == OpIntersect {
			return BooleanOperationResult{Success: true}, nil
		}
		return resultFromRings(subjectRings), nil
	}
	if len(subjectRings) == 0 {
		if op == OpUnion || op == OpExclude {
			return resultFromRings(clipRings), nil
		}
		return BooleanOperationResult{Success: true}, nil
	}
	if ringListsIdentical(subjectRings, clipRings) {
		if op == OpUnion || op == OpIntersect {
			return resultFromRings(subjectRings), nil
		}
		return BooleanOperationResult{Success: true}, nil
	}

	return resultFromRings(applyOp(op, subjectRings, clipRings, eps)), nil
}

// Union returns the combined area of the subject and clip paths.
func Union(subject, clip []*Path, opts *Options) (BooleanOperationResult, error) {
	return ComputeBooleanOperation(OpUnion, subject, clip, opts)
}

// Subtract returns the subject area with the clip area removed.
func Subtract(subject, clip []*Path, opts *Options) (BooleanOperationResult, error) {
	return ComputeBooleanOperation(OpSubtract, subject, clip, opts)
}

// Intersect returns the area common to the subject and clip paths.
func Intersect(subject, clip []*Path, opts *Options) (BooleanOperationResult, error) {
	return ComputeBooleanOperation(OpIntersect, subject, clip, opts)
}

// Exclude returns the symmetric difference of the subject and clip paths.
func Exclude(subject, clip []*Path, opts *Options) (BooleanOperationResult, error) {
	return ComputeBooleanOperation(OpExclude, subject, clip, opts)
}

////////////////////////////////////////////////////////////////

// ringsFromPaths converts every subpath of every path into a polygon ring,
// dropping zero-area rings.
func ringsFromPaths(paths []*Path, tolerance float64) ([]*Polygon, error) {
	var rings []*Polygon
	for _, p := range paths {
		polys, err := polygonsFromPath(p, tolerance)
		if err != nil {
			return nil, err
		}
		for _, poly := range polys {
			if !isZeroArea(poly) {
				rings = append(rings, poly)
			}
		}
	}
	return rings, nil
}

// ringListsIdentical returns true when both ring lists match pairwise up to
// order, each pair being identical up to cyclic rotation.
func ringListsIdentical(a, b []*Polygon) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, ra := range a {
		found := false
		for j, rb := range b {
			if !used[j] && polygonsIdentical(ra, rb) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// ringsInteract returns true when two rings cross or one contains the other,
// ie. when a union pass would merge them.
func ringsInteract(a, b *Polygon, eps float64) bool {
	if polygonsIntersect(a, b, eps) {
		return true
	}
	return polygonInside(a, b) || polygonInside(b, a)
}

// applyOp runs the clipping algorithm over ring lists. Subtraction folds
// every clip ring over each subject ring in turn; intersection accumulates
// pairwise results; union merges interacting rings and keeps disjoint ones;
// exclusion runs as two subtraction passes on fresh intersection graphs.
func applyOp(op Op, subject, clip []*Polygon, eps float64) []*Polygon {
	switch op {
	case OpUnion:
		return unionRings(append(append([]*Polygon{}, subject...), clip...), eps)
	case OpIntersect:
		var results []*Polygon
		for _, s := range subject {
			for _, c := range clip {
				results = append(results, clipPolygons(OpIntersect, s, c, eps)...)
			}
		}
		return results
	case OpSubtract:
		var results []*Polygon
		for _, s := range subject {
			cur := []*Polygon{s}
			for _, c := range clip {
				var next []*Polygon
				for _, r := range cur {
					next = append(next, clipPolygons(OpSubtract, r, c, eps)...)
				}
				cur = next
			}
			results = append(results, cur...)
		}
		return results
	case OpExclude:
		return append(applyOp(OpSubtract, subject, clip, eps), applyOp(OpSubtract, clip, subject, eps)...)
	}
	return nil
}

// unionRings folds a ring list into its union: rings that cross or contain
// each other are merged by the clipping pass, disjoint rings are kept. Hole
// rings emitted by a merge are held apart from further merging so that a
// containment pass cannot swallow them into their own outline.
func unionRings(rings []*Polygon, eps float64) []*Polygon {
	var acc, extras []*Polygon
	for _, r := range rings {
		cur := r
		for {
			merged := false
			for i := 0; i < len(acc); i++ {
				if !ringsInteract(acc[i], cur, eps) {
					continue
				}
				res := clipPolygons(OpUnion, acc[i], cur, eps)
				acc = append(acc[:i], acc[i+1:]...)
				if len(res) == 0 {
					cur = nil
				} else {
					cur = res[0]
					extras = append(extras, res[1:]...)
				}
				merged = true
				break
			}
			if !merged || cur == nil {
				break
			}
		}
		if cur != nil {
			acc = append(acc, cur)
		}
	}
	return append(acc, extras...)
}

// resultFromRings groups result rings into paths with normalized winding.
func resultFromRings(rings []*Polygon) BooleanOperationResult {
	return BooleanOperationResult{Success: true, Paths: assemblePaths(rings)}
}

// assemblePaths nests the result rings by containment: rings at even nesting
// depth are region outlines, rings at odd depth are holes in their enclosing
// ring and become a subpath of its path. The clipping trace emits rings in
// either winding direction, so winding is normalized here from the nesting
// depth alone, counter clockwise for outlines and clockwise for holes.
func assemblePaths(rings []*Polygon) []*Path {
	if len(rings) == 0 {
		return nil
	}
	areas := make([]float64, len(rings))
	for i, r := range rings {
		areas[i] = signedArea(r)
	}

	// parent is the smallest ring strictly containing the ring
	parent := make([]int, len(rings))
	for i, r := range rings {
		parent[i] = -1
		for j, other := range rings {
			if i == j {
				continue
			}
			if polygonInside(r, other) && !polygonInside(other, r) {
				if parent[i] == -1 || math.Abs(areas[j]) < math.Abs(areas[parent[i]]) {
					parent[i] = j
				}
			}
		}
	}
	depth := make([]int, len(rings))
	for i := range rings {
		for j := parent[i]; j != -1; j = parent[j] {
			depth[i]++
		}
	}

	oriented := func(i int, ccw bool) *Path {
		r := rings[i]
		if ccw != (0.0 < areas[i]) {
			r = reversePolygon(r)
		}
		return r.Path()
	}

	paths := make(map[int]*Path, len(rings))
	var order []int
	for i := range rings {
		if depth[i]%2 == 0 {
			paths[i] = oriented(i, true)
			order = append(order, i)
		}
	}
	for i := range rings {
		if depth[i]%2 == 1 {
			if outer, ok := paths[parent[i]]; ok {
				outer.Append(oriented(i, false))
			} else {
				paths[i] = oriented(i, true)
				order = append(order, i)
			}
		}
	}

	result := make([]*Path, 0, len(order))
	for _, i := range order {
		paths[i].FillRule = NonZero
		result = append(result, paths[i])
	}
	return result
}
