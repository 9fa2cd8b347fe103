package pathops

import "math"

// pointLocation is the result of classifying a point against a ring.
type pointLocation int

const (
	pointInside pointLocation = iota
	pointOutside
	pointOnBoundary
)

func (loc pointLocation) String() string {
	if loc == pointInside {
		return "inside"
	} else if loc == pointOutside {
		return "outside"
	}
	return "on boundary"
}

// distToSegment returns the distance from pt to segment a-b.
func distToSegment(pt, a, b Point) float64 {
	d := b.Sub(a)
	length2 := d.Dot(d)
	if length2 == 0.0 {
		return pt.Sub(a).Length()
	}
	t := pt.Sub(a).Dot(d) / length2
	t = math.Max(0.0, math.Min(1.0, t))
	return pt.Sub(a.Interpolate(b, t)).Length()
}

// classifyPoint tests pt against the ring with a crossing-number ray test.
// Points within Epsilon of any edge classify as on the boundary before the
// parity count applies.
func classifyPoint(pt Point, p *Polygon) pointLocation {
	for _, e := range p.edgeList() {
		if distToSegment(pt, e.p0, e.p1) < Epsilon {
			return pointOnBoundary
		}
	}

	inside := false
	for _, e := range p.edgeList() {
		if (e.p0.Y > pt.Y) != (e.p1.Y > pt.Y) {
			x := e.p0.X + (pt.Y-e.p0.Y)/(e.p1.Y-e.p0.Y)*(e.p1.X-e.p0.X)
			if pt.X < x {
				inside = !inside
			}
		}
	}
	if inside {
		return pointInside
	}
	return pointOutside
}

// windingNumber returns the signed number of times the ring winds around pt,
// counting upward crossings of the horizontal ray through pt as positive and
// downward crossings as negative. Nonzero supports the NonZero fill rule;
// parity of the absolute count matches EvenOdd.
func windingNumber(pt Point, p *Polygon) int {
	n := 0
	for _, e := range p.edgeList() {
		if e.p0.Y <= pt.Y {
			if pt.Y < e.p1.Y && 0.0 < e.p1.Sub(e.p0).PerpDot(pt.Sub(e.p0)) {
				n++
			}
		} else if e.p1.Y <= pt.Y && e.p1.Sub(e.p0).PerpDot(pt.Sub(e.p0)) < 0.0 {
			n--
		}
	}
	return n
}

// pointInPolygons tests pt against a set of rings under the given fill rule.
// Points on any ring boundary count as inside.
func pointInPolygons(pt Point, polys []*Polygon, fillRule FillRule) bool {
	winding := 0
	for _, p := range polys {
		if classifyPoint(pt, p) == pointOnBoundary {
			return true
		}
		winding += windingNumber(pt, p)
	}
	if fillRule == NonZero {
		return winding != 0
	}
	crossings := 0
	for _, p := range polys {
		if classifyPoint(pt, p) == pointInside {
			crossings++
		}
	}
	return crossings%2 == 1
}

////////////////////////////////////////////////////////////////

// zeroAreaEpsilon bounds the ring area magnitude below which a ring is
// degenerate (collinear or coincident vertices).
const zeroAreaEpsilon = 1e-9

// signedArea returns the shoelace area of the ring, positive for counter
// clockwise winding.
func signedArea(p *Polygon) float64 {
	area := 0.0
	for _, e := range p.edgeList() {
		area += e.p0.PerpDot(e.p1)
	}
	return area / 2.0
}

// isZeroArea returns true when the ring encloses no area.
func isZeroArea(p *Polygon) bool {
	return math.Abs(signedArea(p)) < zeroAreaEpsilon
}

// hasSharedVertices returns true if any vertex of a exactly coincides with a
// vertex of b.
func hasSharedVertices(a, b *Polygon) bool {
	for _, va := range a.points() {
		for _, vb := range b.points() {
			if va == vb {
				return true
			}
		}
	}
	return false
}

// polygonsIdentical returns true if both rings have pairwise equal vertex
// sequences up to a cyclic rotation of the start index.
func polygonsIdentical(a, b *Polygon) bool {
	pa, pb := a.points(), b.points()
	if len(pa) != len(pb) {
		return false
	}
	n := len(pa)
	for offset := 0; offset < n; offset++ {
		if !pb[offset].Equals(pa[0]) {
			continue
		}
		match := true
		for i := 1; i < n; i++ {
			if !pa[i].Equals(pb[(offset+i)%n]) {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// isSimplePolygon returns true when no two non-adjacent ring edges intersect.
func isSimplePolygon(p *Polygon) bool {
	edges := p.edgeList()
	n := len(edges)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if j == i+1 || i == 0 && j == n-1 {
				continue
			}
			if _, _, _, ok := intersectionLineLine(edges[i].p0, edges[i].p1, edges[j].p0, edges[j].p1); ok {
				return false
			}
		}
	}
	return true
}

// polygonInside returns true if ring a lies inside ring b, or coincides with
// it. The rings may touch but must not cross.
func polygonInside(a, b *Polygon) bool {
	for _, pt := range a.points() {
		switch classifyPoint(pt, b) {
		case pointInside:
			return true
		case pointOutside:
			return false
		}
	}
	for _, e := range a.edgeList() {
		switch classifyPoint(e.p0.Interpolate(e.p1, 0.5), b) {
		case pointInside:
			return true
		case pointOutside:
			return false
		}
	}
	// every sample on the boundary: rings coincide
	return true
}
