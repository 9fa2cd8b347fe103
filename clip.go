package pathops

// The clipping core cuts the subject and clip rings at their mutual
// intersections, labels every intersection as an entry into or an exit out
// of the other polygon, and traces the result rings by walking along one
// ring and jumping to the other at each intersection. Intersection vertices
// live in matched pairs, one per ring, linked through their neighbor index.
// see G. Greiner and K. Hormann, "Efficient clipping of arbitrary polygons", 1998

// entryRule gives per operation whether the entry labels of the subject and
// clip rings are inverted before tracing. An inverted label reverses the
// walking direction at that intersection, which turns the intersection trace
// into a union or difference trace.
var entryRule = map[Op][2]bool{
	OpIntersect: {false, false},
	OpUnion:     {true, true},
	OpSubtract:  {true, false},
}

// insertIntersections finds all crossings between the subject and clip ring
// edges and inserts a linked pair of intersection vertices for each, ordered
// by their parametric position along the edge. Crossings within eps of an
// edge end point are not inserted; shared vertices and overlapping edges
// resolve through the degenerate shortcuts and the epsilon tolerance of the
// ordinary test. It returns the number of inserted pairs.
func insertIntersections(subject, clip *Polygon, eps float64) int {
	count := 0
	subjectEdges := subject.edgeList()
	clipEdges := clip.edgeList()
	for _, se := range subjectEdges {
		for _, ce := range clipEdges {
			pt, ta, tb, ok := intersectionLineLine(se.p0, se.p1, ce.p0, ce.p1)
			if !ok || ta < eps || 1.0-eps < ta || tb < eps || 1.0-eps < tb {
				continue
			}
			si := subject.insertIntersection(se.start, ta, pt)
			ci := clip.insertIntersection(ce.start, tb, pt)
			subject.verts[si].neighbor = ci
			clip.verts[ci].neighbor = si
			count++
		}
	}
	return count
}

// polygonsIntersect reports whether any edges of a and b cross, without
// modifying either ring.
func polygonsIntersect(a, b *Polygon, eps float64) bool {
	for _, ae := range a.edgeList() {
		for _, be := range b.edgeList() {
			_, ta, tb, ok := intersectionLineLine(ae.p0, ae.p1, be.p0, be.p1)
			if ok && eps < ta && ta < 1.0-eps && eps < tb && tb < 1.0-eps {
				return true
			}
		}
	}
	return false
}

// markEntries labels every intersection vertex of p: it is an entry when the
// midpoint of the ring segment immediately following it lies inside the
// other polygon, so tracing forward from an entry stays inside. invert flips
// all labels, per the operation's entry rule.
func markEntries(p, other *Polygon, invert bool) {
	i := 0
	for {
		v := &p.verts[i]
		if v.isIntersection {
			mid := v.Point.Interpolate(p.verts[v.next].Point, 0.5)
			inside := classifyPoint(mid, other) == pointInside
			v.entry = inside != invert
		}
		i = v.next
		if i == 0 {
			break
		}
	}
}

// markVisited marks the intersection vertex at i of p and its neighbor in
// the other polygon as consumed.
func markVisited(p, other *Polygon, i int) {
	p.verts[i].visited = true
	if nb := p.verts[i].neighbor; 0 <= nb {
		other.verts[nb].visited = true
	}
}

// traceRings walks the labeled intersection graph and returns one closed
// ring per traced loop. From an entry the walk moves forward along the
// current ring, from an exit backward, and at every intersection it jumps to
// the neighbor vertex on the other ring. A loop closes upon returning to its
// starting pair. The step bound guarantees termination even when labels are
// inconsistent on near-degenerate input.
func traceRings(subject, clip *Polygon) []*Polygon {
	var results []*Polygon
	maxSteps := 2 * (subject.Len() + clip.Len() + 2)
	for si := range subject.verts {
		if !subject.verts[si].isIntersection || subject.verts[si].visited {
			continue
		}
		start := subject.verts[si].neighbor

		var ring []Point
		cur, poly, other := si, subject, clip
		for steps := 0; steps < maxSteps; steps++ {
			markVisited(poly, other, cur)
			ring = append(ring, poly.verts[cur].Point)
			if poly.verts[cur].entry {
				for {
					cur = poly.verts[cur].next
					if poly.verts[cur].isIntersection {
						break
					}
					ring = append(ring, poly.verts[cur].Point)
				}
			} else {
				for {
					cur = poly.verts[cur].prev
					if poly.verts[cur].isIntersection {
						break
					}
					ring = append(ring, poly.verts[cur].Point)
				}
			}
			markVisited(poly, other, cur)
			cur = poly.verts[cur].neighbor
			poly, other = other, poly
			if poly == subject && cur == si || poly == clip && cur == start {
				break
			}
		}

		ring = dedupeRing(ring)
		if 3 <= len(ring) {
			results = append(results, newPolygon(ring))
		}
	}
	return results
}

// dedupeRing removes consecutive duplicate points, including across the
// ring's wrap-around.
func dedupeRing(points []Point) []Point {
	if len(points) == 0 {
		return points
	}
	out := points[:1]
	for _, pt := range points[1:] {
		if !pt.Equals(out[len(out)-1]) {
			out = append(out, pt)
		}
	}
	for 1 < len(out) && out[len(out)-1].Equals(out[0]) {
		out = out[:len(out)-1]
	}
	return out
}

// reversePolygon returns a fresh ring with the opposite winding direction.
func reversePolygon(p *Polygon) *Polygon {
	pts := p.points()
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
	return newPolygon(pts)
}

// resolveContainment handles a subject/clip ring pair without any edge
// crossings: one ring contains the other, they coincide, or they are
// disjoint.
func resolveContainment(op Op, subject, clip *Polygon) []*Polygon {
	subjectInClip := polygonInside(subject, clip)
	clipInSubject := !subjectInClip && polygonInside(clip, subject)
	switch op {
	case OpUnion:
		if subjectInClip {
			return []*Polygon{clip}
		} else if clipInSubject {
			return []*Polygon{subject}
		}
		return []*Polygon{subject, clip}
	case OpIntersect:
		if subjectInClip {
			return []*Polygon{subject}
		} else if clipInSubject {
			return []*Polygon{clip}
		}
		return nil
	case OpSubtract:
		if subjectInClip {
			return nil
		} else if clipInSubject {
			// clip punches a hole into the subject
			return []*Polygon{subject, reversePolygon(clip)}
		}
		return []*Polygon{subject}
	}
	return nil
}

// clipPolygons runs one clipping pass of op between a single subject ring
// and a single clip ring. The inputs are not modified; the intersection
// graph is built on working copies that are discarded afterwards.
func clipPolygons(op Op, subject, clip *Polygon, eps float64) []*Polygon {
	if polygonsIdentical(subject, clip) {
		switch op {
		case OpUnion, OpIntersect:
			return []*Polygon{newPolygon(subject.points())}
		}
		return nil
	}

	s := newPolygon(subject.points())
	c := newPolygon(clip.points())
	if insertIntersections(s, c, eps) == 0 {
		return resolveContainment(op, s, c)
	}
	rule := entryRule[op]
	markEntries(s, c, rule[0])
	markEntries(c, s, rule[1])
	return traceRings(s, c)
}
