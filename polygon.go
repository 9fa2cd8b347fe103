package pathops

import (
	"fmt"
	"strings"
)

// Vertex is a node of a closed polygon ring. Rings are stored as an arena of
// vertices per polygon; next and prev are indices into that arena so the
// cyclic structure holds no live pointer cycles. For intersection vertices,
// neighbor is the index of the matching intersection vertex in the other
// polygon's arena and alpha its parametric position along the source edge.
type Vertex struct {
	Point

	next, prev int
	neighbor   int

	isIntersection bool
	alpha          float64
	entry          bool
	visited        bool
}

// cloneVertex copies the coordinate and flags but never the ring links,
// detaching the copy from any ring.
func cloneVertex(v Vertex) Vertex {
	v.next, v.prev = 0, 0
	v.neighbor = -1
	return v
}

// Polygon is a single closed ring of vertices. The ring starts at arena
// index 0; every vertex satisfies verts[verts[i].next].prev == i.
type Polygon struct {
	verts []Vertex
}

// newPolygon builds a closed ring from a point list.
func newPolygon(points []Point) *Polygon {
	n := len(points)
	p := &Polygon{verts: make([]Vertex, n)}
	for i, pt := range points {
		p.verts[i] = Vertex{
			Point:    pt,
			next:     (i + 1) % n,
			prev:     (i + n - 1) % n,
			neighbor: -1,
		}
	}
	return p
}

// Len returns the number of vertices in the ring.
func (p *Polygon) Len() int {
	return len(p.verts)
}

// insertAfter splices v into the ring immediately following the vertex at
// index at, and returns the index of the inserted vertex.
func (p *Polygon) insertAfter(at int, v Vertex) int {
	i := len(p.verts)
	next := p.verts[at].next
	v.prev = at
	v.next = next
	p.verts = append(p.verts, v)
	p.verts[at].next = i
	p.verts[next].prev = i
	return i
}

// insertIntersection inserts an intersection vertex at pt on the edge
// starting at edgeStart, keeping intersections on that edge ordered by
// ascending alpha. It returns the index of the inserted vertex.
func (p *Polygon) insertIntersection(edgeStart int, alpha float64, pt Point) int {
	at := edgeStart
	for {
		next := p.verts[at].next
		if !p.verts[next].isIntersection || alpha < p.verts[next].alpha {
			break
		}
		at = next
	}
	return p.insertAfter(at, Vertex{
		Point:          pt,
		neighbor:       -1,
		isIntersection: true,
		alpha:          alpha,
	})
}

// points returns the ring coordinates in ring order, starting at index 0.
func (p *Polygon) points() []Point {
	pts := make([]Point, 0, len(p.verts))
	i := 0
	for {
		pts = append(pts, p.verts[i].Point)
		i = p.verts[i].next
		if i == 0 {
			break
		}
	}
	return pts
}

// edge is a snapshot of a ring edge used for intersection detection, taken
// before any intersection vertices are inserted.
type edge struct {
	start  int // arena index of the edge's start vertex
	p0, p1 Point
}

// edgeList returns the current ring edges in ring order.
func (p *Polygon) edgeList() []edge {
	edges := make([]edge, 0, len(p.verts))
	i := 0
	for {
		next := p.verts[i].next
		edges = append(edges, edge{i, p.verts[i].Point, p.verts[next].Point})
		i = next
		if i == 0 {
			break
		}
	}
	return edges
}

// Path converts the ring back to path commands: a MoveTo for the first
// vertex, LineTo for each subsequent vertex, and a Close.
func (p *Polygon) Path() *Path {
	q := &Path{}
	i := 0
	for {
		v := p.verts[i]
		if i == 0 {
			q.MoveTo(v.X, v.Y)
		} else {
			q.LineTo(v.X, v.Y)
		}
		i = v.next
		if i == 0 {
			break
		}
	}
	q.Close()
	return q
}

func (p *Polygon) String() string {
	sb := strings.Builder{}
	i := 0
	for {
		v := p.verts[i]
		if 0 < sb.Len() {
			sb.WriteByte(' ')
		}
		if v.isIntersection {
			fmt.Fprintf(&sb, "I%v@%g", v.Point, v.alpha)
		} else {
			fmt.Fprintf(&sb, "%v", v.Point)
		}
		i = v.next
		if i == 0 {
			break
		}
	}
	return sb.String()
}

////////////////////////////////////////////////////////////////

// polygonsFromPath flattens each subpath of the path into one closed polygon
// ring within the given tolerance. Unclosed subpaths are implicitly closed.
// Subpaths with fewer than three distinct points are dropped. Non-finite
// coordinates are rejected here, before they can enter the algorithm.
func polygonsFromPath(p *Path, tolerance float64) ([]*Polygon, error) {
	if err := p.checkFinite(); err != nil {
		return nil, err
	}

	var polys []*Polygon
	var points []Point
	flush := func() {
		if 0 < len(points) && points[len(points)-1].Equals(points[0]) {
			points = points[:len(points)-1]
		}
		if 3 <= len(points) {
			polys = append(polys, newPolygon(points))
		}
		points = nil
	}

	var start Point
	i := 0
	for _, cmd := range p.cmds {
		switch cmd {
		case MoveToCmd:
			flush()
			start = Point{p.d[i], p.d[i+1]}
			points = append(points, start)
		case LineToCmd:
			if len(points) == 0 {
				points = append(points, start)
			}
			end := Point{p.d[i], p.d[i+1]}
			if !end.Equals(start) {
				points = append(points, end)
			}
			start = end
		case CubeToCmd:
			if len(points) == 0 {
				points = append(points, start)
			}
			cp1 := Point{p.d[i], p.d[i+1]}
			cp2 := Point{p.d[i+2], p.d[i+3]}
			end := Point{p.d[i+4], p.d[i+5]}
			flattened := flattenCubicBezier(start, cp1, cp2, end, tolerance)
			for _, pt := range flattened[1:] {
				if !pt.Equals(points[len(points)-1]) {
					points = append(points, pt)
				}
			}
			start = end
		case CloseCmd:
			flush()
		}
		i += cmdLen(cmd)
	}
	flush()
	return polys, nil
}

// pathFromPolygons emits one Path per polygon ring.
func pathFromPolygons(polys []*Polygon) []*Path {
	paths := make([]*Path, 0, len(polys))
	for _, poly := range polys {
		paths = append(paths, poly.Path())
	}
	return paths
}
