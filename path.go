package pathops

import (
	"fmt"
)

// FillRule determines which regions of a self-overlapping path count as filled.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

func (fillRule FillRule) String() string {
	if fillRule == NonZero {
		return "NonZero"
	}
	return "EvenOdd"
}

// PathCmd is a path command.
type PathCmd int

const (
	MoveToCmd PathCmd = iota
	LineToCmd
	CubeToCmd
	CloseCmd
)

// cmdLen returns the number of coordinate values for a command.
func cmdLen(cmd PathCmd) int {
	switch cmd {
	case MoveToCmd, LineToCmd:
		return 2
	case CubeToCmd:
		return 6
	}
	return 0
}

// Path describes vector path geometry as a sequence of commands with their
// coordinates packed in d. A path may contain multiple subpaths, each
// starting with a MoveTo. The boolean engine only reads paths; results are
// newly allocated.
type Path struct {
	FillRule FillRule

	cmds []PathCmd
	d    []float64
	x0   float64
	y0   float64
}

// Empty returns true if the path has no commands.
func (p *Path) Empty() bool {
	return len(p.cmds) == 0
}

// Pos returns the current position, ie. the end point of the last command.
func (p *Path) Pos() (float64, float64) {
	if 0 < len(p.cmds) && p.cmds[len(p.cmds)-1] == CloseCmd {
		return p.x0, p.y0
	}
	if 1 < len(p.d) {
		return p.d[len(p.d)-2], p.d[len(p.d)-1]
	}
	return 0.0, 0.0
}

// MoveTo starts a new subpath at (x,y).
func (p *Path) MoveTo(x, y float64) {
	p.cmds = append(p.cmds, MoveToCmd)
	p.d = append(p.d, x, y)
	p.x0, p.y0 = x, y
}

// LineTo adds a line towards (x,y).
func (p *Path) LineTo(x, y float64) {
	p.cmds = append(p.cmds, LineToCmd)
	p.d = append(p.d, x, y)
}

// CubeTo adds a cubic Bezier with control points (x1,y1) and (x2,y2) towards (x,y).
func (p *Path) CubeTo(x1, y1, x2, y2, x, y float64) {
	p.cmds = append(p.cmds, CubeToCmd)
	p.d = append(p.d, x1, y1, x2, y2, x, y)
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.cmds = append(p.cmds, CloseCmd)
}

// Append appends path q to p and returns p.
func (p *Path) Append(q *Path) *Path {
	if q != nil && !q.Empty() {
		p.cmds = append(p.cmds, q.cmds...)
		p.d = append(p.d, q.d...)
		p.x0, p.y0 = q.x0, q.y0
	}
	return p
}

// Split splits the path into its subpaths, each starting with a MoveTo.
func (p *Path) Split() []*Path {
	var ps []*Path
	var cur *Path
	i := 0
	for _, cmd := range p.cmds {
		if cmd == MoveToCmd {
			if cur != nil && !cur.Empty() {
				ps = append(ps, cur)
			}
			cur = &Path{FillRule: p.FillRule}
		}
		if cur == nil {
			cur = &Path{FillRule: p.FillRule}
			cur.MoveTo(0.0, 0.0)
		}
		n := cmdLen(cmd)
		cur.cmds = append(cur.cmds, cmd)
		cur.d = append(cur.d, p.d[i:i+n]...)
		if cmd == MoveToCmd {
			cur.x0, cur.y0 = p.d[i], p.d[i+1]
		}
		i += n
	}
	if cur != nil && !cur.Empty() {
		ps = append(ps, cur)
	}
	return ps
}

// Closed returns true if the last subpath is closed.
func (p *Path) Closed() bool {
	return 0 < len(p.cmds) && p.cmds[len(p.cmds)-1] == CloseCmd
}

// checkFinite returns an error when any coordinate is NaN or infinite. This
// is the validation boundary: non-finite values would otherwise silently
// pass every epsilon comparison and corrupt the intersection graph.
func (p *Path) checkFinite() error {
	for _, f := range p.d {
		if !isFinite(f) {
			return fmt.Errorf("path coordinate is not finite: %v", f)
		}
	}
	return nil
}

// Bounds returns the bounding rectangle of the path.
func (p *Path) Bounds() Rect {
	if p.Empty() {
		return Rect{}
	}
	var r Rect
	var start, first Point
	set := false
	i := 0
	for _, cmd := range p.cmds {
		switch cmd {
		case MoveToCmd:
			start = Point{p.d[i], p.d[i+1]}
			first = start
		case LineToCmd:
			end := Point{p.d[i], p.d[i+1]}
			if !set {
				r = pointsRect(start, end)
				set = true
			} else {
				r = r.Add(pointsRect(start, end))
			}
			start = end
		case CubeToCmd:
			cp1 := Point{p.d[i], p.d[i+1]}
			cp2 := Point{p.d[i+2], p.d[i+3]}
			end := Point{p.d[i+4], p.d[i+5]}
			b := cubicBezierBounds(start, cp1, cp2, end)
			if !set {
				r = b
				set = true
			} else {
				r = r.Add(b)
			}
			start = end
		case CloseCmd:
			start = first
		}
		i += cmdLen(cmd)
	}
	if !set {
		return pointsRect(first)
	}
	return r
}

// Area returns the signed area enclosed by the path using the shoelace
// formula extended to cubic Beziers by Green's theorem. Counter clockwise
// subpaths are positive.
func (p *Path) Area() float64 {
	area := 0.0
	var start, first Point
	i := 0
	for _, cmd := range p.cmds {
		switch cmd {
		case MoveToCmd:
			start = Point{p.d[i], p.d[i+1]}
			first = start
		case LineToCmd:
			end := Point{p.d[i], p.d[i+1]}
			area += start.PerpDot(end) / 2.0
			start = end
		case CubeToCmd:
			cp1 := Point{p.d[i], p.d[i+1]}
			cp2 := Point{p.d[i+2], p.d[i+3]}
			end := Point{p.d[i+4], p.d[i+5]}
			area += cubicArea(start, cp1, cp2, end)
			start = end
		case CloseCmd:
			area += start.PerpDot(first) / 2.0
			start = first
		}
		i += cmdLen(cmd)
	}
	return area
}

// cubicArea is the signed area contribution of a cubic Bezier, obtained by
// integrating x*dy over the curve.
func cubicArea(p0, p1, p2, p3 Point) float64 {
	return (p0.X*(6.0*p1.Y+3.0*p2.Y+p3.Y) +
		3.0*p1.X*(-2.0*p0.Y+p2.Y+p3.Y) +
		3.0*p2.X*(-p0.Y-p1.Y+2.0*p3.Y) +
		p3.X*(-p0.Y-3.0*p1.Y-6.0*p2.Y)) / 20.0
}

////////////////////////////////////////////////////////////////

// Rectangle returns a closed rectangle at (x,y) with size (w,h).
func Rectangle(x, y, w, h float64) *Path {
	p := &Path{}
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
	return p
}

// circleKappa relates the cubic Bezier control distance to the radius for a
// quarter circle approximation.
const circleKappa = 0.5522847498307936

// Circle returns a closed circle approximation at (cx,cy) with radius r,
// built from four cubic Beziers.
func Circle(cx, cy, r float64) *Path {
	k := circleKappa * r
	p := &Path{}
	p.MoveTo(cx+r, cy)
	p.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	p.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	p.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	p.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	p.Close()
	return p
}
