package pathops

import (
	"math"
	"sort"
)

// Maximum subdivision depths. Near-degenerate curves (coincident control
// points) stop subdividing at the bound and are treated as flat.
const (
	flattenMaxDepth = 24
	clipMaxDepth    = 32
)

// solveQuadratic returns the real roots of a*x^2 + b*x + c = 0 in ascending
// order. When a is zero the linear equation is solved instead. Double roots
// are returned once. It never returns NaN.
// see https://math.stackexchange.com/a/2007723 on avoiding catastrophic cancellation
func solveQuadratic(a, b, c float64) []float64 {
	if equal(a, 0.0) {
		if equal(b, 0.0) {
			// all terms disappear or no solutions exist
			return nil
		}
		return []float64{-c / b}
	}

	discriminant := b*b - 4.0*a*c
	if discriminant < 0.0 {
		return nil
	} else if discriminant == 0.0 {
		return []float64{-b / (2.0 * a)}
	}

	// calculate the root where b and the radical have different signs, and
	// derive the other via the Citardauq formula
	q := math.Sqrt(discriminant)
	if b < 0.0 {
		q = -q
	}
	x1 := -(b + q) / (2.0 * a)
	x2 := c / (a * x1)
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	return []float64{x1, x2}
}

////////////////////////////////////////////////////////////////

// cubicBezierPos evaluates the cubic Bezier in the Bernstein basis, exact at
// the end points: t=0 gives p0 and t=1 gives p3.
func cubicBezierPos(p0, p1, p2, p3 Point, t float64) Point {
	if t == 0.0 {
		return p0
	} else if t == 1.0 {
		return p3
	}
	p := p0.Mul((1.0 - t) * (1.0 - t) * (1.0 - t))
	p = p.Add(p1.Mul(3.0 * (1.0 - t) * (1.0 - t) * t))
	p = p.Add(p2.Mul(3.0 * (1.0 - t) * t * t))
	p = p.Add(p3.Mul(t * t * t))
	return p
}

// cubicBezierDeriv returns the tangent vector of the cubic Bezier at t, ie.
// the quadratic derivative polynomial scaled by 3.
func cubicBezierDeriv(p0, p1, p2, p3 Point, t float64) Point {
	p := p1.Sub(p0).Mul(3.0 * (1.0 - t) * (1.0 - t))
	p = p.Add(p2.Sub(p1).Mul(6.0 * (1.0 - t) * t))
	p = p.Add(p3.Sub(p2).Mul(3.0 * t * t))
	return p
}

// cubicBezierBounds returns the axis-aligned bounding box of the cubic
// Bezier, from its end points and the interior extrema where the derivative
// becomes zero in either axis.
func cubicBezierBounds(p0, p1, p2, p3 Point) Rect {
	r := pointsRect(p0, p3)

	// derivative coefficients per axis: 3*(a*t^2 + b*t + c)
	ax := -p0.X + 3.0*p1.X - 3.0*p2.X + p3.X
	bx := 2.0*p0.X - 4.0*p1.X + 2.0*p2.X
	cx := p1.X - p0.X
	ay := -p0.Y + 3.0*p1.Y - 3.0*p2.Y + p3.Y
	by := 2.0*p0.Y - 4.0*p1.Y + 2.0*p2.Y
	cy := p1.Y - p0.Y

	for _, root := range solveQuadratic(ax, bx, cx) {
		if 0.0 < root && root < 1.0 {
			r = r.Add(pointsRect(cubicBezierPos(p0, p1, p2, p3, root)))
		}
	}
	for _, root := range solveQuadratic(ay, by, cy) {
		if 0.0 < root && root < 1.0 {
			r = r.Add(pointsRect(cubicBezierPos(p0, p1, p2, p3, root)))
		}
	}
	return r
}

// cubicBezierSplit splits the cubic Bezier at t using De Casteljau's
// algorithm. The first returned curve spans [0,t] and the second [t,1] of
// the original; q3 and r0 are the same split point.
func cubicBezierSplit(p0, p1, p2, p3 Point, t float64) (Point, Point, Point, Point, Point, Point, Point, Point) {
	pm := p1.Interpolate(p2, t)

	q0 := p0
	q1 := p0.Interpolate(p1, t)
	q2 := q1.Interpolate(pm, t)

	r3 := p3
	r2 := p2.Interpolate(p3, t)
	r1 := pm.Interpolate(r2, t)

	r0 := q2.Interpolate(r1, t)
	q3 := r0
	return q0, q1, q2, q3, r0, r1, r2, r3
}

// cubicBezierFlat returns true if both control points deviate less than
// tolerance from the chord p0-p3.
func cubicBezierFlat(p0, p1, p2, p3 Point, tolerance float64) bool {
	d := p3.Sub(p0)
	length := d.Length()
	if length < Epsilon {
		// degenerate chord, measure control point distance directly
		return p1.Sub(p0).Length() < tolerance && p2.Sub(p0).Length() < tolerance
	}
	d1 := math.Abs(d.PerpDot(p1.Sub(p0))) / length
	d2 := math.Abs(d.PerpDot(p2.Sub(p0))) / length
	return d1 < tolerance && d2 < tolerance
}

// flattenCubicBezier approximates the cubic Bezier by a polyline that
// deviates less than tolerance from the curve. The first and last points are
// exactly p0 and p3. Subdivision uses an explicit stack with bounded depth so
// that near-degenerate curves terminate.
func flattenCubicBezier(p0, p1, p2, p3 Point, tolerance float64) []Point {
	points, _ := flattenCubicBezierT(p0, p1, p2, p3, tolerance)
	return points
}

// flattenCubicBezierT is flattenCubicBezier but also returns the curve
// parameter of every emitted point.
func flattenCubicBezierT(p0, p1, p2, p3 Point, tolerance float64) ([]Point, []float64) {
	type frame struct {
		p0, p1, p2, p3 Point
		t0, t1         float64
		depth          int
	}

	points := []Point{p0}
	ts := []float64{0.0}
	stack := []frame{{p0, p1, p2, p3, 0.0, 1.0, 0}}
	for 0 < len(stack) {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if flattenMaxDepth <= f.depth || cubicBezierFlat(f.p0, f.p1, f.p2, f.p3, tolerance) {
			points = append(points, f.p3)
			ts = append(ts, f.t1)
			continue
		}
		q0, q1, q2, q3, r0, r1, r2, r3 := cubicBezierSplit(f.p0, f.p1, f.p2, f.p3, 0.5)
		tm := (f.t0 + f.t1) / 2.0
		// push the right half first so the left half is handled next
		stack = append(stack, frame{r0, r1, r2, r3, tm, f.t1, f.depth + 1})
		stack = append(stack, frame{q0, q1, q2, q3, f.t0, tm, f.depth + 1})
	}
	points[len(points)-1] = p3
	return points, ts
}

////////////////////////////////////////////////////////////////

// intersectionLineLine returns the intersection between line segments a0-a1
// and b0-b1 with the parameter positions along both segments. It solves the
// 2x2 linear system in determinant form; parallel or collinear segments
// report no intersection, as do parameters outside [0,1]. Collinear
// overlapping segments are a documented limitation and report no
// intersection.
// see http://www.cs.swan.ac.uk/~cssimon/line_intersection.html
func intersectionLineLine(a0, a1, b0, b1 Point) (Point, float64, float64, bool) {
	da := a1.Sub(a0)
	db := b1.Sub(b0)
	div := da.PerpDot(db)
	if equal(div, 0.0) {
		return Point{}, 0.0, 0.0, false
	}

	ta := db.PerpDot(a0.Sub(b0)) / div
	tb := da.PerpDot(a0.Sub(b0)) / div
	if !interval(ta, 0.0, 1.0) || !interval(tb, 0.0, 1.0) {
		return Point{}, 0.0, 0.0, false
	}
	ta = math.Max(0.0, math.Min(1.0, ta))
	tb = math.Max(0.0, math.Min(1.0, tb))
	return a0.Interpolate(a1, ta), ta, tb, true
}

// curveIntersection is an intersection between two parametrized segments,
// with TA the parameter on the first and TB on the second.
type curveIntersection struct {
	Point
	TA, TB float64
}

// intersectionLineCubic returns the intersections between line segment l0-l1
// and the cubic Bezier p0,p1,p2,p3. TA is the position along the line and TB
// along the curve. The curve is flattened within tolerance and every
// flattened segment is tested against the line; hits are polished with a
// Newton step on the exact curve. Hits are sorted by curve position.
func intersectionLineCubic(l0, l1, p0, p1, p2, p3 Point, tolerance float64) []curveIntersection {
	if l0.Equals(l1) {
		return nil
	}

	// write line as A.X = bias
	A := Point{l1.Y - l0.Y, l0.X - l1.X}
	bias := l0.Dot(A)

	points, ts := flattenCubicBezierT(p0, p1, p2, p3, tolerance)
	horizontal := math.Abs(l1.Y-l0.Y) <= math.Abs(l1.X-l0.X)

	var zs []curveIntersection
	for i := 1; i < len(points); i++ {
		_, _, tseg, ok := intersectionLineLine(l0, l1, points[i-1], points[i])
		if !ok {
			continue
		}
		t := ts[i-1] + tseg*(ts[i]-ts[i-1])

		// Newton step on f(t) = A.B(t) - bias
		for n := 0; n < 4; n++ {
			f := A.Dot(cubicBezierPos(p0, p1, p2, p3, t)) - bias
			df := A.Dot(cubicBezierDeriv(p0, p1, p2, p3, t))
			if equal(df, 0.0) {
				break
			}
			t -= f / df
		}
		if !interval(t, 0.0, 1.0) {
			continue
		}
		t = math.Max(0.0, math.Min(1.0, t))

		pos := cubicBezierPos(p0, p1, p2, p3, t)
		var s float64
		if horizontal {
			s = (pos.X - l0.X) / (l1.X - l0.X)
		} else {
			s = (pos.Y - l0.Y) / (l1.Y - l0.Y)
		}
		if !interval(s, 0.0, 1.0) {
			continue
		}
		s = math.Max(0.0, math.Min(1.0, s))

		duplicate := false
		for _, z := range zs {
			if equal(z.TB, t) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			zs = append(zs, curveIntersection{pos, s, t})
		}
	}
	sort.Slice(zs, func(i, j int) bool {
		return zs[i].TB < zs[j].TB
	})
	return zs
}

// intersectionCubicCubic returns the intersections between two cubic Beziers
// with TA the parameter on the first curve and TB on the second. It uses
// bounding-box rejection with subdivision on both curves (Bezier clipping)
// over an explicit stack with bounded depth.
// see T.W. Sederberg and T. Nishita, "Curve intersection using Bézier clipping", 1990
func intersectionCubicCubic(a0, a1, a2, a3, b0, b1, b2, b3 Point, tolerance float64) []curveIntersection {
	type frame struct {
		a0, a1, a2, a3 Point
		b0, b1, b2, b3 Point
		ta0, ta1       float64
		tb0, tb1       float64
		depth          int
	}

	var zs []curveIntersection
	add := func(pos Point, ta, tb float64) {
		for _, z := range zs {
			if math.Abs(z.TA-ta) < 1e-6 && math.Abs(z.TB-tb) < 1e-6 {
				return
			}
		}
		zs = append(zs, curveIntersection{pos, ta, tb})
	}

	stack := []frame{{a0, a1, a2, a3, b0, b1, b2, b3, 0.0, 1.0, 0.0, 1.0, 0}}
	for 0 < len(stack) {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// the control polygon hull bounds the curve
		if !pointsRect(f.a0, f.a1, f.a2, f.a3).Overlaps(pointsRect(f.b0, f.b1, f.b2, f.b3)) {
			continue
		}

		flatA := cubicBezierFlat(f.a0, f.a1, f.a2, f.a3, tolerance)
		flatB := cubicBezierFlat(f.b0, f.b1, f.b2, f.b3, tolerance)
		if clipMaxDepth <= f.depth || flatA && flatB {
			if pos, ta, tb, ok := intersectionLineLine(f.a0, f.a3, f.b0, f.b3); ok {
				add(pos, f.ta0+ta*(f.ta1-f.ta0), f.tb0+tb*(f.tb1-f.tb0))
			}
			continue
		}

		if !flatA {
			q0, q1, q2, q3, r0, r1, r2, r3 := cubicBezierSplit(f.a0, f.a1, f.a2, f.a3, 0.5)
			tm := (f.ta0 + f.ta1) / 2.0
			stack = append(stack,
				frame{q0, q1, q2, q3, f.b0, f.b1, f.b2, f.b3, f.ta0, tm, f.tb0, f.tb1, f.depth + 1},
				frame{r0, r1, r2, r3, f.b0, f.b1, f.b2, f.b3, tm, f.ta1, f.tb0, f.tb1, f.depth + 1})
		} else {
			q0, q1, q2, q3, r0, r1, r2, r3 := cubicBezierSplit(f.b0, f.b1, f.b2, f.b3, 0.5)
			tm := (f.tb0 + f.tb1) / 2.0
			stack = append(stack,
				frame{f.a0, f.a1, f.a2, f.a3, q0, q1, q2, q3, f.ta0, f.ta1, f.tb0, tm, f.depth + 1},
				frame{f.a0, f.a1, f.a2, f.a3, r0, r1, r2, r3, f.ta0, f.ta1, tm, f.tb1, f.depth + 1})
		}
	}
	sort.Slice(zs, func(i, j int) bool {
		if zs[i].TA == zs[j].TA {
			return zs[i].TB < zs[j].TB
		}
		return zs[i].TA < zs[j].TA
	})
	return zs
}
