package pathops

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func square(x, y, w, h float64) *Polygon {
	return newPolygon([]Point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}})
}

func TestDistToSegment(t *testing.T) {
	a, b := Point{0.0, 0.0}, Point{10.0, 0.0}
	test.Float(t, distToSegment(Point{5.0, 3.0}, a, b), 3.0)
	test.Float(t, distToSegment(Point{-4.0, 3.0}, a, b), 5.0) // beyond a
	test.Float(t, distToSegment(Point{13.0, 4.0}, a, b), 5.0) // beyond b
	test.Float(t, distToSegment(Point{5.0, 0.0}, a, b), 0.0)
	test.Float(t, distToSegment(Point{3.0, 4.0}, a, a), 5.0) // degenerate segment
}

func TestClassifyPoint(t *testing.T) {
	p := square(0.0, 0.0, 10.0, 10.0)
	var tts = []struct {
		pt  Point
		loc pointLocation
	}{
		{Point{5.0, 5.0}, pointInside},
		{Point{15.0, 5.0}, pointOutside},
		{Point{5.0, -5.0}, pointOutside},
		{Point{0.0, 5.0}, pointOnBoundary},
		{Point{0.0, 0.0}, pointOnBoundary},
		{Point{10.0, 10.0}, pointOnBoundary},
		{Point{5.0, 10.0}, pointOnBoundary},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.T(t, classifyPoint(tt.pt, p), tt.loc)
		})
	}
}

func TestWindingNumber(t *testing.T) {
	ccw := square(0.0, 0.0, 10.0, 10.0)
	cw := reversePolygon(ccw)

	test.T(t, windingNumber(Point{5.0, 5.0}, ccw), 1)
	test.T(t, windingNumber(Point{5.0, 5.0}, cw), -1)
	test.T(t, windingNumber(Point{15.0, 5.0}, ccw), 0)
	test.T(t, windingNumber(Point{-5.0, 5.0}, cw), 0)
}

func TestPointInPolygons(t *testing.T) {
	outer := square(0.0, 0.0, 10.0, 10.0)
	hole := reversePolygon(square(2.0, 2.0, 6.0, 6.0))

	// the hole is empty under both fill rules
	test.That(t, !pointInPolygons(Point{5.0, 5.0}, []*Polygon{outer, hole}, NonZero))
	test.That(t, !pointInPolygons(Point{5.0, 5.0}, []*Polygon{outer, hole}, EvenOdd))
	test.That(t, pointInPolygons(Point{1.0, 5.0}, []*Polygon{outer, hole}, NonZero))
	test.That(t, pointInPolygons(Point{1.0, 5.0}, []*Polygon{outer, hole}, EvenOdd))

	// overlapping rings differ between the fill rules
	a := square(0.0, 0.0, 10.0, 10.0)
	b := square(5.0, 5.0, 10.0, 10.0)
	test.That(t, pointInPolygons(Point{7.0, 7.0}, []*Polygon{a, b}, NonZero))
	test.That(t, !pointInPolygons(Point{7.0, 7.0}, []*Polygon{a, b}, EvenOdd))

	// boundary points are inside
	test.That(t, pointInPolygons(Point{0.0, 5.0}, []*Polygon{a, b}, NonZero))
	test.That(t, pointInPolygons(Point{0.0, 5.0}, []*Polygon{a, b}, EvenOdd))
}

func TestSignedArea(t *testing.T) {
	test.Float(t, signedArea(square(0.0, 0.0, 10.0, 10.0)), 100.0)
	test.Float(t, signedArea(reversePolygon(square(0.0, 0.0, 10.0, 10.0))), -100.0)
	test.Float(t, signedArea(newPolygon([]Point{{0.0, 0.0}, {10.0, 0.0}, {10.0, 10.0}})), 50.0)
}

func TestIsZeroArea(t *testing.T) {
	test.That(t, !isZeroArea(square(0.0, 0.0, 10.0, 10.0)))
	test.That(t, isZeroArea(newPolygon([]Point{{0.0, 0.0}, {5.0, 0.0}, {10.0, 0.0}}))) // collinear
	test.That(t, isZeroArea(newPolygon([]Point{{0.0, 0.0}, {10.0, 0.0}, {0.0, 0.0}})))
}

func TestHasSharedVertices(t *testing.T) {
	a := square(0.0, 0.0, 10.0, 10.0)
	test.That(t, hasSharedVertices(a, square(10.0, 10.0, 5.0, 5.0)))
	test.That(t, !hasSharedVertices(a, square(20.0, 0.0, 5.0, 5.0)))
	test.That(t, !hasSharedVertices(a, square(5.0, 5.0, 10.0, 10.0))) // overlap without shared vertex
}

func TestPolygonsIdentical(t *testing.T) {
	a := newPolygon([]Point{{0.0, 0.0}, {10.0, 0.0}, {10.0, 10.0}, {0.0, 10.0}})
	b := newPolygon([]Point{{10.0, 10.0}, {0.0, 10.0}, {0.0, 0.0}, {10.0, 0.0}}) // rotated start
	c := newPolygon([]Point{{0.0, 0.0}, {10.0, 0.0}, {10.0, 10.0}, {0.0, 11.0}})

	test.That(t, polygonsIdentical(a, a))
	test.That(t, polygonsIdentical(a, b))
	test.That(t, !polygonsIdentical(a, c))
	test.That(t, !polygonsIdentical(a, newPolygon([]Point{{0.0, 0.0}, {10.0, 0.0}, {10.0, 10.0}})))
	test.That(t, !polygonsIdentical(a, reversePolygon(a))) // opposite winding
}

func TestIsSimplePolygon(t *testing.T) {
	test.That(t, isSimplePolygon(square(0.0, 0.0, 10.0, 10.0)))

	// bowtie crosses itself
	bowtie := newPolygon([]Point{{0.0, 0.0}, {10.0, 10.0}, {10.0, 0.0}, {0.0, 10.0}})
	test.That(t, !isSimplePolygon(bowtie))
}

func TestPolygonInside(t *testing.T) {
	outer := square(0.0, 0.0, 10.0, 10.0)
	inner := square(2.0, 2.0, 6.0, 6.0)
	disjoint := square(20.0, 0.0, 5.0, 5.0)

	test.That(t, polygonInside(inner, outer))
	test.That(t, !polygonInside(outer, inner))
	test.That(t, !polygonInside(disjoint, outer))

	// touching from the inside still counts as inside
	touching := square(0.0, 0.0, 5.0, 5.0)
	test.That(t, polygonInside(touching, outer))

	// coinciding rings count as inside either way
	test.That(t, polygonInside(outer, square(0.0, 0.0, 10.0, 10.0)))
}
