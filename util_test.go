package pathops

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestEqual(t *testing.T) {
	test.That(t, equal(1.0, 1.0))
	test.That(t, equal(1.0, 1.0+1e-12))
	test.That(t, !equal(1.0, 1.0+1e-9))
	test.That(t, !equal(1.0, -1.0))
}

func TestInterval(t *testing.T) {
	test.That(t, interval(0.5, 0.0, 1.0))
	test.That(t, interval(0.0, 0.0, 1.0))
	test.That(t, interval(1.0, 0.0, 1.0))
	test.That(t, interval(-1e-12, 0.0, 1.0))
	test.That(t, !interval(-0.1, 0.0, 1.0))
	test.That(t, !interval(1.1, 0.0, 1.0))
}

func TestIsFinite(t *testing.T) {
	test.That(t, isFinite(0.0))
	test.That(t, isFinite(-1e300))
	test.That(t, !isFinite(math.NaN()))
	test.That(t, !isFinite(math.Inf(1)))
	test.That(t, !isFinite(math.Inf(-1)))
}

func TestPoint(t *testing.T) {
	p := Point{3.0, 4.0}
	test.That(t, Point{}.IsZero())
	test.That(t, !p.IsZero())
	test.That(t, p.Equals(Point{3.0, 4.0}))
	test.T(t, p.Neg(), Point{-3.0, -4.0})
	test.T(t, p.Add(Point{1.0, 1.0}), Point{4.0, 5.0})
	test.T(t, p.Sub(Point{1.0, 1.0}), Point{2.0, 3.0})
	test.T(t, p.Mul(2.0), Point{6.0, 8.0})
	test.T(t, p.Div(2.0), Point{1.5, 2.0})
	test.Float(t, p.Dot(Point{1.0, 0.0}), 3.0)
	test.Float(t, p.PerpDot(Point{1.0, 0.0}), -4.0)
	test.Float(t, Point{1.0, 0.0}.PerpDot(Point{0.0, 1.0}), 1.0)
	test.Float(t, p.Length(), 5.0)
	test.Float(t, Point{1.0, 1.0}.Angle(), math.Pi/4.0)
	test.That(t, p.Norm(10.0).Equals(Point{6.0, 8.0}))
	test.T(t, Point{}.Norm(10.0), Point{})
	test.T(t, Point{0.0, 0.0}.Interpolate(Point{10.0, 20.0}, 0.5), Point{5.0, 10.0})
	test.T(t, p.String(), "[3; 4]")
}

func TestRect(t *testing.T) {
	r := Rect{0.0, 0.0, 10.0, 5.0}
	test.That(t, r.Contains(Point{5.0, 2.5}))
	test.That(t, r.Contains(Point{0.0, 0.0}))
	test.That(t, r.Contains(Point{10.0, 5.0}))
	test.That(t, !r.Contains(Point{11.0, 2.5}))
	test.That(t, !r.Contains(Point{5.0, -1.0}))

	test.T(t, r.Add(Rect{5.0, 5.0, 10.0, 5.0}), Rect{0.0, 0.0, 15.0, 10.0})

	test.That(t, r.Overlaps(Rect{5.0, 2.0, 10.0, 10.0}))
	test.That(t, r.Overlaps(Rect{10.0, 5.0, 1.0, 1.0})) // touching corner
	test.That(t, !r.Overlaps(Rect{11.0, 0.0, 1.0, 1.0}))
	test.That(t, !r.Overlaps(Rect{0.0, 6.0, 1.0, 1.0}))

	test.T(t, r.String(), "[0; 0]--[10; 5]")
}

func TestPointsRect(t *testing.T) {
	test.T(t, pointsRect(Point{1.0, 2.0}), Rect{1.0, 2.0, 0.0, 0.0})
	test.T(t, pointsRect(Point{3.0, 1.0}, Point{-1.0, 5.0}, Point{0.0, 0.0}), Rect{-1.0, 0.0, 4.0, 5.0})
}
