/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2023 Markus Stenberg
 *
 * Created:       Tue Mar 21 16:10:02 2023 mstenber
 * Last modified: Fri Mar 24 11:19:40 2023 mstenber
 * Edit time:     51 min
 *
 */

package geometry

import (
	"math"
	"testing"

	"github.com/stvp/assert"
)

var xRay = NewRay2D(Vector2{0, 0}, Vector2{5, 0})

func TestRayBasics(t *testing.T) {
	t.Parallel()

	assert.Equal(t, xRay.Direction, Vector2{1, 0})
	assert.Equal(t, xRay.PointAt(3), Vector2{3, 0})
	assert.True(t, xRay.Contains(Vector2{7, 0}))
	assert.True(t, xRay.Contains(Vector2{}))
	assert.True(t, !xRay.Contains(Vector2{-1, 0}))
	assert.True(t, !xRay.Contains(Vector2{1, 1}))

	r := xRay.Reflect(Vector2{-1, 1})
	assert.True(t, r.Direction.Equal(Vector2{0, 1}))

	assert.True(t, xRay.Translate(Vector2{1, 2}).Origin.Equal(Vector2{1, 2}))
	assert.True(t, xRay.Rotate(math.Pi/2).Direction.Equal(Vector2{0, 1}))
	p := xRay.RotateWithPivot(math.Pi, Vector2{1, 0})
	assert.True(t, p.Origin.Equal(Vector2{2, 0}))
	assert.True(t, p.Direction.Equal(Vector2{-1, 0}))
	s := NewRay2D(Vector2{1, 1}, Vector2{1, 1}).Scale(Vector2{2, 0.5})
	assert.True(t, s.Origin.Equal(Vector2{2, 0.5}))
	assert.True(t, equalFloat(s.Direction.Length(), 1))

	m := NewTransformation(Vector2{0, 1}, math.Pi/2, Vector2{3, 3})
	tr := xRay.Transform(m)
	assert.True(t, tr.Origin.Equal(Vector2{0, 1}))
	assert.True(t, tr.Direction.Equal(Vector2{0, 1}))
}

func TestRayWithRay(t *testing.T) {
	t.Parallel()

	add := func(name string, o Ray2D, expected Intersections, point Vector2) {
		t.Run(name, func(t *testing.T) {
			n, p := xRay.IntersectionWithRay(o)
			assert.Equal(t, n, expected)
			if n == One {
				assert.True(t, p.Equal(point), p)
			}
			assert.Equal(t, xRay.IntersectsRay(o), n != None)
		})
	}
	add("crossing", NewRay2D(Vector2{2, -1}, Vector2{0, 1}), One, Vector2{2, 0})
	add("behind", NewRay2D(Vector2{-2, -1}, Vector2{0, 1}), None, Vector2{})
	add("away", NewRay2D(Vector2{2, 1}, Vector2{0, 1}), None, Vector2{})
	add("parallel", NewRay2D(Vector2{0, 1}, Vector2{1, 0}), None, Vector2{})
	add("same direction", NewRay2D(Vector2{-4, 0}, Vector2{1, 0}), Infinite, Vector2{})
	add("towards", NewRay2D(Vector2{4, 0}, Vector2{-1, 0}), Infinite, Vector2{})
	add("opposite", NewRay2D(Vector2{-4, 0}, Vector2{-1, 0}), None, Vector2{})
	add("back to back", NewRay2D(Vector2{}, Vector2{-1, 0}), One, Vector2{})
	add("from origin", NewRay2D(Vector2{}, Vector2{1, 1}), One, Vector2{})
}

func TestRayWithSegment(t *testing.T) {
	t.Parallel()

	add := func(name string, s LineSegment2D, expected Intersections, point Vector2) {
		t.Run(name, func(t *testing.T) {
			n, p := xRay.IntersectionWithSegment(s)
			assert.Equal(t, n, expected)
			if n == One {
				assert.True(t, p.Equal(point), p)
			}
			assert.Equal(t, xRay.IntersectsSegment(s), n != None)
		})
	}
	add("crossing", LineSegment2D{Vector2{3, -1}, Vector2{3, 1}}, One, Vector2{3, 0})
	add("endpoint", LineSegment2D{Vector2{3, 0}, Vector2{3, 1}}, One, Vector2{3, 0})
	add("short", LineSegment2D{Vector2{3, 1}, Vector2{3, 2}}, None, Vector2{})
	add("behind", LineSegment2D{Vector2{-3, -1}, Vector2{-3, 1}}, None, Vector2{})
	add("on ray", LineSegment2D{Vector2{1, 0}, Vector2{2, 0}}, Infinite, Vector2{})
	add("over origin", LineSegment2D{Vector2{-1, 0}, Vector2{2, 0}}, Infinite, Vector2{})
	add("touching origin", LineSegment2D{Vector2{-1, 0}, Vector2{0, 0}}, One, Vector2{})
	add("behind on line", LineSegment2D{Vector2{-3, 0}, Vector2{-1, 0}}, None, Vector2{})
	add("parallel", LineSegment2D{Vector2{1, 1}, Vector2{2, 1}}, None, Vector2{})
}

func TestRayWithCircle(t *testing.T) {
	t.Parallel()

	add := func(name string, c Circle, expected Intersections, p1, p2 Vector2) {
		t.Run(name, func(t *testing.T) {
			n, a, b := xRay.IntersectionWithCircle(c)
			assert.Equal(t, n, expected)
			if n != None {
				assert.True(t, a.Equal(p1), a)
			}
			if n == Two {
				assert.True(t, b.Equal(p2), b)
			}
			assert.Equal(t, xRay.IntersectsCircle(c), n != None)
		})
	}
	add("through", Circle{Vector2{5, 0}, 1}, Two, Vector2{4, 0}, Vector2{6, 0})
	add("inside", Circle{Vector2{0, 0}, 2}, One, Vector2{2, 0}, Vector2{})
	add("tangent", Circle{Vector2{3, 1}, 1}, One, Vector2{3, 0}, Vector2{})
	add("miss", Circle{Vector2{3, 2}, 1}, None, Vector2{}, Vector2{})
	add("behind", Circle{Vector2{-5, 0}, 1}, None, Vector2{}, Vector2{})
}

func TestRayWithTriangle(t *testing.T) {
	t.Parallel()

	tri := Triangle{Vector2{2, -1}, Vector2{4, -1}, Vector2{3, 1}}
	n, a, b := xRay.IntersectionWithTriangle(tri)
	assert.Equal(t, n, Two)
	assert.True(t, a.Equal(Vector2{2.5, 0}), a)
	assert.True(t, b.Equal(Vector2{3.5, 0}), b)

	// entering through a vertex
	n, a, _ = xRay.IntersectionWithTriangle(Triangle{Vector2{2, 0}, Vector2{3, 1}, Vector2{3, -1}})
	assert.Equal(t, n, Two)
	assert.True(t, a.Equal(Vector2{2, 0}), a)

	n, a, _ = xRay.IntersectionWithTriangle(Triangle{Vector2{2, 0}, Vector2{3, 1}, Vector2{1, 1}})
	assert.Equal(t, n, One)
	assert.True(t, a.Equal(Vector2{2, 0}), a)

	n, _, _ = xRay.IntersectionWithTriangle(Triangle{Vector2{1, 0}, Vector2{2, 0}, Vector2{1, 1}})
	assert.Equal(t, n, Infinite)

	assert.True(t, !xRay.IntersectsTriangle(Triangle{Vector2{1, 1}, Vector2{2, 1}, Vector2{1, 2}}))

	// origin inside
	n, a, _ = NewRay2D(Vector2{3, 0}, Vector2{0, 1}).IntersectionWithTriangle(tri)
	assert.Equal(t, n, One)
	assert.True(t, a.Equal(Vector2{3, 1}), a)
}
