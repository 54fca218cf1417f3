/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2023 Markus Stenberg
 *
 * Created:       Sat Mar 25 11:02:31 2023 mstenber
 * Last modified: Mon Mar 27 10:40:15 2023 mstenber
 * Edit time:     88 min
 *
 */

// scene keeps collections of shapes, and casts rays against them.
//
// The shapes are stored in list.List instances, so removal from the
// middle is cheap and iterators to shapes stay put as long as the
// shape is not removed.
package scene

import (
	"fmt"
	"math"
	"sort"

	"github.com/QThund/Zunderbolt-sub017/comparator"
	"github.com/QThund/Zunderbolt-sub017/geometry"
	"github.com/QThund/Zunderbolt-sub017/list"
	"github.com/QThund/Zunderbolt-sub017/mlog"
)

type ShapeKind byte

const (
	ShapeKind_CIRCLE ShapeKind = iota
	ShapeKind_TRIANGLE
	ShapeKind_SEGMENT
)

func (self ShapeKind) String() string {
	switch self {
	case ShapeKind_CIRCLE:
		return "circle"
	case ShapeKind_TRIANGLE:
		return "triangle"
	case ShapeKind_SEGMENT:
		return "segment"
	}
	return fmt.Sprintf("ShapeKind(%d)", byte(self))
}

// Hit is a single point where a ray meets a shape boundary.
type Hit struct {
	Kind ShapeKind

	// Index of the shape within its list at the time of the cast
	Index int

	Point geometry.Vector2

	// Distance from the ray origin
	Distance float64
}

type Scene struct {
	Circles   *list.List[geometry.Circle]
	Triangles *list.List[geometry.Triangle]
	Segments  *list.List[geometry.LineSegment2D]
}

func newShapeList[T comparable](capacity int) *list.List[T] {
	return list.List[T]{Compare: comparator.Equality[T]()}.Init(capacity)
}

// Init reserves room for capacity shapes of each kind.
func (self Scene) Init(capacity int) *Scene {
	self.Circles = newShapeList[geometry.Circle](capacity)
	self.Triangles = newShapeList[geometry.Triangle](capacity)
	self.Segments = newShapeList[geometry.LineSegment2D](capacity)
	return &self
}

func (self *Scene) String() string {
	return fmt.Sprintf("Scene<%d circles, %d triangles, %d segments>",
		self.Circles.GetCount(), self.Triangles.GetCount(), self.Segments.GetCount())
}

func (self *Scene) AddCircle(c geometry.Circle) error {
	return self.Circles.Add(c)
}

func (self *Scene) AddTriangle(t geometry.Triangle) error {
	return self.Triangles.Add(t)
}

func (self *Scene) AddSegment(s geometry.LineSegment2D) error {
	return self.Segments.Add(s)
}

func removeShape[T any](l *list.List[T], v T) bool {
	it := l.PositionOf(v)
	if it.IsEnd() {
		return false
	}
	l.Remove(it)
	return true
}

// RemoveCircle removes the first circle equal to c; false if there
// was none.
func (self *Scene) RemoveCircle(c geometry.Circle) bool {
	return removeShape(self.Circles, c)
}

func (self *Scene) RemoveTriangle(t geometry.Triangle) bool {
	return removeShape(self.Triangles, t)
}

func (self *Scene) RemoveSegment(s geometry.LineSegment2D) bool {
	return removeShape(self.Segments, s)
}

// Count returns the total number of shapes.
func (self *Scene) Count() int {
	return self.Circles.GetCount() + self.Triangles.GetCount() + self.Segments.GetCount()
}

func (self *Scene) Clear() {
	self.Circles.Clear()
	self.Triangles.Clear()
	self.Segments.Clear()
}

func distance(ray geometry.Ray2D, p geometry.Vector2) float64 {
	return p.Sub(ray.Origin).Dot(ray.Direction)
}

// segmentHit returns the nearest point of s on the ray.
func segmentHit(ray geometry.Ray2D, s geometry.LineSegment2D) (geometry.Vector2, bool) {
	n, p := ray.IntersectionWithSegment(s)
	switch n {
	case geometry.None:
		return p, false
	case geometry.Infinite:
		d := math.Max(0, math.Min(distance(ray, s.A), distance(ray, s.B)))
		return ray.PointAt(d), true
	}
	return p, true
}

// Cast returns every hit of ray against the scene, nearest first.
func (self *Scene) Cast(ray geometry.Ray2D) []Hit {
	var hits []Hit
	add := func(kind ShapeKind, index int, p geometry.Vector2) {
		hits = append(hits, Hit{Kind: kind, Index: index, Point: p, Distance: distance(ray, p)})
	}
	i := 0
	self.Circles.Iterate(func(c geometry.Circle) {
		n, p1, p2 := ray.IntersectionWithCircle(c)
		if n != geometry.None {
			add(ShapeKind_CIRCLE, i, p1)
		}
		if n == geometry.Two {
			add(ShapeKind_CIRCLE, i, p2)
		}
		i++
	})
	i = 0
	self.Triangles.Iterate(func(t geometry.Triangle) {
		n, p1, p2 := ray.IntersectionWithTriangle(t)
		switch n {
		case geometry.Infinite:
			for _, e := range t.Edges() {
				if p, ok := segmentHit(ray, e); ok {
					add(ShapeKind_TRIANGLE, i, p)
				}
			}
		case geometry.Two:
			add(ShapeKind_TRIANGLE, i, p1)
			add(ShapeKind_TRIANGLE, i, p2)
		case geometry.One:
			add(ShapeKind_TRIANGLE, i, p1)
		}
		i++
	})
	i = 0
	self.Segments.Iterate(func(s geometry.LineSegment2D) {
		if p, ok := segmentHit(ray, s); ok {
			add(ShapeKind_SEGMENT, i, p)
		}
		i++
	})
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	mlog.Printf2("scene/scene", "Cast %v: %d hits", ray, len(hits))
	return hits
}

// First returns the nearest hit, if any.
func (self *Scene) First(ray geometry.Ray2D) (Hit, bool) {
	hits := self.Cast(ray)
	if len(hits) == 0 {
		return Hit{}, false
	}
	return hits[0], true
}

func transformAll[T any](l *list.List[T], cb func(v T) T) {
	for it := l.GetFirst(); !it.IsEnd(); it.Next() {
		it.SetValue(cb(it.Value()))
	}
}

// Transform applies m to every shape in place.
func (self *Scene) Transform(m geometry.TransformationMatrix3x3) {
	transformAll(self.Circles, func(c geometry.Circle) geometry.Circle { return c.Transform(m) })
	transformAll(self.Triangles, func(t geometry.Triangle) geometry.Triangle { return t.Transform(m) })
	transformAll(self.Segments, func(s geometry.LineSegment2D) geometry.LineSegment2D { return s.Transform(m) })
}
