/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2023 Markus Stenberg
 *
 * Created:       Tue Mar 21 14:02:33 2023 mstenber
 * Last modified: Thu Mar 23 16:48:12 2023 mstenber
 * Edit time:     29 min
 *
 */

package geometry

import "math"

type Triangle struct {
	A, B, C Vector2
}

func (self Triangle) signedArea() float64 {
	return self.B.Sub(self.A).Cross(self.C.Sub(self.A)) / 2
}

func (self Triangle) Area() float64 {
	return math.Abs(self.signedArea())
}

func (self Triangle) Centroid() Vector2 {
	return self.A.Add(self.B).Add(self.C).Scale(1.0 / 3)
}

// Circumcenter returns the center of the circle through all three
// vertices; ok is false for degenerate triangles.
func (self Triangle) Circumcenter() (c Vector2, ok bool) {
	b := self.B.Sub(self.A)
	cc := self.C.Sub(self.A)
	d := 2 * b.Cross(cc)
	if isZero(d) {
		return
	}
	bl := b.SquaredLength()
	cl := cc.SquaredLength()
	c = Vector2{(cc.Y*bl - b.Y*cl) / d, (b.X*cl - cc.X*bl) / d}
	return c.Add(self.A), true
}

// Contains returns true for points inside or on the edges.
func (self Triangle) Contains(p Vector2) bool {
	area := self.signedArea()
	if isZero(area) {
		for _, e := range self.Edges() {
			if e.Contains(p) {
				return true
			}
		}
		return false
	}
	// barycentric coordinates
	u := Triangle{p, self.B, self.C}.signedArea() / area
	v := Triangle{self.A, p, self.C}.signedArea() / area
	w := 1 - u - v
	return u >= -Epsilon && v >= -Epsilon && w >= -Epsilon
}

func (self Triangle) Edges() [3]LineSegment2D {
	return [3]LineSegment2D{{self.A, self.B}, {self.B, self.C}, {self.C, self.A}}
}

func (self Triangle) apply(cb func(v Vector2) Vector2) Triangle {
	return Triangle{cb(self.A), cb(self.B), cb(self.C)}
}

func (self Triangle) Translate(v Vector2) Triangle {
	return self.apply(func(p Vector2) Vector2 { return p.Add(v) })
}

// Rotate turns the triangle around its centroid.
func (self Triangle) Rotate(angle float64) Triangle {
	c := self.Centroid()
	return self.apply(func(p Vector2) Vector2 { return p.Sub(c).Rotate(angle).Add(c) })
}

// Scale scales the triangle relative to its centroid.
func (self Triangle) Scale(scale Vector2) Triangle {
	c := self.Centroid()
	return self.apply(func(p Vector2) Vector2 { return p.Sub(c).ScaleBy(scale).Add(c) })
}

func (self Triangle) Transform(m TransformationMatrix3x3) Triangle {
	return self.apply(m.Apply)
}
