/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2023 Markus Stenberg
 *
 * Created:       Mon Mar 20 10:40:17 2023 mstenber
 * Last modified: Fri Mar 24 10:02:55 2023 mstenber
 * Edit time:     44 min
 *
 */

package geometry

import "math"

// TransformationMatrix3x3 is an affine 2D transformation: scaling,
// then rotation, then translation.
type TransformationMatrix3x3 struct {
	Matrix3x3
}

func IdentityTransformation() TransformationMatrix3x3 {
	return TransformationMatrix3x3{Identity()}
}

// NewTransformation combines scaling, counterclockwise rotation (in
// radians) and translation, applied in that order.
func NewTransformation(translation Vector2, rotation float64, scale Vector2) TransformationMatrix3x3 {
	sin, cos := math.Sincos(rotation)
	return TransformationMatrix3x3{Matrix3x3{
		{scale.X * cos, scale.X * sin, 0},
		{-scale.Y * sin, scale.Y * cos, 0},
		{translation.X, translation.Y, 1},
	}}
}

func NewTranslation(v Vector2) TransformationMatrix3x3 {
	return NewTransformation(v, 0, Vector2{1, 1})
}

func NewRotation(angle float64) TransformationMatrix3x3 {
	return NewTransformation(Vector2{}, angle, Vector2{1, 1})
}

func NewScaling(scale Vector2) TransformationMatrix3x3 {
	return NewTransformation(Vector2{}, 0, scale)
}

// Multiply returns transformation that applies self and then o.
func (self TransformationMatrix3x3) Multiply(o TransformationMatrix3x3) TransformationMatrix3x3 {
	return TransformationMatrix3x3{self.Matrix3x3.Multiply(o.Matrix3x3)}
}

// Apply transforms a point.
func (self TransformationMatrix3x3) Apply(p Vector2) Vector2 {
	m := &self.Matrix3x3
	return Vector2{p.X*m[0][0] + p.Y*m[1][0] + m[2][0],
		p.X*m[0][1] + p.Y*m[1][1] + m[2][1]}
}

// ApplyVector transforms a direction; translation is ignored.
func (self TransformationMatrix3x3) ApplyVector(v Vector2) Vector2 {
	m := &self.Matrix3x3
	return Vector2{v.X*m[0][0] + v.Y*m[1][0],
		v.X*m[0][1] + v.Y*m[1][1]}
}

func (self TransformationMatrix3x3) Invert() (TransformationMatrix3x3, bool) {
	m, ok := self.Matrix3x3.Invert()
	return TransformationMatrix3x3{m}, ok
}

func (self TransformationMatrix3x3) GetTranslation() Vector2 {
	return Vector2{self.Matrix3x3[2][0], self.Matrix3x3[2][1]}
}

// Decompose splits the transformation back to the arguments of
// NewTransformation. Mirroring is reported as negative Y scale.
func (self TransformationMatrix3x3) Decompose() (translation Vector2, rotation float64, scale Vector2) {
	m := &self.Matrix3x3
	translation = self.GetTranslation()
	scale.X = math.Hypot(m[0][0], m[0][1])
	scale.Y = math.Hypot(m[1][0], m[1][1])
	if m[0][0]*m[1][1]-m[0][1]*m[1][0] < 0 {
		scale.Y = -scale.Y
	}
	rotation = math.Atan2(m[0][1], m[0][0])
	return
}

// maxScale is the largest absolute scale factor; used for things
// like radii that cannot be scaled unevenly.
func (self TransformationMatrix3x3) maxScale() float64 {
	_, _, scale := self.Decompose()
	return math.Max(math.Abs(scale.X), math.Abs(scale.Y))
}
