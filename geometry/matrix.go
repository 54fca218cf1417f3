/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2023 Markus Stenberg
 *
 * Created:       Mon Mar 20 10:02:40 2023 mstenber
 * Last modified: Thu Mar 23 15:44:09 2023 mstenber
 * Edit time:     31 min
 *
 */

package geometry

type Matrix3x3 [3][3]float64

func Identity() Matrix3x3 {
	return Matrix3x3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

func (self Matrix3x3) Multiply(o Matrix3x3) (r Matrix3x3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				r[i][j] += self[i][k] * o[k][j]
			}
		}
	}
	return
}

func (self Matrix3x3) Add(o Matrix3x3) (r Matrix3x3) {
	for i := range r {
		for j := range r[i] {
			r[i][j] = self[i][j] + o[i][j]
		}
	}
	return
}

func (self Matrix3x3) Scale(f float64) (r Matrix3x3) {
	for i := range r {
		for j := range r[i] {
			r[i][j] = self[i][j] * f
		}
	}
	return
}

func (self Matrix3x3) Transpose() (r Matrix3x3) {
	for i := range r {
		for j := range r[i] {
			r[i][j] = self[j][i]
		}
	}
	return
}

func (self Matrix3x3) Determinant() float64 {
	m := self
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Invert returns the inverse; ok is false if the matrix is singular.
func (self Matrix3x3) Invert() (r Matrix3x3, ok bool) {
	det := self.Determinant()
	if isZero(det) {
		return
	}
	m := self
	// adjugate / determinant
	r = Matrix3x3{
		{m[1][1]*m[2][2] - m[1][2]*m[2][1], m[0][2]*m[2][1] - m[0][1]*m[2][2], m[0][1]*m[1][2] - m[0][2]*m[1][1]},
		{m[1][2]*m[2][0] - m[1][0]*m[2][2], m[0][0]*m[2][2] - m[0][2]*m[2][0], m[0][2]*m[1][0] - m[0][0]*m[1][2]},
		{m[1][0]*m[2][1] - m[1][1]*m[2][0], m[0][1]*m[2][0] - m[0][0]*m[2][1], m[0][0]*m[1][1] - m[0][1]*m[1][0]},
	}.Scale(1 / det)
	return r, true
}

func (self Matrix3x3) Equal(o Matrix3x3) bool {
	for i := range self {
		for j := range self[i] {
			if !equalFloat(self[i][j], o[i][j]) {
				return false
			}
		}
	}
	return true
}
