/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2023 Markus Stenberg
 *
 * Created:       Mon Mar 20 15:20:41 2023 mstenber
 * Last modified: Thu Mar 23 17:02:13 2023 mstenber
 * Edit time:     33 min
 *
 */

package geometry

import (
	"math"
	"testing"

	"github.com/stvp/assert"
)

func TestVector2(t *testing.T) {
	t.Parallel()

	a := Vector2{3, 4}
	b := Vector2{1, -2}
	assert.Equal(t, a.Add(b), Vector2{4, 2})
	assert.Equal(t, a.Sub(b), Vector2{2, 6})
	assert.Equal(t, a.Scale(2), Vector2{6, 8})
	assert.Equal(t, a.Negate(), Vector2{-3, -4})
	assert.Equal(t, a.Dot(b), -5.0)
	assert.Equal(t, a.Cross(b), -10.0)
	assert.Equal(t, a.Length(), 5.0)
	assert.Equal(t, a.SquaredLength(), 25.0)
	assert.True(t, a.Normalize().Equal(Vector2{0.6, 0.8}))
	assert.Equal(t, Vector2{}.Normalize(), Vector2{})
	assert.Equal(t, a.Distance(Vector2{3, 0}), 4.0)
	assert.True(t, Vector2{1, 0}.Rotate(math.Pi/2).Equal(Vector2{0, 1}))
	assert.Equal(t, Vector2{1, 0}.Perpendicular(), Vector2{0, 1})
	assert.Equal(t, Vector2{}.Lerp(a, 0.5), Vector2{1.5, 2})
	assert.True(t, Vector2{1e-12, -1e-12}.IsZero())
	assert.Equal(t, a.String(), "(3,4)")
}

func TestMatrix3x3(t *testing.T) {
	t.Parallel()

	m := Matrix3x3{{2, 0, 1}, {1, 3, 0}, {0, 1, 4}}
	assert.Equal(t, m.Determinant(), 25.0)
	inv, ok := m.Invert()
	assert.True(t, ok)
	assert.True(t, m.Multiply(inv).Equal(Identity()))
	assert.True(t, inv.Multiply(m).Equal(Identity()))
	assert.Equal(t, m.Transpose()[0], [3]float64{2, 1, 0})
	assert.True(t, m.Add(m).Equal(m.Scale(2)))

	_, ok = Matrix3x3{{1, 2, 3}, {2, 4, 6}, {0, 0, 1}}.Invert()
	assert.True(t, !ok)
}

func TestTransformation(t *testing.T) {
	t.Parallel()

	p := Vector2{1, 0}
	assert.True(t, NewTranslation(Vector2{2, 3}).Apply(p).Equal(Vector2{3, 3}))
	assert.True(t, NewRotation(math.Pi/2).Apply(p).Equal(Vector2{0, 1}))
	assert.True(t, NewScaling(Vector2{2, 5}).Apply(Vector2{1, 1}).Equal(Vector2{2, 5}))

	// scale, then rotate, then translate
	m := NewTransformation(Vector2{10, 0}, math.Pi/2, Vector2{2, 2})
	assert.True(t, m.Apply(p).Equal(Vector2{10, 2}))
	assert.True(t, p.Transform(m).Equal(Vector2{10, 2}))
	assert.True(t, m.ApplyVector(p).Equal(Vector2{0, 2}))
	assert.True(t, m.GetTranslation().Equal(Vector2{10, 0}))

	// Multiply applies left side first
	c := NewRotation(math.Pi / 2).Multiply(NewTranslation(Vector2{10, 0}))
	assert.True(t, c.Apply(p).Equal(Vector2{10, 1}))

	inv, ok := m.Invert()
	assert.True(t, ok)
	assert.True(t, inv.Apply(m.Apply(Vector2{-3, 7})).Equal(Vector2{-3, 7}))

	tr, rot, scale := m.Decompose()
	assert.True(t, tr.Equal(Vector2{10, 0}))
	assert.True(t, equalFloat(rot, math.Pi/2))
	assert.True(t, scale.Equal(Vector2{2, 2}))

	_, _, scale = NewScaling(Vector2{3, -1}).Decompose()
	assert.True(t, scale.Equal(Vector2{3, -1}))
	assert.True(t, IdentityTransformation().Apply(p).Equal(p))
}
