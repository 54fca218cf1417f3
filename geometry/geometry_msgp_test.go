/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2023 Markus Stenberg
 *
 * Created:       Wed Mar 22 11:02:05 2023 mstenber
 * Last modified: Fri Mar 24 09:40:51 2023 mstenber
 * Edit time:     14 min
 *
 */

package geometry

import (
	"testing"

	"github.com/stvp/assert"
)

type msgpValue interface {
	MarshalMsg(b []byte) ([]byte, error)
	Msgsize() int
}

type msgpTarget interface {
	UnmarshalMsg(bts []byte) ([]byte, error)
}

func TestMsgpEncoding(t *testing.T) {
	t.Parallel()

	add := func(name string, v msgpValue, decoded msgpTarget) {
		t.Run(name, func(t *testing.T) {
			b, err := v.MarshalMsg(nil)
			assert.Nil(t, err)
			assert.True(t, len(b) <= v.Msgsize())
			// trailing data is left alone
			rest, err := decoded.UnmarshalMsg(append(b, 42))
			assert.Nil(t, err)
			assert.Equal(t, rest, []byte{42})
			_, err = decoded.UnmarshalMsg(b[:len(b)-1])
			assert.NotEqual(t, err, nil)
		})
	}
	var v Vector2
	add("vector", Vector2{1, -2}, &v)
	var r Ray2D
	add("ray", NewRay2D(Vector2{1, 2}, Vector2{0, 1}), &r)
	var s LineSegment2D
	add("segment", LineSegment2D{Vector2{1, 2}, Vector2{3, 4}}, &s)
	var c Circle
	add("circle", Circle{Vector2{1, 2}, 3}, &c)
	var tri Triangle
	add("triangle", Triangle{Vector2{1, 2}, Vector2{3, 4}, Vector2{5, 6}}, &tri)
	var m Matrix3x3
	add("matrix", NewTransformation(Vector2{1, 2}, 0.5, Vector2{2, 3}).Matrix3x3, &m)

	assert.Equal(t, v, Vector2{1, -2})
	assert.Equal(t, r.Direction, Vector2{0, 1})
	assert.Equal(t, s.B, Vector2{3, 4})
	assert.Equal(t, c.Radius, 3.0)
	assert.Equal(t, tri.C, Vector2{5, 6})
	assert.True(t, m.Equal(NewTransformation(Vector2{1, 2}, 0.5, Vector2{2, 3}).Matrix3x3))
}

func TestMsgpWrongShape(t *testing.T) {
	t.Parallel()

	b, _ := Vector2{1, 2}.MarshalMsg(nil)
	var tri Triangle
	_, err := tri.UnmarshalMsg(b)
	assert.NotEqual(t, err, nil)
	var c Circle
	_, err = c.UnmarshalMsg(b)
	assert.NotEqual(t, err, nil)
}

func BenchmarkMsgpEncodeTriangle(b *testing.B) {
	tri := Triangle{Vector2{1, 2}, Vector2{3, 4}, Vector2{5, 6}}
	buf := make([]byte, 0, tri.Msgsize())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tri.MarshalMsg(buf[:0])
	}
}

func BenchmarkMsgpDecodeTriangle(b *testing.B) {
	buf, _ := Triangle{Vector2{1, 2}, Vector2{3, 4}, Vector2{5, 6}}.MarshalMsg(nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var tri Triangle
		if _, err := tri.UnmarshalMsg(buf); err != nil {
			b.Fatal(err)
		}
	}
}
