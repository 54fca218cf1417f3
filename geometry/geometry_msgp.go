/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2023 Markus Stenberg
 *
 * Created:       Wed Mar 22 09:40:12 2023 mstenber
 * Last modified: Fri Mar 24 09:31:27 2023 mstenber
 * Edit time:     38 min
 *
 */

// MessagePack encoding of the value types. Everything is encoded as
// fixed-length arrays (tuples), nested types as nested arrays.

package geometry

import (
	"github.com/glycerine/greenpack/msgp"
)

func readTuple(bts []byte, wanted uint32) ([]byte, error) {
	sz, bts, err := (&msgp.NilBitsStack{}).ReadArrayHeaderBytes(bts)
	if err != nil {
		return bts, err
	}
	if sz != wanted {
		return bts, msgp.ArrayError{Wanted: wanted, Got: sz}
	}
	return bts, nil
}

func readFloats(bts []byte, dst ...*float64) ([]byte, error) {
	var err error
	for _, d := range dst {
		*d, bts, err = (&msgp.NilBitsStack{}).ReadFloat64Bytes(bts)
		if err != nil {
			return bts, err
		}
	}
	return bts, nil
}

func (self Vector2) MarshalMsg(b []byte) ([]byte, error) {
	b = msgp.AppendArrayHeader(b, 2)
	b = msgp.AppendFloat64(b, self.X)
	b = msgp.AppendFloat64(b, self.Y)
	return b, nil
}

func (self *Vector2) UnmarshalMsg(bts []byte) ([]byte, error) {
	bts, err := readTuple(bts, 2)
	if err != nil {
		return bts, err
	}
	return readFloats(bts, &self.X, &self.Y)
}

func (self Vector2) Msgsize() int {
	return msgp.ArrayHeaderSize + 2*msgp.Float64Size
}

// marshalVectors encodes vs as a tuple of n vectors.
func marshalVectors(b []byte, vs ...Vector2) []byte {
	b = msgp.AppendArrayHeader(b, uint32(len(vs)))
	for _, v := range vs {
		b, _ = v.MarshalMsg(b)
	}
	return b
}

func unmarshalVectors(bts []byte, vs ...*Vector2) ([]byte, error) {
	bts, err := readTuple(bts, uint32(len(vs)))
	if err != nil {
		return bts, err
	}
	for _, v := range vs {
		bts, err = v.UnmarshalMsg(bts)
		if err != nil {
			return bts, err
		}
	}
	return bts, nil
}

func (self Ray2D) MarshalMsg(b []byte) ([]byte, error) {
	return marshalVectors(b, self.Origin, self.Direction), nil
}

func (self *Ray2D) UnmarshalMsg(bts []byte) ([]byte, error) {
	return unmarshalVectors(bts, &self.Origin, &self.Direction)
}

func (self Ray2D) Msgsize() int {
	return msgp.ArrayHeaderSize + 2*Vector2{}.Msgsize()
}

func (self LineSegment2D) MarshalMsg(b []byte) ([]byte, error) {
	return marshalVectors(b, self.A, self.B), nil
}

func (self *LineSegment2D) UnmarshalMsg(bts []byte) ([]byte, error) {
	return unmarshalVectors(bts, &self.A, &self.B)
}

func (self LineSegment2D) Msgsize() int {
	return msgp.ArrayHeaderSize + 2*Vector2{}.Msgsize()
}

func (self Triangle) MarshalMsg(b []byte) ([]byte, error) {
	return marshalVectors(b, self.A, self.B, self.C), nil
}

func (self *Triangle) UnmarshalMsg(bts []byte) ([]byte, error) {
	return unmarshalVectors(bts, &self.A, &self.B, &self.C)
}

func (self Triangle) Msgsize() int {
	return msgp.ArrayHeaderSize + 3*Vector2{}.Msgsize()
}

func (self Circle) MarshalMsg(b []byte) ([]byte, error) {
	b = msgp.AppendArrayHeader(b, 2)
	b, _ = self.Center.MarshalMsg(b)
	b = msgp.AppendFloat64(b, self.Radius)
	return b, nil
}

func (self *Circle) UnmarshalMsg(bts []byte) ([]byte, error) {
	bts, err := readTuple(bts, 2)
	if err != nil {
		return bts, err
	}
	bts, err = self.Center.UnmarshalMsg(bts)
	if err != nil {
		return bts, err
	}
	return readFloats(bts, &self.Radius)
}

func (self Circle) Msgsize() int {
	return msgp.ArrayHeaderSize + Vector2{}.Msgsize() + msgp.Float64Size
}

func (self Matrix3x3) MarshalMsg(b []byte) ([]byte, error) {
	b = msgp.AppendArrayHeader(b, 9)
	for _, row := range self {
		for _, v := range row {
			b = msgp.AppendFloat64(b, v)
		}
	}
	return b, nil
}

func (self *Matrix3x3) UnmarshalMsg(bts []byte) ([]byte, error) {
	bts, err := readTuple(bts, 9)
	if err != nil {
		return bts, err
	}
	for i := range self {
		bts, err = readFloats(bts, &self[i][0], &self[i][1], &self[i][2])
		if err != nil {
			return bts, err
		}
	}
	return bts, nil
}

func (self Matrix3x3) Msgsize() int {
	return msgp.ArrayHeaderSize + 9*msgp.Float64Size
}
