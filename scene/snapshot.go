/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2023 Markus Stenberg
 *
 * Created:       Sun Mar 26 14:20:44 2023 mstenber
 * Last modified: Mon Mar 27 10:12:09 2023 mstenber
 * Edit time:     41 min
 *
 */

package scene

import (
	"github.com/QThund/Zunderbolt-sub017/codec"
	"github.com/QThund/Zunderbolt-sub017/geometry"
	"github.com/QThund/Zunderbolt-sub017/list"
	"github.com/QThund/Zunderbolt-sub017/mlog"
	"github.com/glycerine/greenpack/msgp"
)

// snapshotAdditionalData is bound to the encoded snapshot by codecs
// that care about it (e.g. ChecksumCodec).
var snapshotAdditionalData = []byte("zunderbolt-scene-v1")

type msgpShape interface {
	MarshalMsg(b []byte) ([]byte, error)
	Msgsize() int
}

func marshalList[T msgpShape](b []byte, l *list.List[T]) ([]byte, error) {
	b = msgp.AppendArrayHeader(b, uint32(l.GetCount()))
	var err error
	for it := l.GetConstFirst(); err == nil && !it.IsEnd(); it.Next() {
		b, err = it.Value().MarshalMsg(b)
	}
	return b, err
}

// unmarshalList appends the decoded elements to l. P is the pointer
// type of T that does the decoding.
func unmarshalList[T any, P interface {
	*T
	UnmarshalMsg(bts []byte) ([]byte, error)
}](bts []byte, l *list.List[T]) ([]byte, error) {
	sz, bts, err := (&msgp.NilBitsStack{}).ReadArrayHeaderBytes(bts)
	if err != nil {
		return bts, err
	}
	// every element takes at least a byte
	if int(sz) > len(bts) {
		return bts, msgp.ErrShortBytes
	}
	if err = l.Reserve(l.GetCount() + int(sz)); err != nil {
		return bts, err
	}
	for i := uint32(0); i < sz; i++ {
		var v T
		bts, err = P(&v).UnmarshalMsg(bts)
		if err != nil {
			return bts, err
		}
		if err = l.Add(v); err != nil {
			return bts, err
		}
	}
	return bts, nil
}

// MarshalMsg encodes the scene as [circles, triangles, segments].
func (self *Scene) MarshalMsg(b []byte) ([]byte, error) {
	b = msgp.AppendArrayHeader(b, 3)
	b, err := marshalList(b, self.Circles)
	if err != nil {
		return b, err
	}
	if b, err = marshalList(b, self.Triangles); err != nil {
		return b, err
	}
	return marshalList(b, self.Segments)
}

// UnmarshalMsg adds the shapes of an encoded scene to this one.
func (self *Scene) UnmarshalMsg(bts []byte) ([]byte, error) {
	sz, bts, err := (&msgp.NilBitsStack{}).ReadArrayHeaderBytes(bts)
	if err != nil {
		return bts, err
	}
	if sz != 3 {
		return bts, msgp.ArrayError{Wanted: 3, Got: sz}
	}
	if bts, err = unmarshalList(bts, self.Circles); err != nil {
		return bts, err
	}
	if bts, err = unmarshalList(bts, self.Triangles); err != nil {
		return bts, err
	}
	return unmarshalList(bts, self.Segments)
}

func (self *Scene) Msgsize() int {
	s := 4 * msgp.ArrayHeaderSize
	s += self.Circles.GetCount() * geometry.Circle{}.Msgsize()
	s += self.Triangles.GetCount() * geometry.Triangle{}.Msgsize()
	s += self.Segments.GetCount() * geometry.LineSegment2D{}.Msgsize()
	return s
}

// MarshalSnapshot encodes the scene and passes it through c (which
// may be nil).
func (self *Scene) MarshalSnapshot(c codec.Codec) ([]byte, error) {
	b, err := self.MarshalMsg(make([]byte, 0, self.Msgsize()))
	if err != nil {
		return nil, err
	}
	mlog.Printf2("scene/snapshot", "MarshalSnapshot %v: %d bytes", self, len(b))
	if c == nil {
		return b, nil
	}
	return c.EncodeBytes(b, snapshotAdditionalData)
}

// UnmarshalSnapshot decodes a scene produced by MarshalSnapshot with
// the same codec.
func UnmarshalSnapshot(b []byte, c codec.Codec) (*Scene, error) {
	if c != nil {
		var err error
		b, err = c.DecodeBytes(b, snapshotAdditionalData)
		if err != nil {
			return nil, err
		}
	}
	s := Scene{}.Init(0)
	if _, err := s.UnmarshalMsg(b); err != nil {
		return nil, err
	}
	mlog.Printf2("scene/snapshot", "UnmarshalSnapshot %v", s)
	return s, nil
}
