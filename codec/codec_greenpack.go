/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2017 Markus Stenberg
 *
 * Created:       Sun Dec 24 16:42:58 2017 mstenber
 * Last modified: Sat Mar 25 09:48:02 2023 mstenber
 * Edit time:     21 min
 *
 */

package codec

import (
	"fmt"

	"github.com/glycerine/greenpack/msgp"
)

/////////////////////////////////////////////////////////////////////////////

// Codec layer
//
// The envelopes are msgp tuples ([field0, field1]); the encoding is
// written out by hand below instead of being generated.

// EncryptedData is encoded as [nonce, ciphertext] tuple.
type EncryptedData struct {
	// nonce used for AES GCM
	Nonce []byte

	// EncryptedData is AES GCM encrypted (typically CompressedData)
	EncryptedData []byte
}

func (self *EncryptedData) MarshalMsg(b []byte) ([]byte, error) {
	b = msgp.AppendArrayHeader(b, 2)
	b = msgp.AppendBytes(b, self.Nonce)
	b = msgp.AppendBytes(b, self.EncryptedData)
	return b, nil
}

func (self *EncryptedData) UnmarshalMsg(bts []byte) ([]byte, error) {
	sz, bts, err := (&msgp.NilBitsStack{}).ReadArrayHeaderBytes(bts)
	if err != nil {
		return bts, err
	}
	if sz != 2 {
		return bts, msgp.ArrayError{Wanted: 2, Got: sz}
	}
	self.Nonce, bts, err = (&msgp.NilBitsStack{}).ReadBytesBytes(bts, self.Nonce[:0])
	if err != nil {
		return bts, err
	}
	self.EncryptedData, bts, err = (&msgp.NilBitsStack{}).ReadBytesBytes(bts, self.EncryptedData[:0])
	return bts, err
}

func (self *EncryptedData) Msgsize() int {
	return msgp.ArrayHeaderSize + 2*msgp.BytesPrefixSize + len(self.Nonce) + len(self.EncryptedData)
}

type CompressionType byte

const (
	CompressionType_UNSET CompressionType = iota

	// The data has not been compressed.
	CompressionType_PLAIN

	// The data is compressed with Snappy.
	CompressionType_SNAPPY
)

func (self CompressionType) String() string {
	switch self {
	case CompressionType_UNSET:
		return "UNSET"
	case CompressionType_PLAIN:
		return "PLAIN"
	case CompressionType_SNAPPY:
		return "SNAPPY"
	}
	return fmt.Sprintf("CompressionType(%d)", byte(self))
}

// CompressedData is encoded as [type, rawdata] tuple.
type CompressedData struct {
	// CompressionType describes how the data has been compressed.
	CompressionType CompressionType

	// RawData is the raw data of the client (whatever it is)
	RawData []byte
}

func (self *CompressedData) MarshalMsg(b []byte) ([]byte, error) {
	b = msgp.AppendArrayHeader(b, 2)
	b = msgp.AppendUint8(b, uint8(self.CompressionType))
	b = msgp.AppendBytes(b, self.RawData)
	return b, nil
}

func (self *CompressedData) UnmarshalMsg(bts []byte) ([]byte, error) {
	sz, bts, err := (&msgp.NilBitsStack{}).ReadArrayHeaderBytes(bts)
	if err != nil {
		return bts, err
	}
	if sz != 2 {
		return bts, msgp.ArrayError{Wanted: 2, Got: sz}
	}
	var ct uint8
	ct, bts, err = (&msgp.NilBitsStack{}).ReadUint8Bytes(bts)
	if err != nil {
		return bts, err
	}
	self.CompressionType = CompressionType(ct)
	self.RawData, bts, err = (&msgp.NilBitsStack{}).ReadBytesBytes(bts, self.RawData[:0])
	return bts, err
}

func (self *CompressedData) Msgsize() int {
	return msgp.ArrayHeaderSize + msgp.Uint8Size + msgp.BytesPrefixSize + len(self.RawData)
}
