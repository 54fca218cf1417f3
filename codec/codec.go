/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2017 Markus Stenberg
 *
 * Created:       Sun Dec 24 16:42:12 2017 mstenber
 * Last modified: Sat Mar 25 10:12:40 2023 mstenber
 * Edit time:     97 min
 *
 */

// codec library is responsible for transforming data + additionalData
// to different kind of data. This means in practise either
// encrypting/decrypting, compressing/uncompressing, or
// adding/verifying integrity checksums on case-by-case basis.
//
// CodecChain makes it possible to combine multiple Codecs that do the
// particular sub-EncodeBytes/DecodeBytes steps.
package codec

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/QThund/Zunderbolt-sub017/mlog"
	"github.com/golang/snappy"
	"github.com/minio/sha256-simd"
	"golang.org/x/crypto/pbkdf2"
)

var (
	// ErrChecksum is returned when data does not match its checksum
	// (or additional data differs from what was used to encode).
	ErrChecksum = errors.New("checksum mismatch")

	ErrUnknownCompression = errors.New("unknown compression type")

	// ErrDecrypt is returned when authenticated decryption fails;
	// wrong password, tampered data or different additional data.
	ErrDecrypt = errors.New("decryption failed")
)

// Codec
//
// Single transformation of byte slices.
type Codec interface {
	DecodeBytes(data, additionalData []byte) (ret []byte, err error)
	EncodeBytes(data, additionalData []byte) (ret []byte, err error)
}

// EncryptingCodec
//
// AES GCM based encrypting/decrypting (+authenticating) Codec. The key
// is derived from password and salt with pbkdf2 (sha256, iter rounds).
type EncryptingCodec struct {
	gcm cipher.AEAD
	// Main key
	mk []byte
}

const DefaultIterations = 4096

func (self EncryptingCodec) Init(password, salt []byte, iter int) *EncryptingCodec {
	if iter <= 0 {
		iter = DefaultIterations
	}
	self.mk = pbkdf2.Key(password, salt, iter, 32, sha256.New)
	block, err := aes.NewCipher(self.mk)
	if err != nil {
		mlog.Panicf("aes.NewCipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		mlog.Panicf("cipher.NewGCM: %w", err)
	}
	self.gcm = gcm
	return &self
}

func (self *EncryptingCodec) DecodeBytes(data, additionalData []byte) (ret []byte, err error) {
	var ed EncryptedData
	_, err = ed.UnmarshalMsg(data)
	if err != nil {
		return
	}
	if len(ed.Nonce) != self.gcm.NonceSize() {
		return nil, fmt.Errorf("nonce of %d bytes: %w", len(ed.Nonce), ErrDecrypt)
	}
	ret, err = self.gcm.Open(nil, ed.Nonce, ed.EncryptedData, additionalData)
	if err != nil {
		mlog.Printf2("codec/codec", "EncryptingCodec.DecodeBytes failed: %v", err)
		return nil, fmt.Errorf("%v: %w", err, ErrDecrypt)
	}
	return
}

func (self *EncryptingCodec) EncodeBytes(data, additionalData []byte) (ret []byte, err error) {
	nonce := make([]byte, self.gcm.NonceSize())
	if _, err = rand.Read(nonce); err != nil {
		return
	}
	ciphertext := self.gcm.Seal(nil, nonce, data, additionalData)
	ed := EncryptedData{Nonce: nonce, EncryptedData: ciphertext}
	ret, err = ed.MarshalMsg(make([]byte, 0, ed.Msgsize()))
	return
}

// ChecksumCodec
//
// Prefixes the data with sha256 of data + additionalData.
type ChecksumCodec struct {
}

func checksum(data, additionalData []byte) []byte {
	h := sha256.New()
	h.Write(data)
	h.Write(additionalData)
	return h.Sum(nil)
}

func (self *ChecksumCodec) DecodeBytes(data, additionalData []byte) (ret []byte, err error) {
	if len(data) < sha256.Size {
		err = fmt.Errorf("%d bytes is too short: %w", len(data), ErrChecksum)
		return
	}
	sum, ret := data[:sha256.Size], data[sha256.Size:]
	if !bytes.Equal(sum, checksum(ret, additionalData)) {
		mlog.Printf2("codec/codec", "ChecksumCodec.DecodeBytes mismatch (%d bytes)", len(ret))
		return nil, ErrChecksum
	}
	return
}

func (self *ChecksumCodec) EncodeBytes(data, additionalData []byte) (ret []byte, err error) {
	ret = checksum(data, additionalData)
	ret = append(ret, data...)
	return
}

// CompressingCodec
//
// On-the-fly compressing Codec. If the result does not improve, the
// result is marked to be plaintext and passed as-is (at cost of few
// bytes).
type CompressingCodec struct {
}

func (self *CompressingCodec) DecodeBytes(data, additionalData []byte) (ret []byte, err error) {
	var cd CompressedData
	_, err = cd.UnmarshalMsg(data)
	if err != nil {
		return
	}
	switch cd.CompressionType {
	case CompressionType_PLAIN:
		ret = cd.RawData
	case CompressionType_SNAPPY:
		ret, err = snappy.Decode(nil, cd.RawData)
	default:
		err = fmt.Errorf("%d: %w", cd.CompressionType, ErrUnknownCompression)
	}
	return
}

func (self *CompressingCodec) EncodeBytes(data, additionalData []byte) (ret []byte, err error) {
	rd := snappy.Encode(nil, data)
	ct := CompressionType_SNAPPY
	if len(rd) >= len(data) {
		ct = CompressionType_PLAIN
		rd = data
	}
	mlog.Printf2("codec/codec", "CompressingCodec.EncodeBytes %d -> %d (%v)", len(data), len(rd), ct)
	cd := CompressedData{CompressionType: ct, RawData: rd}
	ret, err = cd.MarshalMsg(nil)
	return
}

type CodecChain struct {
	codecs, reverseCodecs []Codec
}

// Init method initializes the codec chain.
//
// codecs are given in decoding order, so e.g. checksumming one
// should be given before compressing one.
func (self CodecChain) Init(codecs ...Codec) *CodecChain {
	self.codecs = codecs
	// Reverse the codec slice for encoding purposes
	rc := make([]Codec, len(codecs))
	for i, c := range codecs {
		rc[len(codecs)-i-1] = c
	}
	self.reverseCodecs = rc
	return &self
}

func (self *CodecChain) DecodeBytes(data, additionalData []byte) (ret []byte, err error) {
	ret = data
	for _, c := range self.codecs {
		ret, err = c.DecodeBytes(data, additionalData)
		if err != nil {
			return
		}
		data = ret
	}
	return
}

func (self *CodecChain) EncodeBytes(data, additionalData []byte) (ret []byte, err error) {
	ret = data
	for _, c := range self.reverseCodecs {
		ret, err = c.EncodeBytes(data, additionalData)
		if err != nil {
			return
		}
		data = ret
	}
	return
}
