/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package largeint

import (
	"bytes"
	"encoding/binary"
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

// ErrMalformedInput is returned when an integer is constructed from an
// empty byte sequence.
var ErrMalformedInput = errors.New("malformed input")

// Int is an immutable arbitrary-precision signed integer. The value is held
// as a two's-complement byte sequence, most significant byte first, at least
// one byte long. The zero value of Int is the integer 0.
//
// Two Ints with different stored lengths may represent the same number; use
// Cmp or Equal rather than comparing Bytes.
type Int struct {
	val []byte
}

// Zero returns the integer 0.
func Zero() Int {
	return Int{val: []byte{0x00}}
}

// One returns the integer 1.
func One() Int {
	return Int{val: []byte{0x01}}
}

// NewInt returns the shortest representation of x.
func NewInt(x int64) Int {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(x))
	return Int{val: buf}.Trim()
}

// FromBytes wraps a copy of b, interpreted as big-endian two's complement.
func FromBytes(b []byte) (Int, error) {
	if len(b) == 0 {
		return Int{}, errors.WithMessage(ErrMalformedInput, "cannot build an integer from an empty byte sequence")
	}
	return Int{val: clone(b)}, nil
}

// FromUnsignedBytes interprets b as a big-endian unsigned magnitude, as
// produced by hash functions. A leading zero byte is added when the top bit
// of b is set so that the result is never negative.
func FromUnsignedBytes(b []byte) (Int, error) {
	if len(b) == 0 {
		return Int{}, errors.WithMessage(ErrMalformedInput, "cannot build an integer from an empty byte sequence")
	}
	if b[0]&0x80 == 0 {
		return Int{val: clone(b)}, nil
	}
	v := make([]byte, len(b)+1)
	copy(v[1:], b)
	return Int{val: v}, nil
}

// FromBig converts a math/big integer.
func FromBig(b *big.Int) Int {
	if b.Sign() >= 0 {
		mag := b.Bytes()
		if len(mag) == 0 {
			return Zero()
		}
		x, _ := FromUnsignedBytes(mag)
		return x
	}

	// 2^(8n) + b for the smallest n that leaves room for the sign bit
	n := (b.BitLen() + 8) / 8
	mod := new(big.Int).Lsh(big.NewInt(1), uint(8*n))
	v := new(big.Int).Add(mod, b).FillBytes(make([]byte, n))
	return Int{val: v}.Trim()
}

// Big converts x to a math/big integer.
func (x Int) Big() *big.Int {
	if x.IsZero() {
		return new(big.Int)
	}
	v := x.bytes()
	b := new(big.Int).SetBytes(v)
	if x.IsNegative() {
		b.Sub(b, new(big.Int).Lsh(big.NewInt(1), uint(8*len(v))))
	}
	return b
}

// Bytes returns a copy of the two's-complement representation of x.
func (x Int) Bytes() []byte {
	return clone(x.bytes())
}

// Len returns the number of bytes in the stored representation of x.
func (x Int) Len() int {
	return len(x.bytes())
}

// IsNegative reports whether the sign bit of x is set.
func (x Int) IsNegative() bool {
	return x.bytes()[0]&0x80 != 0
}

// IsZero reports whether every byte of x is zero.
func (x Int) IsZero() bool {
	for _, b := range x.bytes() {
		if b != 0 {
			return false
		}
	}
	return true
}

// IsPositive reports whether x > 0.
func (x Int) IsPositive() bool {
	return !x.IsNegative() && !x.IsZero()
}

// Extend returns x with b prepended as a new most significant byte.
func (x Int) Extend(b byte) Int {
	v := x.bytes()
	out := make([]byte, len(v)+1)
	out[0] = b
	copy(out[1:], v)
	return Int{val: out}
}

// Trim returns the canonical form of x: whole leading bytes that only repeat
// the sign are dropped, down to a single byte. Sign padding inside the first
// remaining byte is kept.
func (x Int) Trim() Int {
	v := x.bytes()
	sign := signByte(v)
	i := 0
	for i < len(v)-1 && v[i] == sign && v[i+1]&0x80 == sign&0x80 {
		i++
	}
	return Int{val: v[i:]}
}

// paddingBits counts the leading bits of x that are equal to the sign bit,
// the sign bit included, across byte boundaries.
func (x Int) paddingBits() int {
	v := x.bytes()
	sign := signByte(v)
	n := 0
	for _, b := range v {
		if b == sign {
			n += 8
			continue
		}
		for bit := 7; bit >= 0; bit-- {
			if b>>uint(bit)&1 != sign&1 {
				return n
			}
			n++
		}
	}
	return n
}

// BitLen returns the number of significant bits of x, excluding the sign
// bit and any sign padding. BitLen of 0 and -1 is 0.
func (x Int) BitLen() int {
	return 8*x.Len() - x.paddingBits()
}

// Bit returns bit i of x, counting from the least significant bit. Bits
// beyond the stored length are sign bits.
func (x Int) Bit(i int) uint {
	v := x.bytes()
	if i < 0 {
		return 0
	}
	j := i / 8
	if j >= len(v) {
		return uint(signByte(v) & 1)
	}
	return uint(v[len(v)-1-j]>>uint(i%8)) & 1
}

// Cmp compares x and y by numeric value and returns -1, 0 or +1.
func (x Int) Cmp(y Int) int {
	a, b := x.Trim(), y.Trim()
	an, bn := a.IsNegative(), b.IsNegative()
	switch {
	case !an && bn:
		return 1
	case an && !bn:
		return -1
	}

	// A longer canonical negative is further from zero.
	flip := 1
	if an {
		flip = -1
	}
	switch {
	case a.Len() > b.Len():
		return flip
	case a.Len() < b.Len():
		return -flip
	}

	// Same sign and width: two's-complement bytes order like unsigned ones.
	return bytes.Compare(a.val, b.val)
}

// Equal reports whether x and y are numerically equal.
func (x Int) Equal(y Int) bool { return x.Cmp(y) == 0 }

// Less reports whether x < y.
func (x Int) Less(y Int) bool { return x.Cmp(y) < 0 }

// Greater reports whether x > y.
func (x Int) Greater(y Int) bool { return x.Cmp(y) > 0 }

// String returns the decimal representation of x.
func (x Int) String() string {
	return x.Big().String()
}

// BinaryString returns the stored bits of x, eight per byte.
func (x Int) BinaryString() string {
	var sb strings.Builder
	for _, b := range x.bytes() {
		for bit := 7; bit >= 0; bit-- {
			sb.WriteByte('0' + b>>uint(bit)&1)
		}
	}
	return sb.String()
}

func (x Int) bytes() []byte {
	if len(x.val) == 0 {
		return []byte{0x00}
	}
	return x.val
}

func signByte(v []byte) byte {
	if v[0]&0x80 != 0 {
		return 0xFF
	}
	return 0x00
}

// signExtend returns v widened to n bytes with copies of its sign byte.
func signExtend(v []byte, n int) []byte {
	if len(v) >= n {
		return v
	}
	out := make([]byte, n)
	pad := n - len(v)
	sign := signByte(v)
	for i := 0; i < pad; i++ {
		out[i] = sign
	}
	copy(out[pad:], v)
	return out
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
