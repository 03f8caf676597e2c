/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package largeint

// Add returns x + y. The shorter operand is sign extended to the width of
// the longer one; the result is one byte wider only when the sum of two
// operands of the same sign overflows into the sign bit.
func (x Int) Add(y Int) Int {
	a, b := x.bytes(), y.bytes()
	n := max(len(a), len(b))
	a, b = signExtend(a, n), signExtend(b, n)

	res := make([]byte, n)
	carry := 0
	for i := n - 1; i >= 0; i-- {
		carry += int(a[i]) + int(b[i])
		res[i] = byte(carry)
		carry >>= 8
	}

	sum := Int{val: res}
	xn, yn := x.IsNegative(), y.IsNegative()
	switch {
	case !xn && !yn && sum.IsNegative():
		return sum.Extend(0x00)
	case xn && yn && !sum.IsNegative():
		return sum.Extend(0xFF)
	}
	return sum
}

// Negate returns -x: every bit is flipped and one is added.
func (x Int) Negate() Int {
	v := x.bytes()

	var out []byte
	if isMostNegative(v) {
		// +2^(8n-1) does not fit in n bytes
		out = make([]byte, len(v)+1)
		for i, b := range v {
			out[i+1] = ^b
		}
	} else {
		out = make([]byte, len(v))
		for i, b := range v {
			out[i] = ^b
		}
	}

	for i := len(out) - 1; i >= 0; i-- {
		out[i]++
		if out[i] != 0 {
			break
		}
	}
	return Int{val: out}
}

// Sub returns x - y.
func (x Int) Sub(y Int) Int {
	return x.Add(y.Negate())
}

// Abs returns |x|.
func (x Int) Abs() Int {
	if x.IsNegative() {
		return x.Negate()
	}
	return x
}

// Lsh returns x shifted left by n bits, filling the low bits with zeros.
func (x Int) Lsh(n int) Int {
	return x.lsh(n, false)
}

// growthFor returns how many whole bytes must be prepended to x so that a
// left shift by n bits keeps its sign. Only the sign padding in front of the
// sign bit itself can absorb shifted bits.
func (x Int) growthFor(n int) int {
	spare := x.paddingBits() - 1
	if n <= spare {
		return 0
	}
	return (n - spare + 7) / 8
}

// lsh shifts x left by n bits. When fill is set the n low bits of the
// result are ones instead of zeros.
func (x Int) lsh(n int, fill bool) Int {
	if n <= 0 {
		return x
	}

	v := x.bytes()
	out := make([]byte, len(v)+x.growthFor(n))
	sign := signByte(v)
	byteShift, bitShift := n/8, uint(n%8)

	// at returns the j-th byte of x counted from the least significant end.
	at := func(j int) byte {
		switch {
		case j < 0:
			return 0
		case j >= len(v):
			return sign
		}
		return v[len(v)-1-j]
	}

	for k := 0; k < len(out); k++ {
		b := at(k-byteShift) << bitShift
		if bitShift > 0 {
			b |= at(k-byteShift-1) >> (8 - bitShift)
		}
		out[len(out)-1-k] = b
	}

	if fill {
		for k := 0; k < byteShift; k++ {
			out[len(out)-1-k] = 0xFF
		}
		out[len(out)-1-byteShift] |= byte(1)<<bitShift - 1
	}
	return Int{val: out}
}

// rshOne shifts every bit of x one position towards the least significant
// end, shifting a zero into the top. It is only meaningful for nonnegative
// values.
func (x Int) rshOne() Int {
	v := x.bytes()
	out := make([]byte, len(v))
	var low byte
	for i, b := range v {
		out[i] = b>>1 | low<<7
		low = b & 1
	}
	return Int{val: out}
}

// Mul returns x * y using shift-and-add over the magnitudes. The result is
// negative iff exactly one operand is negative, and is returned trimmed.
func (x Int) Mul(y Int) Int {
	if x.IsZero() || y.IsZero() {
		return Zero()
	}

	neg := x.IsNegative() != y.IsNegative()
	a, b := x.Abs().Trim(), y.Abs().Trim()
	if a.Len() < b.Len() {
		a, b = b, a
	}

	sum := Zero()
	for k, n := 0, b.BitLen(); k < n; k++ {
		if b.Bit(k) == 1 {
			sum = sum.Add(a.Lsh(k))
		}
	}

	if neg {
		sum = sum.Negate()
	}
	return sum.Trim()
}

// DivMod returns the quotient and remainder of x / y by bit-serial restoring
// division. The quotient is negative iff the operand signs differ and the
// remainder carries the sign of x, so that q*y + r == x always holds.
//
// Division by zero yields a zero quotient and x as the remainder.
func (x Int) DivMod(y Int) (q, r Int) {
	if y.IsZero() {
		return Zero(), x.Trim()
	}

	qNeg := x.IsNegative() != y.IsNegative()
	rNeg := x.IsNegative()
	dividend, divisor := x.Abs().Trim(), y.Abs().Trim()

	switch c := dividend.Cmp(divisor); {
	case c == 0:
		q = One()
		if qNeg {
			q = q.Negate()
		}
		return q, Zero()
	case c < 0:
		return Zero(), x.Trim()
	}

	shift := dividend.BitLen() - divisor.BitLen()
	d := divisor.Lsh(shift)
	rem := dividend
	q = Zero()
	for i := 0; i <= shift; i++ {
		diff := rem.Sub(d)
		if diff.IsNegative() {
			q = q.lsh(1, false)
		} else {
			q = q.lsh(1, true)
			rem = diff
		}
		d = d.rshOne()
	}

	q, rem = q.Trim(), rem.Trim()
	if rNeg && !rem.IsZero() {
		rem = rem.Negate()
	}
	if qNeg && !q.IsZero() {
		q = q.Negate()
	}
	return q, rem
}

// Div returns the quotient of x / y as computed by DivMod.
func (x Int) Div(y Int) Int {
	q, _ := x.DivMod(y)
	return q
}

// Mod returns the remainder of x / y as computed by DivMod. The result is
// nonnegative whenever x is nonnegative.
func (x Int) Mod(y Int) Int {
	_, r := x.DivMod(y)
	return r
}

func isMostNegative(v []byte) bool {
	if v[0] != 0x80 {
		return false
	}
	for _, b := range v[1:] {
		if b != 0 {
			return false
		}
	}
	return true
}
