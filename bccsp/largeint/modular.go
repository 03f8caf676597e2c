/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package largeint

// ModExp returns x^e mod m by left-to-right square-and-multiply. The
// accumulator is reduced after every product, so intermediate values stay
// below m^2. The base is first brought into [0, m) which keeps every
// residue nonnegative under the sign rules of DivMod.
//
// m must be positive and e nonnegative; otherwise the result is 0.
func (x Int) ModExp(e, m Int) Int {
	if !m.IsPositive() || e.IsNegative() {
		return Zero()
	}

	base := x.Mod(m)
	if base.IsNegative() {
		base = base.Add(m)
	}

	acc := One().Mod(m)
	for i := e.BitLen() - 1; i >= 0; i-- {
		acc = acc.Mul(acc).Mod(m)
		if e.Bit(i) == 1 {
			acc = acc.Mul(base).Mod(m)
		}
	}
	return acc
}

// XGCD runs the extended Euclidean algorithm on x and y and returns g, a, b
// such that x*a + y*b == g, where |g| is the greatest common divisor of x
// and y. XGCD(x, 0) is (x, 1, 0).
//
// Each step replaces (x, y) with (y, x mod y) and carries the Bezout
// coefficients forward, which yields the same coefficients as the
// recursive formulation without its call depth.
func (x Int) XGCD(y Int) (g, a, b Int) {
	oldR, r := x.Trim(), y.Trim()
	oldS, s := One(), Zero()
	oldT, t := Zero(), One()

	for !r.IsZero() {
		q, rem := oldR.DivMod(r)
		oldR, r = r, rem
		oldS, s = s, oldS.Sub(q.Mul(s)).Trim()
		oldT, t = t, oldT.Sub(q.Mul(t)).Trim()
	}
	return oldR, oldS, oldT
}

// ModInverse returns the inverse of x modulo m in [0, m) and whether it
// exists.
func (x Int) ModInverse(m Int) (Int, bool) {
	if !m.IsPositive() {
		return Zero(), false
	}
	g, a, _ := x.XGCD(m)
	if !g.Abs().Equal(One()) {
		return Zero(), false
	}
	if g.IsNegative() {
		a = a.Negate()
	}
	inv := a.Mod(m)
	if inv.IsNegative() {
		inv = inv.Add(m)
	}
	return inv, true
}
