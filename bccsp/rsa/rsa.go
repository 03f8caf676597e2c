/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package rsa implements unpadded ("textbook") RSA key generation, signing
// and verification on top of the largeint two's-complement integers.
//
// Signatures are computed directly over a hash value, s = h^d mod n, with
// no padding scheme. The package is not suitable where PKCS #1 signatures
// are expected.
package rsa

import (
	"crypto/rand"
	"io"

	"github.com/hyperledger/fabric-rsa/bccsp/largeint"
	"github.com/hyperledger/fabric-rsa/common/flogging"
	"github.com/pkg/errors"
)

const (
	// PBits is the size of the first generated prime.
	PBits = 255
	// QBits is the size of the second generated prime.
	QBits = 256
)

// DefaultExponent is the first public exponent tried, 65537.
var DefaultExponent = largeint.NewInt(65537)

// ErrNonInvertibleExponent is returned by NewKeyFromPrimes when the public
// exponent shares a factor with phi(n). GenerateKey never returns it; it
// draws another exponent instead.
var ErrNonInvertibleExponent = errors.New("public exponent is not invertible modulo phi(n)")

var logger = flogging.MustGetLogger("bccsp_rsa")

// PublicKey is the pair (N, E).
type PublicKey struct {
	N largeint.Int
	E largeint.Int
}

// PrivateKey holds the private exponent D for the modulus N. P, Q and Phi
// are kept when the key was generated in this process and are zero for keys
// read back from storage.
type PrivateKey struct {
	PublicKey
	D largeint.Int

	P   largeint.Int
	Q   largeint.Int
	Phi largeint.Int
}

// Public returns the public half of the key.
func (k *PrivateKey) Public() *PublicKey {
	pub := k.PublicKey
	return &pub
}

// Validate checks e*d = 1 (mod phi) when phi is known, and the basic range
// of the parameters otherwise.
func (k *PrivateKey) Validate() error {
	if k.N.Cmp(largeint.One()) <= 0 {
		return errors.New("modulus must be greater than one")
	}
	if !k.D.IsPositive() {
		return errors.New("private exponent must be positive")
	}
	if k.Phi.IsZero() {
		return nil
	}
	if !k.P.Mul(k.Q).Equal(k.N) {
		return errors.New("modulus does not match its primes")
	}
	if !k.E.Mul(k.D).Mod(k.Phi).Equal(largeint.One()) {
		return errors.New("e*d is not congruent to 1 modulo phi(n)")
	}
	return nil
}

// GenerateKey generates a key from a 255-bit and a 256-bit probable prime.
func GenerateKey(random io.Reader) (*PrivateKey, error) {
	return GenerateKeyWithBits(random, PBits, QBits)
}

// GenerateKeyWithBits generates a key from probable primes p and q of the
// given sizes. The primes are drawn in order, p first.
func GenerateKeyWithBits(random io.Reader, pBits, qBits int) (*PrivateKey, error) {
	k, _, err := GenerateKeyWithStats(random, pBits, qBits)
	return k, err
}

// GenerateKeyWithStats works like GenerateKeyWithBits and also reports how
// many exponents were drawn after DefaultExponent was rejected.
func GenerateKeyWithStats(random io.Reader, pBits, qBits int) (*PrivateKey, int, error) {
	g := &keyGenerator{
		random:   random,
		prime:    probablePrime,
		exponent: DefaultExponent,
	}
	k, err := g.generate(pBits, qBits)
	return k, g.resampled, err
}

// NewKeyFromPrimes builds a key from known primes and public exponent.
func NewKeyFromPrimes(p, q, e largeint.Int) (*PrivateKey, error) {
	if p.Cmp(largeint.One()) <= 0 || q.Cmp(largeint.One()) <= 0 {
		return nil, errors.Errorf("primes must be greater than one, got p=%s q=%s", p, q)
	}
	if !e.IsPositive() {
		return nil, errors.Errorf("public exponent must be positive, got %s", e)
	}
	n, phi := modulus(p, q)
	d, err := privateExponent(e, phi)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{
		PublicKey: PublicKey{N: n, E: e.Trim()},
		D:         d,
		P:         p.Trim(),
		Q:         q.Trim(),
		Phi:       phi,
	}, nil
}

type primeFunc func(random io.Reader, bits int) (largeint.Int, error)

type keyGenerator struct {
	random   io.Reader
	prime    primeFunc
	exponent largeint.Int

	// resampled counts exponents drawn after the default was rejected.
	resampled int
}

func (g *keyGenerator) generate(pBits, qBits int) (*PrivateKey, error) {
	if g.random == nil {
		g.random = rand.Reader
	}

	p, err := g.prime(g.random, pBits)
	if err != nil {
		return nil, errors.WithMessage(err, "failed generating p")
	}
	q, err := g.prime(g.random, qBits)
	if err != nil {
		return nil, errors.WithMessage(err, "failed generating q")
	}
	for q.Equal(p) {
		if q, err = g.prime(g.random, qBits); err != nil {
			return nil, errors.WithMessage(err, "failed generating q")
		}
	}

	n, phi := modulus(p, q)

	// The exponent is redrawn until it is invertible. The loop has no cap:
	// a random source that keeps producing multiples of a factor of phi
	// makes it spin.
	e := g.exponent
	d, err := privateExponent(e, phi)
	for errors.Is(err, ErrNonInvertibleExponent) {
		logger.Debugf("exponent %s rejected: %s", e, err)
		g.resampled++
		if e, err = randomExponent(g.random, phi); err != nil {
			return nil, errors.WithMessage(err, "failed drawing public exponent")
		}
		d, err = privateExponent(e, phi)
	}
	if err != nil {
		return nil, err
	}

	return &PrivateKey{
		PublicKey: PublicKey{N: n, E: e},
		D:         d,
		P:         p,
		Q:         q,
		Phi:       phi,
	}, nil
}

// modulus returns n = p*q and phi = (p-1)(q-1).
func modulus(p, q largeint.Int) (n, phi largeint.Int) {
	one := largeint.One()
	n = p.Mul(q)
	phi = p.Sub(one).Mul(q.Sub(one))
	return n, phi
}

// privateExponent derives d in [0, phi) from the Bezout coefficient of e in
// xgcd(phi, e).
func privateExponent(e, phi largeint.Int) (largeint.Int, error) {
	g, _, y := phi.XGCD(e)
	if !g.Equal(largeint.One()) {
		return largeint.Int{}, errors.WithMessagef(ErrNonInvertibleExponent, "gcd(phi, %s) = %s", e, g)
	}
	d := y.Mod(phi)
	if d.IsNegative() {
		d = d.Add(phi)
	}
	return d, nil
}

// randomExponent draws a value with the bit length of phi. Values below two
// are drawn again.
func randomExponent(random io.Reader, phi largeint.Int) (largeint.Int, error) {
	bits := phi.BitLen()
	buf := make([]byte, (bits+7)/8)
	for {
		if _, err := io.ReadFull(random, buf); err != nil {
			return largeint.Int{}, err
		}
		if extra := uint(len(buf)*8 - bits); extra > 0 {
			buf[0] &= 0xFF >> extra
		}
		e, err := largeint.FromUnsignedBytes(buf)
		if err != nil {
			return largeint.Int{}, err
		}
		if e.Cmp(largeint.One()) > 0 {
			return e.Trim(), nil
		}
	}
}

// probablePrime returns a prime of exactly bits bits. crypto/rand.Prime
// runs Miller-Rabin and Baillie-PSW; the chance of a composite is far below
// 2^-100.
func probablePrime(random io.Reader, bits int) (largeint.Int, error) {
	p, err := rand.Prime(random, bits)
	if err != nil {
		return largeint.Int{}, err
	}
	return largeint.FromBig(p), nil
}
