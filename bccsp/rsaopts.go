/*
Copyright IBM Corp. 2017 All Rights Reserved.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

		 http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package bccsp

import "crypto"

// RSAKeyGenOpts contains options for textbook RSA key generation.
type RSAKeyGenOpts struct {
	Temporary bool
}

// Algorithm returns the key generation algorithm identifier (to be used).
func (opts *RSAKeyGenOpts) Algorithm() string {
	return RSA
}

// Ephemeral returns true if the key to generate has to be ephemeral,
// false otherwise.
func (opts *RSAKeyGenOpts) Ephemeral() bool {
	return opts.Temporary
}

// RSAPublicKeyImportOpts contains options for importing a public key
// from an *rsa.PublicKey or a PEM encoded public key artifact.
type RSAPublicKeyImportOpts struct {
	Temporary bool
}

// Algorithm returns the key importation algorithm identifier (to be used).
func (opts *RSAPublicKeyImportOpts) Algorithm() string {
	return RSAPublicKeyImport
}

// Ephemeral returns true if the key to generate has to be ephemeral,
// false otherwise.
func (opts *RSAPublicKeyImportOpts) Ephemeral() bool {
	return opts.Temporary
}

// RSAPrivateKeyImportOpts contains options for importing a private key
// from an *rsa.PrivateKey or a PEM encoded private key artifact.
type RSAPrivateKeyImportOpts struct {
	Temporary bool
}

// Algorithm returns the key importation algorithm identifier (to be used).
func (opts *RSAPrivateKeyImportOpts) Algorithm() string {
	return RSAPrivateKeyImport
}

// Ephemeral returns true if the key to generate has to be ephemeral,
// false otherwise.
func (opts *RSAPrivateKeyImportOpts) Ephemeral() bool {
	return opts.Temporary
}

// RSASignerOpts selects textbook signing. Digests are read as unsigned
// big-endian integers; HashFunc only records which hash produced them.
type RSASignerOpts struct {
	Hash crypto.Hash
}

// HashFunc returns the hash function that produced the digest.
func (opts *RSASignerOpts) HashFunc() crypto.Hash {
	return opts.Hash
}
