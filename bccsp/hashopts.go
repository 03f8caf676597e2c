/*
Copyright IBM Corp. 2016 All Rights Reserved.

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

import (
	"crypto"

	"github.com/pkg/errors"
)

// SHAOpts selects the hash function configured for the provider, from its
// hash family and security level.
type SHAOpts struct{}

func (opts *SHAOpts) Algorithm() string { return SHA2 }

// SHA256Opts selects SHA-256, the digest signed by default.
type SHA256Opts struct{}

func (opts *SHA256Opts) Algorithm() string { return SHA256 }

// SHA384Opts selects SHA-384.
type SHA384Opts struct{}

func (opts *SHA384Opts) Algorithm() string { return SHA384 }

// SHA3_256Opts selects SHA3-256.
type SHA3_256Opts struct{}

func (opts *SHA3_256Opts) Algorithm() string { return SHA3_256 }

// SHA3_384Opts selects SHA3-384.
type SHA3_384Opts struct{}

func (opts *SHA3_384Opts) Algorithm() string { return SHA3_384 }

var hashFunctions = map[string]struct {
	opts func() HashOpts
	hash crypto.Hash
}{
	SHA256:   {func() HashOpts { return &SHA256Opts{} }, crypto.SHA256},
	SHA384:   {func() HashOpts { return &SHA384Opts{} }, crypto.SHA384},
	SHA3_256: {func() HashOpts { return &SHA3_256Opts{} }, crypto.SHA3_256},
	SHA3_384: {func() HashOpts { return &SHA3_384Opts{} }, crypto.SHA3_384},
}

// GetHashOpt returns the HashOpts corresponding to the passed hash function
func GetHashOpt(hashFunction string) (HashOpts, error) {
	if hf, ok := hashFunctions[hashFunction]; ok {
		return hf.opts(), nil
	}
	return nil, errors.Errorf("hash function not recognized [%s]", hashFunction)
}

// GetCryptoHash returns the crypto.Hash identifier of the passed hash
// function, as recorded in RSASignerOpts.
func GetCryptoHash(hashFunction string) (crypto.Hash, error) {
	if hf, ok := hashFunctions[hashFunction]; ok {
		return hf.hash, nil
	}
	return 0, errors.Errorf("hash function not recognized [%s]", hashFunction)
}
