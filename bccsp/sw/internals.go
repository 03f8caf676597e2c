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

package sw

import (
	"hash"

	"github.com/hyperledger/fabric-rsa/bccsp"
)

// The CSP keeps one implementation of each of the interfaces below per
// opts or key type, and dispatches on reflect.TypeOf of the argument.
// AddWrapper registers additional ones.

// KeyGenerator creates a key for one bccsp.KeyGenOpts type.
type KeyGenerator interface {
	KeyGen(opts bccsp.KeyGenOpts) (k bccsp.Key, err error)
}

// KeyImporter turns raw material, an *rsa.PublicKey, an *rsa.PrivateKey or
// a PEM artifact, into a key for one bccsp.KeyImportOpts type.
type KeyImporter interface {
	KeyImport(raw interface{}, opts bccsp.KeyImportOpts) (k bccsp.Key, err error)
}

// Signer signs a digest with a private key of one concrete key type. The
// digest is signed as given; hashing a larger message is the caller's job.
type Signer interface {
	Sign(k bccsp.Key, digest []byte, opts bccsp.SignerOpts) (signature []byte, err error)
}

// Verifier checks a signature with a key of one concrete key type. A
// signature that does not match is reported as false with a nil error.
type Verifier interface {
	Verify(k bccsp.Key, signature, digest []byte, opts bccsp.SignerOpts) (valid bool, err error)
}

// Hasher computes digests for one bccsp.HashOpts type.
type Hasher interface {
	Hash(msg []byte, opts bccsp.HashOpts) (hash []byte, err error)
	GetHash(opts bccsp.HashOpts) (h hash.Hash, err error)
}
