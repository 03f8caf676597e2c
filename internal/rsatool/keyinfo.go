/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package rsatool

import (
	"fmt"
	"strings"

	"github.com/hyperledger/fabric-rsa/bccsp"
	"github.com/hyperledger/fabric-rsa/bccsp/rsa"
	"github.com/pkg/errors"
)

type keyParameters interface {
	Parameters() rsa.PrivateKey
}

// KeyInfo renders the parameters of a freshly generated key in decimal, one
// NAME: value line each. Keys read back from privkey.rsa lack the primes
// and are rejected.
func KeyInfo(k bccsp.Key) (string, error) {
	kp, ok := k.(keyParameters)
	if !ok {
		return "", errors.Errorf("key of type %T does not expose its parameters", k)
	}
	params := kp.Parameters()
	if params.Phi.IsZero() {
		return "", errors.New("key parameters are only known for generated keys")
	}

	var b strings.Builder
	for _, p := range []struct {
		name  string
		value fmt.Stringer
	}{
		{"P", params.P},
		{"Q", params.Q},
		{"N", params.N},
		{"PHI_N", params.Phi},
		{"E", params.E},
		{"D", params.D},
	} {
		fmt.Fprintf(&b, "%s: %s\n", p.name, p.value)
	}
	return b.String(), nil
}
