/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package rsatool

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// SignatureFile names the signature artifact of target.
func SignatureFile(target, suffix string) string {
	return target + suffix
}

func readTarget(target string) ([]byte, error) {
	msg, err := os.ReadFile(target)
	if err != nil {
		return nil, errors.WithMessagef(ErrUnreadableTarget, "%s", err)
	}
	return msg, nil
}

func readKeyArtifact(dir, name string) ([]byte, error) {
	path := filepath.Join(dir, name)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithMessagef(ErrMissingKeyArtifact, "%s", err)
	}
	return raw, nil
}

func readSignature(path string) ([]byte, error) {
	sig, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithMessagef(ErrMissingSignatureArtifact, "%s", err)
	}
	if len(sig) == 0 {
		return nil, errors.WithMessagef(ErrMissingSignatureArtifact, "%s is empty", path)
	}
	return sig, nil
}

func writeSignature(path string, sig []byte) error {
	if err := os.WriteFile(path, sig, 0o644); err != nil {
		return errors.Wrapf(err, "failed writing signature to %s", path)
	}
	return nil
}
