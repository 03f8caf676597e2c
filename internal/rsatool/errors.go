/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package rsatool

import "github.com/pkg/errors"

var (
	// ErrMissingKeyArtifact is returned when pubkey.rsa or privkey.rsa is
	// absent or cannot be decoded.
	ErrMissingKeyArtifact = errors.New("key artifact is missing or unreadable")

	// ErrMissingSignatureArtifact is returned when the signature file of a
	// target is absent or empty.
	ErrMissingSignatureArtifact = errors.New("signature artifact is missing or unreadable")

	// ErrUnreadableTarget is returned when the file to sign or verify cannot
	// be read.
	ErrUnreadableTarget = errors.New("target file is unreadable")
)
