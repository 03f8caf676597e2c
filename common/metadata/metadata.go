/*
Copyright London Stock Exchange 2016 All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package metadata carries the build information printed by the version
// commands of rsakeygen and rsasign.
package metadata

// Variables defined by the Makefile and passed in with
// -ldflags "-X github.com/hyperledger/fabric-rsa/common/metadata.Version=..."
var (
	Version   = "latest"
	CommitSHA = "development build"
)
