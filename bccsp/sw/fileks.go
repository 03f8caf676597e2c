/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package sw

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/hyperledger/fabric-rsa/bccsp"
	"github.com/hyperledger/fabric-rsa/bccsp/rsa"
	"github.com/pkg/errors"
)

const (
	// PublicKeyFile is the name of the public key artifact.
	PublicKeyFile = "pubkey.rsa"
	// PrivateKeyFile is the name of the private key artifact.
	PrivateKeyFile = "privkey.rsa"
)

// NewFileBasedKeyStore instantiated a file-based key store at a given position.
// It can be also be set as read only. In this case, any store operation
// will be forbidden
func NewFileBasedKeyStore(path string, readOnly bool) (bccsp.KeyStore, error) {
	ks := &fileBasedKeyStore{}
	return ks, ks.Init(path, readOnly)
}

// fileBasedKeyStore is a folder-based KeyStore holding a single key pair.
// The public key is kept in PublicKeyFile and the private key in
// PrivateKeyFile. Storing a key replaces the pair in the folder.
// A KeyStore can be read only to avoid the overwriting of keys.
type fileBasedKeyStore struct {
	path string

	readOnly bool
	isOpen   bool

	// Sync
	m sync.Mutex
}

// Init initializes this KeyStore with a path to a folder where the keys are
// stored and a read only flag. Missing folders are created.
func (ks *fileBasedKeyStore) Init(path string, readOnly bool) error {
	if len(path) == 0 {
		return errors.New("an invalid KeyStore path provided. Path cannot be an empty string")
	}

	ks.m.Lock()
	defer ks.m.Unlock()

	if ks.isOpen {
		return errors.New("keystore is already initialized")
	}

	ks.path = path
	ks.readOnly = readOnly

	exists, err := dirExists(path)
	if err != nil {
		return err
	}
	if !exists {
		err = ks.createKeyStore()
		if err != nil {
			return err
		}
		return ks.openKeyStore()
	}

	empty, err := dirEmpty(path)
	if err != nil {
		return err
	}
	if empty {
		err = ks.createKeyStore()
		if err != nil {
			return err
		}
	}

	return ks.openKeyStore()
}

// ReadOnly returns true if this KeyStore is read only, false otherwise.
// If ReadOnly is true then StoreKey will fail.
func (ks *fileBasedKeyStore) ReadOnly() bool {
	return ks.readOnly
}

// GetKey returns a key object whose SKI is the one passed. The private key
// is preferred; when the public key artifact holds the same modulus, its
// exponent is attached so PublicKey can be derived.
func (ks *fileBasedKeyStore) GetKey(ski []byte) (bccsp.Key, error) {
	// Validate arguments
	if len(ski) == 0 {
		return nil, errors.New("invalid SKI. Cannot be of zero length")
	}

	ks.m.Lock()
	defer ks.m.Unlock()

	pub, pubErr := ks.loadPublicKey()
	if pubErr != nil && !os.IsNotExist(errors.Cause(pubErr)) {
		logger.Warnf("Ignoring public key at [%s]: [%s]", ks.path, pubErr)
	}

	priv, err := ks.loadPrivateKey()
	switch {
	case err == nil:
		if pubErr == nil && pub.N.Equal(priv.N) {
			priv.E = pub.E
		}
		k := &rsaPrivateKey{privKey: priv}
		if bytes.Equal(k.SKI(), ski) {
			return k, nil
		}
	case !os.IsNotExist(errors.Cause(err)):
		return nil, errors.WithMessagef(err, "failed loading secret key [%x]", ski)
	}

	if pubErr == nil {
		k := &rsaPublicKey{pub}
		if bytes.Equal(k.SKI(), ski) {
			return k, nil
		}
	}

	return nil, errors.Errorf("key with SKI %x not found in %s", ski, ks.path)
}

// StoreKey stores the key k in this KeyStore.
// If this KeyStore is read only then the method will fail.
func (ks *fileBasedKeyStore) StoreKey(k bccsp.Key) (err error) {
	if ks.readOnly {
		return errors.New("read only KeyStore")
	}

	if k == nil {
		return errors.New("invalid key. It must be different from nil")
	}

	ks.m.Lock()
	defer ks.m.Unlock()

	switch kk := k.(type) {
	case *rsaPrivateKey:
		err = ks.storePrivateKey(kk.privKey)
		if err != nil {
			return errors.WithMessage(err, "failed storing RSA private key")
		}
		if kk.privKey.E.IsZero() {
			return nil
		}
		err = ks.storePublicKey(kk.privKey.Public())
		if err != nil {
			return errors.WithMessage(err, "failed storing RSA public key")
		}

	case *rsaPublicKey:
		err = ks.storePublicKey(kk.pubKey)
		if err != nil {
			return errors.WithMessage(err, "failed storing RSA public key")
		}

	default:
		return errors.Errorf("key type not recognized [%s]", k)
	}

	return
}

func (ks *fileBasedKeyStore) storePrivateKey(privateKey *rsa.PrivateKey) error {
	rawKey, err := privateKeyToPEM(privateKey)
	if err != nil {
		logger.Errorf("Failed converting private key to PEM: [%s]", err)
		return err
	}

	err = os.WriteFile(ks.pathFor(PrivateKeyFile), rawKey, 0600)
	if err != nil {
		logger.Errorf("Failed storing private key: [%s]", err)
		return err
	}

	return nil
}

func (ks *fileBasedKeyStore) storePublicKey(publicKey *rsa.PublicKey) error {
	rawKey, err := publicKeyToPEM(publicKey)
	if err != nil {
		logger.Errorf("Failed converting public key to PEM: [%s]", err)
		return err
	}

	err = os.WriteFile(ks.pathFor(PublicKeyFile), rawKey, 0644)
	if err != nil {
		logger.Errorf("Failed storing public key: [%s]", err)
		return err
	}

	return nil
}

func (ks *fileBasedKeyStore) loadPrivateKey() (*rsa.PrivateKey, error) {
	path := ks.pathFor(PrivateKeyFile)
	logger.Debugf("Loading private key at [%s]...", path)

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	privateKey, err := pemToPrivateKey(raw)
	if err != nil {
		logger.Errorf("Failed parsing private key at [%s]: [%s].", path, err)
		return nil, err
	}

	return privateKey, nil
}

func (ks *fileBasedKeyStore) loadPublicKey() (*rsa.PublicKey, error) {
	path := ks.pathFor(PublicKeyFile)
	logger.Debugf("Loading public key at [%s]...", path)

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	publicKey, err := pemToPublicKey(raw)
	if err != nil {
		logger.Errorf("Failed parsing public key at [%s]: [%s].", path, err)
		return nil, err
	}

	return publicKey, nil
}

func (ks *fileBasedKeyStore) createKeyStore() error {
	// Create keystore directory root if it doesn't exist yet
	ksPath := ks.path
	logger.Debugf("Creating KeyStore at [%s]...", ksPath)

	err := os.MkdirAll(ksPath, 0755)
	if err != nil {
		return err
	}

	logger.Debugf("KeyStore created at [%s].", ksPath)
	return nil
}

func (ks *fileBasedKeyStore) openKeyStore() error {
	if ks.isOpen {
		return nil
	}
	ks.isOpen = true
	logger.Debugf("KeyStore opened at [%s]...done", ks.path)

	return nil
}

func (ks *fileBasedKeyStore) pathFor(name string) string {
	return filepath.Join(ks.path, name)
}

func dirExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func dirEmpty(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	_, err = f.Readdir(1)
	if err == io.EOF {
		return true, nil
	}
	return false, err
}
