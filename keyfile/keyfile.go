// Package keyfile implements the three on-disk key formats external
// tooling exchanges (§6): a combined keypair file, a bare secret-seed
// file, and a bare public-key file.
package keyfile

import (
	"os"

	"github.com/arloliu/vach/errs"
	"github.com/arloliu/vach/format"
	"github.com/arloliu/vach/internal/crypto"
)

const filePerm = 0o600

// WriteKeyPair writes a *.kp file: the 32-byte secret seed followed by the
// 32-byte public key.
func WriteKeyPair(path string, secretSeed, publicKey []byte) error {
	if len(secretSeed) != format.Ed25519SecretKeySize || len(publicKey) != format.Ed25519PublicKeySize {
		return errs.New(errs.KindParseError, "WriteKeyPair", errs.ErrMalformedSource)
	}

	buf := make([]byte, 0, len(secretSeed)+len(publicKey))
	buf = append(buf, secretSeed...)
	buf = append(buf, publicKey...)

	if err := os.WriteFile(path, buf, filePerm); err != nil {
		return errs.New(errs.KindIO, "WriteKeyPair", err)
	}

	return nil
}

// ReadKeyPair reads a *.kp file, returning its secret seed and public key.
func ReadKeyPair(path string) (secretSeed, publicKey []byte, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errs.New(errs.KindIO, "ReadKeyPair", err)
	}

	return crypto.SplitKeyPair(b)
}

// WriteSecret writes a *.sk file: the bare 32-byte secret seed.
func WriteSecret(path string, secretSeed []byte) error {
	if len(secretSeed) != format.Ed25519SecretKeySize {
		return errs.New(errs.KindParseError, "WriteSecret", errs.ErrMalformedSource)
	}
	if err := os.WriteFile(path, secretSeed, filePerm); err != nil {
		return errs.New(errs.KindIO, "WriteSecret", err)
	}

	return nil
}

// ReadSecret reads a *.sk file's bare 32-byte secret seed.
func ReadSecret(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.New(errs.KindIO, "ReadSecret", err)
	}
	if len(b) != format.Ed25519SecretKeySize {
		return nil, errs.New(errs.KindParseError, "ReadSecret", errs.ErrMalformedSource)
	}

	return b, nil
}

// WritePublic writes a *.pk file: the bare 32-byte public key.
func WritePublic(path string, publicKey []byte) error {
	if len(publicKey) != format.Ed25519PublicKeySize {
		return errs.New(errs.KindParseError, "WritePublic", errs.ErrMalformedSource)
	}
	if err := os.WriteFile(path, publicKey, filePerm); err != nil {
		return errs.New(errs.KindIO, "WritePublic", err)
	}

	return nil
}

// ReadPublic reads a *.pk file's bare 32-byte public key.
func ReadPublic(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.New(errs.KindIO, "ReadPublic", err)
	}
	if len(b) != format.Ed25519PublicKeySize {
		return nil, errs.New(errs.KindParseError, "ReadPublic", errs.ErrMalformedSource)
	}

	return b, nil
}
