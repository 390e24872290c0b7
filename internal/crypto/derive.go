package crypto

import (
	"golang.org/x/crypto/blake2b"

	"github.com/arloliu/vach/errs"
	"github.com/arloliu/vach/format"
)

// Domain separation labels keep the AEAD key derivation and the nonce
// derivation from ever colliding even though both are BLAKE2b over related
// inputs.
const (
	aeadKeyDomain = "vach.aead-key.v1"
	nonceDomain   = "vach.nonce.v1"
)

// DeriveAEADKey derives the symmetric AEAD key from the archive's Ed25519
// signing seed via a keyed BLAKE2b hash. Any implementation holding the
// same seed reproduces the same key (§4.6).
func DeriveAEADKey(secretSeed []byte) ([]byte, error) {
	if len(secretSeed) != format.Ed25519SecretKeySize {
		return nil, errs.New(errs.KindCryptoError, "DeriveAEADKey", errs.ErrMissingSecretKey)
	}

	h, err := blake2b.New(format.AEADKeySize, secretSeed)
	if err != nil {
		return nil, errs.New(errs.KindCryptoError, "DeriveAEADKey", err)
	}

	_, _ = h.Write([]byte(aeadKeyDomain))

	return h.Sum(nil), nil
}

// DeriveNonce derives the per-leaf AEAD nonce from the archive's AEAD key
// and the leaf's identifier (§4.6). Keying the hash by the AEAD key rather
// than hashing the identifier alone keeps distinct archives from sharing a
// derivation even when two archives reuse an identifier.
func DeriveNonce(aeadKey []byte, identifier string) ([]byte, error) {
	if len(aeadKey) != format.AEADKeySize {
		return nil, errs.New(errs.KindCryptoError, "DeriveNonce", errs.ErrMissingSecretKey)
	}

	h, err := blake2b.New(format.NonceSize, aeadKey)
	if err != nil {
		return nil, errs.New(errs.KindCryptoError, "DeriveNonce", err)
	}

	_, _ = h.Write([]byte(nonceDomain))
	_, _ = h.Write([]byte(identifier))

	return h.Sum(nil), nil
}
