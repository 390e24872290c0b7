package crypto

import (
	"crypto/ed25519"

	"github.com/arloliu/vach/errs"
	"github.com/arloliu/vach/format"
)

// GenerateKeyPair creates a fresh Ed25519 key pair, returning the 32-byte
// signing seed and the 32-byte public key.
func GenerateKeyPair() (secretSeed, publicKey []byte, err error) {
	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		return nil, nil, errs.New(errs.KindCryptoError, "GenerateKeyPair", err)
	}

	return priv.Seed(), []byte(pub), nil
}

// SplitKeyPair extracts the secret seed and public key from a 64-byte
// keypair blob (the *.kp file format, §6: secret || public).
func SplitKeyPair(kp []byte) (secretSeed, publicKey []byte, err error) {
	const want = format.Ed25519SecretKeySize + format.Ed25519PublicKeySize
	if len(kp) != want {
		return nil, nil, errs.New(errs.KindParseError, "SplitKeyPair", errs.ErrMalformedSource)
	}

	secretSeed = append([]byte(nil), kp[:format.Ed25519SecretKeySize]...)
	publicKey = append([]byte(nil), kp[format.Ed25519SecretKeySize:]...)

	return secretSeed, publicKey, nil
}

// PublicFromSeed recovers the public key that pairs with a 32-byte signing
// seed.
func PublicFromSeed(secretSeed []byte) ([]byte, error) {
	if len(secretSeed) != format.Ed25519SecretKeySize {
		return nil, errs.New(errs.KindCryptoError, "PublicFromSeed", errs.ErrMissingSecretKey)
	}

	priv := ed25519.NewKeyFromSeed(secretSeed)

	return []byte(priv.Public().(ed25519.PublicKey)), nil
}
