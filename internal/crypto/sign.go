package crypto

import (
	"crypto/ed25519"
	"encoding/binary"

	"github.com/arloliu/vach/errs"
	"github.com/arloliu/vach/format"
)

// SigningInput builds the canonical byte sequence a leaf's detached
// signature covers (§4.6):
//
//	compression_algorithm_selector || content_version || flags ||
//	identifier_bytes || blob_bytes_after_optional_compression_and_before_encryption
//
// Signing happens before encryption so verification can proceed after
// decryption on the read side.
func SigningInput(algo format.CompressionType, contentVersion uint8, flags uint32, identifier string, blob []byte) []byte {
	buf := make([]byte, 0, 1+1+4+len(identifier)+len(blob))
	buf = append(buf, byte(algo))
	buf = append(buf, contentVersion)
	buf = binary.LittleEndian.AppendUint32(buf, flags)
	buf = append(buf, identifier...)
	buf = append(buf, blob...)

	return buf
}

// Sign produces a detached Ed25519 signature of input using the 32-byte
// signing seed.
func Sign(secretSeed []byte, input []byte) ([]byte, error) {
	if len(secretSeed) != format.Ed25519SecretKeySize {
		return nil, errs.New(errs.KindCryptoError, "Sign", errs.ErrMissingSecretKey)
	}

	priv := ed25519.NewKeyFromSeed(secretSeed)

	return ed25519.Sign(priv, input), nil
}

// Verify reports whether signature is a valid Ed25519 signature of input
// under publicKey. It never returns an error: callers treat a false result
// as "verified = false" per §4.4, escalating to CryptoError themselves only
// in strict mode.
func Verify(publicKey, input, signature []byte) bool {
	if len(publicKey) != ed25519.PublicKeySize || len(signature) != ed25519.SignatureSize {
		return false
	}

	return ed25519.Verify(publicKey, input, signature)
}
