package crypto

import (
	"golang.org/x/crypto/chacha20poly1305"

	"github.com/arloliu/vach/errs"
)

// Seal encrypts plaintext under aeadKey/nonce, binding associatedData (the
// leaf's identifier bytes, §4.6). The returned ciphertext carries the
// authentication tag appended, matching the registry's single `offset`
// length field.
func Seal(aeadKey, nonce, plaintext, associatedData []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(aeadKey)
	if err != nil {
		return nil, errs.New(errs.KindCryptoError, "Seal", err)
	}

	return aead.Seal(nil, nonce, plaintext, associatedData), nil
}

// Open reverses Seal. Any authentication failure, including a tampered
// associatedData or a swapped ciphertext, fails with CryptoError (§4.4,
// P5).
func Open(aeadKey, nonce, ciphertext, associatedData []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(aeadKey)
	if err != nil {
		return nil, errs.New(errs.KindCryptoError, "Open", err)
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, associatedData)
	if err != nil {
		return nil, errs.New(errs.KindCryptoError, "Open", errs.ErrDecryptFailed)
	}

	return plaintext, nil
}
