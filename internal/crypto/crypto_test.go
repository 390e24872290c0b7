package crypto

import (
	"testing"

	"github.com/arloliu/vach/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndSplitKeyPair(t *testing.T) {
	secret, public, err := GenerateKeyPair()
	require.NoError(t, err)
	assert.Len(t, secret, format.Ed25519SecretKeySize)
	assert.Len(t, public, format.Ed25519PublicKeySize)

	derivedPublic, err := PublicFromSeed(secret)
	require.NoError(t, err)
	assert.Equal(t, public, derivedPublic)

	kp := append(append([]byte{}, secret...), public...)
	splitSecret, splitPublic, err := SplitKeyPair(kp)
	require.NoError(t, err)
	assert.Equal(t, secret, splitSecret)
	assert.Equal(t, public, splitPublic)
}

func TestSplitKeyPair_WrongSize(t *testing.T) {
	_, _, err := SplitKeyPair(make([]byte, 10))
	require.Error(t, err)
}

func TestDeriveAEADKey_Deterministic(t *testing.T) {
	secret, _, err := GenerateKeyPair()
	require.NoError(t, err)

	k1, err := DeriveAEADKey(secret)
	require.NoError(t, err)
	k2, err := DeriveAEADKey(secret)
	require.NoError(t, err)
	assert.Equal(t, k1, k2)
	assert.Len(t, k1, format.AEADKeySize)
}

func TestDeriveNonce_DifferentPerIdentifier(t *testing.T) {
	secret, _, err := GenerateKeyPair()
	require.NoError(t, err)
	key, err := DeriveAEADKey(secret)
	require.NoError(t, err)

	n1, err := DeriveNonce(key, "a")
	require.NoError(t, err)
	n2, err := DeriveNonce(key, "b")
	require.NoError(t, err)

	assert.Len(t, n1, format.NonceSize)
	assert.NotEqual(t, n1, n2)
}

func TestSealOpen_RoundTrip(t *testing.T) {
	secret, _, err := GenerateKeyPair()
	require.NoError(t, err)
	key, err := DeriveAEADKey(secret)
	require.NoError(t, err)
	nonce, err := DeriveNonce(key, "id")
	require.NoError(t, err)

	ciphertext, err := Seal(key, nonce, []byte("plaintext"), []byte("id"))
	require.NoError(t, err)

	plaintext, err := Open(key, nonce, ciphertext, []byte("id"))
	require.NoError(t, err)
	assert.Equal(t, []byte("plaintext"), plaintext)
}

func TestOpen_WrongAssociatedDataFails(t *testing.T) {
	secret, _, err := GenerateKeyPair()
	require.NoError(t, err)
	key, err := DeriveAEADKey(secret)
	require.NoError(t, err)
	nonce, err := DeriveNonce(key, "id")
	require.NoError(t, err)

	ciphertext, err := Seal(key, nonce, []byte("plaintext"), []byte("id"))
	require.NoError(t, err)

	_, err = Open(key, nonce, ciphertext, []byte("other-id"))
	require.Error(t, err)
}

func TestSignVerify_RoundTrip(t *testing.T) {
	secret, public, err := GenerateKeyPair()
	require.NoError(t, err)

	input := SigningInput(format.CompressionLZ4, 1, format.FlagCompressed, "id", []byte("blob"))
	sig, err := Sign(secret, input)
	require.NoError(t, err)

	assert.True(t, Verify(public, input, sig))
}

func TestVerify_TamperedBlobFails(t *testing.T) {
	secret, public, err := GenerateKeyPair()
	require.NoError(t, err)

	input := SigningInput(format.CompressionLZ4, 1, format.FlagCompressed, "id", []byte("blob"))
	sig, err := Sign(secret, input)
	require.NoError(t, err)

	tampered := SigningInput(format.CompressionLZ4, 1, format.FlagCompressed, "id", []byte("blob!"))
	assert.False(t, Verify(public, tampered, sig))
}

func TestVerify_WrongPublicKeyFails(t *testing.T) {
	secret, _, err := GenerateKeyPair()
	require.NoError(t, err)
	_, otherPublic, err := GenerateKeyPair()
	require.NoError(t, err)

	input := SigningInput(format.CompressionLZ4, 1, 0, "id", []byte("blob"))
	sig, err := Sign(secret, input)
	require.NoError(t, err)

	assert.False(t, Verify(otherPublic, input, sig))
}
