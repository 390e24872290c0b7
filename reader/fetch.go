package reader

import (
	"io"

	"github.com/arloliu/vach/compress"
	"github.com/arloliu/vach/errs"
	"github.com/arloliu/vach/internal/crypto"
	"github.com/arloliu/vach/internal/pool"
)

// Fetch retrieves the resource stored under identifier (§4.4, unlocked
// variant). It seeks the underlying source, so the caller must hold
// exclusive access to the Reader while it runs; use FetchLocked for
// concurrent callers.
//
// Transforms are reversed in the inverse of the writer's order: decrypt
// (if encrypted) before verifying a signature, since the canonical
// signing input (§4.6) covers the bytes as they stood after compression
// and before encryption, not the stored ciphertext. Decompression always
// runs last.
func (r *Reader) Fetch(identifier string) (Resource, error) {
	entry, ok := r.entries[identifier]
	if !ok {
		return Resource{}, errs.New(errs.KindResourceNotFound, "Reader.Fetch", errs.ErrResourceNotFound)
	}

	if _, err := r.src.Seek(int64(entry.Location), io.SeekStart); err != nil { //nolint:gosec
		return Resource{}, errs.New(errs.KindIO, "Reader.Fetch", err)
	}

	bb := pool.GetFetchBuffer()
	defer pool.PutFetchBuffer(bb)

	bb.Grow(int(entry.BlobLength)) //nolint:gosec
	raw := bb.Bytes()[:entry.BlobLength]
	if _, err := io.ReadFull(r.src, raw); err != nil {
		return Resource{}, errs.New(errs.KindIO, "Reader.Fetch", err)
	}

	plaintext := raw
	owned := false
	if entry.Encrypted() {
		if len(r.aeadKey) == 0 {
			return Resource{}, errs.New(errs.KindCryptoError, "Reader.Fetch", errs.ErrMissingSecretKey)
		}

		nonce, err := crypto.DeriveNonce(r.aeadKey, identifier)
		if err != nil {
			return Resource{}, err
		}

		decrypted, err := crypto.Open(r.aeadKey, nonce, raw, []byte(identifier))
		if err != nil {
			return Resource{}, err
		}
		plaintext = decrypted
		owned = true
	}

	verified := false
	if entry.Signed() {
		if len(r.cfg.PublicKey) > 0 {
			input := crypto.SigningInput(entry.CompressionAlgorithm(), entry.ContentVersion, entry.Flags, identifier, plaintext)
			verified = crypto.Verify(r.cfg.PublicKey, input, entry.Signature)
		}

		if !verified && r.cfg.StrictMode {
			return Resource{}, errs.New(errs.KindCryptoError, "Reader.Fetch", errs.ErrSignatureInvalid)
		}
	}

	final := plaintext
	if entry.Compressed() {
		codec, err := compress.GetCodec(entry.CompressionAlgorithm())
		if err != nil {
			return Resource{}, err
		}

		decompressed, err := codec.Decompress(plaintext)
		if err != nil {
			return Resource{}, errs.New(errs.KindMalformedSource, "Reader.Fetch", err)
		}
		final = decompressed
		owned = true
	}

	if !owned {
		// final still aliases the pooled buffer; the caller must own its
		// bytes independently of bb, which is returned to the pool below.
		cp := make([]byte, len(final))
		copy(cp, final)
		final = cp
	}

	return Resource{
		Bytes:          final,
		Length:         uint64(len(final)),
		Flags:          entry.Flags,
		ContentVersion: entry.ContentVersion,
		Verified:       verified,
	}, nil
}

// FetchLocked is Fetch, serialized against concurrent callers via an
// internal mutex guarding the shared source (§4.4, §5).
func (r *Reader) FetchLocked(identifier string) (Resource, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.Fetch(identifier)
}
