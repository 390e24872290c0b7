package writer

import (
	"github.com/arloliu/vach/compress"
	"github.com/arloliu/vach/errs"
	"github.com/arloliu/vach/format"
	"github.com/arloliu/vach/internal/crypto"
	"github.com/arloliu/vach/leaf"
	"github.com/arloliu/vach/section"
)

// transformResult is one leaf's outcome: either a finished entry plus its
// blob, or an error that causes the leaf to be skipped without aborting
// the archive (§4.3, §7).
type transformResult struct {
	Identifier     string
	Entry          section.Entry
	Blob           []byte
	OriginalLength uint64
	Err            error
}

// transformLeaf runs the per-leaf pipeline: read, compress, sign (over the
// pre-encryption bytes), encrypt (§4.3, §4.6). aeadKey is nil when the
// builder has no secret key configured; leaves that don't request
// encryption or signing never touch it.
func transformLeaf(l leaf.Leaf, cfg *BuilderConfig, aeadKey []byte) transformResult {
	result := transformResult{Identifier: l.Identifier}

	if err := l.Validate(); err != nil {
		result.Err = err
		return result
	}

	data, err := l.Source.ReadAll()
	if err != nil {
		result.Err = err
		return result
	}
	result.OriginalLength = uint64(len(data))

	flags := l.Flags
	algo := l.Algorithm

	switch l.Policy {
	case leaf.Never:
		// no compression
	case leaf.Always, leaf.Detect:
		codec, codecErr := compress.GetCodec(algo)
		if codecErr != nil {
			result.Err = codecErr
			return result
		}

		compressed, compErr := codec.Compress(data)
		if compErr != nil {
			result.Err = errs.New(errs.KindMalformedSource, "transformLeaf", compErr)
			return result
		}

		if l.Policy == leaf.Always || len(compressed) < len(data) {
			data = compressed
			flags |= format.FlagCompressed
		}
	}
	flags = format.WithCompressionSelector(flags, algo)

	preEncryption := data

	if l.Sign {
		flags |= format.FlagSigned
	}
	if l.Encrypt {
		flags |= format.FlagEncrypted
	}

	var signature []byte
	if l.Sign {
		if len(cfg.SecretKey) == 0 {
			result.Err = errs.New(errs.KindCryptoError, "transformLeaf", errs.ErrMissingSecretKey)
			return result
		}

		input := crypto.SigningInput(algo, l.ContentVersion, flags, l.Identifier, preEncryption)

		signature, err = crypto.Sign(cfg.SecretKey, input)
		if err != nil {
			result.Err = err
			return result
		}
	}

	if l.Encrypt {
		if len(aeadKey) == 0 {
			result.Err = errs.New(errs.KindCryptoError, "transformLeaf", errs.ErrMissingSecretKey)
			return result
		}

		nonce, nonceErr := crypto.DeriveNonce(aeadKey, l.Identifier)
		if nonceErr != nil {
			result.Err = nonceErr
			return result
		}

		ciphertext, sealErr := crypto.Seal(aeadKey, nonce, preEncryption, []byte(l.Identifier))
		if sealErr != nil {
			result.Err = sealErr
			return result
		}

		data = ciphertext
	} else {
		data = preEncryption
	}

	result.Blob = data
	result.Entry = section.Entry{
		Flags:          flags,
		ContentVersion: l.ContentVersion,
		BlobLength:     uint64(len(data)),
		Signature:      signature,
		Identifier:     l.Identifier,
	}

	return result
}
