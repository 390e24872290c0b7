package compress

import (
	"github.com/arloliu/vach/errs"
	"github.com/arloliu/vach/format"
)

// Codec compresses and decompresses byte slices for one algorithm.
//
// Implementations must be safe for concurrent use: the writer pipeline
// calls Compress from multiple worker goroutines against a shared Codec
// instance.
type Codec interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

// GetCodec returns the built-in Codec for the given selector, or
// errs.ErrMissingFeature if the algorithm was not built into this binary
// (§4.5, §7).
func GetCodec(algo format.CompressionType) (Codec, error) {
	switch algo {
	case format.CompressionLZ4:
		return lz4Codec{}, nil
	case format.CompressionSnappy:
		return snappyCodec{}, nil
	case format.CompressionBrotli:
		return brotliCodec{}, nil
	default:
		return nil, errs.New(errs.KindMissingFeature, "GetCodec", errs.ErrMissingFeature)
	}
}
