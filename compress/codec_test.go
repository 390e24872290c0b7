package compress

import (
	"testing"

	"github.com/arloliu/vach/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCodec_AllAlgorithms(t *testing.T) {
	for _, algo := range []format.CompressionType{
		format.CompressionLZ4,
		format.CompressionSnappy,
		format.CompressionBrotli,
	} {
		c, err := GetCodec(algo)
		require.NoError(t, err, algo.String())
		assert.NotNil(t, c)
	}
}

func TestGetCodec_Unknown(t *testing.T) {
	_, err := GetCodec(format.CompressionType(3))
	require.Error(t, err)
}

func TestCodecs_RoundTrip(t *testing.T) {
	data := bytesRepeat("the quick brown fox jumps over the lazy dog ", 200)

	for _, algo := range []format.CompressionType{
		format.CompressionLZ4,
		format.CompressionSnappy,
		format.CompressionBrotli,
	} {
		c, err := GetCodec(algo)
		require.NoError(t, err)

		compressed, err := c.Compress(data)
		require.NoError(t, err, algo.String())

		decompressed, err := c.Decompress(compressed)
		require.NoError(t, err, algo.String())
		assert.Equal(t, data, decompressed, algo.String())
	}
}

func TestCodecs_EmptyInput(t *testing.T) {
	for _, algo := range []format.CompressionType{
		format.CompressionLZ4,
		format.CompressionSnappy,
		format.CompressionBrotli,
	} {
		c, err := GetCodec(algo)
		require.NoError(t, err)

		compressed, err := c.Compress(nil)
		require.NoError(t, err)
		assert.Empty(t, compressed)

		decompressed, err := c.Decompress(compressed)
		require.NoError(t, err)
		assert.Empty(t, decompressed)
	}
}

func bytesRepeat(s string, n int) []byte {
	out := make([]byte, 0, len(s)*n)
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return out
}
