package compress

import "github.com/golang/snappy"

type snappyCodec struct{}

func (snappyCodec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, snappy.MaxEncodedLen(len(data)))

	return snappy.Encode(dst, data), nil
}

func (snappyCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	n, err := snappy.DecodedLen(data)
	if err != nil {
		return nil, err
	}

	dst := make([]byte, n)

	return snappy.Decode(dst, data)
}
