package main

import (
	"fmt"

	"github.com/arloliu/vach/format"
	"github.com/arloliu/vach/leaf"
)

func parsePolicy(s string) (leaf.Policy, error) {
	switch s {
	case "", "detect":
		return leaf.Detect, nil
	case "always":
		return leaf.Always, nil
	case "never":
		return leaf.Never, nil
	default:
		return 0, fmt.Errorf("unknown compression policy %q", s)
	}
}

func parseAlgorithm(s string) (format.CompressionType, error) {
	switch s {
	case "", "lz4":
		return format.CompressionLZ4, nil
	case "snappy":
		return format.CompressionSnappy, nil
	case "brotli":
		return format.CompressionBrotli, nil
	default:
		return 0, fmt.Errorf("unknown compression algorithm %q", s)
	}
}
