// Package vach provides convenient top-level wrappers around the writer
// and reader packages for packaging named byte resources into a .vach
// archive with optional compression, authenticated encryption and
// detached-signature authentication (§1, §2).
//
// # Basic usage
//
// Writing an archive:
//
//	b, _ := vach.NewBuilder()
//	b.AddLeaf(leaf.New("config.json", leaf.FromBytes(configBytes)))
//	b.DumpToFile("out.vach", nil, nil)
//
// Reading it back:
//
//	f, _ := os.Open("out.vach")
//	r, _ := vach.Open(f)
//	res, _ := r.Fetch("config.json")
//
// For advanced usage — custom compression policies, encryption, signing,
// worker pool sizing — use the writer and reader packages directly.
package vach

import (
	"github.com/arloliu/vach/reader"
	"github.com/arloliu/vach/writer"
)

// NewBuilder creates a writer.Builder configured by opts.
func NewBuilder(opts ...writer.Option) (*writer.Builder, error) {
	return writer.NewBuilder(opts...)
}

// Open parses src's header and registry into a reader.Reader configured by
// opts.
func Open(src reader.Source, opts ...reader.Option) (*reader.Reader, error) {
	return reader.Open(src, opts...)
}
