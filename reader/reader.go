package reader

import (
	"io"
	"sync"

	"github.com/arloliu/vach/errs"
	"github.com/arloliu/vach/format"
	"github.com/arloliu/vach/internal/collision"
	"github.com/arloliu/vach/internal/crypto"
	"github.com/arloliu/vach/internal/options"
	"github.com/arloliu/vach/section"
)

// Source is the seekable byte source a Reader parses and fetches from.
// The reader exclusively owns it once opened (§3 Ownership).
type Source interface {
	io.Reader
	io.Seeker
}

// Reader parses an archive's header and registry into an identifier index
// and services per-identifier fetches (§4.4).
type Reader struct {
	mu sync.Mutex

	src     Source
	cfg     *Config
	header  section.Header
	order   []string
	entries map[string]section.Entry
	aeadKey []byte
}

// Open parses src's header and registry (§4.4). Duplicate identifiers
// encountered while parsing fail with MalformedSource (I3, P8).
func Open(src Source, opts ...Option) (*Reader, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	header, err := section.ReadHeader(src)
	if err != nil {
		return nil, err
	}
	if err := header.ValidateMagic(cfg.ExpectedMagic); err != nil {
		return nil, err
	}
	if err := header.ValidateVersion(format.SpecVersion); err != nil {
		return nil, err
	}

	if len(cfg.PublicKey) == 0 && header.HasPublicKey() {
		cfg.PublicKey = header.PublicKey
	}

	r := &Reader{
		src:     src,
		cfg:     cfg,
		header:  header,
		entries: make(map[string]section.Entry, header.EntryCount),
		order:   make([]string, 0, header.EntryCount),
	}

	seen := collision.NewTracker()
	for i := uint16(0); i < header.EntryCount; i++ {
		entry, err := section.ReadEntry(src)
		if err != nil {
			return nil, err
		}
		if err := seen.Track(entry.Identifier); err != nil {
			return nil, errs.New(errs.KindMalformedSource, "Open", errs.ErrMalformedSource)
		}

		r.entries[entry.Identifier] = entry
		r.order = append(r.order, entry.Identifier)
	}

	if len(cfg.SecretKey) > 0 {
		key, err := crypto.DeriveAEADKey(cfg.SecretKey)
		if err != nil {
			return nil, err
		}
		r.aeadKey = key
	}

	return r, nil
}

// ListEntries returns every identifier in the archive, in registry order
// (which mirrors blob order, §5).
func (r *Reader) ListEntries() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Entries returns a materialized listing view of every registry entry,
// without fetching any blob.
func (r *Reader) Entries() []EntryInfo {
	out := make([]EntryInfo, 0, len(r.order))
	for _, id := range r.order {
		e := r.entries[id]
		out = append(out, EntryInfo{
			Identifier:     id,
			Length:         e.BlobLength,
			ContentVersion: e.ContentVersion,
			Compressed:     e.Compressed(),
			Encrypted:      e.Encrypted(),
			Signed:         e.Signed(),
		})
	}
	return out
}
