package writer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/nightlyone/lockfile"

	"github.com/arloliu/vach/errs"
	"github.com/arloliu/vach/internal/crypto"
	"github.com/arloliu/vach/section"
)

// leafFailure is a transform failure tagged with the identifier of the
// leaf that produced it, so a *multierror.Error collecting many of these
// can still be unpacked back into per-leaf Failure notifications.
type leafFailure struct {
	identifier string
	err        error
}

func (f *leafFailure) Error() string { return fmt.Sprintf("%s: %v", f.identifier, f.err) }
func (f *leafFailure) Unwrap() error { return f.err }

// DumpToStream finalizes the registry, then writes `[header][registry][blob
// region]` to w in one forward pass (§4.3). progress, if non-nil, is
// invoked once per surviving leaf after its entry and location are fixed.
// onFailure, if non-nil, is invoked once per leaf whose transform failed
// and was dropped, after every leaf has been transformed. A per-leaf
// transform failure (including a missing secret key for a leaf that
// requests encryption or signing) drops that leaf without aborting the
// archive: the remaining leaves still produce a well-formed archive, and
// if no leaf survives the archive holds a header with zero entries
// (§4.3, §7). An invalid magic or an embedded public key without a usable
// secret key aborts before any byte is written.
func (b *Builder) DumpToStream(w io.Writer, progress ProgressFunc, onFailure FailureFunc) (int64, error) {
	b.mu.Lock()
	if b.state != stateAcceptingLeaves {
		b.mu.Unlock()
		return 0, errs.New(errs.KindIO, "Builder.DumpToStream", errs.ErrClosed)
	}
	b.state = stateFinalizingRegistry
	leaves := b.leaves
	cfg := b.cfg
	aeadKey := b.aeadKey
	b.mu.Unlock()

	results := runPool(len(leaves), cfg.WorkerCount, func(i int) transformResult {
		return transformLeaf(leaves[i], cfg, aeadKey)
	})

	survivors := make([]transformResult, 0, len(results))
	var failures *multierror.Error
	for _, r := range results {
		if r.Err == nil {
			survivors = append(survivors, r)
			continue
		}
		failures = multierror.Append(failures, &leafFailure{identifier: r.Identifier, err: r.Err})
	}

	if onFailure != nil && failures != nil {
		for _, e := range failures.Errors {
			if lf, ok := e.(*leafFailure); ok { //nolint:errorlint
				onFailure(Failure{Identifier: lf.identifier, Err: lf.err})
			}
		}
	}

	header, err := section.NewHeader(cfg.Magic, cfg.ArchiveFlags)
	if err != nil {
		b.mu.Lock()
		b.state = stateClosed
		b.mu.Unlock()
		return 0, err
	}

	if cfg.EmbedPublicKey {
		pub, pubErr := crypto.PublicFromSeed(cfg.SecretKey)
		if pubErr != nil {
			b.mu.Lock()
			b.state = stateClosed
			b.mu.Unlock()
			return 0, pubErr
		}
		header.ArchiveFlags |= section.ArchiveFlagHasPublicKey
		header.PublicKey = pub
	}
	header.EntryCount = uint16(len(survivors))

	registrySize := 0
	for i := range survivors {
		registrySize += survivors[i].Entry.Size()
	}

	location := uint64(header.Size() + registrySize)
	for i := range survivors {
		survivors[i].Entry.Location = location
		location += survivors[i].Entry.BlobLength
	}

	b.mu.Lock()
	b.state = stateEmitting
	b.mu.Unlock()

	var written int64

	n, err := w.Write(header.Bytes())
	written += int64(n)
	if err != nil {
		return written, errs.New(errs.KindIO, "Builder.DumpToStream", err)
	}

	for _, r := range survivors {
		n, err = w.Write(r.Entry.Bytes())
		written += int64(n)
		if err != nil {
			return written, errs.New(errs.KindIO, "Builder.DumpToStream", err)
		}
	}

	for _, r := range survivors {
		n, err = w.Write(r.Blob)
		written += int64(n)
		if err != nil {
			return written, errs.New(errs.KindIO, "Builder.DumpToStream", err)
		}

		if progress != nil {
			progress(Progress{
				Identifier:     r.Entry.Identifier,
				BlobLength:     r.Entry.BlobLength,
				Location:       r.Entry.Location,
				OriginalLength: r.OriginalLength,
				Compressed:     r.Entry.Compressed(),
			})
		}
	}

	b.mu.Lock()
	b.state = stateClosed
	b.mu.Unlock()

	return written, nil
}

// DumpToFile is DumpToStream against a freshly created file at path,
// guarded by an on-disk lockfile so a second concurrent writer targeting
// the same path fails fast instead of interleaving output (§1 Non-goals:
// concurrent writers to the same archive are not supported, but a clear
// failure is still preferable to silent corruption).
func (b *Builder) DumpToFile(path string, progress ProgressFunc, onFailure FailureFunc) (int64, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return 0, errs.New(errs.KindIO, "Builder.DumpToFile", err)
	}

	lock, err := lockfile.New(absPath + ".lock")
	if err != nil {
		return 0, errs.New(errs.KindIO, "Builder.DumpToFile", err)
	}
	if err := lock.TryLock(); err != nil {
		return 0, errs.New(errs.KindIO, "Builder.DumpToFile", err)
	}
	defer lock.Unlock()

	f, err := os.Create(path)
	if err != nil {
		return 0, errs.New(errs.KindIO, "Builder.DumpToFile", err)
	}
	defer f.Close()

	return b.DumpToStream(f, progress, onFailure)
}
