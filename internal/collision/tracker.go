// Package collision tracks archive identifiers as leaves are added to a
// Builder (or registry entries are parsed by a Reader), rejecting
// duplicates (I3). A fast xxHash64 digest of each identifier is kept as a
// map key pre-filter; the identifier string itself remains the source of
// truth so a digest collision between two distinct identifiers can never
// be mistaken for a duplicate.
package collision

import (
	"github.com/arloliu/vach/errs"
	"github.com/arloliu/vach/internal/hash"
)

// Tracker records every identifier seen so far.
//
// Not safe for concurrent use: the writer feeds it only from the
// single-threaded AddLeaf/assembly stage, never from worker goroutines.
type Tracker struct {
	byDigest map[uint64][]string
	count    int
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{byDigest: make(map[uint64][]string)}
}

// Track records identifier, returning errs.ErrDuplicateID if it was
// already tracked.
func (t *Tracker) Track(identifier string) error {
	digest := hash.ID(identifier)
	for _, existing := range t.byDigest[digest] {
		if existing == identifier {
			return errs.ErrDuplicateID
		}
	}
	t.byDigest[digest] = append(t.byDigest[digest], identifier)
	t.count++

	return nil
}

// Count returns the number of distinct identifiers tracked.
func (t *Tracker) Count() int {
	return t.count
}
