package writer

import (
	"sync"

	"github.com/arloliu/vach/errs"
	"github.com/arloliu/vach/internal/collision"
	"github.com/arloliu/vach/internal/crypto"
	"github.com/arloliu/vach/internal/options"
	"github.com/arloliu/vach/leaf"
)

// state tracks a Builder's position in the lifecycle of §4.7: Open is
// implicit at construction, AcceptingLeaves while AddLeaf is legal,
// FinalizingRegistry and Emitting while a dump is in flight, Closed once a
// dump has run (terminal; a second dump or further AddLeaf fails).
type state int

const (
	stateAcceptingLeaves state = iota
	stateFinalizingRegistry
	stateEmitting
	stateClosed
)

// Builder accumulates leaves and assembles them into a `.vach` archive
// (§4.3, §6 `new_builder`/`add_leaf`/`dump_to_stream`/`dump_to_file`).
//
// AddLeaf calls are serialized by an internal mutex; leaves (and so blobs)
// keep the order in which AddLeaf accepted them. The dump methods
// internally parallelize per-leaf transforms but serialize blob emission.
type Builder struct {
	mu sync.Mutex

	cfg     *BuilderConfig
	leaves  []leaf.Leaf
	seen    *collision.Tracker
	state   state
	aeadKey []byte
}

// NewBuilder creates a Builder configured by opts. A missing or malformed
// option (e.g. a magic of the wrong length) fails immediately, before any
// leaf is accepted.
func NewBuilder(opts ...Option) (*Builder, error) {
	cfg := defaultConfig()

	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	b := &Builder{
		cfg:  cfg,
		seen: collision.NewTracker(),
	}

	if len(cfg.SecretKey) > 0 {
		key, err := crypto.DeriveAEADKey(cfg.SecretKey)
		if err != nil {
			return nil, err
		}
		b.aeadKey = key
	}

	return b, nil
}

// AddLeaf queues l for the next dump. It fails with a precise error if l
// is invalid, its identifier duplicates one already queued, or the
// builder has already been dumped (I3, §7).
func (b *Builder) AddLeaf(l leaf.Leaf) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state != stateAcceptingLeaves {
		return errs.New(errs.KindIO, "Builder.AddLeaf", errs.ErrClosed)
	}

	if err := l.Validate(); err != nil {
		return err
	}

	if err := b.seen.Track(l.Identifier); err != nil {
		return errs.New(errs.KindParseError, "Builder.AddLeaf", err)
	}

	b.leaves = append(b.leaves, l)

	return nil
}
