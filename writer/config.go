package writer

import (
	"runtime"

	"github.com/arloliu/vach/errs"
	"github.com/arloliu/vach/format"
	"github.com/arloliu/vach/internal/options"
)

// BuilderConfig holds the archive-wide settings a Builder applies to every
// leaf it accepts (§6, `new_builder(config)`).
type BuilderConfig struct {
	Magic          string
	ArchiveFlags   uint32
	SecretKey      []byte // 32-byte Ed25519 signing seed; required by any leaf requesting Encrypt or Sign.
	WorkerCount    int
	EmbedPublicKey bool
}

func defaultConfig() *BuilderConfig {
	return &BuilderConfig{
		Magic:       format.DefaultMagic,
		WorkerCount: runtime.NumCPU(),
	}
}

// Option configures a BuilderConfig.
type Option = options.Option[*BuilderConfig]

// WithMagic overrides the archive's 5-byte magic.
func WithMagic(magic string) Option {
	return options.New(func(c *BuilderConfig) error {
		if len(magic) != format.MagicSize {
			return errs.New(errs.KindParseError, "WithMagic", errs.ErrNullParameter)
		}
		c.Magic = magic
		return nil
	})
}

// WithArchiveFlags sets the raw archive-level flags stored in the header.
func WithArchiveFlags(flags uint32) Option {
	return options.NoError(func(c *BuilderConfig) { c.ArchiveFlags = flags })
}

// WithSecretKey supplies the 32-byte Ed25519 signing seed leaves need for
// encryption and/or signing.
func WithSecretKey(secret []byte) Option {
	return options.New(func(c *BuilderConfig) error {
		if len(secret) != format.Ed25519SecretKeySize {
			return errs.New(errs.KindCryptoError, "WithSecretKey", errs.ErrMissingSecretKey)
		}
		c.SecretKey = secret
		return nil
	})
}

// WithWorkerCount overrides the per-leaf transform worker pool size.
func WithWorkerCount(n int) Option {
	return options.New(func(c *BuilderConfig) error {
		if n < 1 {
			return errs.New(errs.KindNullParameter, "WithWorkerCount", errs.ErrNullParameter)
		}
		c.WorkerCount = n
		return nil
	})
}

// WithEmbeddedPublicKey embeds the public key derived from the configured
// secret key into the header, so a reader can verify signatures without
// being separately configured with the public key.
func WithEmbeddedPublicKey() Option {
	return options.NoError(func(c *BuilderConfig) { c.EmbedPublicKey = true })
}
