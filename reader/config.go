package reader

import (
	"github.com/arloliu/vach/errs"
	"github.com/arloliu/vach/format"
	"github.com/arloliu/vach/internal/options"
)

// Config holds the settings a Reader applies while opening and fetching
// from an archive (§6 `open_archive(source, config)`).
type Config struct {
	ExpectedMagic string
	PublicKey     []byte // 32 bytes; overrides any key embedded in the header
	SecretKey     []byte // 32-byte Ed25519 seed; required to decrypt encrypted leaves
	StrictMode    bool   // failed signature verification becomes a fatal CryptoError
}

func defaultConfig() *Config {
	return &Config{ExpectedMagic: format.DefaultMagic}
}

// Option configures a Config.
type Option = options.Option[*Config]

// WithExpectedMagic overrides the magic the reader requires the archive to
// carry (I1).
func WithExpectedMagic(magic string) Option {
	return options.New(func(c *Config) error {
		if len(magic) != format.MagicSize {
			return errs.New(errs.KindParseError, "WithExpectedMagic", errs.ErrNullParameter)
		}
		c.ExpectedMagic = magic
		return nil
	})
}

// WithPublicKey supplies the Ed25519 public key used to verify signed
// leaves, overriding any key embedded in the header.
func WithPublicKey(public []byte) Option {
	return options.New(func(c *Config) error {
		if len(public) != format.Ed25519PublicKeySize {
			return errs.New(errs.KindCryptoError, "WithPublicKey", errs.ErrMissingPublicKey)
		}
		c.PublicKey = public
		return nil
	})
}

// WithSecretKey supplies the 32-byte Ed25519 seed used to decrypt
// encrypted leaves.
func WithSecretKey(secret []byte) Option {
	return options.New(func(c *Config) error {
		if len(secret) != format.Ed25519SecretKeySize {
			return errs.New(errs.KindCryptoError, "WithSecretKey", errs.ErrMissingSecretKey)
		}
		c.SecretKey = secret
		return nil
	})
}

// WithStrictMode makes failed signature verification a fatal CryptoError
// instead of a non-fatal verified=false result (§4.4).
func WithStrictMode() Option {
	return options.NoError(func(c *Config) { c.StrictMode = true })
}
