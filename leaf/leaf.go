package leaf

import (
	"unicode/utf8"

	"github.com/arloliu/vach/errs"
	"github.com/arloliu/vach/format"
)

// Policy controls whether and when a leaf's bytes are compressed (§4.3).
type Policy uint8

const (
	// Never skips compression unconditionally.
	Never Policy = iota
	// Always compresses and sets the COMPRESSED flag regardless of outcome.
	Always
	// Detect compresses, then keeps the compressed form only if it is
	// strictly shorter than the original; ties keep the original.
	Detect
)

// Leaf is the producer-side description of one future registry entry. Its
// bytes are consumed exactly once by the writer pipeline.
type Leaf struct {
	Identifier string
	Source     Source

	Policy      Policy
	Algorithm   format.CompressionType
	Encrypt     bool
	Sign        bool
	ContentVersion uint8

	// Flags carries caller-supplied bits. It must not collide with the
	// reserved algorithm/encryption/signing/compression bits (§4.2); Validate
	// rejects any leaf whose Flags overlaps format.ReservedFlagsMask.
	Flags uint32
}

// New builds a Leaf with the given identifier and source, defaulting to
// Detect compression with the LZ4 algorithm and no encryption or signing.
func New(identifier string, source Source) Leaf {
	return Leaf{
		Identifier: identifier,
		Source:     source,
		Policy:     Detect,
		Algorithm:  format.CompressionLZ4,
	}
}

// Validate checks the leaf's identifier and flags against the constraints
// the writer pipeline requires before it accepts the leaf (§4.2, §7).
func (l Leaf) Validate() error {
	if l.Identifier == "" {
		return errs.New(errs.KindNullParameter, "Leaf.Validate", errs.ErrNullParameter)
	}
	if !utf8.ValidString(l.Identifier) {
		return errs.New(errs.KindInvalidUTF8, "Leaf.Validate", errs.ErrInvalidUTF8)
	}
	if len(l.Identifier) > format.MaxIdentifierLength {
		return errs.New(errs.KindLeafIDTooLong, "Leaf.Validate", errs.ErrLeafIDTooLong)
	}
	if l.Flags&format.ReservedFlagsMask != 0 {
		return errs.New(errs.KindParseError, "Leaf.Validate", errs.ErrMalformedSource)
	}
	if l.Policy != Never && !l.Algorithm.Valid() {
		return errs.New(errs.KindMissingFeature, "Leaf.Validate", errs.ErrMissingFeature)
	}

	return nil
}
