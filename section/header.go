package section

import (
	"io"

	"github.com/arloliu/vach/endian"
	"github.com/arloliu/vach/errs"
	"github.com/arloliu/vach/format"
)

// Header is the fixed-layout region at the start of every .vach archive
// (§3): a 5-byte magic, the spec version, archive-wide flags, the number
// of registry entries that follow, and an optional embedded Ed25519
// public key used for signature verification.
type Header struct {
	Magic        [format.MagicSize]byte
	Version      uint16
	ArchiveFlags uint32
	EntryCount   uint16
	PublicKey    []byte // nil unless ArchiveFlagHasPublicKey is set
}

// NewHeader builds a Header for the given magic and archive flags. The
// caller sets EntryCount once the registry is finalized and assigns the
// PublicKey field before serializing, if ArchiveFlagHasPublicKey is set.
func NewHeader(magic string, archiveFlags uint32) (Header, error) {
	var h Header
	if len(magic) != format.MagicSize {
		return h, errs.Newf(errs.KindMalformedSource, "NewHeader", "magic must be %d bytes, got %d", format.MagicSize, len(magic))
	}
	copy(h.Magic[:], magic)
	h.Version = format.SpecVersion
	h.ArchiveFlags = archiveFlags

	return h, nil
}

// HasPublicKey reports whether the header carries an embedded public key.
func (h Header) HasPublicKey() bool {
	return h.ArchiveFlags&ArchiveFlagHasPublicKey != 0
}

// Size returns the serialized byte length of h.
func (h Header) Size() int {
	if h.HasPublicKey() {
		return HeaderMaxSize
	}
	return HeaderBaseSize
}

// Bytes serializes h.
func (h Header) Bytes() []byte {
	engine := endian.GetLittleEndianEngine()
	b := make([]byte, h.Size())

	copy(b[0:5], h.Magic[:])
	engine.PutUint16(b[5:7], h.Version)
	engine.PutUint32(b[7:11], h.ArchiveFlags)
	engine.PutUint16(b[11:13], h.EntryCount)
	if h.HasPublicKey() {
		copy(b[HeaderBaseSize:HeaderMaxSize], h.PublicKey)
	}

	return b
}

// ReadHeader reads and parses a Header from r, which must be positioned at
// the start of the archive. It performs a bounded read of the base header,
// then a second bounded read for the optional public key, never reading
// past the header region.
func ReadHeader(r io.Reader) (Header, error) {
	base := make([]byte, HeaderBaseSize)
	if _, err := io.ReadFull(r, base); err != nil {
		return Header{}, errs.New(errs.KindMalformedSource, "ReadHeader", err)
	}

	var h Header
	engine := endian.GetLittleEndianEngine()
	copy(h.Magic[:], base[0:5])
	h.Version = engine.Uint16(base[5:7])
	h.ArchiveFlags = engine.Uint32(base[7:11])
	h.EntryCount = engine.Uint16(base[11:13])

	if h.HasPublicKey() {
		pk := make([]byte, PublicKeySize)
		if _, err := io.ReadFull(r, pk); err != nil {
			return Header{}, errs.New(errs.KindMalformedSource, "ReadHeader", err)
		}
		h.PublicKey = pk
	}

	return h, nil
}

// ValidateMagic checks h's magic against expected (I1), returning
// errs.ErrBadMagic on mismatch.
func (h Header) ValidateMagic(expected string) error {
	if string(h.Magic[:]) != expected {
		return errs.New(errs.KindMalformedSource, "ValidateMagic", errs.ErrBadMagic)
	}
	return nil
}

// ValidateVersion rejects any archive whose major (high) byte of Version
// exceeds the reader's own (§6, P7). The low byte is a minor version that
// readers are expected to tolerate.
func (h Header) ValidateVersion(readerVersion uint16) error {
	if h.Version>>8 > readerVersion>>8 {
		return errs.New(errs.KindMalformedSource, "ValidateVersion", errs.ErrUnsupportedVersion)
	}
	return nil
}
