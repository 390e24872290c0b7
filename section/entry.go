package section

import (
	"io"

	"github.com/arloliu/vach/endian"
	"github.com/arloliu/vach/errs"
	"github.com/arloliu/vach/format"
)

// Entry is one registry record describing a stored leaf (§3): its flags
// (compression/encryption/signing + algorithm selector + caller bits),
// content version, blob location/length, optional detached signature and
// its identifier.
type Entry struct {
	Flags          uint32
	ContentVersion uint8
	Location       uint64
	BlobLength     uint64
	Signature      []byte // len == format.SignatureSize, present iff Signed()
	Identifier     string
}

// Compressed, Encrypted and Signed read the three boolean feature flags.
func (e Entry) Compressed() bool { return e.Flags&format.FlagCompressed != 0 }
func (e Entry) Encrypted() bool  { return e.Flags&format.FlagEncrypted != 0 }
func (e Entry) Signed() bool     { return e.Flags&format.FlagSigned != 0 }

// CompressionAlgorithm returns the entry's 2-bit compression selector.
func (e Entry) CompressionAlgorithm() format.CompressionType {
	return format.CompressionSelector(e.Flags)
}

// Size returns the serialized byte length of e.
func (e Entry) Size() int {
	n := EntryFixedSize
	if e.Signed() {
		n += format.SignatureSize
	}
	n += 2 + len(e.Identifier)
	return n
}

// Bytes serializes e. The caller must have already validated Identifier's
// length (LeafIdTooLong is a writer-side concern, not a codec concern).
func (e Entry) Bytes() []byte {
	engine := endian.GetLittleEndianEngine()
	b := make([]byte, e.Size())

	engine.PutUint32(b[0:4], e.Flags)
	b[4] = e.ContentVersion
	engine.PutUint64(b[5:13], e.Location)
	engine.PutUint64(b[13:21], e.BlobLength)

	off := EntryFixedSize
	if e.Signed() {
		copy(b[off:off+format.SignatureSize], e.Signature)
		off += format.SignatureSize
	}

	idBytes := []byte(e.Identifier)
	engine.PutUint16(b[off:off+2], uint16(len(idBytes))) //nolint:gosec
	off += 2
	copy(b[off:], idBytes)

	return b
}

// ReadEntry reads and parses one Entry from r. It reads exactly as many
// bytes as the entry occupies and never advances the cursor past a
// partially read entry: on any error it returns before consuming further
// bytes beyond the failing field (§4.1).
func ReadEntry(r io.Reader) (Entry, error) {
	fixed := make([]byte, EntryFixedSize)
	if _, err := io.ReadFull(r, fixed); err != nil {
		return Entry{}, errs.New(errs.KindMalformedSource, "ReadEntry", err)
	}

	engine := endian.GetLittleEndianEngine()
	var e Entry
	e.Flags = engine.Uint32(fixed[0:4])
	e.ContentVersion = fixed[4]
	e.Location = engine.Uint64(fixed[5:13])
	e.BlobLength = engine.Uint64(fixed[13:21])

	if !e.CompressionAlgorithm().Valid() && e.Compressed() {
		return Entry{}, errs.New(errs.KindMalformedSource, "ReadEntry", errs.ErrMalformedSource)
	}

	if e.Signed() {
		sig := make([]byte, format.SignatureSize)
		if _, err := io.ReadFull(r, sig); err != nil {
			return Entry{}, errs.New(errs.KindMalformedSource, "ReadEntry", err)
		}
		e.Signature = sig
	}

	idLenBuf := make([]byte, 2)
	if _, err := io.ReadFull(r, idLenBuf); err != nil {
		return Entry{}, errs.New(errs.KindMalformedSource, "ReadEntry", err)
	}
	idLen := engine.Uint16(idLenBuf)
	if idLen == 0 {
		return Entry{}, errs.New(errs.KindMalformedSource, "ReadEntry", errs.ErrMalformedSource)
	}

	idBuf := make([]byte, idLen)
	if _, err := io.ReadFull(r, idBuf); err != nil {
		return Entry{}, errs.New(errs.KindMalformedSource, "ReadEntry", err)
	}
	e.Identifier = string(idBuf)

	return e, nil
}
