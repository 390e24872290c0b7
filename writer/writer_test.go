package writer

import (
	"bytes"
	"testing"

	"github.com/arloliu/vach/errs"
	"github.com/arloliu/vach/format"
	"github.com/arloliu/vach/internal/crypto"
	"github.com/arloliu/vach/leaf"
	"github.com/arloliu/vach/section"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_DumpToStream_PlainRoundTrip(t *testing.T) {
	b, err := NewBuilder()
	require.NoError(t, err)

	require.NoError(t, b.AddLeaf(leaf.Leaf{Identifier: "a", Source: leaf.FromBytes([]byte("hello")), Policy: leaf.Never}))
	require.NoError(t, b.AddLeaf(leaf.Leaf{Identifier: "b", Source: leaf.FromBytes([]byte("world")), Policy: leaf.Never}))

	var buf bytes.Buffer
	var progressed []Progress
	n, err := b.DumpToStream(&buf, func(p Progress) { progressed = append(progressed, p) }, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Len(t, progressed, 2)
	assert.Equal(t, uint64(len("hello")), progressed[0].OriginalLength)

	header, err := section.ReadHeader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, uint16(2), header.EntryCount)
}

func TestBuilder_AddLeaf_DuplicateIdentifier(t *testing.T) {
	b, err := NewBuilder()
	require.NoError(t, err)

	require.NoError(t, b.AddLeaf(leaf.Leaf{Identifier: "a", Source: leaf.FromBytes([]byte("x"))}))
	err = b.AddLeaf(leaf.Leaf{Identifier: "a", Source: leaf.FromBytes([]byte("y"))})
	require.Error(t, err)
}

func TestBuilder_AddLeaf_AfterDumpFails(t *testing.T) {
	b, err := NewBuilder()
	require.NoError(t, err)
	require.NoError(t, b.AddLeaf(leaf.Leaf{Identifier: "a", Source: leaf.FromBytes([]byte("x"))}))

	var buf bytes.Buffer
	_, err = b.DumpToStream(&buf, nil, nil)
	require.NoError(t, err)

	err = b.AddLeaf(leaf.Leaf{Identifier: "b", Source: leaf.FromBytes([]byte("y"))})
	require.Error(t, err)
}

func TestBuilder_EncryptedLeaf_RequiresSecretKey(t *testing.T) {
	b, err := NewBuilder()
	require.NoError(t, err)

	l := leaf.New("a", leaf.FromBytes([]byte("secret")))
	l.Encrypt = true
	require.NoError(t, b.AddLeaf(l))

	var buf bytes.Buffer
	var progressed []Progress
	var failed []Failure
	_, err = b.DumpToStream(&buf, func(p Progress) { progressed = append(progressed, p) }, func(f Failure) { failed = append(failed, f) })
	require.NoError(t, err)
	// the leaf is dropped, not the archive, but the caller learns why
	assert.Empty(t, progressed)
	require.Len(t, failed, 1)
	assert.Equal(t, "a", failed[0].Identifier)
	assert.ErrorIs(t, failed[0].Err, errs.ErrMissingSecretKey)
}

func TestBuilder_DetectCompressionSkipsIncompressibleData(t *testing.T) {
	secret, _, err := crypto.GenerateKeyPair()
	require.NoError(t, err)

	b, err := NewBuilder(WithSecretKey(secret))
	require.NoError(t, err)

	l := leaf.New("a", leaf.FromBytes([]byte("x")))
	l.Policy = leaf.Detect
	require.NoError(t, b.AddLeaf(l))

	var buf bytes.Buffer
	_, err = b.DumpToStream(&buf, nil, nil)
	require.NoError(t, err)

	header, err := section.ReadHeader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	entry, err := section.ReadEntry(bytes.NewReader(buf.Bytes()[header.Size():]))
	require.NoError(t, err)
	assert.False(t, entry.Compressed())
}

func TestBuilder_SignedLeaf_EmitsSignature(t *testing.T) {
	secret, _, err := crypto.GenerateKeyPair()
	require.NoError(t, err)

	b, err := NewBuilder(WithSecretKey(secret))
	require.NoError(t, err)

	l := leaf.New("a", leaf.FromBytes([]byte("signed payload")))
	l.Policy = leaf.Never
	l.Sign = true
	require.NoError(t, b.AddLeaf(l))

	var buf bytes.Buffer
	_, err = b.DumpToStream(&buf, nil, nil)
	require.NoError(t, err)

	header, err := section.ReadHeader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	entry, err := section.ReadEntry(bytes.NewReader(buf.Bytes()[header.Size():]))
	require.NoError(t, err)
	assert.True(t, entry.Signed())
	assert.Len(t, entry.Signature, format.SignatureSize)
}

func TestBuilder_WithMagic_BadLength(t *testing.T) {
	_, err := NewBuilder(WithMagic("bad"))
	require.Error(t, err)
}
