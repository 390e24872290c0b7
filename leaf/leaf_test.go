package leaf

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arloliu/vach/errs"
	"github.com/arloliu/vach/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_FromBytes(t *testing.T) {
	s := FromBytes([]byte("hello"))
	b, err := s.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), b)
}

func TestSource_FromStream(t *testing.T) {
	s := FromStream(bytes.NewReader([]byte("streamed")))
	b, err := s.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []byte("streamed"), b)
}

func TestSource_FromFile_Missing(t *testing.T) {
	s := FromFile("/nonexistent/path/for/vach/test")
	_, err := s.ReadAll()
	require.Error(t, err)
	assert.Equal(t, errs.KindIO, errs.KindOf(err))
}

func TestLeaf_Validate_OK(t *testing.T) {
	l := New("assets/a.bin", FromBytes([]byte("data")))
	require.NoError(t, l.Validate())
}

func TestLeaf_Validate_EmptyIdentifier(t *testing.T) {
	l := New("", FromBytes(nil))
	err := l.Validate()
	require.Error(t, err)
	assert.Equal(t, errs.KindNullParameter, errs.KindOf(err))
}

func TestLeaf_Validate_InvalidUTF8(t *testing.T) {
	l := New(string([]byte{0xff, 0xfe}), FromBytes(nil))
	err := l.Validate()
	require.Error(t, err)
	assert.Equal(t, errs.KindInvalidUTF8, errs.KindOf(err))
}

func TestLeaf_Validate_IDTooLong(t *testing.T) {
	l := New(strings.Repeat("x", format.MaxIdentifierLength+1), FromBytes(nil))
	err := l.Validate()
	require.Error(t, err)
	assert.Equal(t, errs.KindLeafIDTooLong, errs.KindOf(err))
}

func TestLeaf_Validate_ReservedFlagCollision(t *testing.T) {
	l := New("x", FromBytes(nil))
	l.Flags = format.FlagEncrypted
	err := l.Validate()
	require.Error(t, err)
}

func TestLeaf_Validate_UnknownAlgorithm(t *testing.T) {
	l := New("x", FromBytes(nil))
	l.Algorithm = format.CompressionType(9)
	err := l.Validate()
	require.Error(t, err)
	assert.Equal(t, errs.KindMissingFeature, errs.KindOf(err))
}

func TestLeaf_Validate_NeverPolicySkipsAlgorithmCheck(t *testing.T) {
	l := New("x", FromBytes(nil))
	l.Policy = Never
	l.Algorithm = format.CompressionType(9)
	require.NoError(t, l.Validate())
}
