package leaf

import (
	"io"
	"os"

	"github.com/arloliu/vach/errs"
)

// sourceKind tags which variant of Source is active.
type sourceKind int

const (
	sourceInMemory sourceKind = iota
	sourceFile
	sourceStream
)

// Source is a tagged union over the three ways a leaf's bytes may be
// supplied: an in-memory buffer, a file path opened lazily, or an
// already-open reader (§9, "dynamic dispatch over heterogeneous data
// sources"). Construct one with FromBytes, FromFile or FromStream.
type Source struct {
	kind   sourceKind
	bytes  []byte
	path   string
	stream io.Reader
}

// FromBytes wraps an in-memory buffer. The buffer is never copied: ReadAll
// returns the same slice.
func FromBytes(b []byte) Source {
	return Source{kind: sourceInMemory, bytes: b}
}

// FromFile wraps a filesystem path, opened and fully read on demand.
func FromFile(path string) Source {
	return Source{kind: sourceFile, path: path}
}

// FromStream wraps an already-open reader, consumed to EOF on demand.
func FromStream(r io.Reader) Source {
	return Source{kind: sourceStream, stream: r}
}

// ReadAll materializes the source's full contents. It is the uniform
// operation every Source variant supports regardless of its underlying
// representation.
func (s Source) ReadAll() ([]byte, error) {
	switch s.kind {
	case sourceInMemory:
		return s.bytes, nil
	case sourceFile:
		f, err := os.Open(s.path)
		if err != nil {
			return nil, errs.New(errs.KindIO, "Source.ReadAll", err)
		}
		defer f.Close()

		b, err := io.ReadAll(f)
		if err != nil {
			return nil, errs.New(errs.KindIO, "Source.ReadAll", err)
		}

		return b, nil
	case sourceStream:
		b, err := io.ReadAll(s.stream)
		if err != nil {
			return nil, errs.New(errs.KindIO, "Source.ReadAll", err)
		}

		return b, nil
	default:
		return nil, errs.New(errs.KindUnknown, "Source.ReadAll", errs.ErrNullParameter)
	}
}
