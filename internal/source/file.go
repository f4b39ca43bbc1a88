package source

import (
	"bytes"
	"io"
)

// ReadBufferSize is the block size used for reads from disk.
const ReadBufferSize = 8096

// StreamSource reads blocks from an io.ReadSeeker and starts again from the
// beginning when it runs out of data.
type StreamSource struct {
	name   string
	rs     io.ReadSeeker
	closer io.Closer
	size   int64

	buf      []byte
	bufCount int
	readPos  int

	// offset of buf[0] in the stream
	blockStart int64
	// offset the next block read starts at
	next int64
}

// NewStreamSource wraps rs. closer may be nil.
func NewStreamSource(name string, rs io.ReadSeeker, size int64, closer io.Closer) *StreamSource {
	return &StreamSource{
		name:   name,
		rs:     rs,
		closer: closer,
		size:   size,
		buf:    make([]byte, ReadBufferSize),
	}
}

// NewMemorySource serves data from memory.
func NewMemorySource(name string, data []byte) *StreamSource {
	return NewStreamSource(name, bytes.NewReader(data), int64(len(data)), nil)
}

// OpenFile opens an uncompressed PGN file.
func OpenFile(path string) (*StreamSource, error) {
	f, size, err := openFile(path)
	if err != nil {
		return nil, err
	}
	return NewStreamSource(path, f, size, f), nil
}

// ReadByte implements io.ByteReader.
func (s *StreamSource) ReadByte() (byte, error) {
	if s.readPos >= s.bufCount {
		if err := s.fill(); err != nil {
			return 0, err
		}
	}
	c := s.buf[s.readPos]
	s.readPos++
	return c, nil
}

// fill reads the next block, rewinding once if the end has been reached.
func (s *StreamSource) fill() error {
	n, err := s.readBlock()
	if n == 0 && (err == nil || err == io.EOF) {
		if err := s.Seek(0); err != nil {
			return err
		}
		n, err = s.readBlock()
	}
	if n == 0 {
		if err == nil {
			err = io.EOF
		}
		return err
	}
	return nil
}

func (s *StreamSource) readBlock() (int, error) {
	s.blockStart = s.next
	n, err := io.ReadFull(s.rs, s.buf)
	if err == io.ErrUnexpectedEOF {
		err = nil
	}
	s.bufCount = n
	s.readPos = 0
	s.next += int64(n)
	return n, err
}

// Offset implements Source.
func (s *StreamSource) Offset() int64 {
	return s.blockStart + int64(s.readPos)
}

// Seek implements Source. The read buffer is discarded.
func (s *StreamSource) Seek(offset int64) error {
	if offset < 0 {
		offset = 0
	}
	if offset > s.size {
		offset = s.size
	}
	if _, err := s.rs.Seek(offset, io.SeekStart); err != nil {
		return sourceError(s.name, err)
	}
	s.blockStart = offset
	s.next = offset
	s.bufCount = 0
	s.readPos = 0
	return nil
}

// Size implements Source.
func (s *StreamSource) Size() int64 { return s.size }

// Name implements Source.
func (s *StreamSource) Name() string { return s.name }

// Close implements io.Closer.
func (s *StreamSource) Close() error {
	if s.closer == nil {
		return nil
	}
	err := s.closer.Close()
	s.closer = nil
	return err
}
