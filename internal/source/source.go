// Package source supplies PGN text one byte at a time, from a file or from
// a built-in game, so the tokenizer always has input.
package source

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/inhies/go-bytesize"

	"github.com/fredrander/chessviewerscreensaver/internal/errors"
)

// Source is a cyclic, seekable byte stream of PGN text.
// ReadByte wraps to the start when the end is reached, so it only returns
// an error when the underlying storage fails or holds no data at all.
type Source interface {
	io.ByteReader
	io.Closer

	// Offset is the position of the next byte ReadByte will return.
	Offset() int64

	// Seek moves to an absolute offset, clamped to the source size.
	Seek(offset int64) error

	// Size is the total number of bytes in one cycle of the stream.
	Size() int64

	// Name identifies the source in log lines.
	Name() string
}

// File name extensions selecting a decompressor.
const (
	ExtZstd  = ".zst"
	ExtBzip2 = ".bz2"
)

// Open opens a PGN file. Files ending in .zst or .bz2 are decompressed into
// memory; everything else is read in blocks straight from disk.
func Open(path string) (Source, error) {
	var (
		src *StreamSource
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtZstd:
		src, err = openZstd(path)
	case ExtBzip2:
		src, err = openBzip2(path)
	default:
		src, err = OpenFile(path)
	}
	if err != nil {
		return nil, err
	}
	return src, nil
}

// OpenOrBuiltin opens path, or returns the built-in game when path is empty
// or cannot be opened. Failures are reported on logw.
func OpenOrBuiltin(path string, logw io.Writer) Source {
	if path == "" {
		return NewBuiltin()
	}

	src, err := Open(path)
	if err != nil {
		fmt.Fprintf(logw, "Warning: %v, using built-in game\n", err)
		return NewBuiltin()
	}

	fmt.Fprintf(logw, "Reading games from %s (%s)\n", src.Name(), HumanSize(src.Size()))
	return src
}

// HumanSize formats a byte count for log lines, e.g. "1.50MB".
func HumanSize(n int64) string {
	return bytesize.New(float64(n)).String()
}

func sourceError(path string, err error) error {
	return fmt.Errorf("%s: %v: %w", path, err, errors.ErrSourceUnavailable)
}

func openFile(path string) (*os.File, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, sourceError(path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, sourceError(path, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, 0, sourceError(path, fmt.Errorf("is a directory"))
	}
	return f, info.Size(), nil
}
