package parser

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"

	"github.com/fredrander/chessviewerscreensaver/internal/errors"
)

// resumeMarkerLen is the size of the stored offset.
const resumeMarkerLen = 8

// ResumeStore keeps the offset of the last game started in a small file,
// so sequential replay continues there after a restart. The file holds a
// little-endian uint64 and nothing else.
type ResumeStore struct {
	path string
}

// NewResumeStore returns a store backed by path.
func NewResumeStore(path string) *ResumeStore {
	return &ResumeStore{path: path}
}

// Path returns the marker file path.
func (s *ResumeStore) Path() string { return s.path }

// Save replaces the stored offset.
func (s *ResumeStore) Save(offset int64) error {
	if offset < 0 {
		return fmt.Errorf("save %s: negative offset %d: %w", s.path, offset, errors.ErrResumeState)
	}
	var buf [resumeMarkerLen]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(offset))
	if err := os.WriteFile(s.path, buf[:], 0o644); err != nil {
		return fmt.Errorf("save %s: %v: %w", s.path, err, errors.ErrResumeState)
	}
	return nil
}

// Load returns the stored offset. A missing file or one of the wrong size
// is reported as ErrResumeState.
func (s *ResumeStore) Load() (int64, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return 0, fmt.Errorf("load %s: %v: %w", s.path, err, errors.ErrResumeState)
	}
	if len(data) != resumeMarkerLen {
		return 0, fmt.Errorf("load %s: %d bytes, want %d: %w", s.path, len(data), resumeMarkerLen, errors.ErrResumeState)
	}
	v := binary.LittleEndian.Uint64(data)
	if v > math.MaxInt64 {
		return 0, fmt.Errorf("load %s: offset %d out of range: %w", s.path, v, errors.ErrResumeState)
	}
	return int64(v), nil
}
