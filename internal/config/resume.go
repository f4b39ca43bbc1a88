package config

import (
	"os"
	"path/filepath"
)

// StateFileName is the resume marker's file name in the temp directory.
const StateFileName = ".chessviewerscreensaver"

// ResumeConfig controls where sequential replay resumes after a restart.
type ResumeConfig struct {
	// StateFile holds the offset of the last game started.
	StateFile string

	// Disabled skips both loading and saving the marker.
	Disabled bool
}

// NewResumeConfig creates a ResumeConfig with default values.
func NewResumeConfig() *ResumeConfig {
	return &ResumeConfig{
		StateFile: DefaultStateFile(),
	}
}

// DefaultStateFile returns the marker path in the system temp directory.
func DefaultStateFile() string {
	return filepath.Join(os.TempDir(), StateFileName)
}

// Enabled reports whether a marker should be loaded and saved.
func (r *ResumeConfig) Enabled() bool {
	return !r.Disabled && r.StateFile != ""
}
