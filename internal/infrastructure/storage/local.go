package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// LocalStore keeps meeting attachments on the local filesystem under a
// base upload directory. Paths handed back to callers are relative to
// that directory, which is also what gets persisted in the database.
type LocalStore struct {
	baseDir string
}

// NewLocalStore creates the upload directory tree if needed
func NewLocalStore(baseDir string) (*LocalStore, error) {
	if err := os.MkdirAll(filepath.Join(baseDir, "meeting_images"), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStore{baseDir: baseDir}, nil
}

// BaseDir returns the root of the upload tree
func (s *LocalStore) BaseDir() string {
	return s.baseDir
}

// SaveMeetingImage writes image bytes to disk and returns the relative
// path to store in the database. The timestamp suffix keeps names unique
// across uploads within the same meeting.
func (s *LocalStore) SaveMeetingImage(meetingID uuid.UUID, data []byte) (string, error) {
	name := fmt.Sprintf("%s_%d.png", meetingID, time.Now().UnixNano())
	relPath := filepath.ToSlash(filepath.Join("meeting_images", name))

	fullPath := filepath.Join(s.baseDir, "meeting_images", name)
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}
	return relPath, nil
}

// Remove deletes a stored file; a file that is already gone is not an error
func (s *LocalStore) Remove(relPath string) error {
	fullPath := filepath.Join(s.baseDir, filepath.FromSlash(relPath))
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}
