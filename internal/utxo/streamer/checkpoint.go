package streamer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/renameio/v2"
)

// FileCheckpoint stores the last synced block as a plain-text integer.
type FileCheckpoint struct {
	path string
}

// NewFileCheckpoint returns a checkpoint backed by path.
func NewFileCheckpoint(path string) *FileCheckpoint {
	return &FileCheckpoint{path: path}
}

// Path returns the checkpoint file location.
func (c *FileCheckpoint) Path() string {
	return c.path
}

// Load reads the checkpoint. ok is false if the file does not exist yet.
func (c *FileCheckpoint) Load() (block uint64, ok bool, err error) {
	raw, err := os.ReadFile(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("read checkpoint %s: %w", c.path, err)
	}
	block, err = strconv.ParseUint(strings.TrimSpace(string(raw)), 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("parse checkpoint %s: %w", c.path, err)
	}
	return block, true, nil
}

// Save replaces the checkpoint atomically and syncs the directory so the rename survives a crash.
func (c *FileCheckpoint) Save(block uint64) error {
	dir := filepath.Dir(c.path)
	data := []byte(strconv.FormatUint(block, 10) + "\n")
	if err := renameio.WriteFile(c.path, data, 0o644, renameio.WithTempDir(dir)); err != nil {
		return fmt.Errorf("write checkpoint %s: %w", c.path, err)
	}
	return syncDir(dir)
}

func syncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return fmt.Errorf("open checkpoint dir: %w", err)
	}
	defer func() {
		_ = d.Close()
	}()
	if err := d.Sync(); err != nil {
		return fmt.Errorf("sync checkpoint dir: %w", err)
	}
	return nil
}
