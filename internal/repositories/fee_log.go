package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/sbilibin2017/whitewhale-bridge/internal/logger"
	"github.com/sbilibin2017/whitewhale-bridge/internal/models"
)

// FeeLogFileRepository keeps the fee top-up audit log as a JSON array in one file.
// Writes are serialized and replace the file atomically.
type FeeLogFileRepository struct {
	mu   sync.Mutex
	path string
}

func NewFeeLogFileRepository(path string) *FeeLogFileRepository {
	return &FeeLogFileRepository{path: path}
}

// Append adds entry to the end of the log. It refuses to overwrite a file it
// cannot parse.
func (r *FeeLogFileRepository) Append(ctx context.Context, entry models.FeeTopUpEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.read()
	if err != nil {
		return err
	}
	entries = append(entries, entry)

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	err = r.write(data)
	logger.Log.Debugw("fee log append", "path", r.path, "entries", len(entries), "error", err)
	return err
}

// List returns all entries in insertion order. A missing file is an empty log.
func (r *FeeLogFileRepository) List(ctx context.Context) ([]models.FeeTopUpEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.read()
}

func (r *FeeLogFileRepository) read() ([]models.FeeTopUpEntry, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []models.FeeTopUpEntry{}, nil
	}
	if err != nil {
		return nil, err
	}

	entries := []models.FeeTopUpEntry{}
	if len(data) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse fee log %s: %w", r.path, err)
	}
	return entries, nil
}

func (r *FeeLogFileRepository) write(data []byte) error {
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), r.path)
}
