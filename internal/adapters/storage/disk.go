// Package storage writes processed product images to the local public
// directory they are served from.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmaia/sweetshop/internal/adapters/config"
	"github.com/dmaia/sweetshop/internal/core/port"
)

type DiskImageStore struct {
	dir string
}

func NewDiskImageStore(cfg config.ImagesConfig) (port.ImageStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating image directory %s: %w", cfg.Dir, err)
	}
	return &DiskImageStore{dir: cfg.Dir}, nil
}

func (s *DiskImageStore) Write(ctx context.Context, filename string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path := filepath.Join(s.dir, filepath.Base(filename))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing image %s: %w", filename, err)
	}
	return nil
}
