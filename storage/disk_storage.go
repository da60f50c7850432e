package storage

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

type diskStorage struct {
	BaseDir string
}

// NewDiskStorage initializes a new DiskStorage instance
func NewDiskStorage(baseDir string) *diskStorage {
	return &diskStorage{BaseDir: baseDir}
}

func (ds *diskStorage) GetKeysWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	var matchedFiles []string

	// Walk through all files and directories
	err := filepath.WalkDir(ds.BaseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && path == ds.BaseDir {
				return filepath.SkipDir
			}
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if d.IsDir() || strings.HasSuffix(path, ".tmp") {
			return nil
		}
		rel, err := filepath.Rel(ds.BaseDir, path)
		if err != nil {
			return err
		}
		// keys always use '/' whatever the platform separator is
		if key := filepath.ToSlash(rel); strings.HasPrefix(key, prefix) {
			matchedFiles = append(matchedFiles, key)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "can not list files")
	}

	return matchedFiles, nil
}

// Write writes data to a file for a given key
func (ds *diskStorage) Write(ctx context.Context, key string, data []byte) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	filePath := filepath.Join(ds.BaseDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(filePath), os.ModePerm); err != nil {
		return errors.Wrap(err, "can not create directory")
	}

	// write then rename so a reader never sees half a file
	tmp := filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return errors.Wrap(err, "can not write file")
	}
	return errors.Wrap(os.Rename(tmp, filePath), "can not write file")
}

// Read reads data from a file for a given key
func (ds *diskStorage) Read(ctx context.Context, key string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	filePath := filepath.Join(ds.BaseDir, filepath.FromSlash(key))
	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(ErrDoesNotExist, "key %s", key)
		}
		return nil, errors.Wrap(err, "can not read file")
	}
	return data, nil
}

// Delete deletes a file for a given key
func (ds *diskStorage) Delete(ctx context.Context, key string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	filePath := filepath.Join(ds.BaseDir, filepath.FromSlash(key))
	if err := os.Remove(filePath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil // Ignore file not found errors
		}
		return errors.Wrap(err, "can not delete file")
	}
	return nil
}
