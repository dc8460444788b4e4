package upload

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/jobportal/portalManager/helper"
)

// FilesystemMemory implements the Filesystem interface for in-memory file storage using go-billy's memfs
type FilesystemMemory struct {
	fs billy.Filesystem
}

// NewFilesystemMemory creates a new in-memory filesystem instance
func NewFilesystemMemory() Filesystem {
	return &FilesystemMemory{
		fs: memfs.New(),
	}
}

// Write streams data from reader to a file at the specified path
func (m *FilesystemMemory) Write(ctx context.Context, path string, reader io.Reader, size int64) error {
	cleaned, err := CleanPath(path)
	if err != nil {
		return err
	}

	file, err := m.fs.Create(cleaned)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = io.Copy(file, reader)
	return err
}

func (m *FilesystemMemory) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	cleaned, err := CleanPath(path)
	if err != nil {
		return nil, err
	}

	file, err := m.fs.Open(cleaned)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrFileNotFound
	}
	return file, err
}

func (m *FilesystemMemory) Delete(ctx context.Context, path string) error {
	cleaned, err := CleanPath(path)
	if err != nil {
		return err
	}

	err = m.fs.Remove(cleaned)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// ListFiles returns a list of all files in the filesystem
func (m *FilesystemMemory) ListFiles(ctx context.Context) ([]File, error) {
	files := []File{}

	var walk func(string) error
	walk = func(dirPath string) error {
		entries, err := m.fs.ReadDir(dirPath)
		if errors.Is(err, fs.ErrNotExist) && dirPath == "." {
			return nil
		}
		if err != nil {
			return err
		}

		for _, entry := range entries {
			entryPath := m.fs.Join(dirPath, entry.Name())
			if entry.IsDir() {
				if err := walk(entryPath); err != nil {
					return err
				}
				continue
			}

			relPath := entryPath
			if dirPath == "." || dirPath == "" {
				relPath = entry.Name()
			}
			files = append(files, File{
				Name:     filepath.ToSlash(relPath),
				Size:     entry.Size(),
				MimeType: helper.GetMimeType(entry.Name()),
			})
		}
		return nil
	}

	if err := walk("."); err != nil {
		return nil, err
	}

	return files, nil
}
