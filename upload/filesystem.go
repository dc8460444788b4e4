package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/jobportal/portalManager/helper"
)

const (
	STORAGE_MODE_LOCAL  = "local"
	STORAGE_MODE_S3     = "s3"
	STORAGE_MODE_MEMORY = "memory"
)

// LogoDir is the folder company logos are stored in.
const LogoDir = "logos"

var (
	ErrFileNotFound = errors.New("file not found")
	ErrInvalidPath  = errors.New("invalid path")
	ErrNotAnImage   = errors.New("file is not an image")
)

type File struct {
	Name     string
	Size     int64
	MimeType string
}

// Filesystem stores uploaded files under slash separated relative paths.
type Filesystem interface {
	Write(ctx context.Context, path string, reader io.Reader, size int64) error
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
	ListFiles(ctx context.Context) ([]File, error)
}

// Config selects and configures the storage backend.
type Config struct {
	Mode string
	Path string
	S3   S3Config
}

// NewFilesystem creates the filesystem selected by config.Mode.
func NewFilesystem(config Config) (Filesystem, error) {
	switch strings.ToLower(config.Mode) {
	case STORAGE_MODE_S3:
		if config.S3.BucketName == "" || config.S3.AccessKeyID == "" || config.S3.SecretAccessKey == "" {
			return nil, fmt.Errorf("missing required S3 configuration: bucket, access key id, secret access key")
		}
		return NewFilesystemS3(config.S3)
	case STORAGE_MODE_MEMORY:
		return NewFilesystemMemory(), nil
	case STORAGE_MODE_LOCAL, "":
		basePath := config.Path
		if basePath == "" {
			basePath = "./uploads"
		}
		return NewFilesystemLocal(basePath), nil
	default:
		return nil, fmt.Errorf("unsupported storage mode: %s (supported: local, s3, memory)", config.Mode)
	}
}

// CleanPath validates a relative file path. Absolute paths and paths leaving
// the storage root are rejected.
func CleanPath(p string) (string, error) {
	if p == "" || strings.HasPrefix(p, "/") || strings.Contains(p, "\\") {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, p)
	}
	cleaned := path.Clean(p)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, p)
	}
	return cleaned, nil
}

// LogoPath returns the storage path of a company logo. The extension of the
// uploaded file name is kept and must denote a raster image type.
func LogoPath(companyID uuid.UUID, filename string) (string, error) {
	ext := strings.ToLower(path.Ext(filename))
	if !helper.IsRasterImage(ext) {
		return "", fmt.Errorf("%w: %s", ErrNotAnImage, filename)
	}
	return path.Join(LogoDir, companyID.String()+ext), nil
}
