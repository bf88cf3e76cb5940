package filestorage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Local stores files in a single directory, served under baseURL. Filenames
// are uuid-based so concurrent uploads of the same file never collide.
type Local struct {
	basePath string
	baseURL  string
	logger   zerolog.Logger
}

// NewLocal creates the storage directory and returns a Local storage.
// baseURL is the URL path prefix the directory is served under, "/uploads"
// typically.
func NewLocal(basePath, baseURL string, logger zerolog.Logger) (*Local, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("creating storage directory %s: %w", basePath, err)
	}

	return &Local{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
		logger:   logger,
	}, nil
}

// Save writes the uploaded file under a fresh uuid name, keeping the
// original extension, and returns its serving path.
func (l *Local) Save(fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("opening uploaded file: %w", err)
	}
	defer src.Close()

	name := uuid.New().String() + strings.ToLower(filepath.Ext(fileHeader.Filename))
	dstPath := filepath.Join(l.basePath, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("creating destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("writing file content: %w", err)
	}

	l.logger.Debug().Str("file", name).Int64("size", fileHeader.Size).Msg("File stored")
	return l.baseURL + "/" + name, nil
}

// Delete removes a stored file by its serving path. Idempotent: a missing
// file is a successful delete.
func (l *Local) Delete(servingPath string) error {
	name := filepath.Base(servingPath)
	if name == "" || name == "." || name == "/" {
		return fmt.Errorf("invalid file path: %s", servingPath)
	}

	err := os.Remove(filepath.Join(l.basePath, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("deleting file: %w", err)
	}
	return nil
}
