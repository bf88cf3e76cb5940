package client

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/alumnisphere/internal/pkg/apperrors"
)

func writeTempFile(t *testing.T, name string, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
	return path
}

func TestUploadRejectsUnsupportedExtensionBeforeNetwork(t *testing.T) {
	var hits int
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	})

	c, _ := newTestClient(t, handler, staticTokens{token: "tok"})

	path := writeTempFile(t, "resume.pdf", 128)
	err := c.UploadFile(context.Background(), "/users/me/avatar", Upload{Path: path}, nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedFileType)
	assert.Zero(t, hits, "a rejected file must never leave the machine")
}

func TestUploadRejectsOversizeImageBeforeNetwork(t *testing.T) {
	var hits int
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	})

	c, _ := newTestClient(t, handler, staticTokens{token: "tok"})

	// Create a sparse file just over the image cap without allocating 10MB.
	path := filepath.Join(t.TempDir(), "huge.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, f.Truncate(10<<20+1))
	require.NoError(t, f.Close())

	err = c.UploadFile(context.Background(), "/users/me/avatar", Upload{Path: path}, nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrFileTooLarge)
	assert.Zero(t, hits)
}

func TestUploadWritesTextFieldsBeforeFilePart(t *testing.T) {
	var rawBody string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		rawBody = string(data)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":1}`))
	})

	c, _ := newTestClient(t, handler, staticTokens{token: "tok"})

	path := writeTempFile(t, "reunion.jpg", 256)
	up := Upload{
		Path:   path,
		Fields: map[string]string{"position": "0"},
	}

	var out struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, c.UploadFile(context.Background(), "/posts/1/media", up, &out, nil))
	assert.Equal(t, int64(1), out.ID)

	fieldIdx := strings.Index(rawBody, `name="position"`)
	fileIdx := strings.Index(rawBody, `name="file"`)
	require.GreaterOrEqual(t, fieldIdx, 0)
	require.GreaterOrEqual(t, fileIdx, 0)
	assert.Less(t, fieldIdx, fileIdx, "metadata fields precede the binary part")
	assert.Contains(t, rawBody, `filename="reunion.jpg"`)
	assert.Contains(t, rawBody, "image/jpeg")
}

func TestUploadReportsMonotonicProgress(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.Copy(io.Discard, r.Body)
		w.Write([]byte(`{}`))
	})

	c, _ := newTestClient(t, handler, staticTokens{token: "tok"})

	const size = 64 * 1024
	path := writeTempFile(t, "clip.mp4", size)

	var calls []int64
	var total int64
	progress := func(uploaded, t int64) {
		calls = append(calls, uploaded)
		total = t
	}

	require.NoError(t, c.UploadFile(context.Background(), "/posts/1/media", Upload{Path: path}, nil, progress))

	require.NotEmpty(t, calls)
	assert.Equal(t, int64(size), total)
	for i := 1; i < len(calls); i++ {
		assert.GreaterOrEqual(t, calls[i], calls[i-1])
	}
	assert.Equal(t, int64(size), calls[len(calls)-1])
}

func TestUploadServerRejectionIsTyped(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.Copy(io.Discard, r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"detail":"Only the author can attach media"}`))
	})

	c, _ := newTestClient(t, handler, staticTokens{token: "tok"})

	path := writeTempFile(t, "reunion.jpg", 256)
	err := c.UploadFile(context.Background(), "/posts/2/media", Upload{Path: path}, nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	assert.Equal(t, "Only the author can attach media", err.Error())
}

func TestUploadMissingFile(t *testing.T) {
	c := New(Options{BaseURL: "http://localhost:0", Tokens: staticTokens{}, Logger: zerolog.Nop()})

	err := c.UploadFile(context.Background(), "/posts/1/media", Upload{Path: "/does/not/exist.jpg"}, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
