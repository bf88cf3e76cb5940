package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yigit/alumnisphere/internal/pkg/validation"
)

// Upload describes one local file to send to a multipart endpoint.
type Upload struct {
	// Path is the local file to send.
	Path string
	// Fields are auxiliary text fields. They are written to the multipart
	// body before the file part so the server can validate metadata first.
	Fields map[string]string
}

// ProgressFunc receives upload progress. total is the file size in bytes.
type ProgressFunc func(uploaded, total int64)

// Content types for the allowed upload extensions.
var uploadContentTypes = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
	"mp4":  "video/mp4",
	"webm": "video/webm",
	"mov":  "video/quicktime",
}

// UploadFile sends one file as multipart/form-data under the "file" part.
// The extension allowlist and per-kind size cap are checked before any
// network traffic: a rejected file never leaves the machine.
func (c *Client) UploadFile(ctx context.Context, path string, up Upload, out interface{}, progress ProgressFunc) error {
	info, err := os.Stat(up.Path)
	if err != nil {
		return fmt.Errorf("reading upload file: %w", err)
	}

	if _, err := validation.CheckMediaFile(up.Path, info.Size()); err != nil {
		return err
	}

	file, err := os.Open(up.Path)
	if err != nil {
		return fmt.Errorf("opening upload file: %w", err)
	}
	defer file.Close()

	var reader io.Reader = file
	if progress != nil {
		reader = &progressReader{r: file, total: info.Size(), report: progress}
	}

	req, requestID, err := c.newRequest(ctx)
	if err != nil {
		return err
	}

	if len(up.Fields) > 0 {
		req.SetMultipartFormData(up.Fields)
	}
	req.SetMultipartField("file", filepath.Base(up.Path), contentTypeFor(up.Path), reader)
	if out != nil {
		req.SetResult(out)
	}

	started := time.Now()
	resp, err := req.Post(path)
	if err != nil {
		c.logger.Warn().
			Err(err).
			Str("requestId", requestID).
			Str("path", path).
			Str("file", filepath.Base(up.Path)).
			Msg("Upload never reached the server")
		return translateTransportError(err)
	}

	c.logger.Debug().
		Str("requestId", requestID).
		Str("path", path).
		Str("file", filepath.Base(up.Path)).
		Int64("size", info.Size()).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(started)).
		Msg("Upload completed")

	if resp.IsError() {
		return c.rejectedError(resp, requestID)
	}
	return nil
}

func contentTypeFor(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ct, ok := uploadContentTypes[ext]; ok {
		return ct
	}
	return "application/octet-stream"
}

// progressReader reports cumulative bytes read as the multipart body is
// streamed out.
type progressReader struct {
	r      io.Reader
	total  int64
	read   int64
	report ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.read += int64(n)
		p.report(p.read, p.total)
	}
	return n, err
}
