// Package output delivers rendered documents to stdout, files or S3.
package output

import (
	"context"
	"io"
	"mime"
	"os"
	"path/filepath"

	"github.com/vango-dev/gee/internal/errors"
)

// Sink stores a rendered document under a name and reports where it went.
type Sink interface {
	Put(ctx context.Context, name string, body []byte) (string, error)
}

// ContentType returns the MIME type for name, defaulting to HTML.
func ContentType(name string) string {
	if t := mime.TypeByExtension(filepath.Ext(name)); t != "" {
		return t
	}
	return "text/html; charset=utf-8"
}

// WriterSink writes every document to W. The name is ignored.
type WriterSink struct {
	W io.Writer
}

// Stdout returns a sink writing to os.Stdout.
func Stdout() *WriterSink {
	return &WriterSink{W: os.Stdout}
}

func (s *WriterSink) Put(ctx context.Context, name string, body []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := s.W.Write(body); err != nil {
		return "", errors.New("G060").WithDetail(err.Error()).Wrap(err)
	}
	return "-", nil
}

// FileSink writes documents into Dir, creating it when missing.
type FileSink struct {
	Dir string
}

func (s *FileSink) Put(ctx context.Context, name string, body []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	path := filepath.Join(s.Dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", errors.New("G060").WithPath(path).WithDetail(err.Error()).Wrap(err)
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return "", errors.New("G060").WithPath(path).WithDetail(err.Error()).Wrap(err)
	}
	return path, nil
}
