// Package artifact stores binary artifacts such as rendered charts, addressed
// by a namespace and a relative path.
package artifact

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"strings"
)

// Store defines operations for persisting artifacts.
type Store interface {
	Put(ctx context.Context, namespace, path string, content []byte) error
	Get(ctx context.Context, namespace, path string) ([]byte, error)
	// GetURL returns a directly fetchable URL, or "" when the backend has none.
	GetURL(ctx context.Context, namespace, path string) (string, error)
	List(ctx context.Context, namespace string) ([]string, error)
}

var (
	ErrNotFound    = errors.New("artifact not found")
	ErrInvalidPath = errors.New("invalid artifact path")
)

// Key normalises a namespace/path pair and rejects traversal.
func Key(namespace, path string) (string, error) {
	namespace = strings.Trim(strings.TrimSpace(namespace), "/")
	path = strings.TrimLeft(strings.TrimSpace(path), "/")
	if namespace == "" {
		return "", fmt.Errorf("%w: namespace is required", ErrInvalidPath)
	}
	if path == "" {
		return "", fmt.Errorf("%w: path is required", ErrInvalidPath)
	}
	for _, part := range strings.Split(namespace+"/"+path, "/") {
		if part == ".." || part == "." {
			return "", fmt.Errorf("%w: %q", ErrInvalidPath, path)
		}
	}
	return namespace + "/" + path, nil
}

func normalizeNamespace(namespace string) (string, error) {
	namespace = strings.Trim(strings.TrimSpace(namespace), "/")
	if namespace == "" {
		return "", fmt.Errorf("%w: namespace is required", ErrInvalidPath)
	}
	return namespace, nil
}

// ContentType guesses a MIME type from the path extension.
func ContentType(path string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
