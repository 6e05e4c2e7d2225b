package artifact

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DiskStore persists artifacts under a local root directory by namespace/path.
type DiskStore struct {
	root string
}

func NewDiskStore(root string) *DiskStore {
	return &DiskStore{root: strings.TrimSpace(root)}
}

func (s *DiskStore) Put(_ context.Context, namespace, path string, content []byte) error {
	fullPath, err := s.pathFor(namespace, path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, content, 0o644)
}

func (s *DiskStore) Get(_ context.Context, namespace, path string) ([]byte, error) {
	fullPath, err := s.pathFor(namespace, path)
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(fullPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	return raw, err
}

// GetURL returns "": disk artifacts are served by the gateway.
func (s *DiskStore) GetURL(_ context.Context, namespace, path string) (string, error) {
	if _, err := s.pathFor(namespace, path); err != nil {
		return "", err
	}
	return "", nil
}

func (s *DiskStore) List(_ context.Context, namespace string) ([]string, error) {
	nsRoot, err := s.namespaceRoot(namespace)
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, 32)
	walkErr := filepath.WalkDir(nsRoot, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(nsRoot, path)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if walkErr != nil {
		if os.IsNotExist(walkErr) {
			return []string{}, nil
		}
		return nil, walkErr
	}
	sort.Strings(paths)
	return paths, nil
}

func (s *DiskStore) namespaceRoot(namespace string) (string, error) {
	if s == nil || s.root == "" {
		return "", fmt.Errorf("root is required")
	}
	namespace, err := normalizeNamespace(namespace)
	if err != nil {
		return "", err
	}
	if strings.Contains(namespace, "..") || filepath.IsAbs(namespace) {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, namespace)
	}
	return filepath.Join(s.root, filepath.FromSlash(namespace)), nil
}

func (s *DiskStore) pathFor(namespace, path string) (string, error) {
	if s == nil || s.root == "" {
		return "", fmt.Errorf("root is required")
	}
	key, err := Key(namespace, path)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.root, filepath.FromSlash(key)), nil
}
