package assets

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore writes uploads under a directory served by the static file
// handler.
type LocalStore struct {
	Root    string // filesystem directory, e.g. ./uploads
	URLBase string // public path prefix, e.g. /static/uploads
}

// NewLocalStore returns a disk-backed store rooted at dir.
func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{Root: dir, URLBase: "/static/uploads"}
}

// Put writes the upload to Root/folder/<random>.<ext> and returns its public
// URL path.
func (s *LocalStore) Put(_ context.Context, folder string, up Upload) (string, error) {
	name := randomName() + ext(up.Filename)
	dir := filepath.Join(s.Root, filepath.FromSlash(folder))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("assets: create upload dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), up.Data, 0o644); err != nil {
		return "", fmt.Errorf("assets: write upload: %w", err)
	}
	return strings.TrimRight(s.URLBase, "/") + "/" + folder + "/" + name, nil
}
