// Package assets stores uploaded files either on the local disk or in a
// GitHub repository fronted by a CDN, and keeps an in-memory library of the
// local upload tree.
package assets

import (
	"context"
	"encoding/hex"
	"path"
	"strings"

	"github.com/google/uuid"
)

// Upload folders. News uses a flat folder; service detail assets are split
// by kind.
const (
	FolderNews          = "news"
	FolderServiceImages = "services/images"
	FolderServiceFiles  = "services/files"
)

// Upload is an in-memory uploaded file.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Store persists one upload under the given folder and returns its public
// URL.
type Store interface {
	Put(ctx context.Context, folder string, up Upload) (string, error)
}

// IsImage reports whether the upload declares an image content type.
func IsImage(contentType string) bool {
	return strings.HasPrefix(contentType, "image/")
}

// MergeAssets appends newly uploaded URLs to an existing list. With no new
// uploads the existing list is returned untouched, so an edit that uploads
// nothing never clears previously attached assets.
func MergeAssets(existing, added []string) []string {
	if len(added) == 0 {
		return existing
	}
	out := make([]string, 0, len(existing)+len(added))
	out = append(out, existing...)
	return append(out, added...)
}

// ext returns the filename extension including the dot, or "".
func ext(filename string) string {
	return path.Ext(filename)
}

// randomName returns a 32-char hex name so stored keys never collide with or
// reveal the original filename.
func randomName() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}
