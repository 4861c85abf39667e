package assets

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultAPIBase = "https://api.github.com"

// GitHubStore commits uploads to a repository through the contents API and
// serves them back through a CDN. Suited to low-frequency updates: every
// upload is one commit on the configured branch.
type GitHubStore struct {
	Token         string
	Repo          string // "owner/name"
	Branch        string // defaults to main
	Prefix        string // key prefix inside the repo, defaults to uploads
	PublicBaseURL string // overrides the jsDelivr URL scheme when set

	// apiBase is swappable for tests.
	apiBase string
	client  *http.Client
}

// NewGitHubStore returns a store for the given repository. Token and repo
// must be non-empty; the caller decides whether GitHub storage is enabled
// at all.
func NewGitHubStore(token, repo, branch, prefix, publicBaseURL string) *GitHubStore {
	return &GitHubStore{
		Token:         token,
		Repo:          repo,
		Branch:        branch,
		Prefix:        prefix,
		PublicBaseURL: publicBaseURL,
		apiBase:       defaultAPIBase,
		client:        &http.Client{Timeout: 20 * time.Second},
	}
}

func (s *GitHubStore) branch() string {
	if b := strings.TrimSpace(s.Branch); b != "" {
		return b
	}
	return "main"
}

func (s *GitHubStore) prefix() string {
	if p := strings.Trim(strings.TrimSpace(s.Prefix), "/"); p != "" {
		return p
	}
	return "uploads"
}

// Put commits the upload under prefix/folder/<random>.<ext> and returns its
// public URL.
func (s *GitHubStore) Put(ctx context.Context, folder string, up Upload) (string, error) {
	key := fmt.Sprintf("%s/%s/%s%s", s.prefix(), folder, randomName(), ext(up.Filename))

	name := up.Filename
	if name == "" {
		name = "file"
	}
	payload, err := json.Marshal(map[string]string{
		"message": "Upload " + name,
		"content": base64.StdEncoding.EncodeToString(up.Data),
		"branch":  s.branch(),
	})
	if err != nil {
		return "", fmt.Errorf("assets: encode github payload: %w", err)
	}

	url := fmt.Sprintf("%s/repos/%s/contents/%s", s.apiBase, s.Repo, key)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("assets: build github request: %w", err)
	}
	req.Header.Set("Authorization", "token "+s.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("assets: github upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("assets: github upload: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return s.publicURL(key), nil
}

func (s *GitHubStore) publicURL(key string) string {
	if base := strings.TrimSpace(s.PublicBaseURL); base != "" {
		return strings.TrimRight(base, "/") + "/" + key
	}
	return fmt.Sprintf("https://cdn.jsdelivr.net/gh/%s@%s/%s", s.Repo, s.branch(), key)
}
