package source

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"
	"github.com/google/go-github/v81/github"
)

// GitHubSource discovers documentation files in a subtree of a GitHub
// repository. Rate limits (primary and secondary) are handled by the
// waiting client; setting GITHUB_TOKEN raises the request quota.
type GitHubSource struct {
	client   *github.Client
	owner    string
	repo     string
	basePath string
}

// NewGitHubSource creates a GitHub-backed source for owner/repo, rooted at
// basePath within the repository.
func NewGitHubSource(owner, repo, basePath string) (*GitHubSource, error) {
	rateLimiter, err := github_ratelimit.NewRateLimitWaiterClient(nil)
	if err != nil {
		return nil, fmt.Errorf("create rate-limited client: %w", err)
	}
	client := github.NewClient(rateLimiter)
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		client = client.WithAuthToken(token)
	}
	return &GitHubSource{
		client:   client,
		owner:    owner,
		repo:     repo,
		basePath: basePath,
	}, nil
}

// List recursively enumerates markdown files under the base path, returning
// repository-relative paths (relative to basePath), sorted.
func (s *GitHubSource) List(ctx context.Context) ([]string, error) {
	paths, err := s.listDir(ctx, s.basePath, "")
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

func (s *GitHubSource) listDir(ctx context.Context, fullPath, relPath string) ([]string, error) {
	_, entries, _, err := s.client.Repositories.GetContents(ctx, s.owner, s.repo, fullPath, nil)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", fullPath, err)
	}

	var out []string
	for _, entry := range entries {
		if entry.Type == nil || entry.Name == nil {
			continue
		}
		entryRel := path.Join(relPath, *entry.Name)
		switch *entry.Type {
		case "file":
			if markdownFile(*entry.Name) {
				out = append(out, entryRel)
			}
		case "dir":
			sub, err := s.listDir(ctx, path.Join(fullPath, *entry.Name), entryRel)
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
		}
	}
	return out, nil
}

// Fetch downloads and decodes one file's content.
func (s *GitHubSource) Fetch(ctx context.Context, relPath string) ([]byte, error) {
	fullPath := path.Join(s.basePath, relPath)
	fileContent, _, _, err := s.client.Repositories.GetContents(ctx, s.owner, s.repo, fullPath, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", fullPath, err)
	}
	if fileContent == nil {
		return nil, fmt.Errorf("fetch %s: no file content returned", fullPath)
	}

	// The contents API returns base64 for blobs.
	if fileContent.Content == nil {
		return nil, fmt.Errorf("fetch %s: empty content", fullPath)
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(*fileContent.Content, "\n", ""))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", fullPath, err)
	}
	return decoded, nil
}
