// Package github provides a thin client for the GitHub REST API.
//
// The client distinguishes two failure modes, matching how its callers treat
// the data. Primary resources (repository metadata, commit listings) fail
// hard: a non-2xx upstream response becomes a structured error carrying the
// upstream status and message. Secondary resources (languages, README, file
// tree, file content, contributors, issues) fail soft: any upstream or
// decode failure degrades to an empty default so one missing piece never
// aborts a whole analysis.
//
// Requests are unauthenticated by default; pass a token to NewClient for
// higher rate limits. There are no retries and no response caching — every
// call goes to the network.
package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	apperrors "github.com/repolens/repolens/pkg/errors"
)

const (
	defaultBaseURL = "https://api.github.com"
	defaultTimeout = 30 * time.Second
)

// Client provides access to the GitHub API.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a GitHub API client with optional authentication.
// Pass an empty string for token to use unauthenticated requests.
func NewClient(token string) *Client {
	return &Client{
		token:      token,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// Repository retrieves repository metadata as a schema-less JSON document.
// Callers extract the fields they need; a non-2xx response is propagated
// with the upstream status and message.
func (c *Client) Repository(ctx context.Context, owner, repo string) (map[string]any, error) {
	var data map[string]any
	url := fmt.Sprintf("%s/repos/%s/%s", c.baseURL, owner, repo)
	if err := c.get(ctx, url, &data); err != nil {
		return nil, err
	}
	return data, nil
}

// Commits retrieves up to count commits from the default branch, flattened
// to CommitRecord. A non-2xx response is propagated with the upstream
// status and message.
func (c *Client) Commits(ctx context.Context, owner, repo string, count int) ([]CommitRecord, error) {
	var data []apiCommitResponse
	url := fmt.Sprintf("%s/repos/%s/%s/commits?per_page=%d", c.baseURL, owner, repo, count)
	if err := c.get(ctx, url, &data); err != nil {
		return nil, err
	}

	records := make([]CommitRecord, len(data))
	for i, item := range data {
		records[i] = CommitRecord{
			SHA:        item.SHA,
			Message:    item.Commit.Message,
			AuthorName: item.Commit.Author.Name,
			AuthorDate: item.Commit.Author.Date,
		}
	}
	return records, nil
}

// Languages retrieves the language byte breakdown. Any failure degrades to
// an empty map.
func (c *Client) Languages(ctx context.Context, owner, repo string) map[string]int {
	var data map[string]int
	url := fmt.Sprintf("%s/repos/%s/%s/languages", c.baseURL, owner, repo)
	if err := c.get(ctx, url, &data); err != nil {
		return map[string]int{}
	}
	return data
}

// Readme retrieves the repository README, base64-decoded. ok is false when
// the repository has no README or the fetch or decode fails.
func (c *Client) Readme(ctx context.Context, owner, repo string) (string, bool) {
	var data apiContentResponse
	url := fmt.Sprintf("%s/repos/%s/%s/readme", c.baseURL, owner, repo)
	if err := c.get(ctx, url, &data); err != nil {
		return "", false
	}

	content, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(data.Content, "\n", ""))
	if err != nil {
		return "", false
	}
	return string(content), true
}

// Tree retrieves the recursive file tree of the default branch along with
// the total declared size, when the API reports one. Any failure degrades
// to an empty tree.
func (c *Client) Tree(ctx context.Context, owner, repo string) ([]TreeEntry, int) {
	var data treeResponse
	url := fmt.Sprintf("%s/repos/%s/%s/git/trees/HEAD?recursive=1", c.baseURL, owner, repo)
	if err := c.get(ctx, url, &data); err != nil {
		return nil, 0
	}

	entries := make([]TreeEntry, 0, len(data.Tree))
	for _, item := range data.Tree {
		entries = append(entries, TreeEntry{Path: item.Path, Type: item.Type, Size: item.Size})
	}
	return entries, data.Size
}

// FileContent retrieves a single file, base64-decoded. Binary content is
// replaced by a placeholder noting the file size. ok is false when the file
// is absent or the fetch fails.
func (c *Client) FileContent(ctx context.Context, owner, repo, path string) (string, bool) {
	var data apiContentResponse
	url := fmt.Sprintf("%s/repos/%s/%s/contents/%s", c.baseURL, owner, repo, path)
	if err := c.get(ctx, url, &data); err != nil {
		return "", false
	}
	if data.Content == "" || data.Encoding != "base64" {
		return "", false
	}

	content, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(data.Content, "\n", ""))
	if err != nil {
		return "", false
	}
	if !utf8.Valid(content) {
		return fmt.Sprintf("[Binary file - %d bytes]", data.Size), true
	}
	return string(content), true
}

// Contributors retrieves the repository contributors as schema-less JSON
// documents. Any failure degrades to an empty list.
func (c *Client) Contributors(ctx context.Context, owner, repo string) []map[string]any {
	var data []map[string]any
	url := fmt.Sprintf("%s/repos/%s/%s/contributors", c.baseURL, owner, repo)
	if err := c.get(ctx, url, &data); err != nil {
		return []map[string]any{}
	}
	return data
}

// Issues retrieves repository issues in the given state ("open", "closed",
// or "all"). Any failure degrades to an empty list.
func (c *Client) Issues(ctx context.Context, owner, repo, state string) []map[string]any {
	var data []map[string]any
	url := fmt.Sprintf("%s/repos/%s/%s/issues?state=%s&per_page=100", c.baseURL, owner, repo, state)
	if err := c.get(ctx, url, &data); err != nil {
		return []map[string]any{}
	}
	return data
}

// get performs a GET request and decodes the JSON response into v.
// Non-2xx responses become upstream errors carrying the status and body.
func (c *Client) get(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "create request")
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeUpstream, err, "send request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return apperrors.Upstream(resp.StatusCode, "GitHub API error (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeUpstream, err, "decode response")
	}
	return nil
}
