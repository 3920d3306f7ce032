package resource

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"mime"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"backdrop/pkg/images"
	stdnet "backdrop/std/net"
)

// ErrNotFound is returned when the resource does not exist.
var ErrNotFound = errors.New("resource not found")

// Fetcher retrieves resources by URI.
type Fetcher interface {
	Fetch(ctx context.Context, uri string) (body []byte, contentType string, err error)
}

// DefaultFetcher fetches data URIs, local files and HTTP/HTTPS resources,
// resolving relative URIs against a base URL.
type DefaultFetcher struct {
	baseURL string
}

// NewFetcher creates a DefaultFetcher with the given base URL, which may
// be an http(s) URL, a file URL or a directory. Directories must end with
// a slash to be used as such.
func NewFetcher(baseURL string) *DefaultFetcher {
	return &DefaultFetcher{baseURL: baseURL}
}

// Resolve returns the absolute form of uri.
func (f *DefaultFetcher) Resolve(uri string) string {
	if images.IsDataURI(uri) || stdnet.IsNetworkURL(uri) || stdnet.IsFileURL(uri) || filepath.IsAbs(uri) {
		return uri
	}
	return stdnet.ResolveURL(f.baseURL, uri)
}

// Fetch retrieves the resource at the given URI.
func (f *DefaultFetcher) Fetch(ctx context.Context, uri string) ([]byte, string, error) {
	resolved := f.Resolve(uri)
	switch {
	case images.IsDataURI(resolved):
		return images.ParseDataURI(resolved)
	case stdnet.IsNetworkURL(resolved):
		return stdnet.FetchContext(ctx, resolved)
	case stdnet.IsFileURL(resolved):
		u, err := url.Parse(resolved)
		if err != nil {
			return nil, "", fmt.Errorf("parsing %s: %w", resolved, err)
		}
		return readFile(u.Path)
	}
	return readFile(resolved)
}

func readFile(path string) ([]byte, string, error) {
	if path == "" {
		return nil, "", fmt.Errorf("%w: empty path", ErrNotFound)
	}
	body, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, "", fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, "", fmt.Errorf("reading %s: %w", path, err)
	}
	return body, mime.TypeByExtension(strings.ToLower(filepath.Ext(path))), nil
}
