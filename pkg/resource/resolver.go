package resource

import (
	"context"
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru"

	"backdrop/pkg/images"
	"backdrop/pkg/logging"
)

// DefaultCacheSize is the number of decoded images kept by a Resolver.
const DefaultCacheSize = 64

// Resolver loads and decodes background images, keeping the most
// recently used ones in memory. It is safe for concurrent use.
type Resolver struct {
	fetcher Fetcher
	cache   *lru.Cache
	logger  *slog.Logger
}

// NewResolver creates a Resolver. A cacheSize of zero or less selects
// DefaultCacheSize.
func NewResolver(fetcher Fetcher, cacheSize int, logger *slog.Logger) (*Resolver, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating image cache: %w", err)
	}
	return &Resolver{fetcher: fetcher, cache: cache, logger: logging.OrDiscard(logger)}, nil
}

// Retrieve fetches and decodes the image at uri.
func (r *Resolver) Retrieve(ctx context.Context, uri string) (images.Resource, error) {
	key := uri
	if df, ok := r.fetcher.(*DefaultFetcher); ok {
		key = df.Resolve(uri)
	}
	if cached, ok := r.cache.Get(key); ok {
		return cached.(images.Resource), nil
	}

	body, contentType, err := r.fetcher.Fetch(ctx, uri)
	if err != nil {
		return nil, err
	}
	res, err := images.Decode(body, contentType)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", uri, err)
	}
	r.cache.Add(key, res)
	return res, nil
}

// RetrieveImage implements background.ImageRetriever. Failures are
// logged and give nil.
func (r *Resolver) RetrieveImage(uri string) images.Resource {
	res, err := r.Retrieve(context.Background(), uri)
	if err != nil {
		r.logger.Warn("background image not loaded", "url", uri, "error", err)
		return nil
	}
	return res
}

// Len returns the number of cached images.
func (r *Resolver) Len() int {
	return r.cache.Len()
}
