package resource

import (
	"bytes"
	"context"
	"errors"
	"image"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backdrop/pkg/images"
)

type countingFetcher struct {
	files map[string][]byte
	calls int
}

func (f *countingFetcher) Fetch(_ context.Context, uri string) ([]byte, string, error) {
	f.calls++
	body, ok := f.files[uri]
	if !ok {
		return nil, "", ErrNotFound
	}
	return body, "", nil
}

func TestResolver_Caches(t *testing.T) {
	fetcher := &countingFetcher{files: map[string][]byte{"a.png": pngBytes(t, 4, 2)}}
	r, err := NewResolver(fetcher, 0, nil)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		res, err := r.Retrieve(context.Background(), "a.png")
		require.NoError(t, err)
		raster, ok := res.(*images.Raster)
		require.True(t, ok)
		assert.Equal(t, image.Rect(0, 0, 4, 2), raster.Image.Bounds())
	}
	assert.Equal(t, 1, fetcher.calls)
	assert.Equal(t, 1, r.Len())
}

func TestResolver_Evicts(t *testing.T) {
	fetcher := &countingFetcher{files: map[string][]byte{
		"a.png": pngBytes(t, 1, 1),
		"b.png": pngBytes(t, 1, 1),
	}}
	r, err := NewResolver(fetcher, 1, nil)
	require.NoError(t, err)

	for _, uri := range []string{"a.png", "b.png", "a.png"} {
		_, err := r.Retrieve(context.Background(), uri)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, fetcher.calls)
	assert.Equal(t, 1, r.Len())
}

func TestResolver_RetrieveImageFailure(t *testing.T) {
	var logs bytes.Buffer
	fetcher := &countingFetcher{files: map[string][]byte{"bad.png": []byte("garbage")}}
	r, err := NewResolver(fetcher, 8, slog.New(slog.NewTextHandler(&logs, nil)))
	require.NoError(t, err)

	assert.Nil(t, r.RetrieveImage("missing.png"))
	assert.Nil(t, r.RetrieveImage("bad.png"))
	assert.Contains(t, logs.String(), "url=missing.png")
	assert.Contains(t, logs.String(), "url=bad.png")
	assert.Equal(t, 0, r.Len())

	_, err = r.Retrieve(context.Background(), "bad.png")
	assert.True(t, errors.Is(err, images.ErrUnsupported))
}
