package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"banner-studio/internal/core/cache"
	"banner-studio/internal/features/banners/domain"
	"banner-studio/internal/features/banners/ports"
)

const blobKeyPrefix = "banner_blob:"

// RedisBlobStore implements ports.BlobStore using the cache adaptation.
type RedisBlobStore struct {
	cache cache.Cache
}

// NewRedisBlobStore creates a new RedisBlobStore.
func NewRedisBlobStore(c cache.Cache) *RedisBlobStore {
	return &RedisBlobStore{
		cache: c,
	}
}

func blobKey(id string) string {
	return blobKeyPrefix + id
}

// Put stores the blob without expiration; it lives until Delete is called.
func (r *RedisBlobStore) Put(ctx context.Context, id string, blob domain.Blob) error {
	data, err := json.Marshal(blob)
	if err != nil {
		return fmt.Errorf("failed to marshal blob: %w", err)
	}

	if err := r.cache.Set(ctx, blobKey(id), data, 0); err != nil {
		return fmt.Errorf("failed to save blob to cache: %w", err)
	}

	return nil
}

// Get retrieves the blob from the cache.
func (r *RedisBlobStore) Get(ctx context.Context, id string) (*domain.Blob, error) {
	data, err := r.cache.Get(ctx, blobKey(id))
	if err != nil {
		if errors.Is(err, cache.ErrKeyNotFound) {
			return nil, fmt.Errorf("%w: %s", ports.ErrBlobNotFound, id)
		}
		return nil, fmt.Errorf("failed to get blob from cache: %w", err)
	}

	var blob domain.Blob
	if err := json.Unmarshal(data, &blob); err != nil {
		return nil, fmt.Errorf("failed to unmarshal blob: %w", err)
	}

	return &blob, nil
}

// Delete removes the blob from the cache.
func (r *RedisBlobStore) Delete(ctx context.Context, id string) error {
	if err := r.cache.Delete(ctx, blobKey(id)); err != nil {
		return fmt.Errorf("failed to delete blob from cache: %w", err)
	}
	return nil
}

// IDs lists the ids of every stored blob.
func (r *RedisBlobStore) IDs(ctx context.Context) ([]string, error) {
	keys, err := r.cache.Keys(ctx, blobKeyPrefix+"*")
	if err != nil {
		return nil, fmt.Errorf("failed to list blobs: %w", err)
	}

	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, blobKeyPrefix))
	}
	return ids, nil
}
