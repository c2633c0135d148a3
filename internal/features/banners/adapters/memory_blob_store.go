package adapters

import (
	"context"
	"fmt"
	"sync"

	"banner-studio/internal/features/banners/domain"
	"banner-studio/internal/features/banners/ports"
)

// MemoryBlobStore keeps blobs in process memory. Used when no Redis URL is configured.
type MemoryBlobStore struct {
	mu    sync.RWMutex
	blobs map[string]domain.Blob
}

// NewMemoryBlobStore creates an empty MemoryBlobStore.
func NewMemoryBlobStore() *MemoryBlobStore {
	return &MemoryBlobStore{blobs: make(map[string]domain.Blob)}
}

// Put stores a copy of blob under id.
func (s *MemoryBlobStore) Put(_ context.Context, id string, blob domain.Blob) error {
	data := make([]byte, len(blob.Data))
	copy(data, blob.Data)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[id] = domain.Blob{MimeType: blob.MimeType, Data: data}
	return nil
}

// Get returns the blob stored under id.
func (s *MemoryBlobStore) Get(_ context.Context, id string) (*domain.Blob, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	blob, ok := s.blobs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ports.ErrBlobNotFound, id)
	}
	return &blob, nil
}

// Delete removes id. Unknown ids are ignored.
func (s *MemoryBlobStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, id)
	return nil
}

// IDs lists the ids of every stored blob.
func (s *MemoryBlobStore) IDs(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.blobs))
	for id := range s.blobs {
		ids = append(ids, id)
	}
	return ids, nil
}
