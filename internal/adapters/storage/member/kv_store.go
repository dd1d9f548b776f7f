package member

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"clubreg/internal/adapters/storage"
	domain "clubreg/internal/domain/member"
)

// StorageKey is the fixed key the member collection is persisted under.
const StorageKey = "members"

// KVStore implements Store over a key-value backend, holding the whole
// collection as one JSON array.
type KVStore struct {
	kv storage.KV
}

// NewKVStore creates a new member Store.
func NewKVStore(kv storage.KV) *KVStore {
	return &KVStore{kv: kv}
}

// Load reads the full member collection.
// POST: Returns an empty slice when the key has never been written
func (s *KVStore) Load(ctx context.Context) ([]domain.Member, error) {
	raw, err := s.kv.Get(ctx, StorageKey)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return []domain.Member{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load members: %w", err)
	}
	var all []domain.Member
	if err := json.Unmarshal(raw, &all); err != nil {
		return nil, fmt.Errorf("decode members: %w", err)
	}
	return all, nil
}

// Replace overwrites the persisted collection with all.
// POST: A subsequent Load returns records equal to all
func (s *KVStore) Replace(ctx context.Context, all []domain.Member) error {
	raw, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("encode members: %w", err)
	}
	if err := s.kv.Set(ctx, StorageKey, raw); err != nil {
		return fmt.Errorf("store members: %w", err)
	}
	return nil
}
