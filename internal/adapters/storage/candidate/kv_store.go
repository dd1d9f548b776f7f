package candidate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"clubreg/internal/adapters/storage"
	domain "clubreg/internal/domain/candidate"
)

// StorageKey is the fixed key the candidate collection is persisted under.
const StorageKey = "candidates"

// KVStore implements Store over a key-value backend, holding the whole
// collection as one JSON array.
type KVStore struct {
	kv storage.KV
}

// NewKVStore creates a new candidate Store.
func NewKVStore(kv storage.KV) *KVStore {
	return &KVStore{kv: kv}
}

// Load reads the full candidate collection.
// POST: Returns an empty slice when the key has never been written
func (s *KVStore) Load(ctx context.Context) ([]domain.CandidateRegistration, error) {
	raw, err := s.kv.Get(ctx, StorageKey)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return []domain.CandidateRegistration{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load candidates: %w", err)
	}
	var all []domain.CandidateRegistration
	if err := json.Unmarshal(raw, &all); err != nil {
		return nil, fmt.Errorf("decode candidates: %w", err)
	}
	return all, nil
}

// Replace overwrites the persisted collection with all.
// POST: A subsequent Load returns records equal to all
func (s *KVStore) Replace(ctx context.Context, all []domain.CandidateRegistration) error {
	raw, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("encode candidates: %w", err)
	}
	if err := s.kv.Set(ctx, StorageKey, raw); err != nil {
		return fmt.Errorf("store candidates: %w", err)
	}
	return nil
}
