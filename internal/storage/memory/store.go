package memory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Store keeps collections in process memory in their encoded form, so callers
// never share record buffers with the store.
type Store struct {
	mu          sync.RWMutex
	collections map[string][]byte
}

// New returns an empty in-memory store.
func New() *Store {
	return &Store{collections: make(map[string][]byte)}
}

// Load decodes the named collection; unknown names yield an empty sequence.
func (s *Store) Load(_ context.Context, name string) ([]json.RawMessage, error) {
	s.mu.RLock()
	data, ok := s.collections[name]
	s.mu.RUnlock()

	records := []json.RawMessage{}
	if !ok {
		return records, nil
	}
	if err := json.Unmarshal(data, &records); err != nil || records == nil {
		return []json.RawMessage{}, nil
	}
	return records, nil
}

// Save replaces the named collection.
func (s *Store) Save(_ context.Context, name string, records []json.RawMessage) error {
	if records == nil {
		records = []json.RawMessage{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	data := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))

	s.mu.Lock()
	s.collections[name] = data
	s.mu.Unlock()
	return nil
}

// Raw returns the encoded collection exactly as stored.
func (s *Store) Raw(name string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.collections[name]
	if !ok {
		return nil, false
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, true
}
