// Package memory keeps session slots in process memory. It backs local
// development (SESSION_BACKEND=memory) and tests.
package memory

import (
	"context"
	"sync"

	"github.com/asaf-cyber/ProRecruit-sub003/internal/core/domain"
	"github.com/asaf-cyber/ProRecruit-sub003/internal/core/ports"
)

// SlotStore maps device ids to raw snapshot bytes.
type SlotStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewSlotStore() *SlotStore {
	return &SlotStore{slots: make(map[string][]byte)}
}

func (s *SlotStore) Slot(deviceID string) ports.SessionSlot {
	return &slot{store: s, key: deviceID}
}

func (s *SlotStore) Ping(context.Context) error { return nil }

// Put writes raw bytes into a slot, bypassing the session store.
func (s *SlotStore) Put(deviceID string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[deviceID] = append([]byte(nil), data...)
}

// Has reports whether the device's slot holds a snapshot.
func (s *SlotStore) Has(deviceID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.slots[deviceID]
	return ok
}

type slot struct {
	store *SlotStore
	key   string
}

func (sl *slot) Load(context.Context) ([]byte, error) {
	sl.store.mu.RLock()
	defer sl.store.mu.RUnlock()
	data, ok := sl.store.slots[sl.key]
	if !ok {
		return nil, domain.ErrSnapshotNotFound
	}
	return append([]byte(nil), data...), nil
}

func (sl *slot) Save(_ context.Context, data []byte) error {
	sl.store.Put(sl.key, data)
	return nil
}

func (sl *slot) Delete(context.Context) error {
	sl.store.mu.Lock()
	defer sl.store.mu.Unlock()
	delete(sl.store.slots, sl.key)
	return nil
}

var _ ports.SlotProvider = (*SlotStore)(nil)
