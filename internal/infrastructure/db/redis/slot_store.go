package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/asaf-cyber/ProRecruit-sub003/internal/core/domain"
	"github.com/asaf-cyber/ProRecruit-sub003/internal/core/ports"
)

const keyPrefix = "prorecruit:session:"

// SlotStore keeps one session snapshot per device under a Redis string key.
// Key format: prorecruit:session:<device_id>
//
// Retention only garbage-collects abandoned slots; it is unrelated to the
// snapshot's own expiresAt, which is never enforced.
type SlotStore struct {
	client    redis.Cmdable
	retention time.Duration
}

// NewSlotStore wraps client. A retention of zero keeps slots forever.
func NewSlotStore(client redis.Cmdable, retention time.Duration) *SlotStore {
	return &SlotStore{client: client, retention: retention}
}

func (s *SlotStore) Slot(deviceID string) ports.SessionSlot {
	return &slot{store: s, key: keyPrefix + deviceID}
}

func (s *SlotStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

type slot struct {
	store *SlotStore
	key   string
}

func (sl *slot) Load(ctx context.Context) ([]byte, error) {
	data, err := sl.store.client.Get(ctx, sl.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("load session slot: %w", err)
	}
	return data, nil
}

func (sl *slot) Save(ctx context.Context, data []byte) error {
	if err := sl.store.client.Set(ctx, sl.key, data, sl.store.retention).Err(); err != nil {
		return fmt.Errorf("save session slot: %w", err)
	}
	return nil
}

func (sl *slot) Delete(ctx context.Context) error {
	if err := sl.store.client.Del(ctx, sl.key).Err(); err != nil {
		return fmt.Errorf("delete session slot: %w", err)
	}
	return nil
}

var _ ports.SlotProvider = (*SlotStore)(nil)
