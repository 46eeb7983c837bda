package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/asaf-cyber/ProRecruit-sub003/internal/core/domain"
	"github.com/asaf-cyber/ProRecruit-sub003/internal/core/ports"
)

const slotCollection = "session_slots"

// SlotStore keeps one session snapshot document per device, keyed by device id.
type SlotStore struct {
	db        *mongo.Database
	coll      *mongo.Collection
	retention time.Duration
}

// NewSlotStore returns a slot store on db. A retention of zero keeps slots
// forever; otherwise EnsureIndexes installs a TTL index on updated_at.
func NewSlotStore(db *mongo.Database, retention time.Duration) *SlotStore {
	return &SlotStore{db: db, coll: db.Collection(slotCollection), retention: retention}
}

type slotDocument struct {
	DeviceID  string    `bson:"_id"`
	Payload   []byte    `bson:"payload"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// EnsureIndexes creates the retention TTL index when retention is enabled.
func (s *SlotStore) EnsureIndexes(ctx context.Context) error {
	if s.retention <= 0 {
		return nil
	}
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "updated_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(int32(s.retention.Seconds())),
	})
	if err != nil {
		return fmt.Errorf("create session slot ttl index: %w", err)
	}
	return nil
}

func (s *SlotStore) Slot(deviceID string) ports.SessionSlot {
	return &slot{coll: s.coll, deviceID: deviceID}
}

func (s *SlotStore) Ping(ctx context.Context) error {
	return s.db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

type slot struct {
	coll     *mongo.Collection
	deviceID string
}

func (sl *slot) Load(ctx context.Context) ([]byte, error) {
	var doc slotDocument
	if err := sl.coll.FindOne(ctx, bson.M{"_id": sl.deviceID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("load session slot: %w", err)
	}
	return doc.Payload, nil
}

func (sl *slot) Save(ctx context.Context, data []byte) error {
	doc := slotDocument{
		DeviceID:  sl.deviceID,
		Payload:   data,
		UpdatedAt: time.Now().UTC(),
	}
	_, err := sl.coll.ReplaceOne(ctx, bson.M{"_id": sl.deviceID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save session slot: %w", err)
	}
	return nil
}

func (sl *slot) Delete(ctx context.Context) error {
	if _, err := sl.coll.DeleteOne(ctx, bson.M{"_id": sl.deviceID}); err != nil {
		return fmt.Errorf("delete session slot: %w", err)
	}
	return nil
}

var _ ports.SlotProvider = (*SlotStore)(nil)
