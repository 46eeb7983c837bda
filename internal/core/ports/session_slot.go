package ports

import "context"

// SessionSlot is the single persisted storage slot that holds one device's
// serialized session snapshot.
type SessionSlot interface {
	// Load returns the raw snapshot bytes, or domain.ErrSnapshotNotFound when
	// the slot is empty.
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	// Delete empties the slot. Deleting an empty slot is not an error.
	Delete(ctx context.Context) error
}

// SlotProvider hands out the session slot belonging to a device.
type SlotProvider interface {
	Slot(deviceID string) SessionSlot
	Ping(ctx context.Context) error
}
