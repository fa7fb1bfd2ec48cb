package store

import (
	"context"

	"github.com/gofrs/uuid"
)

// Key identifies one snapshot: a parsing session plus the document path
// within it. A host juggling many open buffers under one session id uses
// Path to tell them apart.
type Key struct {
	Session uuid.UUID
	Path    string
}

// Snapshot is a scanner.State serialized by (*scanner.State).Serialize,
// along with the byte offset into the document it was taken at.
type Snapshot struct {
	Key        Key
	ByteOffset int64
	State      []byte
}

// SnapshotStore persists scanner state snapshots keyed by Key. Implementations
// must treat Save as an upsert.
type SnapshotStore interface {
	Save(ctx context.Context, snap Snapshot) error
	Load(ctx context.Context, key Key) (Snapshot, bool, error)
	List(ctx context.Context, session uuid.UUID) ([]Key, error)
	Delete(ctx context.Context, key Key) error
}
