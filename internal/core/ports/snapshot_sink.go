package ports

import (
	"context"
	"time"
)

// Snapshot is a full copy of the world state at one instant.
type Snapshot struct {
	TakenAt time.Time
	Entries []KeyValue
}

// SnapshotSink stores world-state snapshots outside the ledger and returns
// where it put them.
type SnapshotSink interface {
	Store(ctx context.Context, snapshot Snapshot) (string, error)
}
