package realtime

import "context"

// Broadcaster keeps subscribers in sync with the stored roster.
type Broadcaster interface {
	// Snapshot builds the current roster snapshot
	Snapshot(ctx context.Context) (*Snapshot, error)
	// Publish builds a snapshot and sends it to every subscriber
	Publish(ctx context.Context) error
}

// ChangeListener reports store changes until ctx is done.
type ChangeListener interface {
	Listen(ctx context.Context, onChange func(Change)) error
}
