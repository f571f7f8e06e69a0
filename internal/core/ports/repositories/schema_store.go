package repositories

import "context"

// SchemaStore owns the lifecycle of the underlying store:
// open, migrate and seed via Initialize, then release via Close.
// Initialize is idempotent and may be retried after a failure.
type SchemaStore interface {
	Initialize(ctx context.Context) error
	Close()
}
