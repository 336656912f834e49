// Package ports defines the interfaces (contracts) that adapters must implement.
// Domain logic depends only on these interfaces and the shared data types,
// never on concrete implementations.
package ports

// DatasetStore persists dataset snapshots to durable storage.
// The backing store (bbolt) is name-scoped: each snapshot name gets its own
// namespace. Concurrent reads are safe; writes are serialized by the adapter.
//
// Crash safety: SaveDataset must be transactional. A crash mid-write must not
// corrupt a previously committed snapshot.
type DatasetStore interface {
	// SaveDataset persists a full dataset under name.
	// Overwrites any prior snapshot with the same name.
	SaveDataset(name string, ds *Dataset) error

	// LoadDataset retrieves a snapshot.
	// Returns nil, nil if no snapshot exists under name.
	LoadDataset(name string) (*Dataset, error)

	// ListDatasets returns the stored snapshot names in sorted order.
	ListDatasets() ([]string, error)

	// DeleteDataset removes a snapshot.
	// Idempotent: deleting a nonexistent snapshot is not an error.
	DeleteDataset(name string) error
}
