// Package bbolt implements the ports.DatasetStore interface using bbolt (embedded B+ tree).
// Each snapshot name gets its own top-level bucket. Within that bucket, "meta"
// holds the format version and the JSON feature order, and "features" holds one
// binary record list per feature. Writes are transactional; a crash mid-write
// cannot corrupt a previously committed snapshot.
package bbolt

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/corey/rankbot/internal/ports"
	bolt "go.etcd.io/bbolt"
)

// Bucket keys
var (
	bucketMeta     = []byte("meta")
	bucketFeatures = []byte("features")
	keyFormat      = []byte("format")
	keyOrder       = []byte("order")
)

// featureMeta is the JSON form of a feature's header in the order list.
type featureMeta struct {
	Name string `json:"name"`
	Unit string `json:"unit,omitempty"`
}

// Store implements ports.DatasetStore backed by bbolt.
type Store struct {
	db *bolt.DB
}

var _ ports.DatasetStore = (*Store)(nil)

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// OpenReadOnly opens an existing database without taking the write lock, so
// several readers can load snapshots at once.
func OpenReadOnly(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second, ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveDataset persists a full dataset under name, replacing any prior snapshot.
func (s *Store) SaveDataset(name string, ds *ports.Dataset) error {
	if name == "" {
		return fmt.Errorf("empty snapshot name")
	}
	if ds == nil {
		return fmt.Errorf("nil dataset")
	}

	order := make([]featureMeta, 0, len(ds.Features))
	blobs := make(map[string][]byte, len(ds.Features))
	for _, f := range ds.Features {
		if _, dup := blobs[f.Name]; dup {
			return fmt.Errorf("feature %q defined twice", f.Name)
		}
		blob, err := encodeEntries(f.Entries)
		if err != nil {
			return fmt.Errorf("encode feature %q: %w", f.Name, err)
		}
		blobs[f.Name] = blob
		order = append(order, featureMeta{Name: f.Name, Unit: f.Unit})
	}
	orderJSON, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("marshal feature order: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		// Replace wholesale so features dropped from the dataset do not linger.
		if err := tx.DeleteBucket([]byte(name)); err != nil && !errors.Is(err, bolt.ErrBucketNotFound) {
			return err
		}
		snap, err := tx.CreateBucket([]byte(name))
		if err != nil {
			return err
		}
		mb, err := snap.CreateBucket(bucketMeta)
		if err != nil {
			return err
		}
		if err := mb.Put(keyFormat, []byte{formatVersion}); err != nil {
			return err
		}
		if err := mb.Put(keyOrder, orderJSON); err != nil {
			return err
		}
		fb, err := snap.CreateBucket(bucketFeatures)
		if err != nil {
			return err
		}
		for featureName, blob := range blobs {
			if err := fb.Put([]byte(featureName), blob); err != nil {
				return err
			}
		}
		return nil
	})
}

// LoadDataset retrieves a snapshot.
// Returns nil, nil if no snapshot exists under name.
func (s *Store) LoadDataset(name string) (*ports.Dataset, error) {
	var (
		found     bool
		format    byte
		orderJSON []byte
		blobs     = make(map[string][]byte)
	)

	err := s.db.View(func(tx *bolt.Tx) error {
		snap := tx.Bucket([]byte(name))
		if snap == nil {
			return nil
		}
		found = true

		mb := snap.Bucket(bucketMeta)
		fb := snap.Bucket(bucketFeatures)
		if mb == nil || fb == nil {
			return fmt.Errorf("snapshot %q is incomplete", name)
		}
		if v := mb.Get(keyFormat); len(v) == 1 {
			format = v[0]
		}
		// Copy bytes out of the transaction (bbolt slices are only valid within tx)
		if v := mb.Get(keyOrder); v != nil {
			orderJSON = make([]byte, len(v))
			copy(orderJSON, v)
		}
		return fb.ForEach(func(k, v []byte) error {
			blob := make([]byte, len(v))
			copy(blob, v)
			blobs[string(k)] = blob
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	if format != formatVersion {
		return nil, fmt.Errorf("snapshot %q: unsupported format %d", name, format)
	}

	var order []featureMeta
	if err := json.Unmarshal(orderJSON, &order); err != nil {
		return nil, fmt.Errorf("unmarshal feature order: %w", err)
	}

	ds := &ports.Dataset{Features: make([]ports.Feature, 0, len(order))}
	for _, fm := range order {
		blob, ok := blobs[fm.Name]
		if !ok {
			return nil, fmt.Errorf("snapshot %q: feature %q has no entries blob", name, fm.Name)
		}
		entries, err := decodeEntries(blob)
		if err != nil {
			return nil, fmt.Errorf("decode feature %q: %w", fm.Name, err)
		}
		ds.Features = append(ds.Features, ports.Feature{Name: fm.Name, Unit: fm.Unit, Entries: entries})
	}
	return ds, nil
}

// ListDatasets returns the stored snapshot names in sorted order.
func (s *Store) ListDatasets() ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.ForEach(func(name []byte, _ *bolt.Bucket) error {
			names = append(names, string(name))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// DeleteDataset removes a snapshot.
// Idempotent: deleting a nonexistent snapshot is not an error.
func (s *Store) DeleteDataset(name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket([]byte(name)); errors.Is(err, bolt.ErrBucketNotFound) {
			return nil // idempotent
		} else {
			return err
		}
	})
}
