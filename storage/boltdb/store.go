// Package boltdb provides a BoltDB-backed record store. BoltDB gives the
// commit semantics the escrow engine is specified against: read-write
// transactions serialize and commit atomically, so an operation either
// applies every record mutation and balance transfer or none of them.
package boltdb

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.etcd.io/bbolt"

	"github.com/choreledger/choreledger-go/storage"
	"github.com/choreledger/choreledger-go/types"
)

const (
	recordBucket  = "records"
	balanceBucket = "balances"
)

// Store provides a BoltDB-backed record store.
type Store struct {
	db *bbolt.DB
}

var _ storage.RecordStore = (*Store)(nil)

// Open opens a BoltDB-backed store at the provided path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	db, err := bbolt.Open(cleanPath, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open storage db: %w", err)
	}

	store := &Store{db: db}
	if err := store.ensureBuckets(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying BoltDB database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Update runs fn inside a single read-write transaction. The transaction
// commits only when fn returns nil.
func (s *Store) Update(ctx context.Context, fn func(txn storage.Txn) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return fn(&boltTxn{tx: tx})
	})
}

// View runs fn inside a read-only transaction.
func (s *Store) View(ctx context.Context, fn func(txn storage.Txn) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}
	return s.db.View(func(tx *bbolt.Tx) error {
		return fn(&boltTxn{tx: tx})
	})
}

func (s *Store) ensureBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range []string{recordBucket, balanceBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}

type boltTxn struct {
	tx *bbolt.Tx
}

func (t *boltTxn) GetRecord(id types.RecordID) ([]byte, error) {
	bucket := t.tx.Bucket([]byte(recordBucket))
	if bucket == nil {
		return nil, fmt.Errorf("record bucket is missing")
	}
	payload := bucket.Get(id)
	if payload == nil {
		return nil, storage.ErrRecordNotFound
	}
	// the slice bbolt returns is only valid for the duration of the
	// transaction
	return bytes.Clone(payload), nil
}

func (t *boltTxn) PutRecord(id types.RecordID, payload []byte) error {
	if len(id) == 0 {
		return fmt.Errorf("record id is required")
	}
	bucket := t.tx.Bucket([]byte(recordBucket))
	if bucket == nil {
		return fmt.Errorf("record bucket is missing")
	}
	return bucket.Put(id, payload)
}

func (t *boltTxn) RecordExists(id types.RecordID) (bool, error) {
	bucket := t.tx.Bucket([]byte(recordBucket))
	if bucket == nil {
		return false, fmt.Errorf("record bucket is missing")
	}
	return bucket.Get(id) != nil, nil
}

func (t *boltTxn) Balance(account []byte) (uint64, error) {
	bucket := t.tx.Bucket([]byte(balanceBucket))
	if bucket == nil {
		return 0, fmt.Errorf("balance bucket is missing")
	}
	payload := bucket.Get(account)
	if payload == nil {
		return 0, nil
	}
	if len(payload) != 8 {
		return 0, fmt.Errorf("balance payload length must be 8 bytes, got %d bytes", len(payload))
	}
	return binary.BigEndian.Uint64(payload), nil
}

func (t *boltTxn) SetBalance(account []byte, balance uint64) error {
	if len(account) == 0 {
		return fmt.Errorf("account is required")
	}
	bucket := t.tx.Bucket([]byte(balanceBucket))
	if bucket == nil {
		return fmt.Errorf("balance bucket is missing")
	}
	payload := make([]byte, 8)
	binary.BigEndian.PutUint64(payload, balance)
	return bucket.Put(account, payload)
}
