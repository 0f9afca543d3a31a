// Package storage defines the persistence interfaces the services rely on.
// It abstracts record access and transaction management so that backends
// (PostgreSQL today) provide the concrete implementations.
//
// Single-record lookups return (nil, nil) when nothing matches; services
// decide whether that is an error.
//
//go:generate mockgen -package mockstorage -destination=mock/mockstorage.go careeros/pkg/storage Storage,AllStorage
package storage

import "context"

// AllStorage is the composite of every domain-specific storage capability.
type AllStorage interface {
	UserStorage
	PartialProfileStorage
	AnalysisStorage
	HunterStorage
	TrackerStorage
	JobStorage
}

// TxStorage is a storage handle bound to an open transaction. It becomes
// unusable after Commit or Rollback.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage is a non-transactional storage handle able to start transactions.
type Storage interface {
	AllStorage

	// Close releases the underlying connection pool.
	Close() error

	// Begin starts a new transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb inside a transaction, committing when cb returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
