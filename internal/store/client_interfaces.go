package store

import (
	"context"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalStorage is the client's persistent key/value store. It backs the
// session credential, the mirrored user record and the UI preferences.
type LocalStorage interface {
	// Get returns the value stored under key or ErrKeyNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Set inserts or replaces the value stored under key.
	Set(ctx context.Context, key, value string) error
	// Delete removes keys. Missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error
}

// ErrorClassificator decides whether a driver error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
