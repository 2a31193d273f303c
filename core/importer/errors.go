package importer

import (
	"errors"
	"fmt"

	"inventory-sync/core/model"
)

// ErrDuplicateKey is returned by a Writer when the natural key already exists.
var ErrDuplicateKey = errors.New("duplicate natural key")

// StoreWriteError is any store failure other than a natural-key conflict.
type StoreWriteError struct {
	Kind model.Kind
	Key  string
	Err  error
}

func (e *StoreWriteError) Error() string {
	return fmt.Sprintf("write %s %q: %v", e.Kind, e.Key, e.Err)
}

func (e *StoreWriteError) Unwrap() error {
	return e.Err
}
