package assets

import (
	"context"
	"errors"

	"inventory-sync/core/metrics"

	"go.uber.org/zap"
)

// Outcome classifies one deletion attempt.
type Outcome string

const (
	OutcomeDeleted  Outcome = "deleted"
	OutcomeNotFound Outcome = "not_found"
	OutcomeFailed   Outcome = "failed"
)

// Trigger names what caused a deletion, for logs and metrics.
type Trigger string

const (
	TriggerRemove  Trigger = "remove"
	TriggerReplace Trigger = "replace"
	TriggerKey     Trigger = "key"
	TriggerURL     Trigger = "url"
)

// Result reports one deletion attempt.
type Result struct {
	Outcome Outcome `json:"outcome"`
	Key     string  `json:"key"`
	Err     error   `json:"-"`
}

// Manager issues best-effort object deletions. The hooks must only be called
// after the store mutation that triggers them has committed; their failures are
// logged and counted, and the mutation is never undone.
type Manager struct {
	store Store
	id    Identifier
	log   *zap.Logger
}

// NewManager creates a Manager.
func NewManager(store Store, id Identifier, log *zap.Logger) *Manager {
	return &Manager{store: store, id: id, log: log}
}

// Identifier returns the key derivation rules in use.
func (m *Manager) Identifier() Identifier {
	return m.id
}

// DeleteByKey removes the object addressed by key.
func (m *Manager) DeleteByKey(ctx context.Context, key string) Result {
	return m.remove(ctx, TriggerKey, key)
}

// DeleteByURL derives the key from url and removes it. It returns ErrCannotDeriveKey
// without touching the store when the url lacks the required structure.
func (m *Manager) DeleteByURL(ctx context.Context, url string) (Result, error) {
	key, ok := m.id.DeriveKey(url)
	if !ok {
		return Result{}, ErrCannotDeriveKey
	}
	return m.remove(ctx, TriggerURL, key), nil
}

// DeleteOnRemove runs after an entity carrying ref was deleted. attempted is false
// when ref is null or no key can be derived from it.
func (m *Manager) DeleteOnRemove(ctx context.Context, ref *string) (res Result, attempted bool) {
	if isNull(ref) {
		return Result{}, false
	}
	key, ok := m.id.DeriveKey(*ref)
	if !ok {
		m.log.Warn("Asset reference has no derivable key, leaving object in place",
			zap.String("trigger", string(TriggerRemove)), zap.String("url", *ref))
		return Result{}, false
	}
	return m.remove(ctx, TriggerRemove, key), true
}

// DeleteOnReplace runs after an entity's asset reference changed from oldRef to newRef.
// The old object is deleted only when both references are non-null and differ.
// A reference cleared to null keeps its object; the next reconciliation scan reports it.
func (m *Manager) DeleteOnReplace(ctx context.Context, oldRef, newRef *string) (res Result, attempted bool) {
	if isNull(oldRef) || isNull(newRef) || *oldRef == *newRef {
		return Result{}, false
	}
	key, ok := m.id.DeriveKey(*oldRef)
	if !ok {
		m.log.Warn("Asset reference has no derivable key, leaving object in place",
			zap.String("trigger", string(TriggerReplace)), zap.String("url", *oldRef))
		return Result{}, false
	}
	return m.remove(ctx, TriggerReplace, key), true
}

func (m *Manager) remove(ctx context.Context, trigger Trigger, key string) Result {
	err := m.store.Remove(ctx, key)

	res := Result{Key: key}
	switch {
	case err == nil:
		res.Outcome = OutcomeDeleted
		m.log.Info("Asset deleted", zap.String("trigger", string(trigger)), zap.String("key", key))
	case errors.Is(err, ErrNotFound):
		res.Outcome = OutcomeNotFound
		m.log.Info("Asset already absent", zap.String("trigger", string(trigger)), zap.String("key", key))
	default:
		res.Outcome = OutcomeFailed
		res.Err = err
		m.log.Error("Asset deletion failed", zap.String("trigger", string(trigger)), zap.String("key", key), zap.Error(err))
	}

	metrics.AssetDeletions.WithLabelValues(string(trigger), string(res.Outcome)).Inc()
	return res
}

// isNull treats an empty string like a missing reference.
func isNull(ref *string) bool {
	return ref == nil || *ref == ""
}
