package inventory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"inventory-sync/core/assets"
	"inventory-sync/core/model"
	"inventory-sync/core/schema"
	"inventory-sync/core/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrNotFound means no row matched the kind and key.
	ErrNotFound = errors.New("entity not found")
	// ErrUnknownKind means the kind is not one of the canonical tables.
	ErrUnknownKind = errors.New("unknown entity kind")
)

// FieldError rejects an update field.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
}

// passwordField is accepted on users as a raw secret and stored hashed.
const passwordField = "password"

// MutationResult reports a committed update or delete and, when one was
// attempted, the follow-up asset deletion.
type MutationResult struct {
	Kind  model.Kind     `json:"kind"`
	Key   string         `json:"key"`
	Asset *assets.Result `json:"asset,omitempty"`
}

// ScanCache drops cached orphan reports after storage changes.
type ScanCache interface {
	Invalidate()
}

// Service updates and deletes canonical entities and fires the asset hooks
// once the store change is committed.
type Service struct {
	db     *gorm.DB
	assets *assets.Manager
	hasher schema.Hasher
	scans  ScanCache
	logger *zap.Logger
}

// NewService creates a new inventory service.
func NewService(db *gorm.DB, mgr *assets.Manager, hasher schema.Hasher, logger *zap.Logger) *Service {
	return &Service{db: db, assets: mgr, hasher: hasher, logger: logger}
}

// WithScanCache invalidates c whenever a hook deletes an object.
func (s *Service) WithScanCache(c ScanCache) *Service {
	s.scans = c
	return s
}

// Update applies fields (column name to value) to the row of kind keyed by id.
// The key column cannot be changed. When the asset column changes to another
// non-null value the previous object is deleted afterwards.
func (s *Service) Update(ctx context.Context, kind model.Kind, id string, fields map[string]any) (*MutationResult, error) {
	columns, err := s.columns(kind)
	if err != nil {
		return nil, err
	}
	values, err := s.prepare(kind, columns, fields)
	if err != nil {
		return nil, err
	}

	assetCol, hasAsset := kind.AssetColumn()
	var oldRef *string

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ref, err := s.current(tx, kind, id)
		if err != nil {
			return err
		}
		oldRef = ref
		entity, _ := model.New(kind)
		return tx.Model(entity).Where(kind.KeyColumn()+" = ?", id).Updates(values).Error
	})
	if err != nil {
		return nil, err
	}

	res := &MutationResult{Kind: kind, Key: id}
	if newVal, changed := values[assetCol]; hasAsset && changed {
		newRef := refOf(newVal)
		if r, attempted := s.assets.DeleteOnReplace(ctx, oldRef, newRef); attempted {
			res.Asset = &r
			s.afterDelete(r)
		} else if oldRef != nil && newRef == nil {
			s.logger.Info("Asset reference cleared, object left for reconciliation",
				zap.String("kind", string(kind)), zap.String("key", id), zap.String("url", *oldRef))
		}
	}
	return res, nil
}

// Delete removes the row of kind keyed by id, then the object its asset column
// referenced.
func (s *Service) Delete(ctx context.Context, kind model.Kind, id string) (*MutationResult, error) {
	if _, err := s.columns(kind); err != nil {
		return nil, err
	}

	var ref *string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := s.current(tx, kind, id)
		if err != nil {
			return err
		}
		ref = current
		entity, _ := model.New(kind)
		result := tx.Where(kind.KeyColumn()+" = ?", id).Delete(entity)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	res := &MutationResult{Kind: kind, Key: id}
	if r, attempted := s.assets.DeleteOnRemove(ctx, ref); attempted {
		res.Asset = &r
		s.afterDelete(r)
	}
	return res, nil
}

// SetPassword stores a new hashed secret for the user with email.
func (s *Service) SetPassword(ctx context.Context, email, secret string) error {
	if secret == "" {
		return &FieldError{Field: passwordField, Reason: "must not be empty"}
	}
	hashed, err := s.hasher.Hash(secret)
	if err != nil {
		return err
	}
	result := s.db.WithContext(ctx).Table(model.KindUser.Table()).
		Where(model.KindUser.KeyColumn()+" = ?", email).
		Update("password_hash", hashed)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Service) afterDelete(r assets.Result) {
	if s.scans != nil && r.Outcome == assets.OutcomeDeleted {
		s.scans.Invalidate()
	}
}

// columns returns the writable columns of kind from the gorm model.
func (s *Service) columns(kind model.Kind) (map[string]struct{}, error) {
	entity, ok := model.New(kind)
	if !ok {
		return nil, ErrUnknownKind
	}
	stmt := &gorm.Statement{DB: s.db}
	if err := stmt.Parse(entity); err != nil {
		return nil, fmt.Errorf("parse %s model: %w", kind, err)
	}
	out := make(map[string]struct{}, len(stmt.Schema.DBNames))
	for _, name := range stmt.Schema.DBNames {
		out[name] = struct{}{}
	}
	return out, nil
}

func (s *Service) prepare(kind model.Kind, columns map[string]struct{}, fields map[string]any) (map[string]any, error) {
	if len(fields) == 0 {
		return nil, &FieldError{Field: "", Reason: "no fields to update"}
	}
	values := make(map[string]any, len(fields))
	for name, v := range fields {
		switch {
		case name == kind.KeyColumn():
			return nil, &FieldError{Field: name, Reason: "key column cannot be changed"}
		case kind == model.KindUser && (name == passwordField || name == "password_hash"):
			secret := utils.ToString(v)
			if secret == "" {
				return nil, &FieldError{Field: name, Reason: "must not be empty"}
			}
			hashed, err := schema.HashOnce(s.hasher, secret)
			if err != nil {
				return nil, err
			}
			values["password_hash"] = hashed
		default:
			if _, ok := columns[name]; !ok {
				return nil, &FieldError{Field: name, Reason: "unknown column"}
			}
			values[name] = v
		}
	}
	if col, ok := kind.AssetColumn(); ok {
		if v, present := values[col]; present {
			ref := refOf(v)
			if ref == nil {
				values[col] = nil
			} else if !schema.IsAssetURL(*ref) {
				return nil, &FieldError{Field: col, Reason: schema.NotAssetURL}
			}
		}
	}
	return values, nil
}

// current checks the row exists and returns its asset reference, if the kind has one.
func (s *Service) current(tx *gorm.DB, kind model.Kind, id string) (*string, error) {
	col, ok := kind.AssetColumn()
	if !ok {
		var n int64
		if err := tx.Table(kind.Table()).Where(kind.KeyColumn()+" = ?", id).Count(&n).Error; err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, ErrNotFound
		}
		return nil, nil
	}

	var refs []sql.NullString
	if err := tx.Table(kind.Table()).Where(kind.KeyColumn()+" = ?", id).Limit(1).Pluck(col, &refs).Error; err != nil {
		return nil, err
	}
	if len(refs) == 0 {
		return nil, ErrNotFound
	}
	if !refs[0].Valid || refs[0].String == "" {
		return nil, nil
	}
	return &refs[0].String, nil
}

// refOf reads an asset reference from a decoded JSON value. Empty means null.
func refOf(v any) *string {
	s := utils.ToString(v)
	if s == "" {
		return nil
	}
	return &s
}
