package schema

import (
	"fmt"
	"time"

	"inventory-sync/core/model"
	"inventory-sync/core/snapshot"
)

// DefaultPOStatus is used when a purchase order row has no status.
const DefaultPOStatus = "Pending"

// Mapper converts snapshot records into canonical entities.
type Mapper struct {
	profiles map[model.Kind]Profile
	hasher   Hasher
	now      func() time.Time
}

// Option configures a Mapper.
type Option func(*Mapper)

// WithProfile overrides the column mapping of one kind.
func WithProfile(p Profile) Option {
	return func(m *Mapper) { m.profiles[p.Kind] = p }
}

// WithClock sets the time used for defaulted timestamps.
func WithClock(now func() time.Time) Option {
	return func(m *Mapper) { m.now = now }
}

// NewMapper creates a Mapper using the default profiles.
func NewMapper(hasher Hasher, opts ...Option) *Mapper {
	m := &Mapper{profiles: DefaultProfiles(), hasher: hasher, now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Hasher returns the secret hasher, shared with the update surface.
func (m *Mapper) Hasher() Hasher {
	return m.hasher
}

// Map converts one record into a pointer to its entity. It returns ErrSkipped for records that must not be
// loaded and a *FieldError for invalid ones.
func (m *Mapper) Map(kind model.Kind, rec snapshot.Record) (model.Entity, error) {
	profile, ok := m.profiles[kind]
	if !ok {
		return nil, fmt.Errorf("no profile for kind %q", kind)
	}
	r := &row{rec: rec, profile: profile}

	var entity model.Entity
	var err error
	switch kind {
	case model.KindUser:
		entity, err = m.user(r)
	case model.KindVendor:
		v := vendor(r)
		entity = &v
	case model.KindItem:
		i := item(r)
		entity = &i
	case model.KindPurchaseOrder:
		po := purchaseOrder(r)
		entity = &po
	case model.KindStockMutation:
		sm := stockMutation(r)
		entity = &sm
	default:
		return nil, fmt.Errorf("unsupported kind %q", kind)
	}
	if err != nil {
		return nil, err
	}
	if r.err != nil {
		return nil, r.err
	}
	return entity, nil
}

// KeyOf returns the natural key cell of a raw record, for logging records that failed to map.
func (m *Mapper) KeyOf(kind model.Kind, rec snapshot.Record) string {
	r := &row{rec: rec, profile: m.profiles[kind]}
	s, _ := r.raw(kind.KeyColumn())
	return s
}

func (m *Mapper) user(r *row) (model.Entity, error) {
	email := r.required(FieldEmail)
	secret, ok := r.secret(FieldPassword)
	if !ok {
		return nil, fmt.Errorf("user %q has no password: %w", email, ErrSkipped)
	}

	u := model.User{
		UserID:     r.optional(FieldUserID),
		Email:      email,
		FullName:   r.optional(FieldFullName),
		Role:       r.optional(FieldRole),
		Status:     r.optional(FieldStatus),
		Phone:      r.optional(FieldPhone),
		Department: r.optional(FieldDepartment),
		LastLogin:  r.dateValue(FieldLastLogin, NullDefault),
	}
	if created := r.dateValue(FieldCreatedAt, NullDefault); created != nil {
		u.CreatedAt = *created
	} else {
		u.CreatedAt = m.now()
	}
	if r.err != nil {
		return nil, r.err
	}

	hash, err := HashOnce(m.hasher, secret)
	if err != nil {
		return nil, err
	}
	u.PasswordHash = hash
	return &u, nil
}

func vendor(r *row) model.Vendor {
	return model.Vendor{
		Code:     r.required(FieldVendorCode),
		Name:     r.required(FieldVendorName),
		Contact:  r.optional(FieldContact),
		Address:  r.optional(FieldAddress),
		Email:    r.optional(FieldEmail),
		Phone:    r.optional(FieldTelephone),
		Notes:    r.optional(FieldNotes),
		LogoURL:  r.assetURL(FieldLogoURL),
		IsActive: r.boolValue(FieldActive, true),
	}
}

func item(r *row) model.Item {
	return model.Item{
		Code:              r.required(FieldItemCode),
		Name:              r.required(FieldItemName),
		Category:          r.optional(FieldCategory),
		Machine:           r.optional(FieldMachine),
		Unit:              r.optional(FieldUnit),
		UnitPrice:         derefFloat(r.floatValue(FieldUnitPrice, ZeroDefault)),
		MinStock:          derefInt(r.intValue(FieldMinStock, ZeroDefault)),
		MaxStock:          r.intValue(FieldMaxStock, NullDefault),
		WarehouseLocation: r.optional(FieldLocation),
		MainSupplier:      r.optional(FieldMainSupplier),
		Notes:             r.optional(FieldNotes),
		ImageURL:          r.assetURL(FieldImageURL),
		IsActive:          r.boolValue(FieldActive, true),
	}
}

func purchaseOrder(r *row) model.PurchaseOrder {
	po := model.PurchaseOrder{
		Number:       r.required(FieldPONumber),
		OrderDate:    r.dateValue(FieldOrderDate, NullDefault),
		VendorCode:   r.optional(FieldVendorCode),
		VendorName:   r.optional(FieldVendorName),
		ItemCode:     r.optional(FieldItemCode),
		ItemName:     r.optional(FieldItemName),
		QtyOrdered:   derefInt(r.intValue(FieldQtyOrdered, Required)),
		UnitPrice:    derefFloat(r.floatValue(FieldUnitPrice, Required)),
		ReceivedDate: r.dateValue(FieldReceivedDate, NullDefault),
		Status:       DefaultPOStatus,
		Notes:        r.optional(FieldNotes),
	}
	if status := r.optional(FieldStatus); status != nil {
		po.Status = *status
	}
	return po
}

func stockMutation(r *row) model.StockMutation {
	return model.StockMutation{
		Number:    r.required(FieldTxNumber),
		Date:      r.dateValue(FieldTxDate, NullDefault),
		Type:      r.optional(FieldTxType),
		ItemCode:  r.optional(FieldItemCode),
		ItemName:  r.optional(FieldItemName),
		Qty:       derefInt(r.intValue(FieldQty, Required)),
		Unit:      r.optional(FieldUnit),
		Notes:     r.optional(FieldNotes),
		Reference: r.optional(FieldReference),
	}
}
