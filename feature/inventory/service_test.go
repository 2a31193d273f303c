package inventory

import (
	"context"
	"errors"
	"testing"

	"inventory-sync/core/assets"
	"inventory-sync/core/assets/mocks"
	"inventory-sync/core/database"
	"inventory-sync/core/model"
	"inventory-sync/core/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	urlA    = "https://res.cloudinary.com/demo/image/upload/v1700000000/trk-inventory/barang/a.jpg"
	urlB    = "https://res.cloudinary.com/demo/image/upload/v1700000001/trk-inventory/barang/b.jpg"
	urlLogo = "https://res.cloudinary.com/demo/image/upload/trk-inventory/vendor/logo.png"
)

func ptr(s string) *string { return &s }

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.All()...))

	require.NoError(t, db.Create(&model.User{Email: "admin@example.com", PasswordHash: "$2a$04$seeded", Role: ptr("Admin")}).Error)
	require.NoError(t, db.Create(&model.Vendor{Code: "V-01", Name: "PT Sinar Teknik", LogoURL: ptr(urlLogo), IsActive: true}).Error)
	require.NoError(t, db.Create(&model.Vendor{Code: "V-02", Name: "CV Maju", LogoURL: ptr("")}).Error)
	require.NoError(t, db.Create(&model.Item{Code: "B-001", Name: "Bearing 6204", UnitPrice: 45000, ImageURL: ptr(urlA), IsActive: true}).Error)
	require.NoError(t, db.Create(&model.Item{Code: "B-002", Name: "V-Belt A42", UnitPrice: 38000}).Error)
	require.NoError(t, db.Create(&model.PurchaseOrder{Number: "PO-001", QtyOrdered: 10, UnitPrice: 45000, Status: "Pending"}).Error)
	return db
}

func newService(t *testing.T) (*Service, *mocks.Store, *gorm.DB) {
	db := setupDB(t)
	store := new(mocks.Store)
	mgr := assets.NewManager(store, assets.Identifier{Marker: "cloudinary.com", Delimiter: "/upload/"}, zap.NewNop())
	return NewService(db, mgr, schema.NewBcryptHasher(bcrypt.MinCost), zap.NewNop()), store, db
}

func imageOf(t *testing.T, db *gorm.DB, code string) *string {
	t.Helper()
	var item model.Item
	require.NoError(t, db.Where("kode_barang = ?", code).Take(&item).Error)
	return item.ImageURL
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("ReplaceImageDeletesOldObject", func(t *testing.T) {
		svc, store, db := newService(t)
		store.On("Remove", mock.Anything, "trk-inventory/barang/a").Return(nil).Once()

		res, err := svc.Update(ctx, model.KindItem, "B-001", map[string]any{"gambar_url": urlB, "harga_satuan": 47000.0})
		require.NoError(t, err)
		require.NotNil(t, res.Asset)
		assert.Equal(t, assets.OutcomeDeleted, res.Asset.Outcome)
		assert.Equal(t, urlB, *imageOf(t, db, "B-001"))
		store.AssertExpectations(t)
	})

	t.Run("UnrelatedFieldNoDeletion", func(t *testing.T) {
		svc, store, db := newService(t)

		res, err := svc.Update(ctx, model.KindItem, "B-001", map[string]any{"nama_barang": "Bearing 6204 ZZ"})
		require.NoError(t, err)
		assert.Nil(t, res.Asset)
		assert.Equal(t, urlA, *imageOf(t, db, "B-001"))
		store.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
	})

	t.Run("ClearedImageKeepsObject", func(t *testing.T) {
		svc, store, db := newService(t)

		res, err := svc.Update(ctx, model.KindItem, "B-001", map[string]any{"gambar_url": ""})
		require.NoError(t, err)
		assert.Nil(t, res.Asset)
		assert.Nil(t, imageOf(t, db, "B-001"))
		store.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
	})

	t.Run("RejectsNonURLImage", func(t *testing.T) {
		svc, store, db := newService(t)

		for _, ref := range []string{"not a url", "/img/b.jpg", "ftp://host/b.jpg"} {
			_, err := svc.Update(ctx, model.KindItem, "B-001", map[string]any{"gambar_url": ref})
			var fieldErr *FieldError
			require.ErrorAs(t, err, &fieldErr, ref)
			assert.Equal(t, "gambar_url", fieldErr.Field)
		}
		assert.Equal(t, urlA, *imageOf(t, db, "B-001"))
		store.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
	})

	t.Run("StorageFailureKeepsUpdate", func(t *testing.T) {
		svc, store, db := newService(t)
		store.On("Remove", mock.Anything, "trk-inventory/barang/a").Return(errors.New("timeout")).Once()

		res, err := svc.Update(ctx, model.KindItem, "B-001", map[string]any{"gambar_url": urlB})
		require.NoError(t, err)
		assert.Equal(t, assets.OutcomeFailed, res.Asset.Outcome)
		assert.Equal(t, urlB, *imageOf(t, db, "B-001"))
	})

	t.Run("NotFound", func(t *testing.T) {
		svc, store, _ := newService(t)
		_, err := svc.Update(ctx, model.KindItem, "B-404", map[string]any{"gambar_url": urlB})
		assert.ErrorIs(t, err, ErrNotFound)
		store.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
	})

	t.Run("RejectsKeyAndUnknownColumns", func(t *testing.T) {
		svc, _, _ := newService(t)
		var fieldErr *FieldError

		_, err := svc.Update(ctx, model.KindItem, "B-001", map[string]any{"kode_barang": "B-999"})
		assert.ErrorAs(t, err, &fieldErr)
		_, err = svc.Update(ctx, model.KindItem, "B-001", map[string]any{"warna": "merah"})
		assert.ErrorAs(t, err, &fieldErr)
		_, err = svc.Update(ctx, model.KindItem, "B-001", map[string]any{})
		assert.ErrorAs(t, err, &fieldErr)
	})

	t.Run("UnknownKind", func(t *testing.T) {
		svc, _, _ := newService(t)
		_, err := svc.Update(ctx, model.Kind("gudang"), "X", map[string]any{"a": 1})
		assert.ErrorIs(t, err, ErrUnknownKind)
	})

	t.Run("UserPasswordIsHashed", func(t *testing.T) {
		svc, _, db := newService(t)

		_, err := svc.Update(ctx, model.KindUser, "admin@example.com", map[string]any{"password": "rahasia"})
		require.NoError(t, err)

		var u model.User
		require.NoError(t, db.Where("email = ?", "admin@example.com").Take(&u).Error)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("rahasia")))
	})

	t.Run("PurchaseOrderHasNoAssetHook", func(t *testing.T) {
		svc, store, _ := newService(t)
		res, err := svc.Update(ctx, model.KindPurchaseOrder, "PO-001", map[string]any{"status": "Received"})
		require.NoError(t, err)
		assert.Nil(t, res.Asset)
		store.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("DeletesRowThenObject", func(t *testing.T) {
		svc, store, db := newService(t)
		store.On("Remove", mock.Anything, "trk-inventory/barang/a").Return(assets.ErrNotFound).Once()

		res, err := svc.Delete(ctx, model.KindItem, "B-001")
		require.NoError(t, err)
		assert.Equal(t, assets.OutcomeNotFound, res.Asset.Outcome)

		var n int64
		require.NoError(t, db.Model(&model.Item{}).Where("kode_barang = ?", "B-001").Count(&n).Error)
		assert.Zero(t, n)
	})

	t.Run("NoReferenceNoCall", func(t *testing.T) {
		svc, store, _ := newService(t)
		res, err := svc.Delete(ctx, model.KindItem, "B-002")
		require.NoError(t, err)
		assert.Nil(t, res.Asset)
		store.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
	})

	t.Run("VendorLogo", func(t *testing.T) {
		svc, store, _ := newService(t)
		store.On("Remove", mock.Anything, "trk-inventory/vendor/logo").Return(nil).Once()
		res, err := svc.Delete(ctx, model.KindVendor, "V-01")
		require.NoError(t, err)
		assert.Equal(t, assets.OutcomeDeleted, res.Asset.Outcome)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc, store, _ := newService(t)
		_, err := svc.Delete(ctx, model.KindPurchaseOrder, "PO-404")
		assert.ErrorIs(t, err, ErrNotFound)
		store.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
	})
}

type countingCache struct {
	invalidated int
}

func (c *countingCache) Invalidate() { c.invalidated++ }

func TestService_InvalidatesScanCache(t *testing.T) {
	ctx := context.Background()

	t.Run("AfterReplace", func(t *testing.T) {
		svc, store, _ := newService(t)
		cache := &countingCache{}
		svc.WithScanCache(cache)
		store.On("Remove", mock.Anything, "trk-inventory/barang/a").Return(nil).Once()

		_, err := svc.Update(ctx, model.KindItem, "B-001", map[string]any{"gambar_url": urlB})
		require.NoError(t, err)
		assert.Equal(t, 1, cache.invalidated)
	})

	t.Run("AfterRemove", func(t *testing.T) {
		svc, store, _ := newService(t)
		cache := &countingCache{}
		svc.WithScanCache(cache)
		store.On("Remove", mock.Anything, "trk-inventory/vendor/logo").Return(nil).Once()

		_, err := svc.Delete(ctx, model.KindVendor, "V-01")
		require.NoError(t, err)
		assert.Equal(t, 1, cache.invalidated)
	})

	t.Run("KeptWhenNothingDeleted", func(t *testing.T) {
		svc, store, _ := newService(t)
		cache := &countingCache{}
		svc.WithScanCache(cache)
		store.On("Remove", mock.Anything, "trk-inventory/barang/a").Return(errors.New("timeout")).Once()

		_, err := svc.Update(ctx, model.KindItem, "B-001", map[string]any{"gambar_url": urlB})
		require.NoError(t, err)
		_, err = svc.Delete(ctx, model.KindItem, "B-002")
		require.NoError(t, err)
		assert.Zero(t, cache.invalidated)
	})
}

func TestService_SetPassword(t *testing.T) {
	ctx := context.Background()
	svc, _, db := newService(t)

	require.NoError(t, svc.SetPassword(ctx, "admin@example.com", "baru123"))
	var u model.User
	require.NoError(t, db.Where("email = ?", "admin@example.com").Take(&u).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("baru123")))

	assert.ErrorIs(t, svc.SetPassword(ctx, "ghost@example.com", "x"), ErrNotFound)
	var fieldErr *FieldError
	assert.ErrorAs(t, svc.SetPassword(ctx, "admin@example.com", ""), &fieldErr)
}

func TestReferenceLoader(t *testing.T) {
	db := setupDB(t)
	refs, err := NewReferenceLoader(db).AssetReferences(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{urlA, urlLogo}, refs)
}
