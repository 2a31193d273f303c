package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOrder(t *testing.T) {
	assert.Equal(t, []Kind{KindUser, KindVendor, KindItem, KindPurchaseOrder, KindStockMutation}, LoadOrder)
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"barang", KindItem},
		{"Barang", KindItem},
		{"Mutasi Gudang", KindStockMutation},
		{"mutasi_gudang", KindStockMutation},
		{"users", KindUser},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseKind("gudang")
	assert.Error(t, err)
}

func TestAssetKinds(t *testing.T) {
	assert.Equal(t, []Kind{KindVendor, KindItem}, AssetKinds())

	col, ok := KindItem.AssetColumn()
	assert.True(t, ok)
	assert.Equal(t, "gambar_url", col)

	_, ok = KindPurchaseOrder.AssetColumn()
	assert.False(t, ok)
}

func TestEntityKinds(t *testing.T) {
	entities := []Entity{User{Email: "a@b.c"}, Vendor{Code: "V1"}, Item{Code: "B1"}, PurchaseOrder{Number: "PO1"}, StockMutation{Number: "T1"}}
	for i, e := range entities {
		assert.Equal(t, LoadOrder[i], e.Kind())
	}
	assert.Equal(t, "B1", entities[2].NaturalKey())
}

func TestNew(t *testing.T) {
	for _, k := range LoadOrder {
		e, ok := New(k)
		require.True(t, ok, k)
		assert.Equal(t, k, e.Kind())
	}
	_, ok := New(Kind("gudang"))
	assert.False(t, ok)
}
