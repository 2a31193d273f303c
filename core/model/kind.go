package model

import (
	"fmt"
	"strings"
)

// Kind identifies one of the canonical entity types. Its value is the store table name.
type Kind string

const (
	KindUser          Kind = "users"
	KindVendor        Kind = "vendor"
	KindItem          Kind = "barang"
	KindPurchaseOrder Kind = "pembelian"
	KindStockMutation Kind = "mutasi_gudang"
)

// LoadOrder is the order kinds are written in. Purchase orders and stock mutations
// refer to items (and purchase orders to vendors), so those load first.
var LoadOrder = []Kind{KindUser, KindVendor, KindItem, KindPurchaseOrder, KindStockMutation}

var sheetNames = map[Kind]string{
	KindUser:          "Users",
	KindVendor:        "Vendor",
	KindItem:          "Barang",
	KindPurchaseOrder: "Pembelian",
	KindStockMutation: "Mutasi Gudang",
}

// Sheet returns the source sheet a kind is extracted from.
func (k Kind) Sheet() string {
	return sheetNames[k]
}

// Table returns the store table backing the kind.
func (k Kind) Table() string {
	return string(k)
}

// KeyColumn returns the natural key column.
func (k Kind) KeyColumn() string {
	switch k {
	case KindUser:
		return "email"
	case KindVendor:
		return "kode_vendor"
	case KindItem:
		return "kode_barang"
	case KindPurchaseOrder:
		return "no_po"
	case KindStockMutation:
		return "no_transaksi"
	}
	return ""
}

// AssetColumn returns the column holding the kind's asset reference, if it has one.
func (k Kind) AssetColumn() (string, bool) {
	switch k {
	case KindItem:
		return "gambar_url", true
	case KindVendor:
		return "logo_url", true
	}
	return "", false
}

// ParseKind accepts a table name ("barang") or a sheet name ("Mutasi Gudang").
func ParseKind(s string) (Kind, error) {
	for _, k := range LoadOrder {
		if strings.EqualFold(s, string(k)) || strings.EqualFold(s, k.Sheet()) {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown entity kind %q", s)
}

// AssetKinds lists the kinds that carry an asset reference.
func AssetKinds() []Kind {
	var kinds []Kind
	for _, k := range LoadOrder {
		if _, ok := k.AssetColumn(); ok {
			kinds = append(kinds, k)
		}
	}
	return kinds
}
