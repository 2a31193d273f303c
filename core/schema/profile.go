package schema

import "inventory-sync/core/model"

// Profile maps canonical field names (store columns) to source header names for one kind.
type Profile struct {
	Kind    model.Kind
	Columns map[string]string
}

// Source returns the header name for a canonical field, defaulting to the field itself.
func (p Profile) Source(field string) string {
	if col, ok := p.Columns[field]; ok {
		return col
	}
	return field
}

// Canonical field names.
const (
	FieldUserID       = "user_id"
	FieldEmail        = "email"
	FieldPassword     = "password_hash"
	FieldFullName     = "full_name"
	FieldRole         = "role"
	FieldStatus       = "status"
	FieldPhone        = "phone"
	FieldDepartment   = "department"
	FieldCreatedAt    = "created_at"
	FieldLastLogin    = "last_login"
	FieldItemCode     = "kode_barang"
	FieldItemName     = "nama_barang"
	FieldCategory     = "kategori"
	FieldMachine      = "mesin"
	FieldUnit         = "satuan"
	FieldUnitPrice    = "harga_satuan"
	FieldMinStock     = "min_stok"
	FieldMaxStock     = "max_stok"
	FieldLocation     = "lokasi_gudang"
	FieldMainSupplier = "supplier_utama"
	FieldNotes        = "keterangan"
	FieldImageURL     = "gambar_url"
	FieldVendorCode   = "kode_vendor"
	FieldVendorName   = "nama_vendor"
	FieldContact      = "kontak"
	FieldAddress      = "alamat"
	FieldTelephone    = "telepon"
	FieldLogoURL      = "logo_url"
	FieldActive       = "is_active"
	FieldPONumber     = "no_po"
	FieldOrderDate    = "tanggal_po"
	FieldQtyOrdered   = "qty_order"
	FieldReceivedDate = "tanggal_terima"
	FieldTxNumber     = "no_transaksi"
	FieldTxDate       = "tanggal"
	FieldTxType       = "jenis_transaksi"
	FieldQty          = "qty"
	FieldReference    = "referensi"
)

// UserProfile returns the column mapping of the Users sheet.
func UserProfile() Profile {
	return Profile{
		Kind: model.KindUser,
		Columns: map[string]string{
			FieldUserID:     "User ID",
			FieldEmail:      "Email",
			FieldPassword:   "Password",
			FieldFullName:   "Full Name",
			FieldRole:       "Role",
			FieldStatus:     "Status",
			FieldPhone:      "Phone",
			FieldDepartment: "Department",
			FieldCreatedAt:  "Created Date",
			FieldLastLogin:  "Last Login",
		},
	}
}

// VendorProfile returns the column mapping of the Vendor sheet.
func VendorProfile() Profile {
	return Profile{
		Kind: model.KindVendor,
		Columns: map[string]string{
			FieldVendorCode: "Kode Vendor",
			FieldVendorName: "Nama Vendor",
			FieldContact:    "Kontak",
			FieldAddress:    "Alamat",
			FieldEmail:      "Email",
			FieldTelephone:  "Telepon",
			FieldNotes:      "Keterangan",
			FieldLogoURL:    "Logo URL",
			FieldActive:     "Aktif",
		},
	}
}

// ItemProfile returns the column mapping of the Barang sheet.
func ItemProfile() Profile {
	return Profile{
		Kind: model.KindItem,
		Columns: map[string]string{
			FieldItemCode:     "Kode Barang",
			FieldItemName:     "Nama Barang",
			FieldCategory:     "Kategori",
			FieldMachine:      "Mesin",
			FieldUnit:         "Satuan",
			FieldUnitPrice:    "Harga Satuan",
			FieldMinStock:     "Min Stok",
			FieldMaxStock:     "Max Stok",
			FieldLocation:     "Lokasi Gudang",
			FieldMainSupplier: "Supplier Utama",
			FieldNotes:        "Keterangan",
			FieldImageURL:     "Gambar URL",
			FieldActive:       "Aktif",
		},
	}
}

// PurchaseOrderProfile returns the column mapping of the Pembelian sheet.
func PurchaseOrderProfile() Profile {
	return Profile{
		Kind: model.KindPurchaseOrder,
		Columns: map[string]string{
			FieldPONumber:     "No PO",
			FieldOrderDate:    "Tanggal PO",
			FieldVendorCode:   "Kode Vendor",
			FieldVendorName:   "Nama Vendor",
			FieldItemCode:     "Kode Barang",
			FieldItemName:     "Nama Barang",
			FieldQtyOrdered:   "Qty Order",
			FieldUnitPrice:    "Harga Satuan",
			FieldReceivedDate: "Tanggal Terima",
			FieldStatus:       "Status",
			FieldNotes:        "Keterangan",
		},
	}
}

// StockMutationProfile returns the column mapping of the Mutasi Gudang sheet.
func StockMutationProfile() Profile {
	return Profile{
		Kind: model.KindStockMutation,
		Columns: map[string]string{
			FieldTxNumber:  "No Transaksi",
			FieldTxDate:    "Tanggal",
			FieldTxType:    "Jenis Transaksi",
			FieldItemCode:  "Kode Barang",
			FieldItemName:  "Nama Barang",
			FieldQty:       "Qty",
			FieldUnit:      "Satuan",
			FieldNotes:     "Keterangan",
			FieldReference: "Referensi",
		},
	}
}

// DefaultProfiles returns the profiles of every kind.
func DefaultProfiles() map[model.Kind]Profile {
	return map[model.Kind]Profile{
		model.KindUser:          UserProfile(),
		model.KindVendor:        VendorProfile(),
		model.KindItem:          ItemProfile(),
		model.KindPurchaseOrder: PurchaseOrderProfile(),
		model.KindStockMutation: StockMutationProfile(),
	}
}
