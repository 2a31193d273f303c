package model

import "time"

// Entity is a typed, validated row ready to be written to the store.
type Entity interface {
	Kind() Kind
	// NaturalKey is the business identifier used in logs and outcome reports.
	NaturalKey() string
}

// User is an application account. PasswordHash never holds a raw secret.
type User struct {
	UserID       *string    `gorm:"column:user_id;size:50" json:"userId"`
	Email        string     `gorm:"column:email;primaryKey;size:255" json:"email"`
	PasswordHash string     `gorm:"column:password_hash;size:255;not null" json:"-"`
	FullName     *string    `gorm:"column:full_name;size:255" json:"fullName"`
	Role         *string    `gorm:"column:role;size:50" json:"role"`
	Status       *string    `gorm:"column:status;size:50" json:"status"`
	Phone        *string    `gorm:"column:phone;size:50" json:"phone"`
	Department   *string    `gorm:"column:department;size:100" json:"department"`
	CreatedAt    time.Time  `gorm:"column:created_at;not null" json:"createdAt"`
	LastLogin    *time.Time `gorm:"column:last_login" json:"lastLogin"`
}

func (User) TableName() string    { return KindUser.Table() }
func (User) Kind() Kind           { return KindUser }
func (u User) NaturalKey() string { return u.Email }

// Vendor is a supplier. LogoURL is an asset reference.
type Vendor struct {
	Code     string  `gorm:"column:kode_vendor;primaryKey;size:50" json:"kodeVendor"`
	Name     string  `gorm:"column:nama_vendor;size:255;not null" json:"namaVendor"`
	Contact  *string `gorm:"column:kontak;size:255" json:"kontak"`
	Address  *string `gorm:"column:alamat" json:"alamat"`
	Email    *string `gorm:"column:email;size:255" json:"email"`
	Phone    *string `gorm:"column:telepon;size:50" json:"telepon"`
	Notes    *string `gorm:"column:keterangan" json:"keterangan"`
	LogoURL  *string `gorm:"column:logo_url" json:"logoUrl"`
	IsActive bool    `gorm:"column:is_active;not null" json:"isActive"`
}

func (Vendor) TableName() string    { return KindVendor.Table() }
func (Vendor) Kind() Kind           { return KindVendor }
func (v Vendor) NaturalKey() string { return v.Code }

// Item is a stocked article. ImageURL is an asset reference.
type Item struct {
	Code              string  `gorm:"column:kode_barang;primaryKey;size:50" json:"kodeBarang"`
	Name              string  `gorm:"column:nama_barang;size:255;not null" json:"namaBarang"`
	Category          *string `gorm:"column:kategori;size:100" json:"kategori"`
	Machine           *string `gorm:"column:mesin;size:100" json:"mesin"`
	Unit              *string `gorm:"column:satuan;size:50" json:"satuan"`
	UnitPrice         float64 `gorm:"column:harga_satuan;not null" json:"hargaSatuan"`
	MinStock          int     `gorm:"column:min_stok;not null" json:"minStok"`
	MaxStock          *int    `gorm:"column:max_stok" json:"maxStok"`
	WarehouseLocation *string `gorm:"column:lokasi_gudang;size:100" json:"lokasiGudang"`
	MainSupplier      *string `gorm:"column:supplier_utama;size:255" json:"supplierUtama"`
	Notes             *string `gorm:"column:keterangan" json:"keterangan"`
	ImageURL          *string `gorm:"column:gambar_url" json:"gambarUrl"`
	IsActive          bool    `gorm:"column:is_active;not null" json:"isActive"`
}

func (Item) TableName() string    { return KindItem.Table() }
func (Item) Kind() Kind           { return KindItem }
func (i Item) NaturalKey() string { return i.Code }

// PurchaseOrder is one ordered line. It refers to a vendor and an item by code.
type PurchaseOrder struct {
	Number       string     `gorm:"column:no_po;primaryKey;size:50" json:"noPo"`
	OrderDate    *time.Time `gorm:"column:tanggal_po" json:"tanggalPo"`
	VendorCode   *string    `gorm:"column:kode_vendor;size:50" json:"kodeVendor"`
	VendorName   *string    `gorm:"column:nama_vendor;size:255" json:"namaVendor"`
	ItemCode     *string    `gorm:"column:kode_barang;size:50" json:"kodeBarang"`
	ItemName     *string    `gorm:"column:nama_barang;size:255" json:"namaBarang"`
	QtyOrdered   int        `gorm:"column:qty_order;not null" json:"qtyOrder"`
	UnitPrice    float64    `gorm:"column:harga_satuan;not null" json:"hargaSatuan"`
	ReceivedDate *time.Time `gorm:"column:tanggal_terima" json:"tanggalTerima"`
	Status       string     `gorm:"column:status;size:50;not null" json:"status"`
	Notes        *string    `gorm:"column:keterangan" json:"keterangan"`
}

func (PurchaseOrder) TableName() string    { return KindPurchaseOrder.Table() }
func (PurchaseOrder) Kind() Kind           { return KindPurchaseOrder }
func (p PurchaseOrder) NaturalKey() string { return p.Number }

// StockMutation is a warehouse movement of one item.
type StockMutation struct {
	Number    string     `gorm:"column:no_transaksi;primaryKey;size:50" json:"noTransaksi"`
	Date      *time.Time `gorm:"column:tanggal" json:"tanggal"`
	Type      *string    `gorm:"column:jenis_transaksi;size:50" json:"jenisTransaksi"`
	ItemCode  *string    `gorm:"column:kode_barang;size:50" json:"kodeBarang"`
	ItemName  *string    `gorm:"column:nama_barang;size:255" json:"namaBarang"`
	Qty       int        `gorm:"column:qty;not null" json:"qty"`
	Unit      *string    `gorm:"column:satuan;size:50" json:"satuan"`
	Notes     *string    `gorm:"column:keterangan" json:"keterangan"`
	Reference *string    `gorm:"column:referensi;size:100" json:"referensi"`
}

func (StockMutation) TableName() string    { return KindStockMutation.Table() }
func (StockMutation) Kind() Kind           { return KindStockMutation }
func (s StockMutation) NaturalKey() string { return s.Number }

// All returns one zero value per kind, in load order, for AutoMigrate.
func All() []any {
	return []any{&User{}, &Vendor{}, &Item{}, &PurchaseOrder{}, &StockMutation{}}
}

// New returns a pointer to a zero entity of kind k.
func New(k Kind) (Entity, bool) {
	switch k {
	case KindUser:
		return &User{}, true
	case KindVendor:
		return &Vendor{}, true
	case KindItem:
		return &Item{}, true
	case KindPurchaseOrder:
		return &PurchaseOrder{}, true
	case KindStockMutation:
		return &StockMutation{}, true
	}
	return nil, false
}
