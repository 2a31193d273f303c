package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE vendor (kode_vendor TEXT PRIMARY KEY, nama_vendor TEXT NOT NULL, logo_url TEXT)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "vendor")
	require.NoError(t, err)
	require.Len(t, columns, 3)

	byName := make(map[string]ColumnInfo)
	for _, col := range columns {
		byName[col.Field] = col
	}

	assert.Equal(t, "text", byName["kode_vendor"].Type)
	assert.False(t, byName["kode_vendor"].Nullable)
	assert.False(t, byName["nama_vendor"].Nullable)
	assert.True(t, byName["logo_url"].Nullable)

	// PRAGMA table_info returns no rows for a missing table.
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestGetTableColumns_MySQL(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("kode_barang", "VARCHAR(50)", "NO", "PRI", nil, "").
		AddRow("gambar_url", "TEXT", "YES", "", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `barang`").WillReturnRows(rows)

	columns, err := GetTableColumns(db, "barang")
	require.NoError(t, err)
	assert.Equal(t, []ColumnInfo{
		{Field: "kode_barang", Type: "varchar(50)", Nullable: false},
		{Field: "gambar_url", Type: "text", Nullable: true},
	}, columns)
	assert.NoError(t, mock.ExpectationsWereMet())
}
