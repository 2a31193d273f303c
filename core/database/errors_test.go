package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"Nil", nil, false},
		{"GormTranslated", gorm.ErrDuplicatedKey, true},
		{"WrappedGorm", fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), true},
		{"PostgresUnique", &pgconn.PgError{Code: "23505"}, true},
		{"PostgresForeignKey", &pgconn.PgError{Code: "23503"}, false},
		{"MySQLDuplicate", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}, true},
		{"MySQLOther", &mysql.MySQLError{Number: 1452}, false},
		{"SQLite", errors.New("UNIQUE constraint failed: barang.kode_barang"), true},
		{"Other", errors.New("connection reset"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUniqueViolation(tt.err))
		})
	}
}
