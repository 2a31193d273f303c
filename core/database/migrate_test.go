package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type widget struct {
	Code string `gorm:"column:code;primaryKey"`
	Name string `gorm:"column:name"`
}

func TestMigrate_AutoMigrate(t *testing.T) {
	cfg := Config{Driver: DriverSQLite, Name: ":memory:"}
	db, err := Connect(cfg)
	require.NoError(t, err)

	require.NoError(t, Migrate(cfg, db, zap.NewNop(), &widget{}))
	assert.True(t, db.Migrator().HasTable(&widget{}))

	// Running again is a no-op.
	assert.NoError(t, Migrate(cfg, db, zap.NewNop(), &widget{}))
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrationsFS.ReadDir("migrations")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(entries), 2)
}
