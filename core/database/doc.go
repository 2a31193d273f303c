// Package database owns the relational store connection.
//
// Connect opens a gorm handle for postgres, mysql or sqlite. Errors from any of
// the drivers can be classified with IsUniqueViolation, which is how the importer
// tells a natural-key conflict apart from any other write failure.
//
// Migrate applies the embedded SQL migrations through golang-migrate on postgres
// and falls back to AutoMigrate elsewhere. GetTableColumns is used by the
// integrity checks to compare the live schema with the expected one.
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
//	columns, err := database.GetTableColumns(db, "barang")
package database
