// Package integrity provides system health checks for the sync service.
//
// # Checks Provided
//
//   - Schema: every entity table (users, vendor, barang, pembelian, mutasi_gudang)
//     exists and carries every column its gorm model maps.
//   - Storage: the configured asset store (minio bucket or Cloudinary account)
//     answers with the configured credentials.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks. 503 when any fails.
//   - GET /integrity/schema : Runs the schema check.
//   - GET /integrity/storage : Pings the asset store.
package integrity
