// Package inventory updates and deletes canonical entities (users, vendor,
// barang, pembelian, mutasi_gudang) and keeps object storage in step.
//
// Asset hooks run strictly after the store transaction commits: a replaced
// gambar_url or logo_url deletes the previous object, a deleted row deletes its
// object. Hook failures are reported in the result and never roll back the row.
//
// # HTTP Endpoints
//
//   - PUT /api/data/:kind/:id : Update columns (JSON object of column to value).
//   - DELETE /api/data/:kind/:id : Delete a row.
//
// ReferenceLoader feeds the orphan scan with every stored asset reference.
package inventory
