// Package images is the HTTP surface over object storage.
//
// # HTTP Endpoints
//
//   - DELETE /api/images/:key : Delete by URL encoded key. 404 when already absent.
//   - POST /api/images/delete-by-url : Derive the key from {"url": ...} and delete.
//   - GET /api/images/list : List objects under ?prefix (admin).
//   - GET /api/images/cleanup-check : Orphan report for ?prefix (admin). Report only.
package images
