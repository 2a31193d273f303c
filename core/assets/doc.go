// Package assets keeps object storage in step with the asset references held in the store.
//
// Identifier derives an object key from a public URL. Store abstracts the object
// service (Cloudinary or an S3 compatible bucket through minio). Manager issues
// the deletions: on entity removal, on reference replacement and on direct
// request by key or URL. Every attempt ends as deleted, not_found or failed.
package assets
