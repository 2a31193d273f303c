// Package storage wraps the minio client used for S3 compatible asset storage.
//
// Client is deliberately narrow so tests can substitute mocks.Client. The asset
// store in core/assets builds on it for listing and removing objects.
package storage
