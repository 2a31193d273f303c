// Package reconcile reports storage objects that no entity references any more.
//
// Scan reads the object listing and the store's asset references concurrently
// and returns their set difference. The result is a point-in-time report for an
// operator; the package never deletes anything.
//
// Cache sits in front of Scan for the HTTP surface so that a burst of
// cleanup-check requests triggers a single scan.
package reconcile
