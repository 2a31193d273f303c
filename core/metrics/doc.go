// Package metrics declares the prometheus collectors shared by the importer,
// the asset lifecycle manager, the reconciliation reporter and the HTTP server.
package metrics
