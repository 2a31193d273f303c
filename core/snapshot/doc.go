// Package snapshot reads and writes the point-in-time copies of source sheets.
//
// Each sheet is stored as a JSON array of objects keyed by header, with empty
// cells as null. A combined document maps sheet names to the same arrays.
// Extraction replaces the files; the importer reads them once per run.
package snapshot
