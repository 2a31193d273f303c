// Package extract pulls tabular data out of the source spreadsheet and writes snapshots.
//
// Two sources are supported: the Google Sheets values API and a directory of CSV
// exports. Each grid is zipped against its header row into snapshot records.
package extract
