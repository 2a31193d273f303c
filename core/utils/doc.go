// Package utils holds loosely typed conversion helpers shared by the schema mapper
// and the update surface. Each helper reports whether the conversion succeeded.
package utils
