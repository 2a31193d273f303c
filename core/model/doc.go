// Package model defines the canonical inventory entities and their kinds.
//
// Each kind maps to one store table and one source sheet. Items and vendors
// carry an optional asset reference (an absolute image URL).
package model
