// Package schema turns header-keyed snapshot records into typed canonical entities.
//
// Every kind has a Profile naming the source header of each canonical field.
// Numbers, dates and asset URLs are coerced field by field under a fixed Policy,
// and user passwords are hashed exactly once: values that already carry a bcrypt
// signature pass through untouched.
//
// Map returns ErrSkipped for users without a password and a *FieldError for any
// other invalid record; both are per-record outcomes for the importer.
package schema
