// Package importer is the idempotent loader.
//
// Kinds are loaded strictly in model.LoadOrder. Every record is inserted on its
// own: a natural-key conflict counts as a duplicate, any other store failure is
// logged with the record's key and counted as an error, and the run moves on.
// Running the same snapshot twice therefore inserts nothing the second time.
//
// After the last kind the configured refresh statement rebuilds the stock
// aggregate. A refresh failure is reported on the Result but does not fail Run.
package importer
