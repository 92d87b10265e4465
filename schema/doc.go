// Package schema describes the logical tables the server exposes to
// PostgreSQL clients.
//
// A Schema is the input to the catalog builder: an ordered list of tables,
// each with an ordered list of columns typed by a small set of semantic
// types (text, timestamp, int4, int8, numeric). Order matters in both
// lists — relation OIDs follow table order and attribute ordinals follow
// column order, so a given Schema always produces the same catalog.
//
// Key Responsibilities:
//   - Defining table and column records with human-readable descriptions
//   - Naming the supported semantic types
//   - Validating a schema before a catalog build (duplicate names,
//     unknown types)
//   - Providing the built-in process-data schema via Default()
//
// Usage Example:
//
//	s := schema.Default()
//	if err := s.Validate(); err != nil {
//		log.Fatal(err)
//	}
//
// Package schema holds plain data only; turning it into pg_catalog rows is
// the catalog package's job.
package schema
