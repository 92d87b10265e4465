// Package catalog models an emulated PostgreSQL system catalog and builds
// it from a logical schema.
//
// The row types mirror the pg_catalog tables unmodified clients introspect
// at connect time: pg_namespace, pg_type, pg_class, pg_attribute,
// pg_settings, pg_description and pg_database. They are plain data records;
// all behavior lives in the builder and in the storage package that serves
// them.
//
// Key Responsibilities:
//   - Defining the catalog row shapes with their pg_catalog column names
//   - Pinning the external contract values: builtin type OIDs (25, 1114,
//     23, 20, 1700), the reserved-OID boundary (16384), the fixed
//     namespaces (pg_catalog 11, public 2200) and the served pg_settings
//     rows
//   - Build(): deterministically deriving the full row set from a
//     schema.Schema, assigning relation OIDs from 20000 in table order and
//     dense 1-based attribute ordinals in column order
//   - Fingerprinting a catalog so rebuilds can be audited
//
// Build is idempotent: the same schema always produces byte-identical rows.
// Any schema problem (duplicate table, unknown semantic type) aborts the
// build before anything is emitted, so a previously stored catalog is never
// half-replaced.
package catalog
