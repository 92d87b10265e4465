// Package storage persists the emulated catalog and serves the lookups
// the wire-protocol server needs to answer introspection queries.
//
// On disk the catalog lives as one record file per catalog table
// (pg_namespace.db, pg_class.db, ...) in the same binary record format the
// rest of the system uses: a deleted flag, a little-endian length, and the
// row as JSON. In memory the catalog is an immutable Snapshot with lookup
// maps built once.
//
// Key Responsibilities:
//   - ReplaceAll: atomic truncate-and-repopulate of every catalog table
//     (temp file + rename per table, snapshot pointer swap at the end)
//   - Reloading a persisted catalog on Open, with referential-integrity
//     verification before it is served
//   - The read API: relations by namespace and kind, attributes by
//     relation in ordinal order, types by OID, settings by name,
//     namespaces, databases and object descriptions
//
// Concurrency: many readers, one writer. Readers always see either the
// previous or the new complete catalog, never a partial one, because
// snapshots are immutable and swapped wholesale. Rebuilds are rare
// administrative events; no finer locking is needed.
package storage
