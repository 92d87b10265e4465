// Package database is the top-level facade over the catalog subsystem.
//
// It wires the catalog builder, the durable catalog store and the
// provisioning event log into one handle. Provisioning tooling calls
// Rebuild (build, atomic replace, audit event); the wire-protocol server
// calls Ready before advertising itself and uses Store for every
// introspection lookup.
//
// Failure policy: a rebuild that cannot be built or stored leaves the
// previous catalog authoritative, appends a REBUILD_FAILED event, and
// returns the error. Authentication is deliberately not wired through
// here — the auth package is pure computation the server calls directly.
package database
