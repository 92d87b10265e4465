package database

import (
	"fmt"

	"pgfacade/catalog"
	"pgfacade/eventlog"
	"pgfacade/schema"
	"pgfacade/storage"
)

// provisionLogFile is the provisioning audit log inside the data directory.
const provisionLogFile = "provision.log"

// Database ties the catalog builder, the catalog store and the
// provisioning log together. The wire-protocol server holds one Database
// and reads from it on every introspection query; provisioning tooling
// calls Rebuild when the logical schema changes.
type Database struct {
	store  *storage.Store
	events *eventlog.Log
}

// New opens the catalog database in dataDir, loading any previously
// provisioned catalog.
func New(dataDir string) (*Database, error) {
	store, err := storage.Open(dataDir)
	if err != nil {
		return nil, err
	}

	events, err := eventlog.NewLog(dataDir, provisionLogFile)
	if err != nil {
		return nil, err
	}

	return &Database{store: store, events: events}, nil
}

// Rebuild derives a fresh catalog from the schema and atomically replaces
// the stored one. On any failure the previously stored catalog remains
// live, the failure is recorded in the provisioning log, and the error is
// returned so the operator can block rollout.
func (db *Database) Rebuild(s schema.Schema) error {
	c, err := catalog.Build(s)
	if err != nil {
		db.recordFailure(err)
		return fmt.Errorf("catalog rebuild failed: %w", err)
	}

	if err := db.store.ReplaceAll(c); err != nil {
		db.recordFailure(err)
		return fmt.Errorf("catalog rebuild failed: %w", err)
	}

	fingerprint, err := c.Fingerprint()
	if err != nil {
		return fmt.Errorf("catalog stored but not auditable: %w", err)
	}

	_, err = db.events.Append(eventlog.CatalogRebuilt, eventlog.RebuildPayload{
		Tables:      len(c.Relations),
		Attributes:  len(c.Attributes),
		Settings:    len(c.Settings),
		Fingerprint: fingerprint,
	})
	if err != nil {
		return fmt.Errorf("catalog stored but not auditable: %w", err)
	}

	return nil
}

// recordFailure appends a rebuild failure to the provisioning log. The
// append itself is best-effort: the rebuild error is what the caller
// needs to see.
func (db *Database) recordFailure(cause error) {
	db.events.Append(eventlog.RebuildFailed, eventlog.FailurePayload{
		Reason: cause.Error(),
	})
}

// Ready reports whether a complete catalog is loaded. A server must not
// advertise itself as ready before this returns true, since clients'
// introspection would fail or come back empty.
func (db *Database) Ready() bool {
	return db.store.Ready()
}

// Store exposes the catalog read API consumed by the wire-protocol server.
func (db *Database) Store() *storage.Store {
	return db.store
}

// History replays the provisioning log.
func (db *Database) History() ([]eventlog.Event, error) {
	return db.events.ReadAll()
}

// Close closes the provisioning log. The store itself holds no open files
// between operations.
func (db *Database) Close() error {
	return db.events.Close()
}
