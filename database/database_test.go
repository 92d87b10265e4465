package database

import (
	"testing"

	"pgfacade/catalog"
	"pgfacade/eventlog"
	"pgfacade/schema"
)

func twoTableSchema() schema.Schema {
	return schema.Schema{Tables: []schema.Table{
		{Name: "t1", Description: "first table", Columns: []schema.Column{
			{Name: "a", Type: schema.TypeText},
			{Name: "b", Type: schema.TypeInt4},
		}},
		{Name: "t2", Columns: []schema.Column{
			{Name: "x", Type: schema.TypeInt8},
			{Name: "y", Type: schema.TypeTimestamp},
			{Name: "z", Type: schema.TypeNumeric},
		}},
	}}
}

func TestProvisionAndIntrospect(t *testing.T) {
	db, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if db.Ready() {
		t.Error("database ready before any catalog was provisioned")
	}

	if err := db.Rebuild(twoTableSchema()); err != nil {
		t.Fatalf("rebuild failed: %v", err)
	}
	if !db.Ready() {
		t.Fatal("database not ready after successful rebuild")
	}

	store := db.Store()

	rels, err := store.RelationsInNamespace(catalog.NamespacePublicOID, catalog.RelKindTable)
	if err != nil {
		t.Fatalf("introspection failed: %v", err)
	}
	if len(rels) != 2 || rels[0].Name != "t1" || rels[1].Name != "t2" {
		t.Fatalf("unexpected relations: %+v", rels)
	}

	attrs, err := store.AttributesOf(rels[0].OID)
	if err != nil {
		t.Fatalf("introspection failed: %v", err)
	}
	if len(attrs) != 2 || attrs[0].Num != 1 || attrs[1].Num != 2 {
		t.Errorf("unexpected t1 attributes: %+v", attrs)
	}

	version, err := store.Setting("server_version")
	if err != nil {
		t.Fatalf("settings lookup failed: %v", err)
	}
	if version.Value != "15.0" {
		t.Errorf("server_version = %q, want 15.0", version.Value)
	}

	desc, err := store.DescriptionFor(rels[0].OID, catalog.PgClassOID, 0)
	if err != nil {
		t.Fatalf("description lookup failed: %v", err)
	}
	if desc.Text != "first table" {
		t.Errorf("unexpected table description: %q", desc.Text)
	}
}

func TestFailedRebuildKeepsOldCatalog(t *testing.T) {
	db, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Rebuild(twoTableSchema()); err != nil {
		t.Fatalf("rebuild failed: %v", err)
	}

	bad := schema.Schema{Tables: []schema.Table{
		{Name: "broken", Columns: []schema.Column{{Name: "a", Type: "uuid"}}},
	}}
	if err := db.Rebuild(bad); err == nil {
		t.Fatal("rebuild with unknown type succeeded")
	}

	// The previous catalog must still be served in full.
	if !db.Ready() {
		t.Fatal("database lost readiness after failed rebuild")
	}
	rels, err := db.Store().RelationsInNamespace(catalog.NamespacePublicOID, catalog.RelKindTable)
	if err != nil {
		t.Fatalf("introspection failed: %v", err)
	}
	if len(rels) != 2 {
		t.Errorf("previous catalog damaged: %+v", rels)
	}

	// Both the success and the failure are on the audit trail.
	history, err := db.History()
	if err != nil {
		t.Fatalf("history replay failed: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 provisioning events, got %d", len(history))
	}
	if history[0].Type != eventlog.CatalogRebuilt || history[1].Type != eventlog.RebuildFailed {
		t.Errorf("unexpected event sequence: %s, %s", history[0].Type, history[1].Type)
	}
}

func TestCatalogSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	db, err := New(dir)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if err := db.Rebuild(schema.Default()); err != nil {
		t.Fatalf("rebuild failed: %v", err)
	}
	db.Close()

	reopened, err := New(dir)
	if err != nil {
		t.Fatalf("failed to reopen database: %v", err)
	}
	defer reopened.Close()

	if !reopened.Ready() {
		t.Fatal("catalog not loaded on reopen")
	}

	rel, err := reopened.Store().RelationByName("tagvalues")
	if err != nil {
		t.Fatalf("lookup after reopen failed: %v", err)
	}
	if rel.OID < catalog.ReservedOIDBoundary {
		t.Errorf("tagvalues oid %d is inside the reserved range", rel.OID)
	}

	t.Log("✓ catalog survives reopen")
}

func TestRebuildIsIdempotent(t *testing.T) {
	db, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Rebuild(schema.Default()); err != nil {
		t.Fatalf("rebuild failed: %v", err)
	}
	first, err := db.Store().Catalog()
	if err != nil {
		t.Fatalf("catalog read failed: %v", err)
	}
	fp1, err := first.Fingerprint()
	if err != nil {
		t.Fatalf("fingerprint failed: %v", err)
	}

	if err := db.Rebuild(schema.Default()); err != nil {
		t.Fatalf("second rebuild failed: %v", err)
	}
	second, err := db.Store().Catalog()
	if err != nil {
		t.Fatalf("catalog read failed: %v", err)
	}
	fp2, err := second.Fingerprint()
	if err != nil {
		t.Fatalf("fingerprint failed: %v", err)
	}

	if fp1 != fp2 {
		t.Errorf("rebuild is not idempotent: %s vs %s", fp1, fp2)
	}
}
