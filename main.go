// Catalog provisioning tool.
//
// Builds the emulated PostgreSQL catalog for the built-in process-data
// schema and stores it in the data directory the wire-protocol server
// reads from. Run it at deployment and again whenever the logical table
// list changes; a non-zero exit means the catalog was NOT replaced and
// the server must not be advertised as ready.

package main

import (
	"flag"
	"fmt"
	"log"

	"pgfacade/catalog"
	"pgfacade/database"
	"pgfacade/schema"
)

func main() {
	dataDir := flag.String("data", "./data", "catalog data directory")
	flag.Parse()

	db, err := database.New(*dataDir)
	if err != nil {
		log.Fatalf("failed to open catalog database: %v", err)
	}
	defer db.Close()

	if err := db.Rebuild(schema.Default()); err != nil {
		log.Fatalf("provisioning failed: %v", err)
	}

	store := db.Store()

	relations, err := store.RelationsInNamespace(catalog.NamespacePublicOID, catalog.RelKindTable)
	if err != nil {
		log.Fatalf("failed to read back catalog: %v", err)
	}

	fmt.Printf("Provisioned catalog in %s\n", *dataDir)
	fmt.Println("Tables in pg_class:")
	for _, rel := range relations {
		line := fmt.Sprintf("  - %s (oid %d, %d columns)", rel.Name, rel.OID, rel.AttributeCount)
		if d, err := store.DescriptionFor(rel.OID, catalog.PgClassOID, 0); err == nil {
			line += ": " + d.Text
		}
		fmt.Println(line)
	}

	version, err := store.Setting("server_version")
	if err != nil {
		log.Fatalf("failed to read server_version: %v", err)
	}
	fmt.Printf("Serving as PostgreSQL %s\n", version.Value)
}
