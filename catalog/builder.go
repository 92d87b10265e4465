package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"pgfacade/schema"
)

// builtinTypes maps each semantic type onto its PostgreSQL builtin type
// row. The OIDs are the real builtin OIDs — clients branch on them to pick
// value decoders, so they must match PostgreSQL exactly.
var builtinTypes = map[schema.SemanticType]Type{
	schema.TypeText:      {OID: 25, Name: "text", ByteLength: -1, Category: "S", Alignment: "i"},
	schema.TypeTimestamp: {OID: 1114, Name: "timestamp", ByteLength: 8, Category: "D", Alignment: "d"},
	schema.TypeInt4:      {OID: 23, Name: "int4", ByteLength: 4, Category: "N", Alignment: "i"},
	schema.TypeInt8:      {OID: 20, Name: "int8", ByteLength: 8, Category: "N", Alignment: "d"},
	schema.TypeNumeric:   {OID: 1700, Name: "numeric", ByteLength: -1, Category: "N", Alignment: "i"},
}

// Build derives a complete catalog from a logical schema.
//
// The result is a pure function of the input: relation OIDs are assigned in
// table order starting at RelationOIDBase and attribute ordinals follow
// column order, so building the same schema twice yields byte-identical
// catalogs. Any validation failure aborts before a single row is emitted.
func Build(s schema.Schema) (*Catalog, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("catalog build rejected: %w", err)
	}

	c := &Catalog{
		Namespaces: []Namespace{
			{OID: NamespacePgCatalogOID, Name: "pg_catalog", Owner: 11},
			{OID: NamespacePublicOID, Name: "public", Owner: 10},
		},
	}

	// Type rows in a fixed order so rebuilds are byte-identical.
	for _, st := range schema.KnownTypes() {
		t := builtinTypes[st]
		t.NamespaceOID = NamespacePgCatalogOID
		t.ByValue = t.ByteLength > 0 && t.ByteLength <= 8
		t.TypeClass = "b"
		t.Storage = "p"
		c.Types = append(c.Types, t)
	}

	oid := uint32(RelationOIDBase)
	for _, table := range s.Tables {
		rel := Relation{
			OID:            oid,
			Name:           table.Name,
			NamespaceOID:   NamespacePublicOID,
			Kind:           RelKindTable,
			AttributeCount: len(table.Columns),
		}
		c.Relations = append(c.Relations, rel)

		if table.Description != "" {
			c.Descriptions = append(c.Descriptions, Description{
				ObjectOID: oid,
				ClassOID:  PgClassOID,
				Text:      table.Description,
			})
		}

		for i, col := range table.Columns {
			t, ok := builtinTypes[col.Type]
			if !ok {
				// Validate already rejects this; kept as a hard stop in case
				// the type table and schema validation ever drift apart.
				return nil, fmt.Errorf("column '%s.%s': no builtin type for '%s'", table.Name, col.Name, col.Type)
			}

			c.Attributes = append(c.Attributes, Attribute{
				RelationOID: oid,
				Name:        col.Name,
				TypeOID:     t.OID,
				ByteLength:  t.ByteLength,
				Num:         i + 1,
			})

			if col.Description != "" {
				c.Descriptions = append(c.Descriptions, Description{
					ObjectOID: oid,
					ClassOID:  PgClassOID,
					SubID:     i + 1,
					Text:      col.Description,
				})
			}
		}

		oid++
	}

	c.Settings = fixedSettings()
	c.Databases = []Database{{
		OID:       DatabaseOID,
		Name:      "postgres",
		Owner:     10,
		Encoding:  6, // UTF8
		Collate:   "en_US.UTF-8",
		CType:     "en_US.UTF-8",
		AllowConn: true,
		ConnLimit: -1,
	}}

	return c, nil
}

// Fingerprint returns a hex SHA-256 over the catalog's JSON encoding.
// Two catalogs built from the same schema always fingerprint identically.
func (c *Catalog) Fingerprint() (string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to fingerprint catalog: %v", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
