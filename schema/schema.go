package schema

import "fmt"

// SemanticType names a logical column type that maps onto a PostgreSQL
// builtin type in the emulated catalog.
type SemanticType string

const (
	TypeText      SemanticType = "text"
	TypeTimestamp SemanticType = "timestamp"
	TypeInt4      SemanticType = "int4"
	TypeInt8      SemanticType = "int8"
	TypeNumeric   SemanticType = "numeric"
)

// Column defines a table column
type Column struct {
	Name        string       `json:"name"`
	Type        SemanticType `json:"type"`
	Description string       `json:"description,omitempty"`
}

// Table holds table metadata. Column order is declared order and is
// significant: clients see it as attribute ordinal order.
type Table struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Columns     []Column `json:"columns"`
}

// Schema is the full set of logical tables exposed through the catalog.
// Table order is significant: relation OIDs are assigned in this order.
type Schema struct {
	Tables []Table `json:"tables"`
}

// KnownTypes returns the semantic types the catalog can describe.
func KnownTypes() []SemanticType {
	return []SemanticType{TypeText, TypeTimestamp, TypeInt4, TypeInt8, TypeNumeric}
}

// Validate checks the schema for problems that must abort a catalog build:
// empty or duplicate table names, empty or duplicate column names within a
// table, and columns referencing an unknown semantic type.
func (s Schema) Validate() error {
	known := make(map[SemanticType]bool)
	for _, t := range KnownTypes() {
		known[t] = true
	}

	tableNames := make(map[string]bool)
	for _, table := range s.Tables {
		if table.Name == "" {
			return fmt.Errorf("schema contains a table with an empty name")
		}
		if tableNames[table.Name] {
			return fmt.Errorf("duplicate table name '%s'", table.Name)
		}
		tableNames[table.Name] = true

		if len(table.Columns) == 0 {
			return fmt.Errorf("table '%s' has no columns", table.Name)
		}

		colNames := make(map[string]bool)
		for _, col := range table.Columns {
			if col.Name == "" {
				return fmt.Errorf("table '%s' contains a column with an empty name", table.Name)
			}
			if colNames[col.Name] {
				return fmt.Errorf("duplicate column '%s' in table '%s'", col.Name, table.Name)
			}
			colNames[col.Name] = true

			if !known[col.Type] {
				return fmt.Errorf("column '%s.%s' references unknown type '%s'", table.Name, col.Name, col.Type)
			}
		}
	}

	return nil
}
