package catalog

// Fixed OIDs shared with real PostgreSQL installations. Client libraries
// hard-code these, so they are external contract values.
const (
	// Namespace OIDs
	NamespacePgCatalogOID = 11
	NamespacePublicOID    = 2200

	// pg_class's own OID, used as the classoid of table and column comments
	PgClassOID = 1259

	// OIDs below this boundary are reserved for PostgreSQL system objects.
	ReservedOIDBoundary = 16384

	// First OID handed to an exposed logical table. Kept well clear of the
	// reserved range so clients that also query real catalog objects never
	// see a collision.
	RelationOIDBase = 20000

	// OID of the single database row served to clients
	DatabaseOID = 13769
)

// RelKindTable marks an ordinary table in pg_class.relkind.
const RelKindTable = "r"

// Namespace is a row of pg_namespace. Exactly two are ever emitted:
// pg_catalog (11) and public (2200).
type Namespace struct {
	OID   uint32 `json:"oid"`
	Name  string `json:"nspname"`
	Owner uint32 `json:"nspowner"`
}

// Type is a row of pg_type describing one supported builtin type.
// ByteLength is -1 for variable-width types.
type Type struct {
	OID          uint32 `json:"oid"`
	Name         string `json:"typname"`
	NamespaceOID uint32 `json:"typnamespace"`
	ByteLength   int    `json:"typlen"`
	ByValue      bool   `json:"typbyval"`
	TypeClass    string `json:"typtype"`
	Category     string `json:"typcategory"`
	Alignment    string `json:"typalign"`
	Storage      string `json:"typstorage"`
}

// FixedWidth reports whether the type has a fixed byte length.
func (t Type) FixedWidth() bool {
	return t.ByteLength > 0
}

// Relation is a row of pg_class describing one exposed logical table.
type Relation struct {
	OID            uint32 `json:"oid"`
	Name           string `json:"relname"`
	NamespaceOID   uint32 `json:"relnamespace"`
	Kind           string `json:"relkind"`
	AttributeCount int    `json:"relnatts"`
	HasIndex       bool   `json:"relhasindex"`
	IsShared       bool   `json:"relisshared"`
}

// Attribute is a row of pg_attribute. (RelationOID, Num) is the row
// identity; Num is 1-based and dense per relation, which clients rely on
// for column ordering.
type Attribute struct {
	RelationOID uint32 `json:"attrelid"`
	Name        string `json:"attname"`
	TypeOID     uint32 `json:"atttypid"`
	ByteLength  int    `json:"attlen"`
	Num         int    `json:"attnum"`
	NotNull     bool   `json:"attnotnull"`
	IsDropped   bool   `json:"attisdropped"`
}

// Setting is a row of pg_settings: one fixed server parameter clients
// inspect or negotiate at connect time. Immutable for the process lifetime.
type Setting struct {
	Name      string `json:"name"`
	Value     string `json:"setting"`
	Unit      string `json:"unit"`
	Category  string `json:"category"`
	ShortDesc string `json:"short_desc"`
	ExtraDesc string `json:"extra_desc"`
	Context   string `json:"context"`
	VarType   string `json:"vartype"`
	Source    string `json:"source"`
	MinVal    string `json:"min_val"`
	MaxVal    string `json:"max_val"`
	EnumVals  string `json:"enumvals"`
	BootVal   string `json:"boot_val"`
	ResetVal  string `json:"reset_val"`
}

// Description is a row of pg_description: a human-readable comment on a
// table (SubID 0) or on one of its columns (SubID = attribute ordinal).
type Description struct {
	ObjectOID uint32 `json:"objoid"`
	ClassOID  uint32 `json:"classoid"`
	SubID     int    `json:"objsubid"`
	Text      string `json:"description"`
}

// Database is a row of pg_database. A single fixed row is served so that
// joins from pg_stat_activity resolve.
type Database struct {
	OID        uint32 `json:"oid"`
	Name       string `json:"datname"`
	Owner      uint32 `json:"datdba"`
	Encoding   int    `json:"encoding"`
	Collate    string `json:"datcollate"`
	CType      string `json:"datctype"`
	IsTemplate bool   `json:"datistemplate"`
	AllowConn  bool   `json:"datallowconn"`
	ConnLimit  int    `json:"datconnlimit"`
}

// Catalog is the complete emulated catalog: every row the store persists
// and the wire-protocol server reads back for introspection queries.
type Catalog struct {
	Namespaces   []Namespace   `json:"namespaces"`
	Types        []Type        `json:"types"`
	Relations    []Relation    `json:"relations"`
	Attributes   []Attribute   `json:"attributes"`
	Settings     []Setting     `json:"settings"`
	Descriptions []Description `json:"descriptions"`
	Databases    []Database    `json:"databases"`
}
