package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"pgfacade/catalog"
)

// Catalog table file names inside the data directory.
const (
	fileNamespaces   = "pg_namespace.db"
	fileTypes        = "pg_type.db"
	fileRelations    = "pg_class.db"
	fileAttributes   = "pg_attribute.db"
	fileSettings     = "pg_settings.db"
	fileDescriptions = "pg_description.db"
	fileDatabases    = "pg_database.db"
)

// ErrNotFound is returned by point lookups that match no catalog row.
var ErrNotFound = errors.New("not found in catalog")

// ErrNoCatalog is returned by reads before any catalog has been built or
// loaded. The server must not advertise readiness in this state.
var ErrNoCatalog = errors.New("no catalog has been built")

// Store is the durable catalog store: one record file per catalog table on
// disk, and an immutable in-memory snapshot all reads are served from.
//
// Concurrency model: many readers, single writer. ReplaceAll persists the
// new catalog and then swaps the snapshot pointer under the lock, so
// concurrent readers see either the old or the new complete catalog,
// never a mix.
type Store struct {
	mu      sync.RWMutex
	dataDir string
	snap    *Snapshot
}

// Open opens a catalog store in dataDir, loading a previously persisted
// catalog if one exists. A fresh directory yields an empty store whose
// reads fail with ErrNoCatalog until ReplaceAll succeeds.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %v", err)
	}

	s := &Store{dataDir: dataDir}

	// The namespace file is written by every successful ReplaceAll, so its
	// absence means no catalog has ever been persisted here.
	if _, err := os.Stat(s.tablePath(fileNamespaces)); os.IsNotExist(err) {
		return s, nil
	}

	c, err := s.load()
	if err != nil {
		return nil, err
	}
	s.snap = newSnapshot(c)

	return s, nil
}

func (s *Store) tablePath(name string) string {
	return filepath.Join(s.dataDir, name)
}

// load reads every catalog table file and verifies referential integrity
// before the catalog is served.
func (s *Store) load() (*catalog.Catalog, error) {
	c := &catalog.Catalog{}

	var err error
	if c.Namespaces, err = readTable[catalog.Namespace](s, fileNamespaces); err != nil {
		return nil, err
	}
	if c.Types, err = readTable[catalog.Type](s, fileTypes); err != nil {
		return nil, err
	}
	if c.Relations, err = readTable[catalog.Relation](s, fileRelations); err != nil {
		return nil, err
	}
	if c.Attributes, err = readTable[catalog.Attribute](s, fileAttributes); err != nil {
		return nil, err
	}
	if c.Settings, err = readTable[catalog.Setting](s, fileSettings); err != nil {
		return nil, err
	}
	if c.Descriptions, err = readTable[catalog.Description](s, fileDescriptions); err != nil {
		return nil, err
	}
	if c.Databases, err = readTable[catalog.Database](s, fileDatabases); err != nil {
		return nil, err
	}

	if err := checkIntegrity(c); err != nil {
		return nil, fmt.Errorf("persisted catalog is inconsistent: %w", err)
	}

	return c, nil
}

func readTable[T any](s *Store, name string) ([]T, error) {
	records, err := readRecords(s.tablePath(name))
	if err != nil {
		return nil, err
	}
	return unmarshalRows[T](records)
}

func writeTable[T any](s *Store, name string, rows []T) error {
	data, err := marshalRows(rows)
	if err != nil {
		return err
	}
	return writeRecords(s.tablePath(name), data)
}

// ReplaceAll atomically replaces the stored catalog: every table file is
// rewritten via temp-file rename, then the in-memory snapshot is swapped.
// On any failure the previous snapshot stays authoritative and the error
// is returned for the operator.
func (s *Store) ReplaceAll(c *catalog.Catalog) error {
	if c == nil {
		return fmt.Errorf("cannot store a nil catalog")
	}
	if err := checkIntegrity(c); err != nil {
		return fmt.Errorf("refusing to store inconsistent catalog: %w", err)
	}

	// The namespace file doubles as the catalog-present marker, so it is
	// written last: a crash partway through leaves either a loadable old
	// catalog or a directory Open treats as empty.
	if err := writeTable(s, fileTypes, c.Types); err != nil {
		return err
	}
	if err := writeTable(s, fileRelations, c.Relations); err != nil {
		return err
	}
	if err := writeTable(s, fileAttributes, c.Attributes); err != nil {
		return err
	}
	if err := writeTable(s, fileSettings, c.Settings); err != nil {
		return err
	}
	if err := writeTable(s, fileDescriptions, c.Descriptions); err != nil {
		return err
	}
	if err := writeTable(s, fileDatabases, c.Databases); err != nil {
		return err
	}
	if err := writeTable(s, fileNamespaces, c.Namespaces); err != nil {
		return err
	}

	snap := newSnapshot(c)

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()

	return nil
}

// snapshot returns the current snapshot, or nil when no catalog is loaded.
func (s *Store) snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Ready reports whether a complete catalog is loaded and servable.
func (s *Store) Ready() bool {
	return s.snapshot() != nil
}

// RelationsInNamespace returns all relations of the given kind in the
// given namespace, in OID order.
func (s *Store) RelationsInNamespace(nsOID uint32, kind string) ([]catalog.Relation, error) {
	snap := s.snapshot()
	if snap == nil {
		return nil, ErrNoCatalog
	}
	return snap.relationsInNamespace(nsOID, kind), nil
}

// RelationByName looks up a relation by name.
func (s *Store) RelationByName(name string) (catalog.Relation, error) {
	snap := s.snapshot()
	if snap == nil {
		return catalog.Relation{}, ErrNoCatalog
	}
	rel, ok := snap.relationByName[name]
	if !ok {
		return catalog.Relation{}, fmt.Errorf("relation '%s': %w", name, ErrNotFound)
	}
	return rel, nil
}

// RelationByOID looks up a relation by OID.
func (s *Store) RelationByOID(oid uint32) (catalog.Relation, error) {
	snap := s.snapshot()
	if snap == nil {
		return catalog.Relation{}, ErrNoCatalog
	}
	rel, ok := snap.relationByOID[oid]
	if !ok {
		return catalog.Relation{}, fmt.Errorf("relation oid %d: %w", oid, ErrNotFound)
	}
	return rel, nil
}

// AttributesOf returns the attributes of a relation ordered by ordinal.
func (s *Store) AttributesOf(relOID uint32) ([]catalog.Attribute, error) {
	snap := s.snapshot()
	if snap == nil {
		return nil, ErrNoCatalog
	}
	if _, ok := snap.relationByOID[relOID]; !ok {
		return nil, fmt.Errorf("relation oid %d: %w", relOID, ErrNotFound)
	}
	return snap.attrsByRel[relOID], nil
}

// TypeByOID looks up a type descriptor by its builtin OID.
func (s *Store) TypeByOID(oid uint32) (catalog.Type, error) {
	snap := s.snapshot()
	if snap == nil {
		return catalog.Type{}, ErrNoCatalog
	}
	t, ok := snap.typeByOID[oid]
	if !ok {
		return catalog.Type{}, fmt.Errorf("type oid %d: %w", oid, ErrNotFound)
	}
	return t, nil
}

// Namespaces returns all namespace rows.
func (s *Store) Namespaces() ([]catalog.Namespace, error) {
	snap := s.snapshot()
	if snap == nil {
		return nil, ErrNoCatalog
	}
	return snap.cat.Namespaces, nil
}

// Settings returns all server parameter rows.
func (s *Store) Settings() ([]catalog.Setting, error) {
	snap := s.snapshot()
	if snap == nil {
		return nil, ErrNoCatalog
	}
	return snap.cat.Settings, nil
}

// Setting looks up one server parameter by name.
func (s *Store) Setting(name string) (catalog.Setting, error) {
	snap := s.snapshot()
	if snap == nil {
		return catalog.Setting{}, ErrNoCatalog
	}
	set, ok := snap.settingByName[name]
	if !ok {
		return catalog.Setting{}, fmt.Errorf("setting '%s': %w", name, ErrNotFound)
	}
	return set, nil
}

// Databases returns all database rows.
func (s *Store) Databases() ([]catalog.Database, error) {
	snap := s.snapshot()
	if snap == nil {
		return nil, ErrNoCatalog
	}
	return snap.cat.Databases, nil
}

// DescriptionFor looks up the comment on an object, or on one of its
// columns when subID > 0.
func (s *Store) DescriptionFor(objectOID, classOID uint32, subID int) (catalog.Description, error) {
	snap := s.snapshot()
	if snap == nil {
		return catalog.Description{}, ErrNoCatalog
	}
	d, ok := snap.descriptions[descKey{objectOID, classOID, subID}]
	if !ok {
		return catalog.Description{}, fmt.Errorf("description for (%d,%d,%d): %w", objectOID, classOID, subID, ErrNotFound)
	}
	return d, nil
}

// Catalog returns the currently served catalog.
func (s *Store) Catalog() (*catalog.Catalog, error) {
	snap := s.snapshot()
	if snap == nil {
		return nil, ErrNoCatalog
	}
	return snap.cat, nil
}

// checkIntegrity verifies the referential invariants every served catalog
// must satisfy: attributes reference existing relations and types,
// relations reference existing namespaces, and attribute ordinals are
// dense from 1 per relation.
func checkIntegrity(c *catalog.Catalog) error {
	namespaces := make(map[uint32]bool)
	for _, ns := range c.Namespaces {
		namespaces[ns.OID] = true
	}
	types := make(map[uint32]bool)
	for _, t := range c.Types {
		types[t.OID] = true
	}

	relations := make(map[uint32]bool)
	for _, rel := range c.Relations {
		if !namespaces[rel.NamespaceOID] {
			return fmt.Errorf("relation '%s' references missing namespace %d", rel.Name, rel.NamespaceOID)
		}
		relations[rel.OID] = true
	}

	ordinals := make(map[uint32]map[int]bool)
	counts := make(map[uint32]int)
	for _, attr := range c.Attributes {
		if !relations[attr.RelationOID] {
			return fmt.Errorf("attribute '%s' references missing relation %d", attr.Name, attr.RelationOID)
		}
		if !types[attr.TypeOID] {
			return fmt.Errorf("attribute '%s' references missing type %d", attr.Name, attr.TypeOID)
		}
		if attr.Num < 1 {
			return fmt.Errorf("attribute '%s' has non-positive ordinal %d", attr.Name, attr.Num)
		}
		if ordinals[attr.RelationOID] == nil {
			ordinals[attr.RelationOID] = make(map[int]bool)
		}
		if ordinals[attr.RelationOID][attr.Num] {
			return fmt.Errorf("relation %d has duplicate attribute ordinal %d", attr.RelationOID, attr.Num)
		}
		ordinals[attr.RelationOID][attr.Num] = true
		counts[attr.RelationOID]++
	}

	// Dense ordinals: for N attributes the ordinals must be exactly 1..N.
	for relOID, count := range counts {
		for i := 1; i <= count; i++ {
			if !ordinals[relOID][i] {
				return fmt.Errorf("relation %d is missing attribute ordinal %d", relOID, i)
			}
		}
	}

	return nil
}
