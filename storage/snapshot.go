package storage

import (
	"sort"

	"pgfacade/catalog"
)

type descKey struct {
	objectOID uint32
	classOID  uint32
	subID     int
}

// Snapshot is one complete, immutable catalog together with the lookup
// maps the read API is served from. A snapshot is built once and never
// mutated; the store swaps whole snapshots, so readers holding one always
// see a consistent catalog.
type Snapshot struct {
	cat *catalog.Catalog

	relationByOID  map[uint32]catalog.Relation
	relationByName map[string]catalog.Relation
	typeByOID      map[uint32]catalog.Type
	settingByName  map[string]catalog.Setting
	attrsByRel     map[uint32][]catalog.Attribute
	descriptions   map[descKey]catalog.Description
}

// newSnapshot indexes a catalog for serving. Attributes are sorted by
// ordinal per relation so AttributesOf never depends on input order.
func newSnapshot(c *catalog.Catalog) *Snapshot {
	s := &Snapshot{
		cat:            c,
		relationByOID:  make(map[uint32]catalog.Relation),
		relationByName: make(map[string]catalog.Relation),
		typeByOID:      make(map[uint32]catalog.Type),
		settingByName:  make(map[string]catalog.Setting),
		attrsByRel:     make(map[uint32][]catalog.Attribute),
		descriptions:   make(map[descKey]catalog.Description),
	}

	for _, rel := range c.Relations {
		s.relationByOID[rel.OID] = rel
		s.relationByName[rel.Name] = rel
	}
	for _, t := range c.Types {
		s.typeByOID[t.OID] = t
	}
	for _, set := range c.Settings {
		s.settingByName[set.Name] = set
	}
	for _, attr := range c.Attributes {
		s.attrsByRel[attr.RelationOID] = append(s.attrsByRel[attr.RelationOID], attr)
	}
	for _, attrs := range s.attrsByRel {
		sort.Slice(attrs, func(i, j int) bool { return attrs[i].Num < attrs[j].Num })
	}
	for _, d := range c.Descriptions {
		s.descriptions[descKey{d.ObjectOID, d.ClassOID, d.SubID}] = d
	}

	return s
}

// relationsInNamespace returns relations of the given kind in the given
// namespace, in catalog (OID) order.
func (s *Snapshot) relationsInNamespace(nsOID uint32, kind string) []catalog.Relation {
	var out []catalog.Relation
	for _, rel := range s.cat.Relations {
		if rel.NamespaceOID == nsOID && rel.Kind == kind {
			out = append(out, rel)
		}
	}
	return out
}
