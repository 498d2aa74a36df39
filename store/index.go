package store

import "slices"

// indexManager maintains the secondary indexes: derived parent->child-id
// sets that mirror the relationships implied by the primary maps. Every
// register is paired with a primary insert and every unregister with a
// primary removal in the same logical operation, so the indexes never
// diverge from the primary maps.
type indexManager struct {
	sets [numRelations]map[uint64]map[uint64]struct{}
}

func newIndexManager() *indexManager {
	m := &indexManager{}
	for rel := range m.sets {
		m.sets[rel] = make(map[uint64]map[uint64]struct{})
	}
	return m
}

// register adds childID to the parent's set, creating the set if absent.
func (m *indexManager) register(rel Relation, parentID, childID uint64) {
	children, ok := m.sets[rel][parentID]
	if !ok {
		children = make(map[uint64]struct{})
		m.sets[rel][parentID] = children
	}
	children[childID] = struct{}{}
}

// unregister removes childID from the parent's set. The set itself stays
// in place even when empty, so lookups on a childless parent keep
// returning an empty result rather than "not found".
func (m *indexManager) unregister(rel Relation, parentID, childID uint64) {
	if children, ok := m.sets[rel][parentID]; ok {
		delete(children, childID)
	}
}

// lookup returns the parent's child-id set. Missing parents read as empty.
func (m *indexManager) lookup(rel Relation, parentID uint64) map[uint64]struct{} {
	return m.sets[rel][parentID]
}

// snapshot materializes the parent's child-id set into a sorted slice.
// The cascade engine iterates snapshots, never live sets: deleting members
// of a set while ranging over it would make the walk depend on map
// iteration semantics mid-mutation.
func (m *indexManager) snapshot(rel Relation, parentID uint64) []uint64 {
	children := m.sets[rel][parentID]
	ids := make([]uint64, 0, len(children))
	for id := range children {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// drop removes the parent's set entirely. Called only when the parent
// record itself is removed from the primary map.
func (m *indexManager) drop(rel Relation, parentID uint64) {
	delete(m.sets[rel], parentID)
}

// clear resets every relation.
func (m *indexManager) clear() {
	for rel := range m.sets {
		m.sets[rel] = make(map[uint64]map[uint64]struct{})
	}
}
