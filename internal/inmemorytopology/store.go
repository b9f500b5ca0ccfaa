package inmemorytopology

import (
	"context"
	"fmt"

	"github.com/specialistvlad/orbitmap/internal/orbit"
	"github.com/specialistvlad/orbitmap/internal/topologystore"
)

// Store implements the topologystore.Store interface.
type Store struct {
	children  map[orbit.Label][]orbit.Label
	parents   map[orbit.Label]orbit.Label
	seen      map[orbit.Label]struct{}
	labels    []orbit.Label
	relations int
}

// New creates a new, empty in-memory topology store.
func New() topologystore.Store {
	return &Store{
		children: make(map[orbit.Label][]orbit.Label),
		parents:  make(map[orbit.Label]orbit.Label),
		seen:     make(map[orbit.Label]struct{}),
	}
}

// AddRelation adds a parent-child edge to the store.
func (s *Store) AddRelation(ctx context.Context, rel orbit.Relation) error {
	if rel.Orbited == rel.Orbiter {
		return fmt.Errorf("%w: %s", topologystore.ErrSelfOrbit, rel.Orbiter)
	}
	if parent, exists := s.parents[rel.Orbiter]; exists {
		if parent == rel.Orbited {
			return fmt.Errorf("%w: %s", topologystore.ErrDuplicateRelation, rel)
		}
		return fmt.Errorf("%w: %s already orbits %s", topologystore.ErrMultipleParents, rel.Orbiter, parent)
	}

	s.remember(rel.Orbited)
	s.remember(rel.Orbiter)
	s.children[rel.Orbited] = append(s.children[rel.Orbited], rel.Orbiter)
	s.parents[rel.Orbiter] = rel.Orbited
	s.relations++
	return nil
}

func (s *Store) remember(label orbit.Label) {
	if _, ok := s.seen[label]; ok {
		return
	}
	s.seen[label] = struct{}{}
	s.labels = append(s.labels, label)
}

// ChildrenOf returns a copy of the label's children.
func (s *Store) ChildrenOf(ctx context.Context, label orbit.Label) []orbit.Label {
	kids := s.children[label]
	out := make([]orbit.Label, len(kids))
	copy(out, kids)
	return out
}

// ParentOf returns the direct parent of a label.
func (s *Store) ParentOf(ctx context.Context, label orbit.Label) (orbit.Label, bool) {
	parent, ok := s.parents[label]
	return parent, ok
}

// Contains reports whether the label is known.
func (s *Store) Contains(ctx context.Context, label orbit.Label) bool {
	_, ok := s.seen[label]
	return ok
}

// Labels returns all known labels in first-seen order.
func (s *Store) Labels(ctx context.Context) []orbit.Label {
	out := make([]orbit.Label, len(s.labels))
	copy(out, s.labels)
	return out
}

// RelationCount returns the number of relations added.
func (s *Store) RelationCount(ctx context.Context) int {
	return s.relations
}
