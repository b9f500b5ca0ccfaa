// Package topologystore defines the interface for storing and querying the
// static structure of an orbit map: which object directly orbits which.
//
// # Lifecycle and Usage
//
// The topology store is:
//  1. **Created** once per run (ephemeral, never persisted)
//  2. **Populated** by the builder, one relation per input line
//  3. **Read-only** while the traverser walks it from the root
//  4. **Discarded** when the run ends
//
// Children are kept in the order their relations were added so that every
// walk over the same input visits nodes in the same order.
package topologystore

import (
	"context"
	"errors"

	"github.com/specialistvlad/orbitmap/internal/orbit"
)

var (
	// ErrDuplicateRelation is returned when the exact same relation is added twice.
	ErrDuplicateRelation = errors.New("duplicate orbit")
	// ErrMultipleParents is returned when an orbiter already orbits another object.
	ErrMultipleParents = errors.New("multiple parents")
	// ErrSelfOrbit is returned for a relation whose two labels are identical.
	ErrSelfOrbit = errors.New("object orbits itself")
)

// Store is the interface for the adjacency structure of an orbit tree.
type Store interface {
	// AddRelation records that rel.Orbiter directly orbits rel.Orbited.
	//
	// Both labels become known to the store. Returns ErrSelfOrbit,
	// ErrDuplicateRelation or ErrMultipleParents when the relation would break
	// the tree shape; the store is left unchanged in that case.
	AddRelation(ctx context.Context, rel orbit.Relation) error

	// ChildrenOf returns the direct orbiters of a label in insertion order.
	// Unknown labels and leaves both yield an empty slice.
	ChildrenOf(ctx context.Context, label orbit.Label) []orbit.Label

	// ParentOf returns the object a label directly orbits. The second return
	// value is false for roots and unknown labels.
	ParentOf(ctx context.Context, label orbit.Label) (orbit.Label, bool)

	// Contains reports whether the label appeared in any relation.
	Contains(ctx context.Context, label orbit.Label) bool

	// Labels returns every known label in first-seen order.
	Labels(ctx context.Context) []orbit.Label

	// RelationCount returns the number of relations recorded.
	RelationCount(ctx context.Context) int
}
