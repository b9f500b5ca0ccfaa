// Package traverser walks an orbit map breadth-first from its root.
//
// The walk assigns every reachable object its distance from the root and
// remembers the object it was reached from. Ancestor paths are not stored per
// object; Path rebuilds one on demand by following parent links upward, which
// keeps memory linear in the size of the map even for a single long chain.
package traverser
