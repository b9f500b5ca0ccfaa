package traverser

import (
	"slices"

	"github.com/specialistvlad/orbitmap/internal/orbit"
)

// Ancestor is one entry of a root-to-object path.
type Ancestor struct {
	Depth int
	Label orbit.Label
}

// Compare orders ancestors by depth, then by label.
func (a Ancestor) Compare(b Ancestor) int {
	switch {
	case a.Depth < b.Depth:
		return -1
	case a.Depth > b.Depth:
		return 1
	case a.Label < b.Label:
		return -1
	case a.Label > b.Label:
		return 1
	}
	return 0
}

// Result holds the outcome of a traversal. It is immutable once returned.
type Result struct {
	root     orbit.Label
	order    []orbit.Label
	distance map[orbit.Label]int
	parent   map[orbit.Label]orbit.Label
}

func newResult(root orbit.Label) *Result {
	return &Result{
		root:     root,
		distance: make(map[orbit.Label]int),
		parent:   make(map[orbit.Label]orbit.Label),
	}
}

func (r *Result) visit(label orbit.Label, distance int, parent orbit.Label, hasParent bool) {
	r.order = append(r.order, label)
	r.distance[label] = distance
	if hasParent {
		r.parent[label] = parent
	}
}

// Root returns the object the walk started from.
func (r *Result) Root() orbit.Label {
	return r.root
}

// Len returns the number of visited objects, root included.
func (r *Result) Len() int {
	return len(r.order)
}

// Order returns the visited objects in the order they were reached.
func (r *Result) Order() []orbit.Label {
	return slices.Clone(r.order)
}

// Visited reports whether the walk reached the label.
func (r *Result) Visited(label orbit.Label) bool {
	_, ok := r.distance[label]
	return ok
}

// Distance returns the number of edges between the root and the label.
func (r *Result) Distance(label orbit.Label) (int, bool) {
	d, ok := r.distance[label]
	return d, ok
}

// Parent returns the object the label was reached from. The root has none.
func (r *Result) Parent(label orbit.Label) (orbit.Label, bool) {
	p, ok := r.parent[label]
	return p, ok
}

// Path returns the strict ancestors of a visited label, root first. Its
// length equals the label's distance; the root's path is empty.
func (r *Result) Path(label orbit.Label) ([]Ancestor, bool) {
	d, ok := r.distance[label]
	if !ok {
		return nil, false
	}

	path := make([]Ancestor, d)
	current := label
	for i := d - 1; i >= 0; i-- {
		current = r.parent[current]
		path[i] = Ancestor{Depth: i, Label: current}
	}
	return path, true
}

// Require returns a *orbit.DisconnectedTargetError for the first label that
// was not visited.
func (r *Result) Require(labels ...orbit.Label) error {
	for _, label := range labels {
		if !r.Visited(label) {
			return &orbit.DisconnectedTargetError{Label: label, Root: r.root}
		}
	}
	return nil
}
