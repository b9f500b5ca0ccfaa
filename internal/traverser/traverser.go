package traverser

import (
	"context"

	"github.com/specialistvlad/orbitmap/internal/ctxlog"
	"github.com/specialistvlad/orbitmap/internal/orbit"
	"github.com/specialistvlad/orbitmap/internal/topologystore"
)

// Options controls a traversal.
type Options struct {
	// Root is the object the walk starts from. Defaults to orbit.DefaultRoot.
	Root orbit.Label
	// Targets must all be reached, otherwise Traverse returns a
	// *orbit.DisconnectedTargetError together with the completed result.
	Targets []orbit.Label
}

// Traverse performs a breadth-first walk of the store from opts.Root.
//
// Objects are dequeued in non-decreasing distance order. An object is visited
// at most once, so a malformed map that loops back to the root still
// terminates. If a target is missing the returned result is still complete
// for every visited object.
func Traverse(ctx context.Context, store topologystore.Store, opts Options) (*Result, error) {
	logger := ctxlog.FromContext(ctx)

	root := opts.Root
	if root == "" {
		root = orbit.DefaultRoot
	}
	if !store.Contains(ctx, root) {
		logger.Warn("Root object does not appear in the orbit map.", "root", root)
	}

	res := newResult(root)
	res.visit(root, 0, "", false)
	queue := []orbit.Label{root}

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		current := queue[0]
		queue = queue[1:]
		next := res.distance[current] + 1

		for _, child := range store.ChildrenOf(ctx, current) {
			if res.Visited(child) {
				logger.Warn("Object reached twice, skipping.", "object", child, "via", current)
				continue
			}
			res.visit(child, next, current, true)
			queue = append(queue, child)
		}
	}

	logger.Debug("Traversal finished.", "root", root, "visited", res.Len())

	if err := res.Require(opts.Targets...); err != nil {
		return res, err
	}
	return res, nil
}
