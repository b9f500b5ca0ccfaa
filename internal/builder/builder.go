package builder

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/specialistvlad/orbitmap/internal/ctxlog"
	"github.com/specialistvlad/orbitmap/internal/inmemorytopology"
	"github.com/specialistvlad/orbitmap/internal/orbit"
	"github.com/specialistvlad/orbitmap/internal/topologystore"
)

// Build reads one relation per line from r and returns the resulting store.
func Build(ctx context.Context, r io.Reader) (topologystore.Store, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read orbit map: %w", err)
	}
	return FromLines(ctx, lines)
}

// FromLines parses the given lines and adds every relation to a fresh store.
func FromLines(ctx context.Context, lines []string) (topologystore.Store, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing orbit relations.", "lines", len(lines))

	relations, err := orbit.ParseLines(lines)
	if err != nil {
		return nil, err
	}
	return FromRelations(ctx, relations)
}

// FromRelations adds already parsed relations to a fresh store. A relation
// that breaks the tree shape is reported as a MalformedRelationError.
func FromRelations(ctx context.Context, relations []orbit.Relation) (topologystore.Store, error) {
	logger := ctxlog.FromContext(ctx)
	store := inmemorytopology.New()

	for _, rel := range relations {
		if err := store.AddRelation(ctx, rel); err != nil {
			return nil, &orbit.MalformedRelationError{
				Line:   rel.Line,
				Text:   rel.String(),
				Reason: err.Error(),
			}
		}
	}

	logger.Debug("Orbit map built.", "relations", store.RelationCount(ctx), "objects", len(store.Labels(ctx)))
	return store, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
