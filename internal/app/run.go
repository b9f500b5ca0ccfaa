package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/orbitmap/internal/analyzer"
	"github.com/specialistvlad/orbitmap/internal/builder"
	"github.com/specialistvlad/orbitmap/internal/ctxlog"
	"github.com/specialistvlad/orbitmap/internal/fsutil"
	"github.com/specialistvlad/orbitmap/internal/orbit"
	"github.com/specialistvlad/orbitmap/internal/traverser"
)

// Run builds the orbit map, walks it and prints both answers. Each answer is
// printed as soon as it is known, so a failure in the transfer computation
// still leaves the depth sum on the output.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	input, err := fsutil.OpenInput(a.settings.InputPath, a.stdin)
	if err != nil {
		return err
	}
	defer input.Close()

	store, err := builder.Build(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to build orbit map: %w", err)
	}
	a.logger.Info("Orbit map loaded.", "relations", store.RelationCount(ctx))

	source, target := a.settings.Source, a.settings.Target
	res, err := traverser.Traverse(ctx, store, traverser.Options{
		Root:    a.settings.Root,
		Targets: []orbit.Label{source, target},
	})
	var disconnected *orbit.DisconnectedTargetError
	if err != nil && !errors.As(err, &disconnected) {
		return fmt.Errorf("traversal failed: %w", err)
	}

	if disconnected != nil {
		a.printDepthSum(analyzer.DepthSum(res))
		return fmt.Errorf("failed to compute transfer distance: %w", err)
	}

	report, err := analyzer.Analyze(ctx, res, source, target)
	a.printDepthSum(report.DepthSum)
	if err != nil {
		return fmt.Errorf("failed to compute transfer distance: %w", err)
	}
	fmt.Fprintf(a.outW, "Distance %s to %s is %d\n", report.Source, report.Target, report.Transfers)

	a.logger.Debug("App.Run method finished.", "nearest_common_ancestor", report.Ancestor.Label)
	return nil
}

func (a *App) printDepthSum(sum int) {
	fmt.Fprintf(a.outW, "Sum of distances is %d\n", sum)
}
