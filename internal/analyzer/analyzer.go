package analyzer

import (
	"context"
	"slices"

	"github.com/specialistvlad/orbitmap/internal/ctxlog"
	"github.com/specialistvlad/orbitmap/internal/orbit"
	"github.com/specialistvlad/orbitmap/internal/traverser"
)

// Report collects everything computed for a single run.
type Report struct {
	DepthSum  int
	Source    orbit.Label
	Target    orbit.Label
	Ancestor  traverser.Ancestor
	Transfers int
}

// DepthSum adds up the distance of every visited object. The root contributes 0.
func DepthSum(res *traverser.Result) int {
	sum := 0
	for _, label := range res.Order() {
		d, _ := res.Distance(label)
		sum += d
	}
	return sum
}

// CommonAncestors returns the entries present in both paths, ordered by
// depth and then label.
func CommonAncestors(a, b []traverser.Ancestor) []traverser.Ancestor {
	inA := make(map[traverser.Ancestor]struct{}, len(a))
	for _, entry := range a {
		inA[entry] = struct{}{}
	}

	var common []traverser.Ancestor
	for _, entry := range b {
		if _, ok := inA[entry]; ok {
			common = append(common, entry)
			delete(inA, entry)
		}
	}
	slices.SortFunc(common, traverser.Ancestor.Compare)
	return common
}

// NearestCommonAncestor returns the deepest object on both the source's and
// the target's ancestor paths.
func NearestCommonAncestor(res *traverser.Result, source, target orbit.Label) (traverser.Ancestor, error) {
	if err := res.Require(source, target); err != nil {
		return traverser.Ancestor{}, err
	}
	sourcePath, _ := res.Path(source)
	targetPath, _ := res.Path(target)

	common := CommonAncestors(sourcePath, targetPath)
	if len(common) == 0 {
		return traverser.Ancestor{}, &orbit.NoCommonAncestorError{Source: source, Target: target}
	}
	return common[len(common)-1], nil
}

// TransferDistance counts the orbital transfers needed to move source into
// the orbit of target's parent: (dSource - d) + (dTarget - d) - 2, where d is
// the depth of their nearest common ancestor.
func TransferDistance(res *traverser.Result, source, target orbit.Label) (int, error) {
	ancestor, err := NearestCommonAncestor(res, source, target)
	if err != nil {
		return 0, err
	}
	return transfersVia(res, ancestor, source, target), nil
}

func transfersVia(res *traverser.Result, ancestor traverser.Ancestor, source, target orbit.Label) int {
	ds, _ := res.Distance(source)
	dt, _ := res.Distance(target)
	return (ds - ancestor.Depth) + (dt - ancestor.Depth) - 2
}

// Analyze computes both answers. On error the returned report is still
// non-nil and carries DepthSum, which never fails.
func Analyze(ctx context.Context, res *traverser.Result, source, target orbit.Label) (*Report, error) {
	logger := ctxlog.FromContext(ctx)

	report := &Report{
		DepthSum: DepthSum(res),
		Source:   source,
		Target:   target,
	}
	logger.Debug("Depth sum computed.", "depth_sum", report.DepthSum, "objects", res.Len())

	ancestor, err := NearestCommonAncestor(res, source, target)
	if err != nil {
		return report, err
	}

	report.Ancestor = ancestor
	report.Transfers = transfersVia(res, ancestor, source, target)
	logger.Debug("Transfer distance computed.", "source", source, "target", target, "ancestor", ancestor.Label, "transfers", report.Transfers)
	return report, nil
}
