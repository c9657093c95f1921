// Package selection reduces a discovered resource list to the subset
// the operator wants packaged.
package selection

import (
	"context"

	"pagepack/lib/discover"
)

// Service presents a list of checkable items and returns the indices
// the operator approved. Implementations may be interactive; tests
// inject fixed doubles.
type Service interface {
	Choose(ctx context.Context, items []string) ([]int, error)
}

// Gate filters refs down to the approved subset. The output always
// follows discovery order regardless of the order the service returns
// indices in; selection filters, it never reorders. An empty input or
// approveAll bypasses the service entirely.
func Gate(ctx context.Context, refs []discover.Reference, approveAll bool, svc Service) ([]discover.Reference, error) {
	if len(refs) == 0 || approveAll {
		return refs, nil
	}

	labels := make([]string, len(refs))
	for i, r := range refs {
		labels[i] = r.Label
	}
	indices, err := svc.Choose(ctx, labels)
	if err != nil {
		return nil, err
	}

	approved := make(map[int]bool, len(indices))
	for _, i := range indices {
		approved[i] = true
	}
	var out []discover.Reference
	for i, r := range refs {
		if approved[i] {
			out = append(out, r)
		}
	}
	return out, nil
}
