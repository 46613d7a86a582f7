package gopaging

import (
	"slices"

	"github.com/samber/lo"
)

// Partition splits items into consecutive chunks of pageSize items, the last
// one possibly shorter (45 items with pageSize 10 give four chunks of 10 and
// one of 5). Chunks are copies. An empty collection has no chunks.
func Partition[T any](items []T, pageSize int) ([][]T, error) {
	if pageSize < 1 {
		return nil, newConfigurationError("pageSize", pageSize)
	}

	if len(items) == 0 {
		return nil, nil
	}

	return lo.Map(lo.Chunk(items, pageSize), func(chunk []T, _ int) []T {
		return slices.Clone(chunk)
	}), nil
}

// Split deals items round-robin into at most groups groups: item i goes to
// group i % groups. Groups that would stay empty are omitted.
func Split[T any](items []T, groups int) ([][]T, error) {
	if groups < 1 {
		return nil, newConfigurationError("groups", groups)
	}

	ret := make([][]T, min(groups, len(items)))
	for i, item := range items {
		ret[i%groups] = append(ret[i%groups], item)
	}

	return ret, nil
}
