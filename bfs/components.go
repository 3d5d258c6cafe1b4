package bfs

import (
	"context"
	"sort"

	"github.com/katalvlaran/districtcut/core"
)

// Components returns the connected components of the subgraph of g induced by
// members. A nil members set means "all vertices of g". Members that are not
// vertices of g are ignored.
//
// Each component is sorted ascending; components are ordered by size desc,
// then by their first ID, so the largest piece of a district comes first.
func Components(ctx context.Context, g *core.Graph, members map[string]bool) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	inSet := func(id string) bool { return members == nil || members[id] }
	seen := make(map[string]bool)
	var comps [][]string

	for _, start := range g.Vertices() {
		if seen[start] || !inSet(start) {
			continue
		}
		res, err := BFS(g, start,
			WithContext(ctx),
			WithFilterNeighbor(func(_, nbr string) bool { return inSet(nbr) }),
		)
		if err != nil {
			return nil, err
		}
		comp := append([]string(nil), res.Order...)
		for _, id := range comp {
			seen[id] = true
		}
		sort.Strings(comp)
		comps = append(comps, comp)
	}

	sort.SliceStable(comps, func(i, j int) bool {
		if len(comps[i]) != len(comps[j]) {
			return len(comps[i]) > len(comps[j])
		}
		return comps[i][0] < comps[j][0]
	})

	return comps, nil
}
