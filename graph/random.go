package graph

import (
	"math/rand"

	"github.com/ar90n/focalsplit/common"
	"github.com/sourcegraph/conc/pool"
)

// NewRandomGraph builds a graph where every node has k distinct random
// out-neighbours with weights drawn from [1, maxWeight). Node i draws from
// its own source seeded with seed+i, so the result does not depend on
// scheduling.
func NewRandomGraph(n, k uint, maxWeight float64, seed int64) Graph {
	if n == 0 {
		return Graph{}
	}
	if n <= k {
		k = n - 1
	}
	if maxWeight < 1 {
		maxWeight = 1
	}
	nodes := make([]Node, n)

	p := pool.New().WithMaxGoroutines(common.GetProcNum(0))
	for i := range uint(len(nodes)) {
		p.Go(func() {
			rng := rand.New(rand.NewSource(seed + int64(i)))
			nodes[i].Neighbors = make([]uint, 0, k)
			nodes[i].Weights = make([]float64, 0, k)

			ignores := map[uint]struct{}{
				i: {},
			}
			for uint(len(ignores)) <= k {
				idx := uint(rng.Int63n(int64(len(nodes))))
				if _, ok := ignores[idx]; ok {
					continue
				}
				ignores[idx] = struct{}{}

				nodes[i].Neighbors = append(nodes[i].Neighbors, idx)
				nodes[i].Weights = append(nodes[i].Weights, 1+rng.Float64()*(maxWeight-1))
			}
		})
	}
	p.Wait()

	return Graph{Nodes: nodes}
}
