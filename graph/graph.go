package graph

import (
	"math"

	"github.com/ar90n/focalsplit"
	"github.com/cockroachdb/errors"
)

type Graph struct {
	Nodes []Node
}

// Node holds outgoing edges. Weights is either empty, meaning every edge
// weighs 1, or parallel to Neighbors.
type Node struct {
	Neighbors []uint
	Weights   []float64
	Dist      float64
}

func (n Node) weight(k int) float64 {
	if len(n.Weights) == 0 {
		return 1
	}
	return n.Weights[k]
}

func (g Graph) validate() error {
	for i, node := range g.Nodes {
		if len(node.Weights) != 0 && len(node.Weights) != len(node.Neighbors) {
			return errors.Wrapf(ErrWeightsMismatch, "node %d: %d neighbors, %d weights", i, len(node.Neighbors), len(node.Weights))
		}
		for _, j := range node.Neighbors {
			if uint(len(g.Nodes)) <= j {
				return errors.Wrapf(ErrNeighborOutOfRange, "node %d: neighbor %d, nodes %d", i, j, len(g.Nodes))
			}
		}
	}
	return nil
}

func (g *Graph) resetDist() {
	for i := range g.Nodes {
		g.Nodes[i].Dist = math.Inf(1)
	}
}

func contains(xs []uint, v uint) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

// ConvertToUndirected adds the reverse of every edge that is missing one.
// A reverse edge copies the forward weight. Self loops are dropped. g is
// left untouched when it fails validation.
func ConvertToUndirected(g Graph) (Graph, error) {
	if err := g.validate(); err != nil {
		return Graph{}, err
	}

	for i := range g.Nodes {
		focal, prefix, suffix := focalsplit.ExtractAt(g.Nodes, i)

		kept := focal.Neighbors[:0]
		keptWeights := focal.Weights[:0]
		for k, j := range focal.Neighbors {
			if j == uint(i) {
				continue
			}
			w := focal.weight(k)
			kept = append(kept, j)
			if len(focal.Weights) != 0 {
				keptWeights = append(keptWeights, w)
			}

			other := focalsplit.OtherAt(prefix, suffix, int(j))
			if contains(other.Neighbors, uint(i)) {
				continue
			}
			if len(other.Weights) != 0 || w != 1 {
				other.Weights = padWeights(other.Weights, len(other.Neighbors))
				other.Weights = append(other.Weights, w)
			}
			other.Neighbors = append(other.Neighbors, uint(i))
		}
		focal.Neighbors = kept
		if len(focal.Weights) != 0 {
			focal.Weights = keptWeights
		}
	}

	return g, nil
}

func padWeights(weights []float64, n int) []float64 {
	for len(weights) < n {
		weights = append(weights, 1)
	}
	return weights
}
