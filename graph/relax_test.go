package graph

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func diamond() Graph {
	return Graph{
		Nodes: []Node{
			{Neighbors: []uint{1, 2}, Weights: []float64{1, 4}},
			{Neighbors: []uint{2, 3}, Weights: []float64{2, 6}},
			{Neighbors: []uint{3}, Weights: []float64{3}},
			{},
			{Neighbors: []uint{0}},
		},
	}
}

func dists(g Graph) []float64 {
	ret := make([]float64, len(g.Nodes))
	for i, n := range g.Nodes {
		ret[i] = n.Dist
	}
	return ret
}

func Test_ShortestPaths(t *testing.T) {
	for _, strategy := range []Strategy{FIFO, Priority} {
		t.Run(strategy.String(), func(t *testing.T) {
			g := diamond()
			require.NoError(t, ShortestPaths(&g, 0, strategy))
			assert.Equal(t, []float64{0, 1, 3, 6, math.Inf(1)}, dists(g))
		})
	}
}

type countingWorklist struct {
	worklist
	pops int
}

func (w *countingWorklist) pop() (uint, bool) {
	node, ok := w.worklist.pop()
	if ok {
		w.pops++
	}
	return node, ok
}

func Test_PriorityPopsEachNodeOnce(t *testing.T) {
	g := Graph{
		Nodes: []Node{
			{Neighbors: []uint{1, 2}, Weights: []float64{4, 1}},
			{Neighbors: []uint{3}, Weights: []float64{1}},
			{Neighbors: []uint{1, 4}, Weights: []float64{1, 10}},
			{Neighbors: []uint{4}, Weights: []float64{3}},
			{},
		},
	}

	inner, err := newWorklist(Priority, g.Nodes)
	require.NoError(t, err)
	wl := &countingWorklist{worklist: inner}
	require.NoError(t, relax(&g, 0, wl))

	assert.Equal(t, []float64{0, 2, 1, 3, 6}, dists(g))
	assert.Equal(t, len(g.Nodes), wl.pops)

	h := NewRandomGraph(128, 6, 20, 3)
	inner, err = newWorklist(Priority, h.Nodes)
	require.NoError(t, err)
	wl = &countingWorklist{worklist: inner}
	require.NoError(t, relax(&h, 0, wl))

	reachable := 0
	for _, d := range dists(h) {
		if !math.IsInf(d, 1) {
			reachable++
		}
	}
	assert.Equal(t, reachable, wl.pops)
}

func Test_ShortestPathsUnitWeights(t *testing.T) {
	g := Graph{
		Nodes: []Node{
			{Neighbors: []uint{1}},
			{Neighbors: []uint{2, 1}},
			{Neighbors: []uint{0}},
		},
	}
	require.NoError(t, ShortestPaths(&g, 1, FIFO))
	assert.Equal(t, []float64{2, 0, 1}, dists(g))
}

func Test_ShortestPathsNegativeEdge(t *testing.T) {
	for _, strategy := range []Strategy{FIFO, Priority} {
		g := Graph{
			Nodes: []Node{
				{Neighbors: []uint{1, 2}, Weights: []float64{5, 2}},
				{Neighbors: []uint{3}, Weights: []float64{1}},
				{Neighbors: []uint{1}, Weights: []float64{-4}},
				{},
			},
		}
		require.NoError(t, ShortestPaths(&g, 0, strategy))
		assert.Equal(t, []float64{0, -2, 2, -1}, dists(g), strategy.String())
	}
}

func Test_ShortestPathsNegativeCycle(t *testing.T) {
	for _, strategy := range []Strategy{FIFO, Priority} {
		g := Graph{
			Nodes: []Node{
				{Neighbors: []uint{1}, Weights: []float64{1}},
				{Neighbors: []uint{2}, Weights: []float64{-3}},
				{Neighbors: []uint{0}, Weights: []float64{1}},
			},
		}
		err := ShortestPaths(&g, 0, strategy)
		assert.True(t, errors.Is(err, ErrNegativeCycle), strategy.String())
	}

	g := Graph{Nodes: []Node{{Neighbors: []uint{0}, Weights: []float64{-1}}}}
	assert.True(t, errors.Is(ShortestPaths(&g, 0, FIFO), ErrNegativeCycle))
}

func Test_ShortestPathsErrors(t *testing.T) {
	g := diamond()
	assert.True(t, errors.Is(ShortestPaths(&g, 5, FIFO), ErrSourceOutOfRange))
	assert.True(t, errors.Is(ShortestPaths(&g, 0, Strategy(7)), ErrUnknownStrategy))

	g.Nodes[0].Weights = []float64{1}
	assert.True(t, errors.Is(ShortestPaths(&g, 0, FIFO), ErrWeightsMismatch))

	bad := Graph{Nodes: []Node{{Neighbors: []uint{3}}}}
	assert.True(t, errors.Is(ShortestPaths(&bad, 0, FIFO), ErrNeighborOutOfRange))
}

func Test_StrategiesAgree(t *testing.T) {
	g := NewRandomGraph(64, 4, 10, 7)
	h := NewRandomGraph(64, 4, 10, 7)
	assert.Equal(t, g, h)

	require.NoError(t, ShortestPaths(&g, 0, FIFO))
	require.NoError(t, ShortestPaths(&h, 0, Priority))
	assert.InDeltaSlice(t, dists(g), dists(h), 1e-9)
}

func Test_NewRandomGraph(t *testing.T) {
	g := NewRandomGraph(10, 3, 5, 1)
	require.Len(t, g.Nodes, 10)
	for i, node := range g.Nodes {
		assert.Len(t, node.Neighbors, 3)
		assert.Len(t, node.Weights, 3)
		assert.NotContains(t, node.Neighbors, uint(i))
		for _, w := range node.Weights {
			assert.GreaterOrEqual(t, w, 1.0)
			assert.Less(t, w, 5.0)
		}
	}

	assert.Len(t, NewRandomGraph(3, 8, 2, 1).Nodes[0].Neighbors, 2)
	assert.Empty(t, NewRandomGraph(0, 2, 2, 1).Nodes)
}

func Test_ParseStrategy(t *testing.T) {
	s, err := ParseStrategy("priority")
	require.NoError(t, err)
	assert.Equal(t, Priority, s)

	_, err = ParseStrategy("lifo")
	assert.True(t, errors.Is(err, ErrUnknownStrategy))
}
