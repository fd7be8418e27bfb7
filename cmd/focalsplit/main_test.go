package main

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ar90n/focalsplit/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ReadEdges(t *testing.T) {
	g, err := readEdges(strings.NewReader("# from,to,weight\n0,1,2.5\n1, 3, 1\n"))
	require.NoError(t, err)
	require.Len(t, g.Nodes, 4)
	assert.Equal(t, []uint{1}, g.Nodes[0].Neighbors)
	assert.Equal(t, []float64{2.5}, g.Nodes[0].Weights)
	assert.Equal(t, []uint{3}, g.Nodes[1].Neighbors)
	assert.Empty(t, g.Nodes[2].Neighbors)

	g, err = readEdges(strings.NewReader("0,1\n1,2\n"))
	require.NoError(t, err)
	assert.Nil(t, g.Nodes[0].Weights)

	type TestCase struct {
		Name  string
		Input string
	}
	for _, tc := range []TestCase{
		{Name: "one field", Input: "0\n"},
		{Name: "four fields", Input: "0,1,2,3\n"},
		{Name: "bad from", Input: "a,1\n"},
		{Name: "bad to", Input: "0,-1\n"},
		{Name: "bad weight", Input: "0,1,x\n"},
	} {
		_, err := readEdges(strings.NewReader(tc.Input))
		assert.Error(t, err, tc.Name)
	}
}

func Test_WriteDists(t *testing.T) {
	g := graph.Graph{Nodes: []graph.Node{{Dist: 0}, {Dist: 1.5}, {Dist: math.Inf(1)}}}
	var buf bytes.Buffer
	require.NoError(t, writeDists(&buf, g))
	assert.Equal(t, "0,0\n1,1.5\n2,inf\n", buf.String())
}

func Test_DumpSplit(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, dumpSplit(&buf, 6, 2))
	out := buf.String()
	assert.Contains(t, out, "focal:  2\n")
	assert.Contains(t, out, "prefix: [0 1]\n")
	assert.Contains(t, out, "suffix: [3 4 5]\n")
	assert.Contains(t, out, "[0 0 -2 0 0 0]")

	assert.Error(t, dumpSplit(&buf, 3, 3))
	assert.Error(t, dumpSplit(&buf, 0, 0))
}

func Test_RelaxCommand(t *testing.T) {
	var out bytes.Buffer
	app := newApp()
	app.Reader = strings.NewReader("0,1,1\n1,2,2\n0,2,4\n")
	app.Writer = &out

	require.NoError(t, app.Run([]string{"focalsplit", "relax", "--strategy", "priority"}))
	assert.Equal(t, "0,0\n1,1\n2,3\n", out.String())

	out.Reset()
	app = newApp()
	app.Reader = strings.NewReader("0,1\n")
	app.Writer = &out
	require.NoError(t, app.Run([]string{"focalsplit", "relax", "--undirected", "--source", "1"}))
	assert.Equal(t, "0,1\n1,0\n", out.String())
}

func Test_InspectCommand(t *testing.T) {
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out

	require.NoError(t, app.Run([]string{"focalsplit", "inspect", "--value", "7", "--len", "4", "--index", "0"}))
	assert.Contains(t, out.String(), "== int32")
	assert.Contains(t, out.String(), "== particle.Particle[float32]")
	assert.Contains(t, out.String(), "suffix: [1 2 3]")
}

func Test_SimulateCommand(t *testing.T) {
	png := filepath.Join(t.TempDir(), "world.png")
	app := newApp()
	app.Writer = &bytes.Buffer{}

	err := app.Run([]string{
		"focalsplit", "simulate",
		"--particles", "5", "--steps", "3", "--runs", "2", "--png", png,
	})
	require.NoError(t, err)
	assert.FileExists(t, png)

	app = newApp()
	app.Writer = &bytes.Buffer{}
	err = app.Run([]string{"focalsplit", "simulate", "--runs", "0"})
	assert.Error(t, err)
}
