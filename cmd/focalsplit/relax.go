package main

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"

	"github.com/ar90n/focalsplit/config"
	"github.com/ar90n/focalsplit/graph"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// readEdges parses "from,to[,weight]" records. Node ids are dense from zero;
// the graph is sized by the largest id seen.
func readEdges(r io.Reader) (graph.Graph, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	var nodes []graph.Node
	grow := func(id uint) {
		for uint(len(nodes)) <= id {
			nodes = append(nodes, graph.Node{})
		}
	}

	weighted := false
	for line := 1; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return graph.Graph{}, errors.Wrap(err, "read edges")
		}
		if len(record) < 2 || 3 < len(record) {
			return graph.Graph{}, errors.Newf("record %d: want from,to[,weight], got %d fields", line, len(record))
		}

		from, err := strconv.ParseUint(record[0], 10, 32)
		if err != nil {
			return graph.Graph{}, errors.Wrapf(err, "record %d: from", line)
		}
		to, err := strconv.ParseUint(record[1], 10, 32)
		if err != nil {
			return graph.Graph{}, errors.Wrapf(err, "record %d: to", line)
		}
		w := 1.0
		if len(record) == 3 {
			if w, err = strconv.ParseFloat(record[2], 64); err != nil {
				return graph.Graph{}, errors.Wrapf(err, "record %d: weight", line)
			}
			weighted = true
		}

		grow(uint(from))
		grow(uint(to))
		nodes[from].Neighbors = append(nodes[from].Neighbors, uint(to))
		nodes[from].Weights = append(nodes[from].Weights, w)
	}

	if !weighted {
		for i := range nodes {
			nodes[i].Weights = nil
		}
	}
	return graph.Graph{Nodes: nodes}, nil
}

func writeDists(w io.Writer, g graph.Graph) error {
	cw := csv.NewWriter(w)
	for i, node := range g.Nodes {
		dist := "inf"
		if !math.IsInf(node.Dist, 1) {
			dist = strconv.FormatFloat(node.Dist, 'g', -1, 64)
		}
		if err := cw.Write([]string{strconv.Itoa(i), dist}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func applyRelaxFlags(c *cli.Context, cfg *config.Config) error {
	if c.IsSet("strategy") {
		cfg.Relax.Strategy = c.String("strategy")
	}
	if c.IsSet("source") {
		cfg.Relax.Source = c.Uint("source")
	}
	return cfg.Validate()
}

func relaxAction(c *cli.Context) error {
	cfg, logger, err := setup(c)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if err := applyRelaxFlags(c, cfg); err != nil {
		return err
	}
	strategy, err := graph.ParseStrategy(cfg.Relax.Strategy)
	if err != nil {
		return err
	}

	var g graph.Graph
	if n := c.Uint("random"); 0 < n {
		g = graph.NewRandomGraph(n, c.Uint("degree"), 10, c.Int64("seed"))
	} else {
		if g, err = readEdges(c.App.Reader); err != nil {
			return err
		}
	}
	if c.Bool("undirected") {
		if g, err = graph.ConvertToUndirected(g); err != nil {
			return err
		}
	}

	logger.Info("relaxing",
		zap.Int("nodes", len(g.Nodes)),
		zap.Uint("source", cfg.Relax.Source),
		zap.Stringer("strategy", strategy),
	)
	if err := graph.ShortestPaths(&g, cfg.Relax.Source, strategy); err != nil {
		return err
	}

	return writeDists(c.App.Writer, g)
}
