package graph

import (
	"github.com/ar90n/focalsplit"
	"github.com/ar90n/focalsplit/collection"
	"github.com/cockroachdb/errors"
	"github.com/eapache/queue"
)

type Strategy int

const (
	// FIFO processes nodes in the order their label last improved.
	FIFO Strategy = iota
	// Priority processes the node with the smallest label first. On
	// non-negative weights every reachable node is settled by exactly one pop,
	// as in Dijkstra's algorithm; negative edges only cost extra pops.
	Priority
)

func (s Strategy) String() string {
	switch s {
	case FIFO:
		return "fifo"
	case Priority:
		return "priority"
	default:
		return "unknown"
	}
}

func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "fifo":
		return FIFO, nil
	case "priority":
		return Priority, nil
	default:
		return 0, errors.Wrapf(ErrUnknownStrategy, "%q", name)
	}
}

type worklist interface {
	push(node uint, dist float64)
	// pop returns false once nothing is left to process.
	pop() (uint, bool)
}

type fifoWorklist struct {
	q      *queue.Queue
	queued []bool
}

func (w *fifoWorklist) push(node uint, _ float64) {
	if w.queued[node] {
		return
	}
	w.queued[node] = true
	w.q.Add(node)
}

func (w *fifoWorklist) pop() (uint, bool) {
	if w.q.Length() == 0 {
		return 0, false
	}
	node := w.q.Remove().(uint)
	w.queued[node] = false
	return node, true
}

// priorityWorklist queues a node again each time its label improves and drops
// entries whose priority no longer matches the label when they come out.
type priorityWorklist struct {
	pq    *collection.PriorityQueue[uint]
	nodes []Node
}

func (w *priorityWorklist) push(node uint, dist float64) {
	w.pq.Push(node, dist)
}

func (w *priorityWorklist) pop() (uint, bool) {
	for 0 < w.pq.Len() {
		entry, _ := w.pq.PopWithPriority()
		if entry.Priority == w.nodes[entry.Item].Dist {
			return entry.Item, true
		}
	}
	return 0, false
}

func newWorklist(strategy Strategy, nodes []Node) (worklist, error) {
	switch strategy {
	case FIFO:
		return &fifoWorklist{q: queue.New(), queued: make([]bool, len(nodes))}, nil
	case Priority:
		return &priorityWorklist{pq: collection.NewPriorityQueue[uint](len(nodes)), nodes: nodes}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownStrategy, "%d", int(strategy))
	}
}

// ShortestPaths sets every node's Dist to its distance from source, or +Inf
// when unreachable. Each step takes one node as focal and pushes its label
// into its neighbours.
func ShortestPaths(g *Graph, source uint, strategy Strategy) error {
	n := len(g.Nodes)
	if uint(n) <= source {
		return errors.Wrapf(ErrSourceOutOfRange, "source %d, nodes %d", source, n)
	}
	if err := g.validate(); err != nil {
		return err
	}

	wl, err := newWorklist(strategy, g.Nodes)
	if err != nil {
		return err
	}
	return relax(g, source, wl)
}

func relax(g *Graph, source uint, wl worklist) error {
	n := len(g.Nodes)
	g.resetDist()
	g.Nodes[source].Dist = 0
	wl.push(source, 0)

	// hops[v] counts the edges on the path behind v's label. A path of n
	// edges repeats a node, and it only keeps improving around a negative
	// cycle.
	hops := make([]int, n)
	for {
		u, ok := wl.pop()
		if !ok {
			return nil
		}
		focal, prefix, suffix := focalsplit.ExtractAt(g.Nodes, int(u))

		for k, v := range focal.Neighbors {
			if v == u {
				if focal.weight(k) < 0 {
					return errors.Wrapf(ErrNegativeCycle, "self loop on node %d", u)
				}
				continue
			}

			other := focalsplit.OtherAt(prefix, suffix, int(v))
			cand := focal.Dist + focal.weight(k)
			if other.Dist <= cand {
				continue
			}

			other.Dist = cand
			hops[v] = hops[u] + 1
			if n <= hops[v] {
				return errors.Wrapf(ErrNegativeCycle, "path to node %d has %d edges", v, hops[v])
			}
			wl.push(v, cand)
		}
	}
}
