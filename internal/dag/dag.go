// Package dag decides whether a directed graph is acyclic.
package dag

// color is the traversal state of a single node.
type color uint8

const (
	unvisited color = iota
	inProgress
	done
)

// Edge is a directed arc from Source to Target.
type Edge[K comparable] struct {
	Source K
	Target K
}

// Graph is an adjacency list restricted to a fixed node set. Edges with an
// endpoint outside the set are dropped when the graph is built.
type Graph[K comparable] struct {
	nodes   []K
	adj     map[K][]K
	edges   int
	dropped int
}

// NewGraph builds a graph from nodes and edges. Duplicate node identifiers
// collapse into one member; edges referencing a non-member are discarded.
func NewGraph[K comparable](nodes []K, edges []Edge[K]) *Graph[K] {
	g := &Graph[K]{
		nodes: make([]K, 0, len(nodes)),
		adj:   make(map[K][]K, len(nodes)),
	}

	for _, n := range nodes {
		if _, ok := g.adj[n]; ok {
			continue
		}
		g.adj[n] = nil
		g.nodes = append(g.nodes, n)
	}

	for _, e := range edges {
		_, srcOK := g.adj[e.Source]
		_, tgtOK := g.adj[e.Target]
		if !srcOK || !tgtOK {
			g.dropped++
			continue
		}
		g.adj[e.Source] = append(g.adj[e.Source], e.Target)
		g.edges++
	}

	return g
}

// Len returns the number of distinct nodes.
func (g *Graph[K]) Len() int { return len(g.nodes) }

// EdgeCount returns the number of admitted edges.
func (g *Graph[K]) EdgeCount() int { return g.edges }

// Dropped returns the number of edges discarded for dangling endpoints.
func (g *Graph[K]) Dropped() int { return g.dropped }

// Successors returns the admitted outgoing neighbors of n.
func (g *Graph[K]) Successors(n K) []K { return g.adj[n] }

// frame is one entry of the explicit DFS stack: a node and the index of the
// next successor to visit.
type frame[K comparable] struct {
	node K
	next int
}

// IsDAG reports whether the graph has no directed cycle. A self-loop counts
// as a cycle. The traversal keeps its own stack so input depth is bounded by
// heap, not goroutine stack.
func (g *Graph[K]) IsDAG() bool {
	state := make(map[K]color, len(g.nodes))
	stack := make([]frame[K], 0, 64)

	for _, root := range g.nodes {
		if state[root] != unvisited {
			continue
		}

		state[root] = inProgress
		stack = append(stack[:0], frame[K]{node: root})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			succ := g.Successors(top.node)

			if top.next == len(succ) {
				state[top.node] = done
				stack = stack[:len(stack)-1]
				continue
			}

			next := succ[top.next]
			top.next++

			switch state[next] {
			case inProgress:
				// Back-edge.
				return false
			case unvisited:
				state[next] = inProgress
				stack = append(stack, frame[K]{node: next})
			}
		}
	}

	return true
}

// IsDAG is shorthand for NewGraph(nodes, edges).IsDAG().
func IsDAG[K comparable](nodes []K, edges []Edge[K]) bool {
	return NewGraph(nodes, edges).IsDAG()
}
