// Package graph implements cycle detection and topological layering for
// task dependency links. It works on plain task ids so it stays decoupled
// from storage; callers build the edge list from the current link set.
package graph

import "sort"

// Edge is a directed edge between two task ids.
// In stored-link orientation, From depends on To.
type Edge struct {
	From int
	To   int
}

// WouldCreateCycle reports whether adding the edge (newFrom -> newTo) to the
// existing edge set would close a directed cycle. It runs a breadth-first
// search from newTo following edges in their stored direction: if newFrom is
// already reachable from newTo, the new edge completes a loop.
//
// The edge set is not assumed to be well-formed; duplicate edges are harmless
// and the visited set guards against revisiting (and against pre-existing
// cycles in malformed input).
func WouldCreateCycle(edges []Edge, newFrom, newTo int) bool {
	if newFrom == newTo {
		return true
	}

	adjacency := make(map[int][]int, len(edges))
	for _, e := range edges {
		adjacency[e.From] = append(adjacency[e.From], e.To)
	}

	visited := make(map[int]bool)
	queue := []int{newTo}
	visited[newTo] = true

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == newFrom {
			return true
		}

		for _, next := range adjacency[current] {
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}

	return false
}

// TopologicalLayers partitions nodes into layers using Kahn's algorithm by
// in-degree: layer 0 holds nodes no edge points into (for the graph view,
// tasks with no prerequisites and disconnected tasks), and every edge goes
// from an earlier layer to a later one. Within a layer, nodes are ordered by
// ascending id.
//
// Callers choose the edge orientation; the graph view passes edges flipped to
// prerequisite -> dependent so upstream tasks land in earlier layers.
//
// The input is treated defensively: edges touching nodes outside the node
// set are ignored, duplicates are counted once, and nodes trapped on a cycle
// (which Kahn's never releases) are appended as one final layer instead of
// looping forever.
func TopologicalLayers(nodes []int, edges []Edge) [][]int {
	inSet := make(map[int]bool, len(nodes))
	for _, n := range nodes {
		inSet[n] = true
	}

	indegree := make(map[int]int, len(nodes))
	adjacency := make(map[int][]int)
	seen := make(map[Edge]bool, len(edges))
	for _, e := range edges {
		if !inSet[e.From] || !inSet[e.To] {
			continue
		}
		if seen[e] {
			continue
		}
		seen[e] = true
		adjacency[e.From] = append(adjacency[e.From], e.To)
		indegree[e.To]++
	}

	var current []int
	for n := range inSet {
		if indegree[n] == 0 {
			current = append(current, n)
		}
	}
	sort.Ints(current)

	var layers [][]int
	placed := make(map[int]bool, len(nodes))
	for len(current) > 0 {
		layer := make([]int, 0, len(current))
		for _, n := range current {
			if placed[n] {
				continue
			}
			placed[n] = true
			layer = append(layer, n)
		}

		var next []int
		for _, n := range layer {
			for _, m := range adjacency[n] {
				indegree[m]--
				if indegree[m] == 0 && !placed[m] {
					next = append(next, m)
				}
			}
		}
		sort.Ints(next)

		if len(layer) > 0 {
			layers = append(layers, layer)
		}
		current = next
	}

	// Anything left never reached in-degree zero: it sits on a cycle.
	// Emit it as a terminal layer so rendering still shows every task.
	var leftover []int
	for n := range inSet {
		if !placed[n] {
			leftover = append(leftover, n)
		}
	}
	if len(leftover) > 0 {
		sort.Ints(leftover)
		layers = append(layers, leftover)
	}

	return layers
}
