// pkg/grid/pathfinding.go
package grid

import (
	"container/heap"
)

// AStar finds the shortest 4-directional route from g.Start to g.End.
// Edges cost 1, the heuristic is Manhattan distance. Returns nil when no
// route exists; callers decide policy, nothing crashes here.
func AStar(g *Grid) []Point {
	pq := &priorityQueue{}
	heap.Init(pq)
	heap.Push(pq, &node{Point: g.Start, Cost: 0, Parent: nil})
	costSoFar := map[Point]int{g.Start: 0}
	for pq.Len() > 0 {
		current := heap.Pop(pq).(*node)
		if current.Point == g.End {
			return reconstructPath(current)
		}
		for _, neighbor := range current.Point.Neighbors() {
			if !g.Walkable(neighbor) {
				continue
			}
			newCost := costSoFar[current.Point] + 1
			if old, exists := costSoFar[neighbor]; !exists || newCost < old {
				costSoFar[neighbor] = newCost
				priority := newCost + neighbor.Distance(g.End)
				heap.Push(pq, &node{Point: neighbor, Cost: priority, Parent: current})
			}
		}
	}
	return nil // no route
}

type node struct {
	Point  Point
	Cost   int
	Parent *node
}

type priorityQueue []*node

func (pq priorityQueue) Len() int           { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool { return pq[i].Cost < pq[j].Cost }
func (pq priorityQueue) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(*node))
}
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}

func reconstructPath(n *node) []Point {
	path := []Point{}
	for n != nil {
		path = append([]Point{n.Point}, path...)
		n = n.Parent
	}
	return path
}
