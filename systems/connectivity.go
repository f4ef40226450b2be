package systems

import "github.com/pthm-cable/slime/components"

// MainGroup returns a dense membership mask for the largest connected
// component of the proximity graph over the given particles. Two particles
// are connected when their separation is strictly less than radius. Dead
// particles are excluded from the graph entirely. Ties between equally sized
// components keep the first one found in index order.
//
// The scan is quadratic; acceptable because particle counts stay in the low
// hundreds.
func MainGroup(pos []*components.Position, part []*components.Particle, radius float32) []bool {
	n := len(pos)
	group := make([]bool, n)
	if n == 0 {
		return group
	}

	radiusSq := radius * radius

	// Adjacency lists over live particles.
	adj := make([][]int, n)
	for i := 0; i < n; i++ {
		if !part[i].Alive() {
			continue
		}
		for j := i + 1; j < n; j++ {
			if !part[j].Alive() {
				continue
			}
			if distanceSq(pos[i].X, pos[i].Y, pos[j].X, pos[j].Y) < radiusSq {
				adj[i] = append(adj[i], j)
				adj[j] = append(adj[j], i)
			}
		}
	}

	// BFS from each unvisited live node, keeping the largest component.
	visited := make([]bool, n)
	var best []int
	queue := make([]int, 0, n)

	for start := 0; start < n; start++ {
		if visited[start] || !part[start].Alive() {
			continue
		}
		queue = queue[:0]
		queue = append(queue, start)
		visited[start] = true
		component := []int{start}

		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, next := range adj[cur] {
				if !visited[next] {
					visited[next] = true
					queue = append(queue, next)
					component = append(component, next)
				}
			}
		}

		if len(component) > len(best) {
			best = component
		}
	}

	for _, idx := range best {
		group[idx] = true
	}
	return group
}
