package clustering

// NoiseID marks a keyword that belongs to no cluster.
const NoiseID = -1

// unassigned is the pre-assignment sentinel, distinct from noise.
const unassigned = -2

// assignClusters runs the density-based neighbor-expansion pass over
// the vectors and returns a cluster id per index (NoiseID for noise).
//
// This deliberately keeps the product's simplified expansion rather
// than textbook DBSCAN: every reachable neighbor joins the cluster,
// and only neighbors that themselves have at least minPts neighbors
// extend the frontier. There is no core/border distinction, and a
// point already marked noise stays noise even when a later cluster
// reaches it. Changing this changes cluster boundaries.
func assignClusters(vectors [][]float64, eps float64, minPts int) []int {
	n := len(vectors)
	ids := make([]int, n)
	for i := range ids {
		ids[i] = unassigned
	}
	visited := make([]bool, n)

	neighbors := func(i int) []int {
		var nbrs []int
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			if Cosine(vectors[i], vectors[j]) >= eps {
				nbrs = append(nbrs, j)
			}
		}
		return nbrs
	}

	clusterID := 0
	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}
		visited[i] = true

		nbrs := neighbors(i)
		if len(nbrs) < minPts {
			ids[i] = NoiseID
			continue
		}

		ids[i] = clusterID
		queue := append([]int(nil), nbrs...)
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]

			if !visited[cur] {
				visited[cur] = true
				curNbrs := neighbors(cur)
				if len(curNbrs) >= minPts {
					queue = append(queue, curNbrs...)
				}
			}

			if ids[cur] == unassigned {
				ids[cur] = clusterID
			}
		}
		clusterID++
	}

	// Every index is either expanded into a cluster or visited by the
	// main loop, but guard against stragglers anyway.
	for i := range ids {
		if ids[i] == unassigned {
			ids[i] = NoiseID
		}
	}
	return ids
}
