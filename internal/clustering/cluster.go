package clustering

import (
	"math"
	"sort"

	"github.com/clearpath-labs/semcore-cli/internal/core/domain"
)

// Defaults tuned for keyword sets of around a hundred candidates.
const (
	// DefaultEps is the cosine similarity above which two keywords are
	// neighbors.
	DefaultEps = 0.7

	// DefaultMinPoints is the smallest neighborhood that seeds a
	// cluster.
	DefaultMinPoints = 3
)

// Options configure a clustering pass. Zero values fall back to the
// defaults.
type Options struct {
	// Eps is the neighbor similarity threshold.
	Eps float64

	// MinPoints is the minimum neighborhood size for a core point.
	MinPoints int
}

func (o Options) withDefaults() Options {
	if o.Eps <= 0 {
		o.Eps = DefaultEps
	}
	if o.MinPoints <= 0 {
		o.MinPoints = DefaultMinPoints
	}
	return o
}

// Clusters partitions keywords into named clusters by text similarity.
// Noise candidates are dropped from the output. An empty candidate set
// yields an empty cluster list, never an error.
//
// Each keyword lands in exactly one cluster or in none. Members are
// ordered by search volume descending, and the cluster list by total
// search volume descending.
func Clusters(keywords []domain.Keyword, opts Options) []domain.Cluster {
	if len(keywords) == 0 {
		return nil
	}
	opts = opts.withDefaults()

	docs := make([]string, len(keywords))
	for i, k := range keywords {
		docs[i] = k.Keyword
	}

	ids := assignClusters(TFIDFVectors(docs), opts.Eps, opts.MinPoints)

	// Group by cluster id, preserving input order within each group.
	groups := make(map[int][]domain.Keyword)
	var order []int
	for i, k := range keywords {
		id := ids[i]
		if id == NoiseID {
			continue
		}
		if _, ok := groups[id]; !ok {
			order = append(order, id)
		}
		groups[id] = append(groups[id], k)
	}

	clusters := make([]domain.Cluster, 0, len(order))
	for _, id := range order {
		clusters = append(clusters, materialize(id, groups[id]))
	}

	sort.SliceStable(clusters, func(i, j int) bool {
		return clusters[i].TotalSearchVolume > clusters[j].TotalSearchVolume
	})
	return clusters
}

// materialize builds the immutable cluster value for one member group.
func materialize(id int, members []domain.Keyword) domain.Cluster {
	sorted := append([]domain.Keyword(nil), members...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SearchVolume > sorted[j].SearchVolume
	})

	var totalVolume, totalDifficulty int
	for _, k := range sorted {
		totalVolume += k.SearchVolume
		totalDifficulty += k.Difficulty
	}

	return domain.Cluster{
		ID:                id,
		Name:              sorted[0].Keyword,
		Members:           sorted,
		TotalSearchVolume: totalVolume,
		AvgDifficulty:     int(math.Round(float64(totalDifficulty) / float64(len(sorted)))),
		DominantIntent:    dominantIntent(sorted),
	}
}

// dominantIntent returns the most frequent intent among members. Ties
// break on the intent encountered first in the sorted member order.
func dominantIntent(members []domain.Keyword) domain.Intent {
	counts := make(map[domain.Intent]int)
	for _, k := range members {
		counts[k.Intent]++
	}

	best := members[0].Intent
	for _, k := range members[1:] {
		if counts[k.Intent] > counts[best] {
			best = k.Intent
		}
	}
	return best
}

// Summarize aggregates one run's candidates and clusters for
// reporting. Noise candidates count toward the totals but not toward
// any cluster.
func Summarize(keywords []domain.Keyword, clusters []domain.Cluster) domain.Summary {
	s := domain.Summary{
		TotalKeywords:      len(keywords),
		IntentDistribution: make(map[domain.Intent]int),
		ClusterCount:       len(clusters),
	}
	for _, k := range keywords {
		s.TotalSearchVolume += k.SearchVolume
		s.IntentDistribution[k.Intent]++
	}
	return s
}
