package clustering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssignClusters_GroupsMutuallySimilarPoints(t *testing.T) {
	// Four identical directions and one orthogonal outlier.
	vectors := [][]float64{
		{1, 0, 0},
		{1, 0, 0},
		{1, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
	}

	ids := assignClusters(vectors, 0.7, 3)

	assert.Equal(t, []int{0, 0, 0, 0, NoiseID}, ids)
}

func TestAssignClusters_SmallGroupIsNoise(t *testing.T) {
	// Three mutual neighbors each: two neighbors apiece, below minPts.
	vectors := [][]float64{
		{1, 0},
		{1, 0},
		{1, 0},
	}

	ids := assignClusters(vectors, 0.7, 3)

	assert.Equal(t, []int{NoiseID, NoiseID, NoiseID}, ids)
}

func TestAssignClusters_TwoSeparateClusters(t *testing.T) {
	vectors := [][]float64{
		{1, 0, 0},
		{1, 0, 0},
		{1, 0, 0},
		{1, 0, 0},
		{0, 0, 1},
		{0, 0, 1},
		{0, 0, 1},
		{0, 0, 1},
	}

	ids := assignClusters(vectors, 0.7, 3)

	assert.Equal(t, []int{0, 0, 0, 0, 1, 1, 1, 1}, ids)
}

func TestAssignClusters_NoiseIsNeverAbsorbed(t *testing.T) {
	// Index 0 is similar to exactly two cluster members, so the main
	// loop marks it noise before the cluster expands. Expansion later
	// reaches it through those members but must not reassign it.
	vectors := [][]float64{
		{0.75, -0.661, 0}, // cos 0.75 to the first pair, 0.39 to the second
		{1, 0, 0},
		{1, 0, 0},
		{0.9, 0.436, 0},
		{0.9, 0.436, 0},
	}

	ids := assignClusters(vectors, 0.7, 3)

	assert.Equal(t, []int{NoiseID, 0, 0, 0, 0}, ids)
}

func TestAssignClusters_SparseNeighborDoesNotExtendFrontier(t *testing.T) {
	// Index 4 joins the cluster through its two neighbors but has too
	// few neighbors to extend the frontier, so index 5 (reachable only
	// through it) stays out.
	vectors := [][]float64{
		{1, 0, 0},
		{0.940, 0.342, 0},
		{0.940, 0.342, 0},
		{0.940, 0.342, 0},
		{0.766, -0.643, 0}, // neighbors: 0 and 5 only
		{0.259, -0.966, 0}, // neighbors: 4 only
	}

	ids := assignClusters(vectors, 0.7, 3)

	assert.Equal(t, []int{0, 0, 0, 0, 0, NoiseID}, ids)
}

func TestAssignClusters_EmptyInput(t *testing.T) {
	assert.Empty(t, assignClusters(nil, 0.7, 3))
}

func TestAssignClusters_SinglePointIsNoise(t *testing.T) {
	ids := assignClusters([][]float64{{1, 0}}, 0.7, 3)
	assert.Equal(t, []int{NoiseID}, ids)
}

func TestAssignClusters_ZeroVectorIsNoise(t *testing.T) {
	vectors := [][]float64{
		{0, 0},
		{1, 0},
		{1, 0},
		{1, 0},
		{1, 0},
	}

	ids := assignClusters(vectors, 0.7, 3)

	assert.Equal(t, NoiseID, ids[0])
	for _, id := range ids[1:] {
		assert.Equal(t, 0, id)
	}
}
