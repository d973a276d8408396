package domain

// Cluster is a group of semantically similar keywords produced by the
// clustering engine. Clusters are never mutated after creation; noise
// candidates are excluded from cluster output entirely.
type Cluster struct {
	// ID is the cluster identifier assigned during expansion (>= 0).
	ID int `json:"cluster_id"`

	// Name is the text of the highest-volume member.
	Name string `json:"cluster_name"`

	// Members are the keywords in the cluster, ordered by search volume
	// descending.
	Members []Keyword `json:"keywords"`

	// TotalSearchVolume is the sum of the members' search volumes.
	TotalSearchVolume int `json:"total_search_volume"`

	// AvgDifficulty is the mean member difficulty, rounded to the
	// nearest integer.
	AvgDifficulty int `json:"avg_keyword_difficulty"`

	// DominantIntent is the most frequent intent among members. Ties
	// break on the first intent encountered in member order.
	DominantIntent Intent `json:"dominant_intent"`
}

// Summary aggregates a clustering run for reporting.
type Summary struct {
	// TotalKeywords is the number of candidates fed to the engine.
	TotalKeywords int `json:"total_keywords"`

	// TotalSearchVolume is the combined volume of all candidates,
	// including noise.
	TotalSearchVolume int `json:"total_search_volume"`

	// IntentDistribution counts candidates per intent label.
	IntentDistribution map[Intent]int `json:"intent_distribution"`

	// ClusterCount is the number of non-noise clusters formed.
	ClusterCount int `json:"cluster_count"`
}
