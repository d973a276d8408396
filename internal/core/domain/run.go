package domain

import "time"

// RunRecord is the persisted accounting row for one completed build
// run. The engine itself holds no store; the caller persists these.
type RunRecord struct {
	// ID is the run identifier (UUID).
	ID string `json:"id"`

	// Seeds are the seed phrases the run started from.
	Seeds []string `json:"seeds"`

	// LanguageCode and LocationCode scope the run.
	LanguageCode string `json:"language_code"`
	LocationCode int    `json:"location_code"`

	// TargetSize is the requested candidate count.
	TargetSize int `json:"target_size"`

	// TotalFound is the deduplicated candidate count before truncation.
	TotalFound int `json:"total_found"`

	// KeywordCount and ClusterCount describe the final output.
	KeywordCount int `json:"keyword_count"`
	ClusterCount int `json:"cluster_count"`

	// Elapsed is the run's wall time.
	Elapsed time.Duration `json:"elapsed"`

	// CreatedAt is when the run completed.
	CreatedAt time.Time `json:"created_at"`
}
