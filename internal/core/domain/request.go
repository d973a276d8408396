package domain

import (
	"fmt"
	"time"
)

// Seed count bounds for a build request.
const (
	MinSeeds = 1
	MaxSeeds = 5
)

// DefaultTargetSize is the target candidate count when the request
// does not specify one.
const DefaultTargetSize = 100

// QualityFilters prune low-value candidates before they enter the
// candidate set.
type QualityFilters struct {
	// MinSearchVolume drops candidates below this monthly volume.
	MinSearchVolume int `json:"min_search_volume"`

	// MaxDifficulty drops candidates above this difficulty score.
	MaxDifficulty int `json:"max_difficulty"`
}

// DefaultFilters returns the stock quality filters.
func DefaultFilters() QualityFilters {
	return QualityFilters{
		MinSearchVolume: 10,
		MaxDifficulty:   50,
	}
}

// Keep reports whether a candidate passes the filters.
func (f QualityFilters) Keep(k Keyword) bool {
	if k.SearchVolume < f.MinSearchVolume {
		return false
	}
	if f.MaxDifficulty > 0 && k.Difficulty > f.MaxDifficulty {
		return false
	}
	return true
}

// Locale is the language/location pair every oracle call is scoped to.
type Locale struct {
	// LanguageCode is an ISO 639-1 code, e.g. "en".
	LanguageCode string `json:"language_code"`

	// LocationCode is the oracle's numeric location identifier.
	LocationCode int `json:"location_code"`
}

// CoreRequest describes one semantic-core build run.
type CoreRequest struct {
	// Seeds are 1-5 starting phrases.
	Seeds []string `json:"seeds"`

	// Locale scopes all oracle lookups.
	Locale Locale `json:"locale"`

	// TargetSize is the desired candidate count. Zero means
	// DefaultTargetSize.
	TargetSize int `json:"target_size"`

	// CompetitorDomain optionally enables competitor mining.
	CompetitorDomain string `json:"competitor_domain,omitempty"`

	// Filters prune candidates during seed expansion. Nil means
	// DefaultFilters.
	Filters *QualityFilters `json:"filters,omitempty"`
}

// Validate checks request bounds before any external call is made.
func (r CoreRequest) Validate() error {
	if len(r.Seeds) < MinSeeds || len(r.Seeds) > MaxSeeds {
		return fmt.Errorf("%w: need %d-%d seeds, got %d", ErrInvalidInput, MinSeeds, MaxSeeds, len(r.Seeds))
	}
	for _, s := range r.Seeds {
		if NormalizeKeyword(s) == "" {
			return fmt.Errorf("%w: empty seed", ErrInvalidInput)
		}
	}
	if r.Locale.LanguageCode == "" {
		return fmt.Errorf("%w: language code required", ErrInvalidInput)
	}
	if r.Locale.LocationCode <= 0 {
		return fmt.Errorf("%w: location code required", ErrInvalidInput)
	}
	if r.TargetSize < 0 {
		return fmt.Errorf("%w: target size must not be negative", ErrInvalidInput)
	}
	return nil
}

// CoreResult is the output of one build run: the truncated candidate
// list, its clusters, and run accounting.
type CoreResult struct {
	// RunID uniquely identifies the run.
	RunID string `json:"run_id"`

	// Keywords is the final candidate list, sorted by search volume
	// descending then difficulty ascending, truncated to target size.
	Keywords []Keyword `json:"keywords"`

	// Clusters groups the final candidates by text similarity, sorted
	// by total search volume descending. Noise is excluded.
	Clusters []Cluster `json:"clusters"`

	// TotalFound is the deduplicated candidate count before truncation.
	TotalFound int `json:"total_found"`

	// SourceCounts breaks the final candidates down by discovery stage.
	SourceCounts map[Source]int `json:"source_counts"`

	// Summary aggregates the clustering outcome.
	Summary Summary `json:"summary"`

	// ProcessingTime is the wall time the run took.
	ProcessingTime time.Duration `json:"processing_time"`
}
