package driven

import (
	"context"

	"github.com/clearpath-labs/semcore-cli/internal/core/domain"
)

// KeywordBatch is one keyword-returning oracle response: the rows and
// the actual cost the oracle billed for the call. Actual cost feeds the
// budget guard; it is authoritative over any estimate.
type KeywordBatch struct {
	// Rows carry keyword text and base metrics. Intent and Source are
	// left unset; the aggregator assigns them.
	Rows []domain.Keyword

	// Cost is the billed cost of the call, USD.
	Cost float64
}

// SERPBatch is one SERP-features oracle response.
type SERPBatch struct {
	// Signals are the feature flags and top organic results.
	Signals domain.SERPSignals

	// Cost is the billed cost of the call, USD.
	Cost float64
}

// KeywordOracle is the external keyword-metrics/SERP data provider.
// Every call costs real money; callers consult the budget guard first
// and record the returned Cost afterwards. Implementations own pacing:
// calls block until the provider's rate limit permits them.
type KeywordOracle interface {
	// ExpandSeed requests keyword ideas derived from one seed phrase,
	// pre-filtered by the oracle where the filters allow it.
	ExpandSeed(ctx context.Context, seed string, loc domain.Locale, limit int, filters domain.QualityFilters) (*KeywordBatch, error)

	// RelatedKeywords requests keywords related to one keyword, with a
	// broader net than seed expansion.
	RelatedKeywords(ctx context.Context, keyword string, loc domain.Locale, limit int) (*KeywordBatch, error)

	// KeywordsForDomain requests keywords a domain ranks for.
	KeywordsForDomain(ctx context.Context, target string, loc domain.Locale, limit int) (*KeywordBatch, error)

	// SERPFeatures requests the feature flags and top-10 organic
	// results for one keyword.
	SERPFeatures(ctx context.Context, keyword string, loc domain.Locale) (*SERPBatch, error)
}
