package domain

import "strings"

// Intent is the categorical label of searcher purpose behind a keyword.
type Intent string

const (
	// IntentUnset means the keyword has not been classified yet.
	IntentUnset Intent = ""
	// IntentInformational covers how/what/why/guide queries.
	IntentInformational Intent = "informational"
	// IntentTransactional covers buy/price/order queries.
	IntentTransactional Intent = "transactional"
	// IntentNavigational covers brand and destination queries.
	IntentNavigational Intent = "navigational"
	// IntentCommercial covers best/review/comparison queries.
	IntentCommercial Intent = "commercial"
	// IntentLocal covers near-me and place-bound queries.
	IntentLocal Intent = "local"
)

// Valid returns true if the intent is one of the known labels.
func (i Intent) Valid() bool {
	switch i {
	case IntentInformational, IntentTransactional, IntentNavigational,
		IntentCommercial, IntentLocal:
		return true
	}
	return false
}

// String returns the label, or "unset" for the zero value.
func (i Intent) String() string {
	if i == IntentUnset {
		return "unset"
	}
	return string(i)
}

// Source identifies which acquisition stage discovered a keyword.
type Source string

const (
	// SourceSeed marks a user-supplied seed that the oracle echoed back.
	SourceSeed Source = "seed"
	// SourceExpansion marks a keyword from seed expansion.
	SourceExpansion Source = "expansion"
	// SourceRelated marks a keyword from the related-keywords top-up.
	SourceRelated Source = "related"
	// SourceCompetitor marks a keyword mined from a competitor domain.
	SourceCompetitor Source = "competitor"
)

// Keyword is a candidate discovered during aggregation.
// Intent is set once by the classifier; all other fields are immutable
// after the candidate is created.
type Keyword struct {
	// Keyword is the normalized text, unique within a run.
	Keyword string `json:"keyword"`

	// SearchVolume is the monthly search volume (>= 0).
	SearchVolume int `json:"search_volume"`

	// CPC is the average cost per click in USD (>= 0).
	CPC float64 `json:"cpc"`

	// Competition is the paid competition index in [0, 1].
	Competition float64 `json:"competition"`

	// Difficulty is the keyword difficulty score in [0, 100].
	Difficulty int `json:"keyword_difficulty"`

	// Intent is the classified search intent, IntentUnset until enriched.
	Intent Intent `json:"intent"`

	// Source records the acquisition stage that discovered the keyword.
	Source Source `json:"source"`
}

// NormalizeKeyword case-folds keyword text and collapses runs of
// whitespace to single spaces. Two candidates are duplicates exactly
// when their normalized forms are equal.
func NormalizeKeyword(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
