package domain

// OrganicResult is one organic SERP position used for intent analysis.
type OrganicResult struct {
	// Title is the result title, matched case-insensitively.
	Title string `json:"title"`

	// URL is the result URL, matched case-insensitively.
	URL string `json:"url"`
}

// SERPSignals are the feature flags and top organic results for one
// keyword's search results page. The classifier derives intent from
// these alone.
type SERPSignals struct {
	// PeopleAlsoAsk indicates a people-also-ask block is present.
	PeopleAlsoAsk bool `json:"people_also_ask"`

	// FeaturedSnippet indicates a featured snippet is present.
	FeaturedSnippet bool `json:"featured_snippet"`

	// KnowledgeGraph indicates a knowledge graph panel is present.
	KnowledgeGraph bool `json:"knowledge_graph"`

	// ShoppingResults indicates shopping results are present.
	ShoppingResults bool `json:"shopping_results"`

	// LocalPack indicates a local pack is present.
	LocalPack bool `json:"local_pack"`

	// Top10 are the top organic results, at most ten.
	Top10 []OrganicResult `json:"top10"`
}
