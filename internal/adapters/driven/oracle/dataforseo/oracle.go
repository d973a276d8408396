package dataforseo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/clearpath-labs/semcore-cli/internal/core/domain"
	"github.com/clearpath-labs/semcore-cli/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.KeywordOracle = (*Client)(nil)

// serpDepth is the organic depth fetched for intent analysis. The
// classifier only reads the top ten results.
const serpDepth = 10

// ExpandSeed generates keyword ideas from one seed via the Labs
// keywords_for_keywords endpoint, with quality filters pushed down to
// the API.
func (c *Client) ExpandSeed(
	ctx context.Context,
	seed string,
	loc domain.Locale,
	limit int,
	filters domain.QualityFilters,
) (*driven.KeywordBatch, error) {
	payload := labsRequest{
		Keywords:           []string{seed},
		LanguageCode:       loc.LanguageCode,
		LocationCode:       loc.LocationCode,
		Limit:              limit,
		IncludeSERPInfo:    true,
		IncludeSeedKeyword: true,
		Filters:            filterClauses(filters),
		OrderBy:            []string{"keyword_info.search_volume,desc"},
	}

	env, err := c.post(ctx, endpointKeywordsForKeywords, payload)
	if err != nil {
		return nil, err
	}

	batch := &driven.KeywordBatch{Cost: env.Cost}
	raw := firstTaskResult(env)
	if raw == nil {
		return batch, nil
	}

	var items []labsItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode keywords_for_keywords result: %w", err)
	}
	for _, item := range items {
		batch.Rows = append(batch.Rows, labsRow(item))
	}
	return batch, nil
}

// RelatedKeywords fetches keywords related to one keyword via the Labs
// related_keywords endpoint.
func (c *Client) RelatedKeywords(
	ctx context.Context,
	keyword string,
	loc domain.Locale,
	limit int,
) (*driven.KeywordBatch, error) {
	payload := labsRequest{
		Keyword:         keyword,
		LanguageCode:    loc.LanguageCode,
		LocationCode:    loc.LocationCode,
		Limit:           limit,
		IncludeSERPInfo: true,
	}

	env, err := c.post(ctx, endpointRelatedKeywords, payload)
	if err != nil {
		return nil, err
	}
	return nestedBatch(env, "related_keywords")
}

// KeywordsForDomain fetches keywords a domain ranks for via the Labs
// keywords_for_site endpoint.
func (c *Client) KeywordsForDomain(
	ctx context.Context,
	target string,
	loc domain.Locale,
	limit int,
) (*driven.KeywordBatch, error) {
	payload := labsRequest{
		Target:          target,
		LanguageCode:    loc.LanguageCode,
		LocationCode:    loc.LocationCode,
		Limit:           limit,
		IncludeSERPInfo: true,
		OrderBy:         []string{"keyword_data.keyword_info.search_volume,desc"},
	}

	env, err := c.post(ctx, endpointKeywordsForSite, payload)
	if err != nil {
		return nil, err
	}
	return nestedBatch(env, "keywords_for_site")
}

// SERPFeatures fetches the organic SERP for one keyword and distills
// it into intent signals.
func (c *Client) SERPFeatures(ctx context.Context, keyword string, loc domain.Locale) (*driven.SERPBatch, error) {
	payload := serpRequest{
		Keyword:             keyword,
		LanguageCode:        loc.LanguageCode,
		LocationCode:        loc.LocationCode,
		Device:              "desktop",
		OS:                  "windows",
		Depth:               serpDepth,
		CalculateRectangles: false,
	}

	env, err := c.post(ctx, endpointSERPOrganic, payload)
	if err != nil {
		return nil, err
	}

	batch := &driven.SERPBatch{Cost: env.Cost}
	raw := firstTaskResult(env)
	if raw == nil {
		return batch, nil
	}

	var results []serpResult
	if err := json.Unmarshal(raw, &results); err != nil {
		return nil, fmt.Errorf("decode serp result: %w", err)
	}
	if len(results) == 0 {
		return batch, nil
	}
	batch.Signals = serpSignals(results[0])
	return batch, nil
}

// filterClauses translates the quality filters into DataForSEO filter
// triples. A zero MaxDifficulty disables the difficulty clause, in
// line with the filter's own Keep semantics.
func filterClauses(filters domain.QualityFilters) []filterClause {
	var clauses []filterClause
	if filters.MinSearchVolume > 0 {
		clauses = append(clauses, filterClause{"keyword_info.search_volume", ">=", filters.MinSearchVolume})
	}
	if filters.MaxDifficulty > 0 {
		clauses = append(clauses, filterClause{"keyword_info.keyword_difficulty", "<=", filters.MaxDifficulty})
	}
	return clauses
}

func labsRow(item labsItem) domain.Keyword {
	row := domain.Keyword{Keyword: item.Keyword}
	if info := item.KeywordInfo; info != nil {
		row.SearchVolume = intVal(info.SearchVolume)
		row.CPC = floatVal(info.CPC)
		row.Competition = floatVal(info.Competition)
		row.Difficulty = intVal(info.KeywordDifficulty)
	}
	return row
}

// nestedBatch decodes result rows whose metrics live under
// keyword_data.
func nestedBatch(env *envelope, what string) (*driven.KeywordBatch, error) {
	batch := &driven.KeywordBatch{Cost: env.Cost}
	raw := firstTaskResult(env)
	if raw == nil {
		return batch, nil
	}

	var items []nestedItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode %s result: %w", what, err)
	}
	for _, item := range items {
		row := domain.Keyword{Keyword: item.Keyword}
		if item.KeywordData != nil && item.KeywordData.KeywordInfo != nil {
			info := item.KeywordData.KeywordInfo
			row.SearchVolume = intVal(info.SearchVolume)
			row.CPC = floatVal(info.CPC)
			row.Competition = floatVal(info.Competition)
			row.Difficulty = intVal(info.KeywordDifficulty)
		}
		batch.Rows = append(batch.Rows, row)
	}
	return batch, nil
}

// serpSignals distills one SERP page into the classifier's inputs.
func serpSignals(result serpResult) domain.SERPSignals {
	signals := domain.SERPSignals{}
	for _, itemType := range result.ItemTypes {
		switch itemType {
		case "people_also_ask":
			signals.PeopleAlsoAsk = true
		case "featured_snippet":
			signals.FeaturedSnippet = true
		case "knowledge_graph":
			signals.KnowledgeGraph = true
		case "shopping":
			signals.ShoppingResults = true
		case "local_pack":
			signals.LocalPack = true
		}
	}

	for _, item := range result.Items {
		if item.Type != "organic" {
			continue
		}
		signals.Top10 = append(signals.Top10, domain.OrganicResult{Title: item.Title, URL: item.URL})
		if len(signals.Top10) == serpDepth {
			break
		}
	}
	return signals
}
