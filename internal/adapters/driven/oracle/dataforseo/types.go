package dataforseo

import "encoding/json"

// envelope is the common DataForSEO response wrapper. Billing applies
// whenever the envelope carries a cost, even for empty results.
type envelope struct {
	StatusCode    int     `json:"status_code"`
	StatusMessage string  `json:"status_message"`
	Cost          float64 `json:"cost"`
	Tasks         []task  `json:"tasks"`
}

type task struct {
	StatusCode    int             `json:"status_code"`
	StatusMessage string          `json:"status_message"`
	Result        json.RawMessage `json:"result"`
}

// keywordInfo carries the billed keyword metrics. The API returns
// null for metrics it has no data for, hence the pointers.
type keywordInfo struct {
	SearchVolume      *int     `json:"search_volume"`
	CPC               *float64 `json:"cpc"`
	Competition       *float64 `json:"competition"`
	KeywordDifficulty *int     `json:"keyword_difficulty"`
}

// labsItem is a keywords_for_keywords result row: metrics are inlined.
type labsItem struct {
	Keyword     string       `json:"keyword"`
	KeywordInfo *keywordInfo `json:"keyword_info"`
}

// nestedItem is a related_keywords or keywords_for_site result row:
// metrics sit one level deeper under keyword_data.
type nestedItem struct {
	Keyword     string `json:"keyword"`
	KeywordData *struct {
		KeywordInfo *keywordInfo `json:"keyword_info"`
	} `json:"keyword_data"`
}

// serpResult is a SERP organic result page.
type serpResult struct {
	ItemTypes []string   `json:"item_types"`
	Items     []serpItem `json:"items"`
}

type serpItem struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

func intVal(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func floatVal(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// labsRequest is the shared task payload for the Labs live endpoints.
// Exactly one of Keywords, Keyword or Target is set, depending on the
// endpoint.
type labsRequest struct {
	Keywords           []string       `json:"keywords,omitempty"`
	Keyword            string         `json:"keyword,omitempty"`
	Target             string         `json:"target,omitempty"`
	LanguageCode       string         `json:"language_code"`
	LocationCode       int            `json:"location_code"`
	Limit              int            `json:"limit,omitempty"`
	IncludeSERPInfo    bool           `json:"include_serp_info,omitempty"`
	IncludeSeedKeyword bool           `json:"include_seed_keyword,omitempty"`
	Filters            []filterClause `json:"filters,omitempty"`
	OrderBy            []string       `json:"order_by,omitempty"`
}

// filterClause is a DataForSEO filter triple: field, operator, value.
type filterClause [3]any

// serpRequest is the task payload for the SERP organic live endpoint.
type serpRequest struct {
	Keyword             string `json:"keyword"`
	LanguageCode        string `json:"language_code"`
	LocationCode        int    `json:"location_code"`
	Device              string `json:"device"`
	OS                  string `json:"os"`
	Depth               int    `json:"depth"`
	CalculateRectangles bool   `json:"calculate_rectangles"`
}
