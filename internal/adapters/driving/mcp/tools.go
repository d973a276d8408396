package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/clearpath-labs/semcore-cli/internal/core/domain"
)

// BuildInput is the input schema for the build tool.
type BuildInput struct {
	Seeds            []string `json:"seeds" jsonschema:"1-5 seed phrases to expand"`
	LanguageCode     string   `json:"language_code,omitempty" jsonschema:"ISO 639-1 language code (default en)"`
	LocationCode     int      `json:"location_code,omitempty" jsonschema:"numeric location code (default 2840, United States)"`
	TargetSize       int      `json:"target_size,omitempty" jsonschema:"desired keyword count (default 100)"`
	CompetitorDomain string   `json:"competitor_domain,omitempty" jsonschema:"competitor domain to mine when below target"`
}

// BuildOutput is the output schema for the build tool.
type BuildOutput struct {
	RunID        string          `json:"run_id"`
	KeywordCount int             `json:"keyword_count"`
	TotalFound   int             `json:"total_found"`
	Clusters     []ClusterOutput `json:"clusters"`
}

// ClusterOutput represents a single keyword cluster.
type ClusterOutput struct {
	ID                int      `json:"id"`
	Name              string   `json:"name"`
	KeywordCount      int      `json:"keyword_count"`
	TotalSearchVolume int      `json:"total_search_volume"`
	AvgDifficulty     int      `json:"avg_difficulty"`
	DominantIntent    string   `json:"dominant_intent"`
	Keywords          []string `json:"keywords"`
}

// EstimateInput is the input schema for the estimate tool.
type EstimateInput struct {
	Kind         string `json:"kind" jsonschema:"operation kind: expansion, metrics, serp or suggestions"`
	UnitCount    int    `json:"unit_count" jsonschema:"number of billable units"`
	KeywordCount int    `json:"keyword_count,omitempty" jsonschema:"keywords submitted in one batch"`
}

// EstimateOutput is the output schema for the estimate tool.
type EstimateOutput struct {
	Allowed       bool    `json:"allowed"`
	EstimatedCost float64 `json:"estimated_cost"`
	Reason        string  `json:"reason,omitempty"`
	Warning       string  `json:"warning,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "build_semantic_core",
		Description: "Expand seed phrases into a clustered, budget-bounded keyword set",
	}, s.handleBuild)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "estimate_cost",
		Description: "Price an oracle operation and check it against the budget without spending",
	}, s.handleEstimate)
}

// handleBuild handles the build tool invocation.
func (s *Server) handleBuild(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input BuildInput,
) (*mcp.CallToolResult, BuildOutput, error) {
	language := input.LanguageCode
	if language == "" {
		language = "en"
	}
	location := input.LocationCode
	if location == 0 {
		location = 2840
	}

	req := domain.CoreRequest{
		Seeds: input.Seeds,
		Locale: domain.Locale{
			LanguageCode: language,
			LocationCode: location,
		},
		TargetSize:       input.TargetSize,
		CompetitorDomain: input.CompetitorDomain,
	}

	result, err := s.ports.Core.BuildCore(ctx, req)
	if err != nil {
		return nil, BuildOutput{}, err
	}

	output := BuildOutput{
		RunID:        result.RunID,
		KeywordCount: len(result.Keywords),
		TotalFound:   result.TotalFound,
		Clusters:     make([]ClusterOutput, len(result.Clusters)),
	}

	for i, c := range result.Clusters {
		keywords := make([]string, len(c.Members))
		for j, k := range c.Members {
			keywords[j] = k.Keyword
		}
		output.Clusters[i] = ClusterOutput{
			ID:                c.ID,
			Name:              c.Name,
			KeywordCount:      len(c.Members),
			TotalSearchVolume: c.TotalSearchVolume,
			AvgDifficulty:     c.AvgDifficulty,
			DominantIntent:    c.DominantIntent.String(),
			Keywords:          keywords,
		}
	}

	return nil, output, nil
}

// handleEstimate handles the estimate tool invocation.
func (s *Server) handleEstimate(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input EstimateInput,
) (*mcp.CallToolResult, EstimateOutput, error) {
	kind := domain.OperationKind(input.Kind)
	if !kind.Valid() {
		return nil, EstimateOutput{}, fmt.Errorf("%w: unknown operation kind %q", domain.ErrInvalidInput, input.Kind)
	}

	decision, estimate := s.ports.Core.CheckAndEstimate(kind, input.UnitCount, input.KeywordCount)

	return nil, EstimateOutput{
		Allowed:       decision.Allowed,
		EstimatedCost: estimate,
		Reason:        decision.Reason,
		Warning:       decision.Warning,
	}, nil
}
