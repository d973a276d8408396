package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for semcore resources.
	uriScheme = "semcore://"

	// defaultRunsLimit bounds the runs resource when no limit is given.
	defaultRunsLimit = 20
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the usage snapshot.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "usage",
		Name:        "usage",
		Description: "Oracle spend against the configured budget limits",
		MIMEType:    "application/json",
	}, s.handleUsageResource)

	// Static resource for recent runs.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "runs",
		Name:        "runs",
		Description: "Recent semantic-core build runs, newest first",
		MIMEType:    "application/json",
	}, s.handleRunsResource)

	// Template for runs with an explicit limit.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "runs/{limit}",
		Name:        "runs-limited",
		Description: "The N most recent build runs",
		MIMEType:    "application/json",
	}, s.handleRunsResource)
}

// handleUsageResource returns the current budget usage snapshot.
func (s *Server) handleUsageResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Budget == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "{}",
			}},
		}, nil
	}

	data, err := json.MarshalIndent(s.ports.Budget.Usage(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling usage: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleRunsResource returns recent build runs.
func (s *Server) handleRunsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Runs == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	limit := extractRunsLimit(req.Params.URI)

	runs, err := s.ports.Runs.ListRuns(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}

	// Build simplified run list.
	type runInfo struct {
		ID           string   `json:"id"`
		Seeds        []string `json:"seeds"`
		KeywordCount int      `json:"keyword_count"`
		ClusterCount int      `json:"cluster_count"`
		CreatedAt    string   `json:"created_at"`
	}

	infos := make([]runInfo, len(runs))
	for i, r := range runs {
		infos[i] = runInfo{
			ID:           r.ID,
			Seeds:        r.Seeds,
			KeywordCount: r.KeywordCount,
			ClusterCount: r.ClusterCount,
			CreatedAt:    r.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling runs: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractRunsLimit extracts the limit from a URI like semcore://runs/{limit}.
// Returns the default for the plain runs URI or an unparsable limit.
func extractRunsLimit(uri string) int {
	const prefix = uriScheme + "runs/"

	if !strings.HasPrefix(uri, prefix) {
		return defaultRunsLimit
	}

	limit, err := strconv.Atoi(strings.TrimPrefix(uri, prefix))
	if err != nil || limit <= 0 {
		return defaultRunsLimit
	}
	return limit
}
