package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clearpath-labs/semcore-cli/internal/core/domain"
)

func TestExtractRunsLimit(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected int
	}{
		{
			name:     "valid limit URI",
			uri:      "semcore://runs/5",
			expected: 5,
		},
		{
			name:     "plain runs URI uses default",
			uri:      "semcore://runs",
			expected: defaultRunsLimit,
		},
		{
			name:     "non-numeric limit uses default",
			uri:      "semcore://runs/lots",
			expected: defaultRunsLimit,
		},
		{
			name:     "negative limit uses default",
			uri:      "semcore://runs/-3",
			expected: defaultRunsLimit,
		},
		{
			name:     "empty URI uses default",
			uri:      "",
			expected: defaultRunsLimit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractRunsLimit(tt.uri)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleUsageResource(t *testing.T) {
	ctx := context.Background()

	t.Run("nil budget service returns empty object", func(t *testing.T) {
		ports := &Ports{Core: &mockCoreService{}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		req := makeReadResourceRequest("semcore://usage")
		result, err := server.handleUsageResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "{}", result.Contents[0].Text)
	})

	t.Run("returns usage snapshot", func(t *testing.T) {
		mockBudget := &mockBudgetService{
			stats: domain.UsageStats{
				Today:         domain.WindowUsage{Used: 0.5, Limit: 2, Remaining: 1.5, Percent: 25},
				Month:         domain.WindowUsage{Used: 4, Limit: 20, Remaining: 16, Percent: 20},
				TotalRequests: 7,
			},
		}
		ports := &Ports{Core: &mockCoreService{}, Budget: mockBudget}
		server, err := NewServer(ports)
		require.NoError(t, err)

		req := makeReadResourceRequest("semcore://usage")
		result, err := server.handleUsageResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)

		var stats domain.UsageStats
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &stats))
		assert.InDelta(t, 0.5, stats.Today.Used, 1e-9)
		assert.Equal(t, int64(7), stats.TotalRequests)
	})
}

func TestServer_handleRunsResource(t *testing.T) {
	ctx := context.Background()

	t.Run("nil run store returns empty list", func(t *testing.T) {
		ports := &Ports{Core: &mockCoreService{}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		req := makeReadResourceRequest("semcore://runs")
		result, err := server.handleRunsResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "[]", result.Contents[0].Text)
	})

	t.Run("returns runs successfully", func(t *testing.T) {
		mockRuns := &mockRunStore{
			runs: []domain.RunRecord{
				{
					ID:           "run-1",
					Seeds:        []string{"running shoes"},
					KeywordCount: 100,
					ClusterCount: 7,
					CreatedAt:    time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
				},
			},
		}
		ports := &Ports{Core: &mockCoreService{}, Runs: mockRuns}
		server, err := NewServer(ports)
		require.NoError(t, err)

		req := makeReadResourceRequest("semcore://runs")
		result, err := server.handleRunsResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Contains(t, result.Contents[0].Text, "run-1")
		assert.Contains(t, result.Contents[0].Text, "running shoes")
		assert.Contains(t, result.Contents[0].Text, "2026-08-30T12:00:00Z")
		assert.Equal(t, defaultRunsLimit, mockRuns.lastLimit)
	})

	t.Run("honours limit from URI", func(t *testing.T) {
		mockRuns := &mockRunStore{}
		ports := &Ports{Core: &mockCoreService{}, Runs: mockRuns}
		server, err := NewServer(ports)
		require.NoError(t, err)

		req := makeReadResourceRequest("semcore://runs/3")
		_, err = server.handleRunsResource(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, 3, mockRuns.lastLimit)
	})

	t.Run("returns error on store failure", func(t *testing.T) {
		mockRuns := &mockRunStore{err: errors.New("db locked")}
		ports := &Ports{Core: &mockCoreService{}, Runs: mockRuns}
		server, err := NewServer(ports)
		require.NoError(t, err)

		req := makeReadResourceRequest("semcore://runs")
		_, err = server.handleRunsResource(ctx, req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "listing runs")
	})
}
