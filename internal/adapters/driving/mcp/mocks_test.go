package mcp

import (
	"context"

	"github.com/clearpath-labs/semcore-cli/internal/core/domain"
)

// mockCoreService is a mock implementation of driving.SemanticCoreService.
type mockCoreService struct {
	result   *domain.CoreResult
	decision domain.Decision
	estimate float64
	err      error
	lastReq  domain.CoreRequest
}

func (m *mockCoreService) BuildCore(_ context.Context, req domain.CoreRequest) (*domain.CoreResult, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func (m *mockCoreService) CheckAndEstimate(_ domain.OperationKind, _, _ int) (domain.Decision, float64) {
	return m.decision, m.estimate
}

// mockBudgetService is a mock implementation of driving.BudgetService.
type mockBudgetService struct {
	stats domain.UsageStats
	err   error
}

func (m *mockBudgetService) Usage() domain.UsageStats {
	return m.stats
}

func (m *mockBudgetService) ResetDaily(_ context.Context) error {
	return m.err
}

func (m *mockBudgetService) ResetMonthly(_ context.Context) error {
	return m.err
}

// mockRunStore is a mock implementation of driven.RunStore.
type mockRunStore struct {
	runs      []domain.RunRecord
	err       error
	lastLimit int
}

func (m *mockRunStore) SaveRun(_ context.Context, run domain.RunRecord) error {
	if m.err != nil {
		return m.err
	}
	m.runs = append(m.runs, run)
	return nil
}

func (m *mockRunStore) ListRuns(_ context.Context, limit int) ([]domain.RunRecord, error) {
	m.lastLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	return m.runs, nil
}
