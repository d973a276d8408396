package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/clearpath-labs/semcore-cli/internal/clustering"
	"github.com/clearpath-labs/semcore-cli/internal/core/domain"
	"github.com/clearpath-labs/semcore-cli/internal/core/ports/driven"
	"github.com/clearpath-labs/semcore-cli/internal/core/ports/driving"
	"github.com/clearpath-labs/semcore-cli/internal/logger"
)

// Ensure SemanticService implements the interface.
var _ driving.SemanticCoreService = (*SemanticService)(nil)

// Stage limits. Intent enrichment is the most expensive per-unit step,
// so only the top candidates by volume get it.
const (
	relatedLimit        = 30
	competitorLimit     = 50
	intentEnrichmentCap = 20
)

// SemanticService orchestrates the staged keyword acquisition pipeline
// and hands the final candidate set to the clustering engine. Every
// oracle call is gated by the budget guard first and recorded against
// it afterwards, with the actual billed cost.
type SemanticService struct {
	oracle driven.KeywordOracle
	guard  *BudgetGuard
	opts   clustering.Options
}

// NewSemanticService creates the pipeline service. Clustering runs
// with the package defaults.
func NewSemanticService(oracle driven.KeywordOracle, guard *BudgetGuard) *SemanticService {
	return &SemanticService{
		oracle: oracle,
		guard:  guard,
		opts:   clustering.Options{},
	}
}

// candidateSet deduplicates keywords on their normalized text,
// first-writer-wins: a stage never overrides metrics an earlier stage
// already recorded. Insertion order is kept so runs are deterministic.
type candidateSet struct {
	byText map[string]*domain.Keyword
	order  []string
}

func newCandidateSet() *candidateSet {
	return &candidateSet{byText: make(map[string]*domain.Keyword)}
}

// add inserts a candidate under its normalized text. Returns false for
// duplicates and for candidates that normalize to nothing.
func (c *candidateSet) add(k domain.Keyword) bool {
	text := domain.NormalizeKeyword(k.Keyword)
	if text == "" {
		return false
	}
	if _, ok := c.byText[text]; ok {
		return false
	}
	k.Keyword = text
	c.byText[text] = &k
	c.order = append(c.order, text)
	return true
}

func (c *candidateSet) len() int { return len(c.byText) }

// all returns the candidates in insertion order.
func (c *candidateSet) all() []*domain.Keyword {
	out := make([]*domain.Keyword, 0, len(c.order))
	for _, text := range c.order {
		out = append(out, c.byText[text])
	}
	return out
}

// BuildCore runs the full pipeline: seed expansion, related-keyword
// top-up, competitor mining, intent enrichment, then clustering.
// Stage one is mandatory - if it yields nothing for every seed the run
// fails hard. Later stages degrade gracefully: their failures shrink
// the result instead of aborting it.
func (s *SemanticService) BuildCore(ctx context.Context, req domain.CoreRequest) (*domain.CoreResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	target := req.TargetSize
	if target == 0 {
		target = domain.DefaultTargetSize
	}
	filters := domain.DefaultFilters()
	if req.Filters != nil {
		filters = *req.Filters
	}

	logger.Section("Semantic Core Build")
	logger.Info("Building core from %d seeds, target %d keywords", len(req.Seeds), target)

	candidates := newCandidateSet()

	if err := s.expandSeeds(ctx, req, target, filters, candidates); err != nil {
		return nil, err
	}
	logger.Debug("After seed expansion: %d candidates", candidates.len())

	if candidates.len() < target {
		s.topUpRelated(ctx, req, candidates)
		logger.Debug("After related top-up: %d candidates", candidates.len())
	}

	if req.CompetitorDomain != "" && candidates.len() < target {
		s.mineCompetitor(ctx, req, candidates)
		logger.Debug("After competitor mining: %d candidates", candidates.len())
	}

	s.enrichIntent(ctx, req.Locale, candidates)

	result := s.finalize(req, target, candidates)
	result.ProcessingTime = time.Since(start)

	logger.Info("Core complete: %d keywords, %d clusters in %s",
		len(result.Keywords), len(result.Clusters), result.ProcessingTime)
	return result, nil
}

// CheckAndEstimate prices an operation and consults the guard without
// recording any spend.
func (s *SemanticService) CheckAndEstimate(kind domain.OperationKind, unitCount, keywordCount int) (domain.Decision, float64) {
	estimate := EstimateCost(kind, unitCount)
	return s.guard.CanProceed(estimate, keywordCount), estimate
}

// expandSeeds is the mandatory first stage: one expansion call per
// seed. The run aborts only when every seed yields nothing - either
// all calls failed, or the guard blocked them all.
func (s *SemanticService) expandSeeds(
	ctx context.Context,
	req domain.CoreRequest,
	target int,
	filters domain.QualityFilters,
	candidates *candidateSet,
) error {
	seedTexts := make(map[string]bool, len(req.Seeds))
	for _, seed := range req.Seeds {
		seedTexts[domain.NormalizeKeyword(seed)] = true
	}

	var succeeded int
	var blockedReason string
	var callErrs []error

	for _, seed := range req.Seeds {
		decision := s.guard.CanProceed(EstimateCost(domain.OpExpansion, target), 1)
		if !decision.Allowed {
			logger.Warn("Seed expansion for %q blocked: %s", seed, decision.Reason)
			blockedReason = decision.Reason
			continue
		}
		if decision.Warning != "" {
			logger.Warn("Budget warning: %s", decision.Warning)
		}

		batch, err := s.oracle.ExpandSeed(ctx, seed, req.Locale, target, filters)
		if err != nil {
			logger.Warn("Seed expansion for %q failed: %v", seed, err)
			callErrs = append(callErrs, fmt.Errorf("expand %q: %w", seed, err))
			continue
		}
		s.recordUsage(ctx, batch.Cost)
		succeeded++

		for _, row := range batch.Rows {
			k := normalizeRow(row)
			if !filters.Keep(k) {
				continue
			}
			if seedTexts[domain.NormalizeKeyword(k.Keyword)] {
				k.Source = domain.SourceSeed
			} else {
				k.Source = domain.SourceExpansion
			}
			candidates.add(k)
		}
	}

	if succeeded == 0 {
		if len(callErrs) > 0 {
			return fmt.Errorf("%w: %w", domain.ErrNoSeedData, errors.Join(callErrs...))
		}
		return fmt.Errorf("%w: %s", domain.ErrBudgetExceeded, blockedReason)
	}
	return nil
}

// topUpRelated issues one related-keywords call per seed to close the
// gap to the target size. Optional stage: failures are logged and the
// run continues.
func (s *SemanticService) topUpRelated(ctx context.Context, req domain.CoreRequest, candidates *candidateSet) {
	for _, seed := range req.Seeds {
		decision := s.guard.CanProceed(EstimateCost(domain.OpSuggestions, relatedLimit), 1)
		if !decision.Allowed {
			logger.Warn("Related top-up for %q blocked: %s", seed, decision.Reason)
			continue
		}

		batch, err := s.oracle.RelatedKeywords(ctx, seed, req.Locale, relatedLimit)
		if err != nil {
			logger.Warn("Related top-up for %q failed: %v", seed, err)
			continue
		}
		s.recordUsage(ctx, batch.Cost)

		for _, row := range batch.Rows {
			k := normalizeRow(row)
			k.Source = domain.SourceRelated
			candidates.add(k)
		}
	}
}

// mineCompetitor fetches keywords the competitor domain ranks for.
// Optional stage.
func (s *SemanticService) mineCompetitor(ctx context.Context, req domain.CoreRequest, candidates *candidateSet) {
	decision := s.guard.CanProceed(EstimateCost(domain.OpExpansion, competitorLimit), 1)
	if !decision.Allowed {
		logger.Warn("Competitor mining blocked: %s", decision.Reason)
		return
	}

	batch, err := s.oracle.KeywordsForDomain(ctx, req.CompetitorDomain, req.Locale, competitorLimit)
	if err != nil {
		logger.Warn("Competitor mining for %q failed: %v", req.CompetitorDomain, err)
		return
	}
	s.recordUsage(ctx, batch.Cost)

	for _, row := range batch.Rows {
		k := normalizeRow(row)
		k.Source = domain.SourceCompetitor
		candidates.add(k)
	}
}

// enrichIntent classifies the top candidates by volume through SERP
// analysis. A keyword whose lookup fails keeps its default intent; a
// guard rejection stops the whole stage since every later call would
// be rejected for the same reason.
func (s *SemanticService) enrichIntent(ctx context.Context, loc domain.Locale, candidates *candidateSet) {
	top := candidates.all()
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].SearchVolume > top[j].SearchVolume
	})
	if len(top) > intentEnrichmentCap {
		top = top[:intentEnrichmentCap]
	}

	logger.Section("Intent Enrichment")
	for _, k := range top {
		decision := s.guard.CanProceed(EstimateCost(domain.OpSERP, 1), 1)
		if !decision.Allowed {
			logger.Warn("Intent enrichment stopped: %s", decision.Reason)
			return
		}

		batch, err := s.oracle.SERPFeatures(ctx, k.Keyword, loc)
		if err != nil {
			logger.Warn("Intent analysis for %q failed: %v", k.Keyword, err)
			continue
		}
		s.recordUsage(ctx, batch.Cost)

		k.Intent = ClassifyIntent(batch.Signals)
		logger.Debug("Intent for %q: %s", k.Keyword, k.Intent)
	}
}

// finalize sorts, truncates and clusters the candidate set.
func (s *SemanticService) finalize(req domain.CoreRequest, target int, candidates *candidateSet) *domain.CoreResult {
	all := candidates.all()
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].SearchVolume != all[j].SearchVolume {
			return all[i].SearchVolume > all[j].SearchVolume
		}
		return all[i].Difficulty < all[j].Difficulty
	})

	totalFound := len(all)
	if len(all) > target {
		all = all[:target]
	}

	keywords := make([]domain.Keyword, len(all))
	sourceCounts := make(map[domain.Source]int)
	for i, k := range all {
		keywords[i] = *k
		sourceCounts[k.Source]++
	}

	clusters := clustering.Clusters(keywords, s.opts)

	return &domain.CoreResult{
		RunID:        uuid.NewString(),
		Keywords:     keywords,
		Clusters:     clusters,
		TotalFound:   totalFound,
		SourceCounts: sourceCounts,
		Summary:      clustering.Summarize(keywords, clusters),
	}
}

// recordUsage books an actual billed cost, logging but not failing
// the run when the persistence hook misbehaves.
func (s *SemanticService) recordUsage(ctx context.Context, cost float64) {
	if err := s.guard.RecordUsage(ctx, cost); err != nil {
		logger.Warn("Record usage: %v", err)
	}
}

// normalizeRow clamps oracle metrics into their documented ranges and
// applies the default intent. Null metrics arrive as zero values from
// the adapter and stay zero, never null, in the aggregates.
func normalizeRow(row domain.Keyword) domain.Keyword {
	if row.SearchVolume < 0 {
		row.SearchVolume = 0
	}
	if row.CPC < 0 {
		row.CPC = 0
	}
	if row.Competition < 0 {
		row.Competition = 0
	} else if row.Competition > 1 {
		row.Competition = 1
	}
	if row.Difficulty < 0 {
		row.Difficulty = 0
	} else if row.Difficulty > 100 {
		row.Difficulty = 100
	}
	row.Intent = domain.IntentInformational
	return row
}
