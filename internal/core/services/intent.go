package services

import (
	"strings"

	"github.com/clearpath-labs/semcore-cli/internal/core/domain"
)

// Marker words scanned in result titles and URLs. English plus the
// Russian locale equivalents the product ships with.
var (
	transactionalMarkers = []string{
		"buy", "price", "shop", "order", "purchase", "cart",
		"купить", "цена", "заказать",
	}

	localMarkers = []string{
		"near me", "nearby", "location", "directions", "address",
		"рядом", "адрес",
	}

	commercialMarkers = []string{
		"best", "review", "comparison", "vs", "top",
		"лучший", "обзор", "сравнение",
	}

	informationalMarkers = []string{
		"how", "what", "why", "guide", "tutorial",
		"как", "что", "почему", "гайд",
	}
)

// ClassifyIntent derives a search intent from SERP signals. Pure and
// total: the same signals always yield the same intent, and the
// informational fallback guarantees a value.
//
// The checks run in a fixed priority order - transactional, local,
// commercial, informational, navigational - so a page that carries
// several signals classifies by the strongest commercial one.
func ClassifyIntent(sig domain.SERPSignals) domain.Intent {
	titles := make([]string, 0, len(sig.Top10))
	urls := make([]string, 0, len(sig.Top10))
	for _, r := range sig.Top10 {
		titles = append(titles, strings.ToLower(r.Title))
		urls = append(urls, strings.ToLower(r.URL))
	}

	if sig.ShoppingResults || anyContains(titles, transactionalMarkers) || anyContains(urls, transactionalMarkers) {
		return domain.IntentTransactional
	}

	if sig.LocalPack || anyContains(titles, localMarkers) {
		return domain.IntentLocal
	}

	if anyContains(titles, commercialMarkers) {
		return domain.IntentCommercial
	}

	if sig.PeopleAlsoAsk || sig.FeaturedSnippet || anyContains(titles, informationalMarkers) {
		return domain.IntentInformational
	}

	if sig.KnowledgeGraph {
		return domain.IntentNavigational
	}

	return domain.IntentInformational
}

// anyContains reports whether any text contains any marker as a
// substring.
func anyContains(texts, markers []string) bool {
	for _, t := range texts {
		for _, m := range markers {
			if strings.Contains(t, m) {
				return true
			}
		}
	}
	return false
}
