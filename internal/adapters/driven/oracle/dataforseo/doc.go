// Package dataforseo implements the keyword oracle against the
// DataForSEO v3 REST API. It covers the Labs endpoints for keyword
// discovery and the SERP organic endpoint for intent signals, with
// proactive rate limiting on every call.
package dataforseo
