// Package clustering groups keyword candidates by lexical similarity.
//
// Keywords are tokenized, vectorized with TF-IDF over the candidate set
// as the corpus, and grouped with a density-based neighbor-expansion
// pass (cosine similarity >= eps makes two keywords neighbors).
// Candidates without a dense-enough neighborhood are noise and never
// appear in cluster output.
//
// The neighbor scan is brute-force O(n^2), which is fine at the target
// scale of hundreds of keywords. Beyond a few thousand candidates an
// approximate-neighbor index would be needed instead.
//
// The package is pure and independent of the aggregator and the intent
// classifier.
package clustering
