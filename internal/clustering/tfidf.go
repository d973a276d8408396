package clustering

import "math"

// TFIDFVectors vectorizes each document against a vocabulary built
// from the whole set. Component weights are tf * idf with
// tf = count/len(doc) and idf = ln((N+1)/(df+1)). A document whose
// every token was filtered out vectorizes to the zero vector.
func TFIDFVectors(docs []string) [][]float64 {
	tokenized := make([][]string, len(docs))
	for i, doc := range docs {
		tokenized[i] = Tokenize(doc)
	}

	// Vocabulary in first-seen order, plus document frequencies.
	index := make(map[string]int)
	var vocab []string
	df := make(map[string]int)
	for _, tokens := range tokenized {
		seen := make(map[string]bool, len(tokens))
		for _, tok := range tokens {
			if _, ok := index[tok]; !ok {
				index[tok] = len(vocab)
				vocab = append(vocab, tok)
			}
			if !seen[tok] {
				seen[tok] = true
				df[tok]++
			}
		}
	}

	idf := make([]float64, len(vocab))
	for i, tok := range vocab {
		idf[i] = math.Log(float64(len(docs)+1) / float64(df[tok]+1))
	}

	vectors := make([][]float64, len(docs))
	for i, tokens := range tokenized {
		vec := make([]float64, len(vocab))
		if len(tokens) == 0 {
			vectors[i] = vec
			continue
		}
		counts := make(map[string]int, len(tokens))
		for _, tok := range tokens {
			counts[tok]++
		}
		for tok, count := range counts {
			j := index[tok]
			tf := float64(count) / float64(len(tokens))
			vec[j] = tf * idf[j]
		}
		vectors[i] = vec
	}

	return vectors
}

// Cosine returns the cosine similarity of two equal-length vectors.
// Any comparison involving a zero vector is 0, so fully-filtered
// keywords can never be core points and always end up as noise.
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	magnitude := math.Sqrt(normA) * math.Sqrt(normB)
	if magnitude == 0 {
		return 0
	}
	return dot / magnitude
}
