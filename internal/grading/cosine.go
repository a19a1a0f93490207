package grading

import "math"

// cosineGrader scores essay answers by TF-IDF cosine similarity. The corpus
// is exactly the two documents of one call — expected and student — so each
// answer is compared only against its own reference, never skewed by other
// submissions' vocabulary. Nothing is cached across calls.
type cosineGrader struct {
	stop  map[string]struct{}
	tiers FeedbackTiers
}

func (g cosineGrader) Grade(req Request) (Result, error) {
	expectedTokens := tokenize(req.ExpectedAnswer, g.stop)
	studentTokens := tokenize(req.StudentAnswer, g.stop)
	corpus := [][]string{expectedTokens, studentTokens}

	expectedVec := tfidfVector(expectedTokens, corpus)
	studentVec := tfidfVector(studentTokens, corpus)

	similarity := cosineSimilarity(expectedVec, studentVec)

	// Raw cosine on short bag-of-words vectors is harshly low even for good
	// answers; the square root compresses the low end and leaves 1 fixed.
	adjusted := clamp(math.Sqrt(similarity), 0, 1)
	score := clamp(round2(req.MaxMarks*adjusted), 0, req.MaxMarks)

	return Result{
		Score:    score,
		Feedback: g.similarityFeedback(similarity),
		Details: map[string]interface{}{
			"strategy":            "cosine_similarity",
			"similarity_score":    round4(similarity),
			"adjusted_similarity": round4(adjusted),
			"student_word_count":  len(studentTokens),
			"expected_word_count": len(expectedTokens),
		},
	}, nil
}

// tfidfVector builds term weights for one document against the per-call
// corpus. IDF uses log(1 + N/df): strictly positive, so terms present in both
// documents keep their weight instead of vanishing.
func tfidfVector(tokens []string, corpus [][]string) map[string]float64 {
	if len(tokens) == 0 {
		return map[string]float64{}
	}
	tf := make(map[string]int, len(tokens))
	for _, t := range tokens {
		tf[t]++
	}
	total := float64(len(tokens))
	vec := make(map[string]float64, len(tf))
	for term, count := range tf {
		df := 0
		for _, doc := range corpus {
			if containsTerm(doc, term) {
				df++
			}
		}
		idf := math.Log(1 + float64(len(corpus))/float64(df))
		vec[term] = (float64(count) / total) * idf
	}
	return vec
}

func containsTerm(doc []string, term string) bool {
	for _, t := range doc {
		if t == term {
			return true
		}
	}
	return false
}

// cosineSimilarity returns 0 when either vector has zero norm (empty answer
// or all stop words); there is no division by zero.
func cosineSimilarity(a, b map[string]float64) float64 {
	var dot, normA, normB float64
	for term, wa := range a {
		normA += wa * wa
		if wb, ok := b[term]; ok {
			dot += wa * wb
		}
	}
	for _, wb := range b {
		normB += wb * wb
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func (g cosineGrader) similarityFeedback(similarity float64) string {
	switch {
	case similarity >= g.tiers.Excellent:
		return "Excellent answer with strong alignment to expected content."
	case similarity >= g.tiers.Good:
		return "Good answer, captures most key points."
	case similarity >= g.tiers.Partial:
		return "Adequate answer, but could be more comprehensive."
	default:
		return "Answer needs improvement. Review the question carefully."
	}
}
