package grading

import (
	"math"
	"strings"
)

// keywordGrader scores free-text short answers by keyword coverage. Keywords
// come from the expected answer (or an explicit rubric list) and are matched
// by containment in the normalized student text, so simple inflections like
// "objects" still satisfy the keyword "object".
type keywordGrader struct {
	stop       map[string]struct{}
	minFloor   int     // absolute minimum word count before the penalty
	floorRatio float64 // fraction of the expected answer's word count
}

const minKeywordLen = 3

func (g keywordGrader) Grade(req Request) (Result, error) {
	keywords := g.extractKeywords(req)
	studentText := strings.Join(tokenize(req.StudentAnswer, nil), " ")

	matched := make([]string, 0, len(keywords))
	missed := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if strings.Contains(studentText, k) {
			matched = append(matched, k)
		} else {
			missed = append(missed, k)
		}
	}

	var matchPct float64
	if len(keywords) > 0 {
		matchPct = float64(len(matched)) / float64(len(keywords)) * 100
	} else if studentText != "" {
		// Degenerate expected answer: nothing to discriminate on, so any
		// non-empty attempt counts as full coverage.
		matchPct = 100
	}

	wordCount := len(strings.Fields(req.StudentAnswer))
	expectedCount := len(strings.Fields(req.ExpectedAnswer))
	factor := g.lengthFactor(wordCount, expectedCount)

	score := clamp(round2(req.MaxMarks*(matchPct/100)*factor), 0, req.MaxMarks)

	return Result{
		Score:    score,
		Feedback: keywordFeedback(matched, missed, factor),
		Details: map[string]interface{}{
			"strategy":         "keyword_matching",
			"matched_keywords": matched,
			"missed_keywords":  missed,
			"match_percentage": round2(matchPct),
			"word_count":       wordCount,
			"length_factor":    round2(factor),
		},
	}, nil
}

// extractKeywords prefers an explicit rubric keyword list, else derives the
// set from the expected answer. Tokens shorter than three runes are noise
// (articles, stray letters) and are dropped.
func (g keywordGrader) extractKeywords(req Request) []string {
	var raw []string
	if req.Rubric != nil && len(req.Rubric.Keywords) > 0 {
		for _, k := range req.Rubric.Keywords {
			raw = append(raw, tokenize(k, g.stop)...)
		}
	} else {
		raw = tokenize(req.ExpectedAnswer, g.stop)
	}
	kept := raw[:0]
	for _, t := range raw {
		if len([]rune(t)) >= minKeywordLen {
			kept = append(kept, t)
		}
	}
	return uniqueTokens(kept)
}

// lengthFactor penalizes answers much shorter than expected. The floor is the
// larger of the absolute minimum and floorRatio of the expected length; below
// it the factor scales linearly. Never exceeds 1.
func (g keywordGrader) lengthFactor(wordCount, expectedCount int) float64 {
	floor := g.minFloor
	if rel := int(math.Ceil(g.floorRatio * float64(expectedCount))); rel > floor {
		floor = rel
	}
	if floor <= 0 || wordCount >= floor {
		return 1
	}
	return float64(wordCount) / float64(floor)
}

func keywordFeedback(matched, missed []string, factor float64) string {
	var parts []string
	if len(matched) > 0 {
		parts = append(parts, "Good coverage of key concepts: "+strings.Join(firstN(matched, 5), ", "))
	}
	if len(missed) > 0 {
		parts = append(parts, "Consider including: "+strings.Join(firstN(missed, 3), ", "))
	}
	if factor < 1 {
		parts = append(parts, "Answer could be more detailed")
	}
	if len(parts) == 0 {
		return "Answer reviewed."
	}
	return strings.Join(parts, ". ")
}

func firstN(s []string, n int) []string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
