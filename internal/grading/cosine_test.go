package grading_test

import (
	"math"
	"testing"

	"github.com/assessly/autograde/internal/grading"
)

func gradeEssay(t *testing.T, student, expected string, max float64) grading.Result {
	t.Helper()
	svc := grading.NewService()
	res, err := svc.GradeAnswer(grading.Request{
		Type:           grading.TypeEssay,
		StudentAnswer:  student,
		ExpectedAnswer: expected,
		MaxMarks:       max,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return res
}

func TestCosineGrader_SelfSimilarity(t *testing.T) {
	text := "Photosynthesis converts light energy into chemical energy stored in glucose"
	res := gradeEssay(t, text, text, 10)

	adjusted := res.Details["adjusted_similarity"].(float64)
	if math.Abs(adjusted-1) > 1e-6 {
		t.Fatalf("adjusted_similarity = %v, want 1.0", adjusted)
	}
	if res.Score != 10 {
		t.Fatalf("score = %v, want 10", res.Score)
	}
	if res.Details["strategy"] != "cosine_similarity" {
		t.Errorf("strategy = %v, want cosine_similarity", res.Details["strategy"])
	}
}

func TestCosineGrader_EmptyStudent(t *testing.T) {
	res := gradeEssay(t, "", "A nontrivial expected answer about thermodynamics", 10)
	if res.Score != 0 {
		t.Fatalf("score = %v, want 0", res.Score)
	}
	if sim := res.Details["similarity_score"].(float64); sim != 0 {
		t.Errorf("similarity_score = %v, want 0", sim)
	}
}

func TestCosineGrader_StopWordsOnlyStudent(t *testing.T) {
	// Zero-norm vector: every student token is a stop word.
	res := gradeEssay(t, "the and of to in", "Newton described gravity", 10)
	if res.Score != 0 {
		t.Fatalf("score = %v, want 0", res.Score)
	}
}

func TestCosineGrader_DisjointTexts(t *testing.T) {
	res := gradeEssay(t, "red blue green yellow", "gravity pulls objects downward", 10)
	if res.Score != 0 {
		t.Fatalf("score = %v, want 0 for disjoint vocabularies", res.Score)
	}
}

func TestCosineGrader_PartialOverlap(t *testing.T) {
	res := gradeEssay(t,
		"mitochondria produce energy for the cell",
		"the mitochondria is the powerhouse of the cell",
		10,
	)
	if res.Score <= 0 || res.Score >= 10 {
		t.Fatalf("score = %v, want strictly between 0 and 10", res.Score)
	}
	sim := res.Details["similarity_score"].(float64)
	adjusted := res.Details["adjusted_similarity"].(float64)
	if adjusted < sim {
		t.Errorf("sqrt curve must not lower similarity: raw=%v adjusted=%v", sim, adjusted)
	}
	if adjusted > 1 {
		t.Errorf("adjusted_similarity = %v, want <= 1", adjusted)
	}
}

func TestCosineGrader_WordCounts(t *testing.T) {
	res := gradeEssay(t, "entropy always increases", "entropy increases in isolated systems over time", 10)
	if got := res.Details["student_word_count"].(int); got != 3 {
		t.Errorf("student_word_count = %v, want 3", got)
	}
}

func TestCosineGrader_FeedbackMonotonic(t *testing.T) {
	expected := "Evolution by natural selection explains adaptation through differential survival and reproduction"
	answers := []string{
		"",
		"natural selection",
		"evolution explains adaptation through natural selection",
		expected,
	}
	// Feedback tier index must never regress as similarity rises.
	tierOrder := map[string]int{
		"Answer needs improvement. Review the question carefully.":    0,
		"Adequate answer, but could be more comprehensive.":           1,
		"Good answer, captures most key points.":                      2,
		"Excellent answer with strong alignment to expected content.": 3,
	}
	prevSim, prevTier := -1.0, -1
	for _, ans := range answers {
		res := gradeEssay(t, ans, expected, 10)
		sim := res.Details["similarity_score"].(float64)
		tier, ok := tierOrder[res.Feedback]
		if !ok {
			t.Fatalf("unexpected feedback %q", res.Feedback)
		}
		if sim >= prevSim && tier < prevTier {
			t.Fatalf("feedback regressed: sim %v->%v tier %d->%d", prevSim, sim, prevTier, tier)
		}
		prevSim, prevTier = sim, tier
	}
}
