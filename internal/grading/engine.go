package grading

import (
	"errors"
	"fmt"
)

// QuestionType selects the scoring strategy for an answer.
type QuestionType string

const (
	TypeMCQ         QuestionType = "mcq"
	TypeTrueFalse   QuestionType = "true_false"
	TypeShortAnswer QuestionType = "short_answer"
	TypeEssay       QuestionType = "essay"
	TypeNumeric     QuestionType = "numeric"
)

// ErrUnsupportedType is returned when no grader is registered for a question
// type. An unknown type is a configuration defect upstream and must surface
// to the caller; it is never masked as a zero score.
var ErrUnsupportedType = errors.New("unsupported question type")

// ErrInvalidRequest is returned for malformed requests (non-positive marks).
var ErrInvalidRequest = errors.New("invalid grading request")

// Request is one question-answer pair to score. Answers may be empty strings;
// an empty answer is a valid, gradeable case, not an error.
type Request struct {
	Type           QuestionType `json:"question_type"`
	StudentAnswer  string       `json:"student_answer"`
	ExpectedAnswer string       `json:"expected_answer"`
	MaxMarks       float64      `json:"max_marks"`
	Rubric         *Rubric      `json:"rubric,omitempty"`
}

// Result is the outcome of grading a single answer. Score is always within
// [0, MaxMarks]. Details carries strategy-specific diagnostics keyed by
// snake_case field names ("strategy", "matched_keywords", ...).
type Result struct {
	Score    float64                `json:"score"`
	Feedback string                 `json:"feedback"`
	Details  map[string]interface{} `json:"grading_details"`
}

// Grader scores a single answer.
type Grader interface {
	Grade(req Request) (Result, error)
}

// FeedbackTiers are the similarity bands for cosine-grader feedback. They
// must be descending; higher similarity never yields worse feedback.
type FeedbackTiers struct {
	Excellent float64
	Good      float64
	Partial   float64
}

// Service routes each request to the grader registered for its question type.
// It is stateless and safe for concurrent use: the registry is built once at
// construction and only read afterwards.
type Service struct {
	graders map[QuestionType]Grader
}

type Option func(*config)

type config struct {
	stopWords    map[string]struct{}
	minWordFloor int
	floorRatio   float64
	tiers        FeedbackTiers
	overrides    map[QuestionType]Grader
}

// WithStopWords replaces the default stop-word set for both text strategies.
func WithStopWords(words []string) Option {
	return func(c *config) {
		set := make(map[string]struct{}, len(words))
		for _, w := range words {
			set[w] = struct{}{}
		}
		c.stopWords = set
	}
}

// WithLengthPenalty tunes the keyword grader's short-answer penalty: floor is
// the absolute minimum word count, ratio the fraction of the expected
// answer's length below which the penalty applies.
func WithLengthPenalty(floor int, ratio float64) Option {
	return func(c *config) {
		c.minWordFloor = floor
		c.floorRatio = ratio
	}
}

// WithFeedbackTiers tunes the cosine grader's feedback bands.
func WithFeedbackTiers(t FeedbackTiers) Option {
	return func(c *config) { c.tiers = t }
}

// WithGrader registers g for question type t, replacing any built-in. This is
// the extension point for substituting strategies (e.g. an LLM-backed essay
// grader) without touching dispatch.
func WithGrader(t QuestionType, g Grader) Option {
	return func(c *config) {
		if c.overrides == nil {
			c.overrides = map[QuestionType]Grader{}
		}
		c.overrides[t] = g
	}
}

// NewService installs the built-in strategies.
func NewService(opts ...Option) *Service {
	cfg := &config{
		stopWords:    defaultStopWords,
		minWordFloor: 3,
		floorRatio:   0.3,
		tiers:        FeedbackTiers{Excellent: 0.8, Good: 0.5, Partial: 0.2},
	}
	for _, o := range opts {
		o(cfg)
	}
	graders := map[QuestionType]Grader{
		TypeMCQ:         exactMatchGrader{},
		TypeTrueFalse:   exactMatchGrader{},
		TypeShortAnswer: keywordGrader{stop: cfg.stopWords, minFloor: cfg.minWordFloor, floorRatio: cfg.floorRatio},
		TypeEssay:       cosineGrader{stop: cfg.stopWords, tiers: cfg.tiers},
		TypeNumeric:     numericGrader{},
	}
	for t, g := range cfg.overrides {
		graders[t] = g
	}
	return &Service{graders: graders}
}

// GradeAnswer dispatches req to the grader registered for its question type.
// It performs no scoring itself.
func (s *Service) GradeAnswer(req Request) (Result, error) {
	if req.MaxMarks <= 0 {
		return Result{}, fmt.Errorf("%w: max marks must be positive, got %g", ErrInvalidRequest, req.MaxMarks)
	}
	g, ok := s.graders[req.Type]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnsupportedType, req.Type)
	}
	return g.Grade(req)
}

// helpers shared by strategies

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round2(v float64) float64 { return roundTo(v, 100) }
func round4(v float64) float64 { return roundTo(v, 10000) }

func roundTo(v, scale float64) float64 {
	if v < 0 {
		return -float64(int64(-v*scale+0.5)) / scale
	}
	return float64(int64(v*scale+0.5)) / scale
}
