package grading

import (
	"strings"
	"unicode"
)

// defaultStopWords are common function words carrying no grading signal.
// The same set is applied to expected and student text so neither side is
// penalized asymmetrically.
var defaultStopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "is": {},
	"are": {}, "was": {}, "were": {}, "be": {}, "been": {}, "being": {},
	"have": {}, "has": {}, "had": {}, "do": {}, "does": {}, "did": {},
	"will": {}, "would": {}, "could": {}, "should": {}, "may": {},
	"might": {}, "must": {}, "can": {}, "this": {}, "that": {},
	"these": {}, "those": {},
}

// tokenize lowercases text, treats every non-alphanumeric rune as a token
// separator, and drops tokens in the stop set. A nil stop set keeps all
// tokens. Empty or whitespace-only input yields an empty slice.
func tokenize(text string, stop map[string]struct{}) []string {
	var tokens []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() == 0 {
			return
		}
		tok := cur.String()
		cur.Reset()
		if stop != nil {
			if _, skip := stop[tok]; skip {
				return
			}
		}
		tokens = append(tokens, tok)
	}
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			cur.WriteRune(unicode.ToLower(r))
		} else {
			flush()
		}
	}
	flush()
	return tokens
}

// uniqueTokens collapses duplicates preserving first-occurrence order, so the
// derived keyword set is deterministic for identical input.
func uniqueTokens(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
