package application

import (
	"math"
	"regexp"
	"strings"
	"unicode"

	"seokit/toolkit/domain"
)

var sentenceEndRe = regexp.MustCompile(`[.!?]+`)

// CountSentences conta frases como len(split por [.!?]+) - 1.
// Texto sem pontuação final conta zero frases.
func CountSentences(text string) int {
	n := len(sentenceEndRe.Split(text, -1)) - 1
	if n < 0 {
		return 0
	}
	return n
}

// Readability = 100 - 4 * (palavras / frases), limitado a [0, 100].
func Readability(text string) domain.ReadabilityResult {
	words := len(strings.Fields(text))
	sentences := CountSentences(text)
	res := domain.ReadabilityResult{Words: words, Sentences: sentences}
	if words == 0 || sentences == 0 {
		return res
	}
	score := 100 - 4*(float64(words)/float64(sentences))
	res.Score = clamp(score, 0, 100)
	return res
}

// Uniqueness é a porcentagem de palavras reescritas (len > 3) que não
// aparecem no conjunto de palavras do original.
func Uniqueness(original, rewritten string) float64 {
	seen := make(map[string]struct{})
	for _, w := range strings.Fields(original) {
		seen[normalizeWord(w)] = struct{}{}
	}

	total, changed := 0, 0
	for _, w := range strings.Fields(rewritten) {
		w = normalizeWord(w)
		if len([]rune(w)) <= 3 {
			continue
		}
		total++
		if _, ok := seen[w]; !ok {
			changed++
		}
	}
	if total == 0 {
		return 0
	}
	return math.Round(float64(changed) / float64(total) * 100)
}

func normalizeWord(w string) string {
	w = strings.TrimFunc(w, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.ToLower(w)
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
