package application

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"seokit/toolkit/domain"
)

// Tabelas de sinônimos por nível. Cada nível inclui o anterior.
var (
	lightSynonyms = map[string]string{
		"good":      "great",
		"bad":       "poor",
		"big":       "large",
		"small":     "little",
		"fast":      "quick",
		"use":       "utilize",
		"help":      "assist",
		"show":      "demonstrate",
		"get":       "obtain",
		"make":      "create",
		"start":     "begin",
		"end":       "finish",
		"important": "essential",
		"easy":      "simple",
		"hard":      "difficult",
		"buy":       "purchase",
		"need":      "require",
		"often":     "frequently",
		"maybe":     "perhaps",
		"about":     "regarding",
	}

	mediumSynonyms = merge(lightSynonyms, map[string]string{
		"however":  "nevertheless",
		"because":  "since",
		"also":     "additionally",
		"many":     "numerous",
		"very":     "extremely",
		"change":   "modify",
		"improve":  "enhance",
		"idea":     "concept",
		"problem":  "issue",
		"result":   "outcome",
		"method":   "approach",
		"find":     "discover",
		"think":    "believe",
		"main":     "primary",
		"whole":    "entire",
		"enough":   "sufficient",
		"try":      "attempt",
		"keep":     "maintain",
		"answer":   "response",
		"increase": "boost",
	})

	heavySynonyms = merge(mediumSynonyms, map[string]string{
		"therefore":  "consequently",
		"example":    "illustration",
		"different":  "distinct",
		"several":    "various",
		"understand": "comprehend",
		"explain":    "clarify",
		"provide":    "supply",
		"include":    "encompass",
		"allow":      "permit",
		"clear":      "evident",
		"goal":       "objective",
		"build":      "construct",
		"choose":     "select",
		"check":      "verify",
		"reduce":     "diminish",
		"common":     "widespread",
		"people":     "individuals",
		"website":    "web property",
		"content":    "material",
		"traffic":    "visitor flow",
	})
)

type substitution struct {
	re    *regexp.Regexp
	table map[string]string
}

var substitutions = map[domain.RewriteLevel]substitution{
	domain.LevelLight:  newSubstitution(lightSynonyms),
	domain.LevelMedium: newSubstitution(mediumSynonyms),
	domain.LevelHeavy:  newSubstitution(heavySynonyms),
}

func merge(base, extra map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// newSubstitution compila uma alternação única (mais longas primeiro) para
// que a troca aconteça em uma passada, sem encadear sinônimos.
func newSubstitution(table map[string]string) substitution {
	words := make([]string, 0, len(table))
	for w := range table {
		words = append(words, regexp.QuoteMeta(w))
	}
	sort.Slice(words, func(i, j int) bool {
		if len(words[i]) != len(words[j]) {
			return len(words[i]) > len(words[j])
		}
		return words[i] < words[j]
	})
	re := regexp.MustCompile(`(?i)\b(` + strings.Join(words, "|") + `)\b`)
	return substitution{re: re, table: table}
}

func (s substitution) apply(text string) string {
	return s.re.ReplaceAllStringFunc(text, func(m string) string {
		rep, ok := s.table[strings.ToLower(m)]
		if !ok {
			return m
		}
		return matchCase(m, rep)
	})
}

// matchCase preserva a inicial maiúscula da palavra trocada.
func matchCase(orig, rep string) string {
	r, _ := utf8.DecodeRuneInString(orig)
	if !unicode.IsUpper(r) {
		return rep
	}
	first, size := utf8.DecodeRuneInString(rep)
	return string(unicode.ToUpper(first)) + rep[size:]
}
