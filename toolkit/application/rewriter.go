package application

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"seokit/toolkit/domain"
)

const (
	sentenceSep = ". "

	// janela fixa preservada no começo e no fim de cada frase reordenada
	reorderWindow   = 3
	reorderMinWords = 8

	keywordMinLen   = 5
	keywordMinCount = 3
	keywordMaxCount = 5
)

var boilerplate = []string{
	"%s remains central when thinking about %s and %s",
	"Any serious look at %s has to consider %s alongside %s",
	"Put simply, %s connects %s with %s",
	"%s, %s and %s together shape the bigger picture",
}

// Rewrite reescreve o texto de acordo com o nível.
//
// light troca sinônimos; medium também inverte o miolo das frases longas;
// heavy usa a tabela maior e substitui uma a cada três frases por um
// modelo montado com as palavras mais longas do texto.
func Rewrite(text string, level domain.RewriteLevel) (domain.RewriteResult, error) {
	const op = "rewrite"
	if err := requireText(op, "text", text); err != nil {
		return domain.RewriteResult{}, err
	}
	if !level.Valid() {
		return domain.RewriteResult{}, domain.Invalid(op, "level", domain.ErrInvalidOption)
	}

	sentences := SplitSentences(text)

	var keywords []string
	if level == domain.LevelHeavy {
		keywords = ExtractKeywords(text)
		if len(keywords) < keywordMinCount {
			// sem palavras-chave suficientes: cai para o nível medium
			level = domain.LevelMedium
			keywords = nil
		}
	}

	sub := substitutions[level]
	for i, s := range sentences {
		s = sub.apply(s)
		if level != domain.LevelLight {
			s = reorderMiddle(s)
		}
		sentences[i] = s
	}

	if len(keywords) > 0 {
		for i := 2; i < len(sentences); i += 3 {
			sentences[i] = templated(i/3, keywords, strings.HasSuffix(sentences[i], "."))
		}
	}

	out := strings.Join(sentences, sentenceSep)
	return domain.RewriteResult{
		Output: out,
		Metrics: map[string]float64{
			domain.MetricReadability: Readability(out).Score,
			domain.MetricUniqueness:  Uniqueness(text, out),
		},
	}, nil
}

// SplitSentences normaliza espaços e separa o texto em ". ".
func SplitSentences(text string) []string {
	norm := strings.Join(strings.Fields(text), " ")
	if norm == "" {
		return nil
	}
	return strings.Split(norm, sentenceSep)
}

// reorderMiddle mantém as 3 primeiras e 3 últimas palavras e inverte o resto.
// Frases com até 8 palavras ficam como estão.
func reorderMiddle(sentence string) string {
	words := strings.Fields(sentence)
	if len(words) <= reorderMinWords {
		return sentence
	}
	mid := words[reorderWindow : len(words)-reorderWindow]
	for i, j := 0, len(mid)-1; i < j; i, j = i+1, j-1 {
		mid[i], mid[j] = mid[j], mid[i]
	}
	return strings.Join(words, " ")
}

// ExtractKeywords devolve até 5 palavras únicas (só letras, mais de 5
// caracteres), das mais longas para as mais curtas.
func ExtractKeywords(text string) []string {
	type kw struct {
		word  string
		order int
	}
	seen := make(map[string]bool)
	var list []kw
	for _, raw := range strings.Fields(text) {
		w := strings.ToLower(strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) {
				return r
			}
			return -1
		}, raw))
		if utf8.RuneCountInString(w) <= keywordMinLen || seen[w] {
			continue
		}
		seen[w] = true
		list = append(list, kw{word: w, order: len(list)})
	}
	sort.SliceStable(list, func(i, j int) bool {
		return utf8.RuneCountInString(list[i].word) > utf8.RuneCountInString(list[j].word)
	})
	if len(list) > keywordMaxCount {
		list = list[:keywordMaxCount]
	}
	out := make([]string, len(list))
	for i, k := range list {
		out[i] = k.word
	}
	return out
}

func templated(n int, keywords []string, period bool) string {
	tpl := boilerplate[n%len(boilerplate)]
	args := make([]any, 3)
	for i := range args {
		args[i] = keywords[(n+i)%len(keywords)]
	}
	s := fmt.Sprintf(tpl, args...)
	if first, _ := utf8.DecodeRuneInString(s); unicode.IsLower(first) {
		word, rest, _ := strings.Cut(s, " ")
		s = cases.Title(language.English).String(word) + " " + rest
	}
	if period {
		s += "."
	}
	return s
}
