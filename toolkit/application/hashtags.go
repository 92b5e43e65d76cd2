package application

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"seokit/toolkit/domain"
)

var punctuationRe = regexp.MustCompile(`[^\p{L}\p{N}\s]+`)

var stopWords = toSet(
	"a", "about", "above", "after", "again", "against", "all", "am", "an", "and", "any", "are", "as", "at",
	"be", "because", "been", "before", "being", "below", "between", "both", "but", "by",
	"can", "could", "did", "do", "does", "doing", "down", "during", "each", "few", "for", "from", "further",
	"had", "has", "have", "having", "he", "her", "here", "hers", "him", "his", "how",
	"i", "if", "in", "into", "is", "it", "its", "itself", "just", "me", "more", "most", "my",
	"no", "nor", "not", "now", "of", "off", "on", "once", "only", "or", "other", "our", "ours", "out", "over", "own",
	"same", "she", "should", "so", "some", "such", "than", "that", "the", "their", "theirs", "them", "then",
	"there", "these", "they", "this", "those", "through", "to", "too", "under", "until", "up",
	"very", "was", "we", "were", "what", "when", "where", "which", "while", "who", "whom", "why", "will", "with",
	"would", "you", "your", "yours",
)

var popularTags = map[domain.Platform][]string{
	domain.PlatformInstagram: {"instagood", "photooftheday", "love", "instadaily", "picoftheday", "explorepage", "reels", "trending"},
	domain.PlatformTwitter:   {"trending", "news", "thread", "breaking", "tech", "viral"},
	domain.PlatformTikTok:    {"fyp", "foryou", "foryoupage", "viral", "tiktoktrend", "duet", "learnontiktok"},
	domain.PlatformLinkedIn:  {"leadership", "careers", "innovation", "networking", "business", "hiring", "management"},
	domain.PlatformYouTube:   {"youtube", "subscribe", "shorts", "vlog", "tutorial", "howto"},
	domain.PlatformFacebook:  {"community", "family", "weekend", "motivation", "inspiration", "share"},
}

// diacríticos fora: "café" vira "cafe"
var foldMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// GenerateHashtags conta as palavras relevantes do texto e devolve as mais
// frequentes como tags, opcionalmente intercaladas com tags populares da
// plataforma (embaralhadas por rnd). Nunca retorna mais que opts.Max tags.
func GenerateHashtags(text string, opts domain.HashtagOptions, rnd domain.Random) (domain.HashtagResult, error) {
	const op = "hashtags"
	if err := requireText(op, "text", text); err != nil {
		return domain.HashtagResult{}, err
	}
	if opts.Platform == "" {
		opts.Platform = domain.PlatformInstagram
	}
	popular, ok := popularTags[opts.Platform]
	if !ok {
		return domain.HashtagResult{}, domain.Invalid(op, "platform", domain.ErrInvalidOption)
	}
	if opts.Max <= 0 {
		opts.Max = domain.DefaultHashtagMax
	}
	if opts.Max > domain.MaxHashtagMax {
		opts.Max = domain.MaxHashtagMax
	}

	keywords, freq := rankWords(text, opts.Max)

	var extra []string
	if opts.IncludePopular && rnd != nil {
		extra = append([]string(nil), popular...)
		rnd.Shuffle(len(extra), func(i, j int) { extra[i], extra[j] = extra[j], extra[i] })
	}

	seen := make(map[string]bool)
	tags := make([]string, 0, opts.Max)
	add := func(w string) {
		if len(tags) >= opts.Max || seen[w] {
			return
		}
		seen[w] = true
		tags = append(tags, "#"+w)
	}
	for i := 0; i < len(keywords) || i < len(extra); i++ {
		if i < len(keywords) {
			add(keywords[i])
		}
		if i < len(extra) {
			add(extra[i])
		}
	}

	return domain.HashtagResult{
		Tags:      tags,
		Keywords:  freq,
		Platform:  opts.Platform,
		Generated: len(tags),
	}, nil
}

// rankWords devolve até n palavras por frequência (empate: primeira ocorrência).
func rankWords(text string, n int) ([]string, map[string]int) {
	clean, _, err := transform.String(foldMarks, strings.ToLower(text))
	if err != nil {
		clean = strings.ToLower(text)
	}
	clean = punctuationRe.ReplaceAllString(clean, "")

	freq := make(map[string]int)
	first := make(map[string]int)
	for i, w := range strings.Fields(clean) {
		if utf8.RuneCountInString(w) < 3 || stopWords[w] {
			continue
		}
		if _, ok := first[w]; !ok {
			first[w] = i
		}
		freq[w]++
	}

	words := make([]string, 0, len(freq))
	for w := range freq {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if freq[words[i]] != freq[words[j]] {
			return freq[words[i]] > freq[words[j]]
		}
		return first[words[i]] < first[words[j]]
	})
	if len(words) > n {
		words = words[:n]
	}
	top := make(map[string]int, len(words))
	for _, w := range words {
		top[w] = freq[w]
	}
	return words, top
}

func toSet(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}
