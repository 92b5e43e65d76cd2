package application

import (
	"strings"

	"seokit/toolkit/domain"
)

// Reverse aplica uma das três inversões. Todas são involuções: aplicar
// duas vezes devolve o texto original.
func Reverse(text string, mode domain.ReverseMode) (string, error) {
	const op = "reverse"
	if text == "" {
		return "", domain.Invalid(op, "text", domain.ErrEmptyInput)
	}

	switch mode {
	case domain.ReverseCharacters, "":
		return reverseRunes(text), nil
	case domain.ReverseWordCharacters:
		words := strings.Split(text, " ")
		for i, w := range words {
			words[i] = reverseRunes(w)
		}
		return strings.Join(words, " "), nil
	case domain.ReverseWordOrder:
		words := strings.Split(text, " ")
		for i, j := 0, len(words)-1; i < j; i, j = i+1, j-1 {
			words[i], words[j] = words[j], words[i]
		}
		return strings.Join(words, " "), nil
	default:
		return "", domain.Invalid(op, "mode", domain.ErrInvalidOption)
	}
}

func reverseRunes(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
