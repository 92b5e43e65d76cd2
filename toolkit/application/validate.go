package application

import (
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"seokit/toolkit/domain"
)

// Regra única de domínio: rótulos de 1-63 chars (sem hífen nas pontas) e TLD alfabético.
var domainRe = regexp.MustCompile(`^([a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?\.)+[a-z]{2,63}$`)

// NormalizeDomain aceita "example.com", "www.Example.com." ou uma URL
// completa e devolve o host em minúsculas, validado.
func NormalizeDomain(op, raw string) (string, error) {
	d := strings.ToLower(strings.TrimSpace(raw))
	if d == "" {
		return "", domain.Invalid(op, "domain", domain.ErrEmptyInput)
	}
	if strings.Contains(d, "://") {
		u, err := url.Parse(d)
		if err != nil {
			return "", domain.Invalid(op, "domain", domain.ErrInvalidDomain)
		}
		d = u.Hostname()
	}
	if i := strings.IndexAny(d, "/?#"); i >= 0 {
		d = d[:i]
	}
	if host, _, ok := strings.Cut(d, ":"); ok {
		d = host
	}
	d = strings.TrimSuffix(d, ".")
	if len(d) > 253 || !domainRe.MatchString(d) {
		return "", domain.Invalid(op, "domain", domain.ErrInvalidDomain)
	}
	return d, nil
}

// ParseHTTPURL exige URL absoluta http/https com host.
func ParseHTTPURL(op, raw string) (*url.URL, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, domain.Invalid(op, "url", domain.ErrEmptyInput)
	}
	u, err := url.Parse(s)
	if err != nil {
		return nil, domain.Invalid(op, "url", domain.ErrInvalidURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, domain.Invalid(op, "url", domain.ErrInvalidURL)
	}
	if u.Hostname() == "" {
		return nil, domain.Invalid(op, "url", domain.ErrInvalidURL)
	}
	return u, nil
}

// ParseNumber valida campos numéricos vindos de formulário.
// Vazio, NaN, infinito ou negativo são rejeitados.
func ParseNumber(op, field, raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, domain.Invalid(op, field, domain.ErrEmptyInput)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, domain.Invalid(op, field, domain.ErrInvalidNumber)
	}
	return f, nil
}

func requireText(op, field, text string) error {
	if strings.TrimSpace(text) == "" {
		return domain.Invalid(op, field, domain.ErrEmptyInput)
	}
	return nil
}
