package application

import (
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"

	"seokit/toolkit/domain"
)

var pageExtensions = map[string]bool{
	".html": true, ".htm": true, ".php": true, ".asp": true,
	".aspx": true, ".jsp": true, ".shtml": true, ".cfm": true,
}

var (
	separatorRe = regexp.MustCompile(`[_+\s]+`)
	hyphenRunRe = regexp.MustCompile(`-{2,}`)
)

// CanonicalizeURL normaliza uma URL http/https.
//
// Ordem fixa: extensão → separadores → minúsculas → parâmetros → barra final.
// O host sempre vai para minúsculas e o fragmento é descartado. Segmentos
// vindos dos parâmetros passam pelas mesmas etapas, então a saída é um
// ponto fixo: canonicalizar de novo não muda nada.
func CanonicalizeURL(raw string, opts domain.URLOptions) (string, error) {
	u, err := ParseHTTPURL("canonical_url", raw)
	if err != nil {
		return "", err
	}

	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""
	u.RawFragment = ""

	segs := strings.Split(u.Path, "/")
	for i := range segs {
		segs[i] = normalizeSegment(segs[i], opts, i == len(segs)-1)
	}

	if opts.RemoveParameters {
		folded := foldQuery(u.RawQuery)
		if len(folded) > 0 {
			if segs[len(segs)-1] == "" {
				segs = segs[:len(segs)-1]
			}
			if len(segs) == 0 {
				segs = []string{""}
			}
			for i, s := range folded {
				segs = append(segs, normalizeSegment(s, opts, i == len(folded)-1))
			}
		}
		u.RawQuery = ""
		u.ForceQuery = false
	} else {
		u.RawQuery = escapeQueryControls(u.RawQuery)
	}

	p := strings.Join(segs, "/")
	if opts.AddTrailingSlash && !strings.HasSuffix(p, "/") {
		p += "/"
	}
	u.Path = p
	u.RawPath = ""

	return u.String(), nil
}

// normalizeSegment repete as etapas até estabilizar; uma etapa pode expor
// trabalho para a outra (ex.: "a.html_" só perde a extensão depois do hífen).
func normalizeSegment(seg string, opts domain.URLOptions, last bool) string {
	for range 8 {
		next := seg
		if opts.RemoveExtensions && last {
			next = stripExtensions(next)
		}
		if opts.UseHyphens {
			next = hyphenate(next)
		}
		if opts.ForceLowercase {
			next = strings.ToLower(next)
		}
		if next == seg {
			break
		}
		seg = next
	}
	return seg
}

func stripExtensions(seg string) string {
	for {
		ext := path.Ext(seg)
		if ext == "" || !pageExtensions[strings.ToLower(ext)] {
			return seg
		}
		seg = strings.TrimSuffix(seg, ext)
	}
}

// escapeQueryControls codifica espaços e caracteres de controle da query
// crua; sem isso um espaço final some na próxima leitura da URL.
func escapeQueryControls(q string) string {
	var b strings.Builder
	for i := 0; i < len(q); i++ {
		c := q[i]
		if c <= ' ' || c == 0x7f {
			fmt.Fprintf(&b, "%%%02X", c)
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func hyphenate(seg string) string {
	seg = separatorRe.ReplaceAllString(seg, "-")
	seg = hyphenRunRe.ReplaceAllString(seg, "-")
	return strings.Trim(seg, "-")
}

// foldQuery transforma "a=1&b=2" em [a 1 b 2], preservando a ordem original.
func foldQuery(raw string) []string {
	var out []string
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(k)
		if err != nil {
			key = k
		}
		val, err := url.QueryUnescape(v)
		if err != nil {
			val = v
		}
		for _, s := range []string{key, val} {
			for _, part := range strings.Split(s, "/") {
				if part != "" {
					out = append(out, part)
				}
			}
		}
	}
	return out
}
