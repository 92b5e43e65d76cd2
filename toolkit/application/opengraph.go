package application

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"seokit/toolkit/domain"
)

// ParseOpenGraph lê as meta tags og:* e twitter:* de um HTML fornecido pelo
// chamador. Não há busca na rede; rawURL só resolve imagens relativas.
func ParseOpenGraph(rawURL, html string) (domain.OpenGraph, error) {
	const op = "open_graph_parse"
	if err := requireText(op, "html", html); err != nil {
		return domain.OpenGraph{}, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return domain.OpenGraph{}, domain.Invalid(op, "html", err)
	}

	og := domain.OpenGraph{URL: strings.TrimSpace(rawURL), Extra: map[string]string{}}
	doc.Find("meta").Each(func(_ int, s *goquery.Selection) {
		key, _ := s.Attr("property")
		if key == "" {
			key, _ = s.Attr("name")
		}
		key = strings.ToLower(strings.TrimSpace(key))
		val, _ := s.Attr("content")
		val = strings.TrimSpace(val)
		if key == "" || val == "" {
			return
		}

		switch key {
		case "og:title":
			og.Title = val
		case "og:description":
			og.Description = val
		case "og:image":
			og.Image = val
		case "og:type":
			og.Type = val
		case "og:site_name":
			og.SiteName = val
		case "og:url":
			if og.URL == "" {
				og.URL = val
			}
		case "twitter:card":
			og.TwitterCard = val
		case "description":
			if og.Description == "" {
				og.Description = val
			}
		default:
			if strings.HasPrefix(key, "og:") || strings.HasPrefix(key, "twitter:") {
				og.Extra[key] = val
			}
		}
	})

	if og.Title == "" {
		og.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	if og.Image != "" && og.URL != "" {
		if base, err := ParseHTTPURL(op, og.URL); err == nil {
			if ref, err := base.Parse(og.Image); err == nil {
				og.Image = ref.String()
			}
		}
	}
	if len(og.Extra) == 0 {
		og.Extra = nil
	}
	return og, nil
}
