package application

import (
	"context"
	"time"

	"seokit/toolkit/domain"
)

// Toolkit monta as operações de cada ferramenta sobre o mesmo pipeline.
// Todas as dependências são injetadas aqui; não há estado global.
type Toolkit struct {
	Gen   Generator
	Delay time.Duration
	// Sanitize limpa texto livre antes da transformação (ex.: remove HTML).
	// nil mantém o texto como veio.
	Sanitize func(string) string
}

func newOp[In, Out any](k Toolkit, name string, validate func(In) error, fn func(context.Context, In) (Out, error)) Operation[In, Out] {
	return Operation[In, Out]{Name: name, Validate: validate, Transform: fn, Delay: k.Delay}
}

func (k Toolkit) clean(s string) string {
	if k.Sanitize == nil {
		return s
	}
	return k.Sanitize(s)
}

func (k Toolkit) Rewrite() Operation[domain.RewriteRequest, domain.RewriteResult] {
	return newOp(k, "rewrite",
		func(in domain.RewriteRequest) error {
			if err := requireText("rewrite", "text", k.clean(in.Text)); err != nil {
				return err
			}
			if !in.Level.Valid() {
				return domain.Invalid("rewrite", "level", domain.ErrInvalidOption)
			}
			return nil
		},
		func(_ context.Context, in domain.RewriteRequest) (domain.RewriteResult, error) {
			return Rewrite(k.clean(in.Text), in.Level)
		})
}

func (k Toolkit) Reverse() Operation[domain.ReverseRequest, domain.ReverseResult] {
	return newOp(k, "reverse",
		func(in domain.ReverseRequest) error {
			if in.Text == "" {
				return domain.Invalid("reverse", "text", domain.ErrEmptyInput)
			}
			switch in.Mode {
			case "", domain.ReverseCharacters, domain.ReverseWordCharacters, domain.ReverseWordOrder:
				return nil
			}
			return domain.Invalid("reverse", "mode", domain.ErrInvalidOption)
		},
		func(_ context.Context, in domain.ReverseRequest) (domain.ReverseResult, error) {
			out, err := Reverse(in.Text, in.Mode)
			return domain.ReverseResult{Output: out}, err
		})
}

func (k Toolkit) CanonicalURL() Operation[domain.CanonicalURLRequest, domain.CanonicalURLResult] {
	return newOp(k, "canonical-url",
		func(in domain.CanonicalURLRequest) error {
			_, err := ParseHTTPURL("canonical_url", in.URL)
			return err
		},
		func(_ context.Context, in domain.CanonicalURLRequest) (domain.CanonicalURLResult, error) {
			opts := domain.DefaultURLOptions()
			if in.Options != nil {
				opts = *in.Options
			}
			out, err := CanonicalizeURL(in.URL, opts)
			if err != nil {
				return domain.CanonicalURLResult{}, err
			}
			return domain.CanonicalURLResult{Original: in.URL, Canonical: out, Changed: out != in.URL}, nil
		})
}

func (k Toolkit) Readability() Operation[domain.ReadabilityRequest, domain.ReadabilityResult] {
	return newOp(k, "readability",
		func(in domain.ReadabilityRequest) error { return requireText("readability", "text", in.Text) },
		func(_ context.Context, in domain.ReadabilityRequest) (domain.ReadabilityResult, error) {
			return Readability(k.clean(in.Text)), nil
		})
}

func (k Toolkit) Uniqueness() Operation[domain.UniquenessRequest, domain.UniquenessResult] {
	return newOp(k, "uniqueness",
		func(in domain.UniquenessRequest) error {
			if err := requireText("uniqueness", "original", in.Original); err != nil {
				return err
			}
			return requireText("uniqueness", "rewritten", in.Rewritten)
		},
		func(_ context.Context, in domain.UniquenessRequest) (domain.UniquenessResult, error) {
			return domain.UniquenessResult{Uniqueness: Uniqueness(k.clean(in.Original), k.clean(in.Rewritten))}, nil
		})
}

func (k Toolkit) Hashtags() Operation[domain.HashtagRequest, domain.HashtagResult] {
	return newOp(k, "hashtags",
		func(in domain.HashtagRequest) error { return requireText("hashtags", "text", k.clean(in.Text)) },
		func(_ context.Context, in domain.HashtagRequest) (domain.HashtagResult, error) {
			return GenerateHashtags(k.clean(in.Text), in.HashtagOptions, k.Gen.Rand)
		})
}

func (k Toolkit) DNS() Operation[domain.DomainRequest, domain.DNSReport] {
	return newOp(k, "dns", k.validDomain("dns"),
		func(_ context.Context, in domain.DomainRequest) (domain.DNSReport, error) { return k.Gen.DNS(in.Domain) })
}

func (k Toolkit) Backlinks() Operation[domain.DomainRequest, domain.BacklinkReport] {
	return newOp(k, "backlinks", k.validDomain("backlinks"),
		func(_ context.Context, in domain.DomainRequest) (domain.BacklinkReport, error) {
			return k.Gen.Backlinks(in.Domain)
		})
}

func (k Toolkit) Hosting() Operation[domain.DomainRequest, domain.HostingInfo] {
	return newOp(k, "hosting", k.validDomain("hosting"),
		func(_ context.Context, in domain.DomainRequest) (domain.HostingInfo, error) { return k.Gen.Hosting(in.Domain) })
}

func (k Toolkit) ServerStatus() Operation[domain.URLRequest, domain.ServerStatus] {
	return newOp(k, "server-status", k.validURL("server_status"),
		func(_ context.Context, in domain.URLRequest) (domain.ServerStatus, error) {
			return k.Gen.ServerStatus(in.URL)
		})
}

func (k Toolkit) DomainAge() Operation[domain.DomainRequest, domain.DomainAge] {
	return newOp(k, "domain-age", k.validDomain("domain_age"),
		func(_ context.Context, in domain.DomainRequest) (domain.DomainAge, error) { return k.Gen.DomainAge(in.Domain) })
}

func (k Toolkit) Authority() Operation[domain.DomainRequest, domain.DomainAuthority] {
	return newOp(k, "authority", k.validDomain("authority"),
		func(_ context.Context, in domain.DomainRequest) (domain.DomainAuthority, error) {
			return k.Gen.Authority(in.Domain)
		})
}

// BulkAuthority não tem espera global: a latência é por domínio.
func (k Toolkit) BulkAuthority() Operation[domain.BulkAuthorityRequest, domain.BulkAuthorityResult] {
	o := newOp(k, "authority-bulk",
		func(in domain.BulkAuthorityRequest) error {
			_, err := NormalizeBulkDomains(in.Domains)
			return err
		},
		func(ctx context.Context, in domain.BulkAuthorityRequest) (domain.BulkAuthorityResult, error) {
			return k.Gen.BulkAuthority(ctx, in.Domains)
		})
	o.Delay = 0
	return o
}

func (k Toolkit) OpenGraph() Operation[domain.URLRequest, domain.OpenGraph] {
	return newOp(k, "open-graph", k.validURL("open_graph"),
		func(_ context.Context, in domain.URLRequest) (domain.OpenGraph, error) { return k.Gen.OpenGraph(in.URL) })
}

func (k Toolkit) OpenGraphParse() Operation[domain.OpenGraphParseRequest, domain.OpenGraph] {
	return newOp(k, "open-graph-parse",
		func(in domain.OpenGraphParseRequest) error { return requireText("open_graph_parse", "html", in.HTML) },
		func(_ context.Context, in domain.OpenGraphParseRequest) (domain.OpenGraph, error) {
			return ParseOpenGraph(in.URL, in.HTML)
		})
}

func (k Toolkit) Earnings() Operation[domain.EarningsInput, domain.EarningsEstimate] {
	return newOp(k, "youtube-earnings",
		func(in domain.EarningsInput) error {
			_, err := Earnings(in)
			return err
		},
		func(_ context.Context, in domain.EarningsInput) (domain.EarningsEstimate, error) { return Earnings(in) })
}

func (k Toolkit) UserAgent() Operation[domain.UserAgentRequest, domain.UserAgentInfo] {
	o := newOp(k, "user-agent",
		func(in domain.UserAgentRequest) error { return requireText("user_agent", "user_agent", in.UserAgent) },
		func(_ context.Context, in domain.UserAgentRequest) (domain.UserAgentInfo, error) {
			return ParseUserAgent(in.UserAgent)
		})
	// leitura de dado já exposto pelo navegador: sem latência simulada
	o.Delay = 0
	return o
}

func (k Toolkit) validDomain(name string) func(domain.DomainRequest) error {
	return func(in domain.DomainRequest) error {
		_, err := NormalizeDomain(name, in.Domain)
		return err
	}
}

func (k Toolkit) validURL(name string) func(domain.URLRequest) error {
	return func(in domain.URLRequest) error {
		_, err := ParseHTTPURL(name, in.URL)
		return err
	}
}
