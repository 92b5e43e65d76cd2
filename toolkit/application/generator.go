package application

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"seokit/toolkit/domain"
)

// MaxBulkDomains limita a checagem em lote de autoridade.
const MaxBulkDomains = 20

// Generator sintetiza as respostas do "backend" simulado.
//
// Nenhuma chamada externa é feita: tudo vem de Rand e Clock. Com uma fonte
// fixa as estruturas são determinísticas e internamente consistentes.
type Generator struct {
	Rand  domain.Random
	Clock domain.Clock
	// Latency é a espera simulada por item nas checagens em lote.
	Latency time.Duration
	// BulkWorkers limita quantos itens do lote rodam ao mesmo tempo.
	BulkWorkers int
}

type hostingProvider struct {
	name    string
	asn     string
	ns      string
	country string
	city    string
}

var providers = []hostingProvider{
	{"Cloudflare, Inc.", "AS13335", "cloudflare.com", "United States", "San Francisco"},
	{"Amazon Web Services", "AS16509", "awsdns.net", "United States", "Ashburn"},
	{"Google Cloud", "AS15169", "googledomains.com", "United States", "Council Bluffs"},
	{"DigitalOcean, LLC", "AS14061", "digitalocean.com", "Netherlands", "Amsterdam"},
	{"Hetzner Online GmbH", "AS24940", "hetzner.com", "Germany", "Falkenstein"},
	{"OVH SAS", "AS16276", "ovh.net", "France", "Roubaix"},
	{"Akamai (Linode)", "AS63949", "linode.com", "United Kingdom", "London"},
	{"Vercel Inc.", "AS16509", "vercel-dns.com", "United States", "Portland"},
}

var (
	serverSoftware = []string{"nginx", "Apache", "cloudflare", "LiteSpeed", "Microsoft-IIS/10.0", "openresty"}
	registrars     = []string{"GoDaddy.com, LLC", "NameCheap, Inc.", "Google LLC", "Tucows Domains Inc.", "Network Solutions, LLC", "Gandi SAS"}
	ttls           = []int{300, 600, 1800, 3600, 86400}
	linkSources    = []string{"medium.com", "reddit.com", "dev.to", "quora.com", "wordpress.com", "blogspot.com", "github.io", "substack.com", "producthunt.com", "hashnode.dev"}
	anchorFormats  = []string{"%s", "visit %s", "read more", "official site", "click here", "this article on %s", "learn more"}
	upCodes        = []int{200, 200, 200, 200, 301, 302}
	downCodes      = []int{500, 502, 503, 504}
)

func (g Generator) now() time.Time {
	if g.Clock == nil {
		return time.Now()
	}
	return g.Clock.Now()
}

func (g Generator) intn(n int) int {
	if n <= 0 {
		return 0
	}
	return g.Rand.IntN(n)
}

func (g Generator) ipv4() string {
	return fmt.Sprintf("%d.%d.%d.%d", 23+g.intn(200), g.intn(256), g.intn(256), 1+g.intn(254))
}

func (g Generator) provider() hostingProvider {
	return providers[g.intn(len(providers))]
}

// DNS gera o conjunto de registros do domínio.
func (g Generator) DNS(raw string) (domain.DNSReport, error) {
	d, err := NormalizeDomain("dns", raw)
	if err != nil {
		return domain.DNSReport{}, err
	}
	p := g.provider()
	ttl := ttls[g.intn(len(ttls))]

	var recs []domain.DNSRecord
	for range 1 + g.intn(2) {
		recs = append(recs, domain.DNSRecord{Type: "A", Name: d, Value: g.ipv4(), TTL: ttl})
	}
	recs = append(recs, domain.DNSRecord{
		Type:  "AAAA",
		Name:  d,
		Value: fmt.Sprintf("2606:4700:%x::%x", g.intn(0xffff), 1+g.intn(0xffff)),
		TTL:   ttl,
	})
	recs = append(recs,
		domain.DNSRecord{Type: "CNAME", Name: "www." + d, Value: d, TTL: ttl},
		domain.DNSRecord{Type: "MX", Name: d, Value: "mail." + d, TTL: ttl, Priority: 10},
		domain.DNSRecord{Type: "MX", Name: d, Value: "alt1.mail." + d, TTL: ttl, Priority: 20},
		domain.DNSRecord{Type: "NS", Name: d, Value: "ns1." + p.ns, TTL: 86400},
		domain.DNSRecord{Type: "NS", Name: d, Value: "ns2." + p.ns, TTL: 86400},
		domain.DNSRecord{Type: "TXT", Name: d, Value: "v=spf1 include:_spf." + d + " ~all", TTL: ttl},
		domain.DNSRecord{Type: "TXT", Name: d, Value: fmt.Sprintf("site-verification=%08x%08x", g.Rand.IntN(math.MaxInt32), g.Rand.IntN(math.MaxInt32)), TTL: ttl},
		domain.DNSRecord{
			Type:  "SOA",
			Name:  d,
			Value: fmt.Sprintf("ns1.%s. hostmaster.%s. %s01 7200 3600 1209600 3600", p.ns, d, g.now().UTC().Format("20060102")),
			TTL:   3600,
		},
	)
	return domain.DNSReport{Domain: d, Records: recs}, nil
}

// Backlinks gera o relatório; DoFollow + NoFollow == Total sempre.
func (g Generator) Backlinks(raw string) (domain.BacklinkReport, error) {
	d, err := NormalizeDomain("backlinks", raw)
	if err != nil {
		return domain.BacklinkReport{}, err
	}

	total := 50 + g.intn(5000)
	dofollow := g.intn(total + 1)
	rep := domain.BacklinkReport{
		Domain:           d,
		Total:            total,
		DoFollow:         dofollow,
		NoFollow:         total - dofollow,
		ReferringDomains: 1 + g.intn(total),
	}

	size := min(total, 10)
	sampleDo := int(math.Round(float64(size) * float64(dofollow) / float64(total)))
	now := g.now().UTC()
	for i := range size {
		src := linkSources[g.intn(len(linkSources))]
		anchor := anchorFormats[g.intn(len(anchorFormats))]
		if strings.Contains(anchor, "%s") {
			anchor = fmt.Sprintf(anchor, d)
		}
		rep.Sample = append(rep.Sample, domain.Backlink{
			SourceURL:  fmt.Sprintf("https://%s/post-%d", src, 1000+g.intn(9000)),
			TargetURL:  "https://" + d + "/",
			AnchorText: anchor,
			DoFollow:   i < sampleDo,
			Authority:  1 + g.intn(100),
			FirstSeen:  now.AddDate(0, 0, -g.intn(900)).Format(time.DateOnly),
		})
	}
	return rep, nil
}

func (g Generator) Hosting(raw string) (domain.HostingInfo, error) {
	d, err := NormalizeDomain("hosting", raw)
	if err != nil {
		return domain.HostingInfo{}, err
	}
	p := g.provider()
	return domain.HostingInfo{
		Domain:      d,
		IP:          g.ipv4(),
		Provider:    p.name,
		ASN:         p.asn,
		Country:     p.country,
		City:        p.city,
		Server:      serverSoftware[g.intn(len(serverSoftware))],
		Nameservers: []string{"ns1." + p.ns, "ns2." + p.ns},
	}, nil
}

// ServerStatus simula uma checagem; Up == (200 <= StatusCode < 400).
func (g Generator) ServerStatus(raw string) (domain.ServerStatus, error) {
	u, err := ParseHTTPURL("server_status", raw)
	if err != nil {
		return domain.ServerStatus{}, err
	}
	st := domain.ServerStatus{URL: u.String(), CheckedAt: g.now()}
	if g.Rand.Float64() < 0.9 {
		st.StatusCode = upCodes[g.intn(len(upCodes))]
		st.ResponseTimeMS = 80 + g.intn(900)
	} else {
		st.StatusCode = downCodes[g.intn(len(downCodes))]
		st.ResponseTimeMS = 5000 + g.intn(25000)
	}
	st.Up = st.StatusCode >= 200 && st.StatusCode < 400
	if u.Scheme == "https" {
		st.SSLDaysLeft = 1 + g.intn(365)
	}
	return st, nil
}

func (g Generator) DomainAge(raw string) (domain.DomainAge, error) {
	d, err := NormalizeDomain("domain_age", raw)
	if err != nil {
		return domain.DomainAge{}, err
	}
	now := g.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	created := today.AddDate(0, 0, -(365 + g.intn(365*25)))
	y, m, days := ageBreakdown(created, today)
	return domain.DomainAge{
		Domain:    d,
		Registrar: registrars[g.intn(len(registrars))],
		CreatedAt: created,
		ExpiresAt: created.AddDate(y+1+g.intn(5), 0, 0),
		Years:     y,
		Months:    m,
		Days:      days,
		TotalDays: int(today.Sub(created).Hours() / 24),
	}, nil
}

// ageBreakdown calcula a diferença de calendário from → to (from <= to).
// Meses contam só quando completos; o resto vira dias.
func ageBreakdown(from, to time.Time) (years, months, days int) {
	total := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	anchor := from.AddDate(0, total, 0)
	for total > 0 && anchor.After(to) {
		total--
		anchor = from.AddDate(0, total, 0)
	}
	days = int(to.Sub(anchor).Hours() / 24)
	return total / 12, total % 12, days
}

func (g Generator) Authority(raw string) (domain.DomainAuthority, error) {
	d, err := NormalizeDomain("authority", raw)
	if err != nil {
		return domain.DomainAuthority{}, err
	}
	return g.authorityFor(d), nil
}

func (g Generator) authorityFor(d string) domain.DomainAuthority {
	inbound := 10 + g.intn(100000)
	da := 1 + g.intn(100)
	return domain.DomainAuthority{
		Domain:         d,
		DA:             da,
		PA:             1 + g.intn(100),
		SpamScore:      g.intn(18),
		LinkingDomains: 1 + g.intn(inbound),
		InboundLinks:   inbound,
		Tier:           AuthorityTier(da),
	}
}

// AuthorityTier classifica o DA em faixas fixas.
func AuthorityTier(da int) string {
	switch {
	case da <= 20:
		return "low"
	case da <= 50:
		return "medium"
	case da <= 80:
		return "high"
	default:
		return "excellent"
	}
}

// BulkAuthority valida todos os domínios antes de qualquer trabalho, sorteia
// os valores na ordem de entrada e só então espera a latência de cada item em
// paralelo (limitado por BulkWorkers). Com a mesma fonte semeada o resultado
// é sempre o mesmo.
func (g Generator) BulkAuthority(ctx context.Context, raw []string) (domain.BulkAuthorityResult, error) {
	domains, err := NormalizeBulkDomains(raw)
	if err != nil {
		return domain.BulkAuthorityResult{}, err
	}

	workers := g.BulkWorkers
	if workers <= 0 {
		workers = 4
	}

	out := make([]domain.DomainAuthority, len(domains))
	for i, d := range domains {
		out[i] = g.authorityFor(d)
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for range domains {
		eg.Go(func() error {
			return Sleep(egCtx, g.Latency)
		})
	}
	if err := eg.Wait(); err != nil {
		return domain.BulkAuthorityResult{}, err
	}
	return domain.BulkAuthorityResult{Results: out}, nil
}

// NormalizeBulkDomains valida o lote inteiro: 1 a MaxBulkDomains domínios,
// todos válidos.
func NormalizeBulkDomains(raw []string) ([]string, error) {
	const op = "authority_bulk"
	if len(raw) == 0 {
		return nil, domain.Invalid(op, "domains", domain.ErrEmptyInput)
	}
	if len(raw) > MaxBulkDomains {
		return nil, domain.Invalid(op, "domains", domain.ErrInvalidOption)
	}
	out := make([]string, len(raw))
	for i, r := range raw {
		d, err := NormalizeDomain(op, r)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}

// OpenGraph devolve tags simuladas a partir do host da URL.
func (g Generator) OpenGraph(raw string) (domain.OpenGraph, error) {
	u, err := ParseHTTPURL("open_graph", raw)
	if err != nil {
		return domain.OpenGraph{}, err
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	label, _, _ := strings.Cut(host, ".")
	site := cases.Title(language.English).String(label)

	card := "summary_large_image"
	if g.intn(2) == 0 {
		card = "summary"
	}
	return domain.OpenGraph{
		URL:         u.String(),
		Title:       site + " | Home",
		Description: "Discover " + site + ": news, guides and resources curated for you.",
		Image:       u.Scheme + "://" + u.Host + "/og-image.jpg",
		Type:        "website",
		SiteName:    site,
		TwitterCard: card,
	}, nil
}
