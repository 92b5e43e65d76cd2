package domain

import "time"

// Estruturas sintetizadas pelos geradores simulados. Os valores não têm
// invariantes reais além do formato, exceto onde indicado.

type DomainRequest struct {
	Domain string `json:"domain"`
}

type URLRequest struct {
	URL string `json:"url"`
}

type DNSRecord struct {
	Type     string `json:"type"`
	Name     string `json:"name"`
	Value    string `json:"value"`
	TTL      int    `json:"ttl"`
	Priority int    `json:"priority,omitempty"`
}

type DNSReport struct {
	Domain  string      `json:"domain"`
	Records []DNSRecord `json:"records"`
}

type Backlink struct {
	SourceURL  string `json:"source_url"`
	TargetURL  string `json:"target_url"`
	AnchorText string `json:"anchor_text"`
	DoFollow   bool   `json:"dofollow"`
	Authority  int    `json:"authority"`
	FirstSeen  string `json:"first_seen"`
}

// BacklinkReport mantém DoFollow + NoFollow == Total.
type BacklinkReport struct {
	Domain           string     `json:"domain"`
	Total            int        `json:"total"`
	DoFollow         int        `json:"dofollow"`
	NoFollow         int        `json:"nofollow"`
	ReferringDomains int        `json:"referring_domains"`
	Sample           []Backlink `json:"sample"`
}

type HostingInfo struct {
	Domain      string   `json:"domain"`
	IP          string   `json:"ip"`
	Provider    string   `json:"provider"`
	ASN         string   `json:"asn"`
	Country     string   `json:"country"`
	City        string   `json:"city"`
	Server      string   `json:"server"`
	Nameservers []string `json:"nameservers"`
}

// ServerStatus mantém Up == (200 <= StatusCode < 400).
type ServerStatus struct {
	URL            string    `json:"url"`
	Up             bool      `json:"up"`
	StatusCode     int       `json:"status_code"`
	ResponseTimeMS int       `json:"response_time_ms"`
	SSLDaysLeft    int       `json:"ssl_days_left"`
	CheckedAt      time.Time `json:"checked_at"`
}

type DomainAge struct {
	Domain    string    `json:"domain"`
	Registrar string    `json:"registrar"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
	Years     int       `json:"years"`
	Months    int       `json:"months"`
	Days      int       `json:"days"`
	TotalDays int       `json:"total_days"`
}

// DomainAuthority mantém LinkingDomains <= InboundLinks.
type DomainAuthority struct {
	Domain         string `json:"domain"`
	DA             int    `json:"da"`
	PA             int    `json:"pa"`
	SpamScore      int    `json:"spam_score"`
	LinkingDomains int    `json:"linking_domains"`
	InboundLinks   int    `json:"inbound_links"`
	Tier           string `json:"tier"`
}

type BulkAuthorityRequest struct {
	Domains []string `json:"domains"`
}

type BulkAuthorityResult struct {
	Results []DomainAuthority `json:"results"`
}

type OpenGraph struct {
	URL         string            `json:"url"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Image       string            `json:"image"`
	Type        string            `json:"type"`
	SiteName    string            `json:"site_name"`
	TwitterCard string            `json:"twitter_card"`
	Extra       map[string]string `json:"extra,omitempty"`
}

type OpenGraphParseRequest struct {
	URL  string `json:"url"`
	HTML string `json:"html"`
}

// EarningsInput chega como texto (formulário/query) e é validado como número.
type EarningsInput struct {
	DailyViews string `json:"daily_views"`
	CPMLow     string `json:"cpm_low"`
	CPMHigh    string `json:"cpm_high"`
}

type EarningsRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

type EarningsEstimate struct {
	DailyViews float64       `json:"daily_views"`
	CPMLow     float64       `json:"cpm_low"`
	CPMHigh    float64       `json:"cpm_high"`
	Daily      EarningsRange `json:"daily"`
	Monthly    EarningsRange `json:"monthly"`
	Yearly     EarningsRange `json:"yearly"`
}
