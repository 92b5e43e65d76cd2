package domain

type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformTwitter   Platform = "twitter"
	PlatformTikTok    Platform = "tiktok"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformYouTube   Platform = "youtube"
	PlatformFacebook  Platform = "facebook"
)

const (
	DefaultHashtagMax = 10
	MaxHashtagMax     = 30
)

type HashtagOptions struct {
	Platform       Platform `json:"platform"`
	Max            int      `json:"max"`
	IncludePopular bool     `json:"include_popular"`
}

type HashtagRequest struct {
	Text string `json:"text"`
	HashtagOptions
}

// HashtagResult traz as tags prontas (todas começam com '#') e a
// frequência das palavras-chave que as originaram.
type HashtagResult struct {
	Tags      []string       `json:"tags"`
	Keywords  map[string]int `json:"keywords"`
	Platform  Platform       `json:"platform"`
	Generated int            `json:"generated"`
}
