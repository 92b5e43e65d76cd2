package application

import (
	"regexp"
	"strings"

	"seokit/toolkit/domain"
)

type uaRule struct {
	name   string
	engine string
	re     *regexp.Regexp
}

// A ordem importa: Edge e Opera se anunciam como Chrome, Chrome como Safari.
var browserRules = []uaRule{
	{"Edge", "Blink", regexp.MustCompile(`Edg(?:e|A|iOS)?/([\d.]+)`)},
	{"Opera", "Blink", regexp.MustCompile(`(?:OPR|Opera)/([\d.]+)`)},
	{"Samsung Internet", "Blink", regexp.MustCompile(`SamsungBrowser/([\d.]+)`)},
	{"Firefox", "Gecko", regexp.MustCompile(`(?:Firefox|FxiOS)/([\d.]+)`)},
	{"Chrome", "Blink", regexp.MustCompile(`(?:Chrome|CriOS)/([\d.]+)`)},
	{"Safari", "WebKit", regexp.MustCompile(`Version/([\d.]+).*Safari/`)},
	{"Internet Explorer", "Trident", regexp.MustCompile(`(?:MSIE |Trident/.*rv:)([\d.]+)`)},
}

var osRules = []struct {
	name string
	re   *regexp.Regexp
}{
	{"Windows", regexp.MustCompile(`Windows NT ([\d.]+)`)},
	{"iOS", regexp.MustCompile(`(?:iPhone|iPad|iPod).*?OS ([\d_]+)`)},
	{"Android", regexp.MustCompile(`Android ([\d.]+)`)},
	{"macOS", regexp.MustCompile(`Mac OS X ([\d_.]+)`)},
	{"ChromeOS", regexp.MustCompile(`CrOS \S+ ([\d.]+)`)},
	{"Linux", regexp.MustCompile(`Linux()`)},
}

var botRe = regexp.MustCompile(`(?i)bot|crawler|spider|slurp|curl|wget|python-requests|headless`)

// ParseUserAgent classifica navegador, motor, sistema e tipo de dispositivo.
// Campos não reconhecidos ficam como "unknown".
func ParseUserAgent(ua string) (domain.UserAgentInfo, error) {
	ua = strings.TrimSpace(ua)
	if ua == "" {
		return domain.UserAgentInfo{}, domain.Invalid("user_agent", "user_agent", domain.ErrEmptyInput)
	}

	info := domain.UserAgentInfo{
		Raw:     ua,
		Browser: "unknown",
		Engine:  "unknown",
		OS:      "unknown",
		Device:  "desktop",
		Bot:     botRe.MatchString(ua),
	}

	for _, r := range browserRules {
		if m := r.re.FindStringSubmatch(ua); m != nil {
			info.Browser, info.BrowserVersion, info.Engine = r.name, m[1], r.engine
			break
		}
	}
	if info.Browser == "Safari" || strings.Contains(ua, "iPhone") || strings.Contains(ua, "iPad") {
		// todo navegador no iOS roda sobre WebKit
		info.Engine = "WebKit"
	}

	for _, r := range osRules {
		if m := r.re.FindStringSubmatch(ua); m != nil {
			info.OS = r.name
			info.OSVersion = strings.ReplaceAll(m[1], "_", ".")
			break
		}
	}

	switch {
	case info.Bot:
		info.Device = "bot"
	case strings.Contains(ua, "iPad") || strings.Contains(ua, "Tablet") ||
		(info.OS == "Android" && !strings.Contains(ua, "Mobile")):
		info.Device = "tablet"
	case strings.Contains(ua, "Mobi") || strings.Contains(ua, "iPhone"):
		info.Device = "mobile"
	}
	return info, nil
}
