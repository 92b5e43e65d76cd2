package application

import (
	"strings"

	"seokit/toolkit/domain"
)

// BrowserProbes mapeia o nome da sonda para o header que a responde.
// Client hints só chegam quando o navegador suporta e o servidor pede.
var BrowserProbes = map[string]string{
	"accept_language":  "Accept-Language",
	"do_not_track":     "DNT",
	"global_privacy":   "Sec-GPC",
	"ch_ua":            "Sec-CH-UA",
	"ch_ua_mobile":     "Sec-CH-UA-Mobile",
	"ch_ua_platform":   "Sec-CH-UA-Platform",
	"save_data":        "Save-Data",
	"downlink":         "Downlink",
	"effective_type":   "ECT",
	"rtt":              "RTT",
	"device_memory":    "Device-Memory",
	"viewport_width":   "Viewport-Width",
	"fetch_dest":       "Sec-Fetch-Dest",
	"upgrade_insecure": "Upgrade-Insecure-Requests",
}

// InspectBrowser monta o relatório a partir dos headers já expostos pelo
// navegador. Sonda ausente vira "unsupported"; nada aqui retorna erro.
func InspectBrowser(header func(string) string, clientIP string) domain.BrowserReport {
	rep := domain.BrowserReport{
		ClientIP: clientIP,
		Probes:   make(map[string]string, len(BrowserProbes)),
	}

	ua, err := ParseUserAgent(header("User-Agent"))
	if err != nil {
		ua = domain.UserAgentInfo{
			Browser: domain.Unsupported,
			Engine:  domain.Unsupported,
			OS:      domain.Unsupported,
			Device:  domain.Unsupported,
		}
	}
	rep.UserAgent = ua

	for probe, name := range BrowserProbes {
		v := strings.TrimSpace(header(name))
		if v == "" {
			v = domain.Unsupported
		}
		rep.Probes[probe] = v
	}
	return rep
}
