package domain

const Unsupported = "unsupported"

type UserAgentRequest struct {
	UserAgent string `json:"user_agent"`
}

type UserAgentInfo struct {
	Raw            string `json:"raw"`
	Browser        string `json:"browser"`
	BrowserVersion string `json:"browser_version"`
	Engine         string `json:"engine"`
	OS             string `json:"os"`
	OSVersion      string `json:"os_version"`
	Device         string `json:"device"`
	Bot            bool   `json:"bot"`
}

// BrowserReport é o que o servidor enxerga do navegador. Cada sonda
// ausente vira Unsupported, nunca um erro.
type BrowserReport struct {
	UserAgent UserAgentInfo     `json:"user_agent"`
	ClientIP  string            `json:"client_ip"`
	Probes    map[string]string `json:"probes"`
}
