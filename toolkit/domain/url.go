package domain

// URLOptions liga/desliga cada etapa da canonicalização.
//
// A ordem de aplicação é fixa:
// extensão → separadores → minúsculas → parâmetros → barra final.
type URLOptions struct {
	RemoveParameters bool `json:"remove_parameters" yaml:"remove_parameters"`
	UseHyphens       bool `json:"use_hyphens" yaml:"use_hyphens"`
	ForceLowercase   bool `json:"force_lowercase" yaml:"force_lowercase"`
	RemoveExtensions bool `json:"remove_extensions" yaml:"remove_extensions"`
	AddTrailingSlash bool `json:"add_trailing_slash" yaml:"add_trailing_slash"`
}

// DefaultURLOptions é o conjunto marcado por padrão no formulário.
func DefaultURLOptions() URLOptions {
	return URLOptions{
		RemoveParameters: true,
		UseHyphens:       true,
		ForceLowercase:   true,
		RemoveExtensions: true,
		AddTrailingSlash: false,
	}
}

type CanonicalURLRequest struct {
	URL     string      `json:"url"`
	Options *URLOptions `json:"options,omitempty"`
}

type CanonicalURLResult struct {
	Original  string `json:"original"`
	Canonical string `json:"canonical"`
	Changed   bool   `json:"changed"`
}
