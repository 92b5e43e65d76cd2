package domain

// RewriteLevel é a intensidade qualitativa do reescritor.
type RewriteLevel string

const (
	LevelLight  RewriteLevel = "light"
	LevelMedium RewriteLevel = "medium"
	LevelHeavy  RewriteLevel = "heavy"
)

func (l RewriteLevel) Valid() bool {
	switch l {
	case LevelLight, LevelMedium, LevelHeavy:
		return true
	}
	return false
}

// Chaves de métricas derivadas presentes em RewriteResult.Metrics.
const (
	MetricReadability = "readability"
	MetricUniqueness  = "uniqueness"
)

// RewriteRequest é criado a cada submissão e consumido uma única vez.
type RewriteRequest struct {
	Text  string       `json:"text"`
	Level RewriteLevel `json:"level"`
}

type RewriteResult struct {
	Output  string             `json:"output"`
	Metrics map[string]float64 `json:"metrics"`
}

// ReverseMode seleciona a transformação do texto invertido.
type ReverseMode string

const (
	ReverseCharacters     ReverseMode = "characters"
	ReverseWordCharacters ReverseMode = "word-characters"
	ReverseWordOrder      ReverseMode = "word-order"
)

type ReverseRequest struct {
	Text string      `json:"text"`
	Mode ReverseMode `json:"mode"`
}

type ReverseResult struct {
	Output string `json:"output"`
}

type ReadabilityRequest struct {
	Text string `json:"text"`
}

type ReadabilityResult struct {
	Score     float64 `json:"score"`
	Words     int     `json:"words"`
	Sentences int     `json:"sentences"`
}

type UniquenessRequest struct {
	Original  string `json:"original"`
	Rewritten string `json:"rewritten"`
}

type UniquenessResult struct {
	Uniqueness float64 `json:"uniqueness"`
}
