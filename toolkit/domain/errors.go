package domain

import (
	"errors"
	"fmt"
)

// Erros sentinela para classificação ampla.
var (
	ErrEmptyInput    = errors.New("input is empty")
	ErrInvalidDomain = errors.New("invalid domain")
	ErrInvalidURL    = errors.New("invalid url")
	ErrInvalidNumber = errors.New("invalid number")
	ErrInvalidOption = errors.New("invalid option")
	ErrNotFound      = errors.New("not found")
	ErrUnsupported   = errors.New("unsupported")
)

// ErrorKind é a taxonomia grossa dos erros das ferramentas.
type ErrorKind string

const (
	// KindValidation bloqueia a operação antes de qualquer trabalho.
	KindValidation ErrorKind = "validation"
	KindNotFound   ErrorKind = "not_found"
	// KindUnsupported é usado para sondagens de recurso que falharam.
	// Nunca é exibido como erro ao usuário, apenas como "unsupported".
	KindUnsupported ErrorKind = "unsupported"
	// KindProcessing existe para o caminho de erro do "backend" simulado.
	KindProcessing ErrorKind = "processing"
)

// ToolError carrega o contexto da operação (ferramenta) e o campo inválido.
type ToolError struct {
	Op    string
	Kind  ErrorKind
	Field string
	Err   error
}

func (e *ToolError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Field != "" {
		base += fmt.Sprintf(" (field=%s)", e.Field)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *ToolError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Invalid monta um erro de validação para o campo informado.
func Invalid(op, field string, err error) error {
	return &ToolError{Op: op, Kind: KindValidation, Field: field, Err: err}
}

// IsKind permite classificar erros sem depender de infra.
func IsKind(err error, kind ErrorKind) bool {
	var te *ToolError
	if errors.As(err, &te) {
		return te.Kind == kind
	}
	return false
}

// FieldOf retorna o campo associado ao erro, se houver.
func FieldOf(err error) string {
	var te *ToolError
	if errors.As(err, &te) {
		return te.Field
	}
	return ""
}
