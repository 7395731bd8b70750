package scoring

import (
	"errors"
	"fmt"

	"github.com/vfg2006/nexscore-api/pkg/apiErrors"
)

// Erros específicos para o contexto de NexScore
var (
	// Erros de validação
	ErrMissingParameter = errors.New("missing required parameter")
	ErrInvalidTimeframe = errors.New("invalid period parameter")

	// Erros de dados
	ErrNoData        = errors.New("no data found")
	ErrMonthNotFound = errors.New("month not found in data")

	// Erros de banco de dados
	ErrStoreFailure = errors.New("store operation error")
)

// ScoreError é um erro com contexto adicional para as consultas de NexScore
type ScoreError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Field   string // Parâmetro envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ScoreError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ScoreError) Unwrap() error {
	return e.Err
}

// NewScoreError cria um novo ScoreError
func NewScoreError(err error, code string, details string) *ScoreError {
	return &ScoreError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewMissingParameterError indica que um parâmetro obrigatório não foi informado
func NewMissingParameterError(field string) *ScoreError {
	return &ScoreError{
		Err:     ErrMissingParameter,
		Code:    apiErrors.ErrMissingRequiredData,
		Field:   field,
		Details: field,
	}
}

// NewStoreError envolve uma falha do banco preservando a mensagem original
func NewStoreError(err error) *ScoreError {
	return &ScoreError{
		Err:  fmt.Errorf("%w: %w", ErrStoreFailure, err),
		Code: apiErrors.ErrDatabaseOperation,
	}
}

func newNoDataError() *ScoreError {
	return NewScoreError(ErrNoData, apiErrors.ErrNoDataFound, "")
}
