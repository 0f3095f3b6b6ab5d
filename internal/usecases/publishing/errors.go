package publishing

import (
	"errors"
	"fmt"

	"github.com/vfg2006/commercial-publisher-api/internal/domain"
)

var (
	// Erros de validação
	ErrNoPlatforms     = errors.New("ao menos uma plataforma é obrigatória")
	ErrUnknownPlatform = errors.New("plataforma desconhecida")
	ErrTokenDeduction  = errors.New("erro ao debitar tokens da publicação")

	// Erros de ciclo de vida
	ErrJobNotFound       = errors.New("job não encontrado")
	ErrJobNotCancellable = errors.New("job já finalizado não pode ser cancelado")
	ErrJobCancelled      = errors.New("job cancelado")

	// Erros de tentativa
	ErrInvalidCredential = errors.New("credencial ausente ou inválida")
	ErrPublisherMissing  = errors.New("publicador não configurado")
	ErrPublishRejected   = errors.New("publicação rejeitada pela plataforma")
	ErrAttemptPanic      = errors.New("panic durante a tentativa")
)

// PublishingError é a falha de uma tentativa, com o código exposto no job
type PublishingError struct {
	Err      error
	Code     domain.JobErrorCode
	Platform domain.Platform
	Details  string
}

func (e *PublishingError) Error() string {
	msg := e.Err.Error()
	if e.Platform != "" {
		msg = fmt.Sprintf("%s: %s", e.Platform, msg)
	}
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	return msg
}

func (e *PublishingError) Unwrap() error {
	return e.Err
}

func NewPublishingError(err error, code domain.JobErrorCode, platform domain.Platform, details string) *PublishingError {
	return &PublishingError{
		Err:      err,
		Code:     code,
		Platform: platform,
		Details:  details,
	}
}
