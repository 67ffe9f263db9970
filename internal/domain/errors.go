package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDateRange    = errors.New("intervalo de datas inválido")
	ErrUnsupportedInterval = errors.New("intervalo de agrupamento não suportado")
	ErrUnknownPlatform     = errors.New("plataforma desconhecida")
	ErrSourceUnavailable   = errors.New("fonte de dados financeiros indisponível")
)

// UnknownPlatformError carrega o nome recebido e responde a errors.Is(err, ErrUnknownPlatform)
type UnknownPlatformError struct {
	Name string
}

func (e *UnknownPlatformError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnknownPlatform.Error(), e.Name)
}

func (e *UnknownPlatformError) Unwrap() error {
	return ErrUnknownPlatform
}
