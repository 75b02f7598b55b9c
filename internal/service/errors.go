package service

import (
	"errors"
	"fmt"
)

// ErrorKind classifica as falhas do caso de uso de chat
type ErrorKind int

const (
	// KindRequest: corpo inválido ou mensagem ausente
	KindRequest ErrorKind = iota + 1
	// KindUpstream: falha da API de geração (rede, autenticação, cota)
	KindUpstream
)

func (k ErrorKind) String() string {
	switch k {
	case KindRequest:
		return "request"
	case KindUpstream:
		return "upstream"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ErrMessageRequired é devolvido quando a requisição não traz o campo message
var ErrMessageRequired = errors.New("message is required")

// ChatError carrega a classificação de uma falha junto com o erro original.
// Error() devolve o texto do erro original sem prefixos.
type ChatError struct {
	Kind ErrorKind
	Err  error
}

func (e *ChatError) Error() string {
	return e.Err.Error()
}

func (e *ChatError) Unwrap() error {
	return e.Err
}

// RequestError envolve err como falha de requisição
func RequestError(err error) *ChatError {
	return &ChatError{Kind: KindRequest, Err: err}
}

// UpstreamError envolve err como falha da API de geração
func UpstreamError(err error) *ChatError {
	return &ChatError{Kind: KindUpstream, Err: err}
}

// KindOf devolve a classificação de err, ou KindUpstream para erros não classificados
func KindOf(err error) ErrorKind {
	var chatErr *ChatError
	if errors.As(err, &chatErr) {
		return chatErr.Kind
	}
	return KindUpstream
}
