package service

import (
	"context"
	"strings"
	"time"
)

// FallbackResponse é devolvido quando o modelo não gera texto
const FallbackResponse = "I couldn't understand that."

// ChatService encaminha a mensagem do usuário ao Generator.
// Não guarda estado entre chamadas.
type ChatService struct {
	generator Generator
	timeout   time.Duration
}

// NewChatService cria o serviço. timeout igual a zero desativa o limite por chamada.
func NewChatService(generator Generator, timeout time.Duration) *ChatService {
	return &ChatService{
		generator: generator,
		timeout:   timeout,
	}
}

// Reply gera a resposta para message.
// Erros retornados são sempre *ChatError.
func (s *ChatService) Reply(ctx context.Context, message string) (string, error) {
	if message == "" {
		return "", RequestError(ErrMessageRequired)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	text, err := s.generator.Generate(ctx, message)
	if err != nil {
		return "", UpstreamError(err)
	}

	if strings.TrimSpace(text) == "" {
		return FallbackResponse, nil
	}
	return text, nil
}
