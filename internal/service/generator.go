package service

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"google.golang.org/adk/model"
	"google.golang.org/adk/model/gemini"
	"google.golang.org/genai"
)

// Generator envia um prompt ao modelo e devolve o texto gerado
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// contentGenerator é a parte de model.LLM usada pelo GeminiGenerator
type contentGenerator interface {
	GenerateContent(ctx context.Context, req *model.LLMRequest, stream bool) iter.Seq2[*model.LLMResponse, error]
}

// GeminiGenerator implementa Generator usando o modelo Gemini do ADK
type GeminiGenerator struct {
	llm       contentGenerator
	modelName string
}

// NewGeminiGenerator cria o cliente Gemini com a chave de API e o modelo informados
func NewGeminiGenerator(ctx context.Context, apiKey, modelName string) (*GeminiGenerator, error) {
	llmModel, err := gemini.NewModel(ctx, modelName, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create model: %w", err)
	}

	return newGeminiGenerator(llmModel, modelName), nil
}

func newGeminiGenerator(llm contentGenerator, modelName string) *GeminiGenerator {
	return &GeminiGenerator{
		llm:       llm,
		modelName: modelName,
	}
}

// Generate envia o prompt como uma única mensagem do usuário e concatena
// o texto de todas as partes retornadas
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	llmRequest := model.LLMRequest{
		Model: g.modelName,
		Contents: []*genai.Content{
			{
				Role: "user",
				Parts: []*genai.Part{
					{Text: prompt},
				},
			},
		},
		Config: &genai.GenerateContentConfig{},
	}

	var responseText strings.Builder
	for response, err := range g.llm.GenerateContent(ctx, &llmRequest, false) {
		if err != nil {
			return "", err
		}
		if response == nil || response.Content == nil {
			continue
		}
		for _, part := range response.Content.Parts {
			if part != nil && part.Text != "" {
				responseText.WriteString(part.Text)
			}
		}
	}

	return responseText.String(), nil
}
