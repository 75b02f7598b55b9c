package model

// ChatRequest representa a requisição para o endpoint de chat
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse representa a resposta de sucesso do endpoint de chat
type ChatResponse struct {
	Response string `json:"response"`
}

// ErrorResponse representa o envelope de erro devolvido ao cliente
type ErrorResponse struct {
	Error string `json:"error"`
}
