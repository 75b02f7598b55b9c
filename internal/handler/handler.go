package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/vitormoschetta/go-chatbot/internal/model"
	"github.com/vitormoschetta/go-chatbot/internal/server"
	"github.com/vitormoschetta/go-chatbot/internal/service"
)

const sanitizedError = "internal server error"

// Handler contém as dependências necessárias para os handlers HTTP
type Handler struct {
	server *server.Server
}

// NewHandler cria uma nova instância do Handler
func NewHandler(srv *server.Server) *Handler {
	return &Handler{
		server: srv,
	}
}

// HandleChat envia a mensagem do usuário ao modelo e devolve o texto gerado.
// Qualquer falha vira 500 com {"error": ...}.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	defer r.Body.Close()

	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, service.RequestError(err))
		return
	}

	text, err := h.server.Chat.Reply(r.Context(), req.Message)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(model.ChatResponse{
		Response: text,
	})
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := service.KindOf(err)
	log.Printf("Chat request %s failed (%s): %v", middleware.GetReqID(r.Context()), kind, err)

	msg := err.Error()
	if kind == service.KindUpstream && !h.server.Config.ExposeErrors {
		msg = sanitizedError
	}

	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(model.ErrorResponse{
		Error: msg,
	})
}
