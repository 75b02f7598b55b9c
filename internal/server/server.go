package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vitormoschetta/go-chatbot/internal/config"
	"github.com/vitormoschetta/go-chatbot/internal/model"
	"github.com/vitormoschetta/go-chatbot/internal/service"
)

// Server representa o servidor HTTP com todas as dependências
type Server struct {
	Config *config.Config
	Chat   *service.ChatService
	Router chi.Router
}

// NewServer cria uma nova instância do servidor
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	generator, err := service.NewGeminiGenerator(ctx, cfg.APIKey, cfg.Model)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Gemini model %s initialized", cfg.Model)

	return New(cfg, generator), nil
}

// New monta o servidor a partir de um Generator já construído
func New(cfg *config.Config, generator service.Generator) *Server {
	return &Server{
		Config: cfg,
		Chat:   service.NewChatService(generator, cfg.RequestTimeout),
	}
}

// SetupRouter configura as rotas e middlewares do Chi
func (s *Server) SetupRouter(handleChat http.HandlerFunc) {
	r := chi.NewRouter()

	// Middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(Recoverer)

	r.Post("/chatbot", handleChat)

	s.Router = r
}

// Recoverer converte panics em 500 com o envelope de erro JSON
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			log.Printf("panic serving %s %s [%s]: %v\n%s",
				r.Method, r.URL.Path, middleware.GetReqID(r.Context()), rvr, debug.Stack())

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(model.ErrorResponse{
				Error: fmt.Sprint(rvr),
			})
		}()

		next.ServeHTTP(w, r)
	})
}

// Start inicia o servidor HTTP com graceful shutdown
func (s *Server) Start(ctx context.Context) {
	addr := s.Config.Addr()

	var writeTimeout time.Duration
	if s.Config.RequestTimeout > 0 {
		writeTimeout = s.Config.RequestTimeout + 5*time.Second
	}

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      s.Router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: writeTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Println("╔════════════════════════════════════════════════════╗")
		log.Println("║   Gemini Chatbot HTTP Server                       ║")
		log.Println("╚════════════════════════════════════════════════════╝")
		log.Println("")
		log.Printf("🚀 Servidor HTTP iniciado na porta %s", addr)
		log.Printf("🤖 Modelo: %s", s.Config.Model)
		log.Println("")
		log.Println("📌 Endpoint disponível:")
		log.Printf("   • Chat API:  http://localhost%s/chatbot (POST)", addr)
		log.Println("")
		log.Println("💡 Exemplo de uso com curl:")
		log.Printf(`   curl -X POST http://localhost%s/chatbot \`, addr)
		log.Println(`        -H "Content-Type: application/json" \`)
		log.Println(`        -d '{"message":"Hello"}'`)
		log.Println("")
		log.Println("⚠️  Pressione Ctrl+C para parar o servidor")
		log.Println("")

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Aguardar sinal de interrupção
	<-ctx.Done()
	log.Println("🛑 Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("❌ Server shutdown error: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
