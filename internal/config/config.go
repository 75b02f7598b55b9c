package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultModel é o identificador do modelo Gemini usado quando GENAI_MODEL não está definido
const DefaultModel = "gemini-2.5-flash"

// ErrMissingAPIKey indica que GENAI_API_KEY não foi definido
var ErrMissingAPIKey = errors.New("GENAI_API_KEY is not set")

// Config contém a configuração do processo, carregada uma única vez na inicialização
type Config struct {
	APIKey         string        `mapstructure:"genai_api_key"`
	Model          string        `mapstructure:"genai_model"`
	Port           int           `mapstructure:"port"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	ExposeErrors   bool          `mapstructure:"expose_errors"`
}

// Load lê a configuração das variáveis de ambiente.
// Retorna ErrMissingAPIKey se a chave da API estiver ausente ou vazia.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("genai_api_key", "")
	v.SetDefault("genai_model", DefaultModel)
	v.SetDefault("port", 5000)
	v.SetDefault("request_timeout", 60*time.Second)
	v.SetDefault("expose_errors", true)

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid PORT %d", cfg.Port)
	}
	if cfg.RequestTimeout < 0 {
		return nil, fmt.Errorf("invalid REQUEST_TIMEOUT %s", cfg.RequestTimeout)
	}

	log.Println("API key loaded")
	return &cfg, nil
}

// Addr retorna o endereço de escuta do servidor HTTP
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
