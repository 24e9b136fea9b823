package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"
)

// Config agrupa a configuração da aplicação (leitura via Viper de env e opcionalmente arquivo).
type Config struct {
	App    AppConfig
	API    APIConfig
	Sessao SessaoConfig
	Stub   StubConfig
}

// AppConfig configuração geral da aplicação.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// APIConfig configuração do backend REST consumido pelo cliente.
type APIConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// SessaoConfig localização do snapshot de sessão (token + usuário).
type SessaoConfig struct {
	Arquivo string // vazio = <user config dir>/vitrine/sessao.json
}

// Caminho devolve o caminho efetivo do arquivo de sessão.
func (c SessaoConfig) Caminho() (string, error) {
	if c.Arquivo != "" {
		return c.Arquivo, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("diretório de configuração do usuário: %w", err)
	}
	return filepath.Join(dir, "vitrine", "sessao.json"), nil
}

// StubConfig configuração do backend stub de desenvolvimento.
type StubConfig struct {
	Host          string
	Port          int
	JWTSecret     string
	JWTExpMinutes int
	JWTIssuer     string
	UploadDir     string // destino dos arquivos enviados ao stub
}

// Addr devolve o endereço de escuta (host:port).
func (c StubConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lê a configuração de variáveis de ambiente (e opcionalmente de arquivo .env).
// As env vars têm prioridade. Nomes esperados: APP_ENV, VITRINE_API_URL, STUB_JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: arquivo de configuração (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos erro se não existir

	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "vitrine"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		API: APIConfig{
			BaseURL:        getString(v, "VITRINE_API_URL", "http://localhost:3000"),
			TimeoutSeconds: getInt(v, "VITRINE_API_TIMEOUT_SECONDS", 15),
		},
		Sessao: SessaoConfig{
			Arquivo: getString(v, "VITRINE_SESSION_FILE", ""),
		},
		Stub: StubConfig{
			Host:          getString(v, "STUB_HOST", "0.0.0.0"),
			Port:          getInt(v, "STUB_PORT", 3000),
			JWTSecret:     getString(v, "STUB_JWT_SECRET", "vitrine-dev-secret"),
			JWTExpMinutes: getInt(v, "STUB_JWT_EXPIRATION_MINUTES", 480),
			JWTIssuer:     getString(v, "STUB_JWT_ISSUER", "vitrine-stub"),
			UploadDir:     getString(v, "STUB_UPLOAD_DIR", "uploads"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
