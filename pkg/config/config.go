package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	LLM     LLMConfig
	Swagger SwaggerConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LLMConfig endpoint de inferencia compatible con OpenAI.
type LLMConfig struct {
	BaseURL     string // OPENAI_API_BASE, obligatorio
	APIKey      string // credencial de relleno; el endpoint no autentica
	Model       string
	MaxRetries  int
	Timeout     time.Duration // por intento HTTP
	StepTimeout time.Duration // por paso de la cadena, reintentos incluidos
}

// SwaggerConfig ubicación del swagger.json generado por swag.
type SwaggerConfig struct {
	FilePath string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo)
// y la valida. Las env vars tienen prioridad.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := FromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromViper construye la configuración a partir de una instancia de Viper ya poblada.
func FromViper(v *viper.Viper) *Config {
	return &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "production"),
			Name:     getString(v, "APP_NAME", "shoppingassistantservice"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		LLM: LLMConfig{
			BaseURL:     getString(v, "OPENAI_API_BASE", ""),
			APIKey:      getString(v, "LLM_API_KEY", "no-api-key"),
			Model:       getString(v, "LLM_MODEL", "google/gemma-3-4b-it"),
			MaxRetries:  getInt(v, "LLM_MAX_RETRIES", 2),
			Timeout:     time.Duration(getInt(v, "LLM_TIMEOUT_SECONDS", 60)) * time.Second,
			StepTimeout: time.Duration(getInt(v, "LLM_STEP_TIMEOUT_SECONDS", 180)) * time.Second,
		},
		Swagger: SwaggerConfig{
			FilePath: getString(v, "SWAGGER_FILE", "./docs/swagger.json"),
		},
	}
}

// Validate falla si falta OPENAI_API_BASE o algún valor numérico está fuera de rango.
func (c *Config) Validate() error {
	if c.LLM.BaseURL == "" {
		return fmt.Errorf("config: OPENAI_API_BASE es obligatorio")
	}
	u, err := url.Parse(c.LLM.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("config: OPENAI_API_BASE inválido %q, se espera http(s)://host[:puerto][/ruta]", c.LLM.BaseURL)
	}
	if c.LLM.MaxRetries < 0 {
		return fmt.Errorf("config: LLM_MAX_RETRIES no puede ser negativo")
	}
	if c.LLM.Timeout <= 0 || c.LLM.StepTimeout <= 0 {
		return fmt.Errorf("config: LLM_TIMEOUT_SECONDS y LLM_STEP_TIMEOUT_SECONDS deben ser positivos")
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("config: HTTP_PORT fuera de rango: %d", c.HTTP.Port)
	}
	return nil
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
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
