package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Language model used to resolve dates
	LLM LLMConfig

	// Reference-date calendar
	Dates DatesConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// LLMConfig selects and configures the language-model provider.
type LLMConfig struct {
	Provider        string        // openai, gemini, deepseek, qwen
	APIKey          string        // may be "${ENV_VAR}"
	Model           string        // empty means the provider default
	BaseURL         string        // OpenAI-compatible endpoints only
	CredentialsPath string        // gemini service account JSON
	Timeout         time.Duration // per request
	Temperature     float64
}

type DatesConfig struct {
	// Timezone is the IANA zone used to compute "today"; empty means local time.
	Timezone string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/nl-dates/
func Load() (*Config, error) {
	// Load environment variables from .env file if it exists
	_ = godotenv.Load()

	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/nl-dates/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	cfg.LLM = loadLLM(v)
	cfg.Dates.Timezone = v.GetString("dates.timezone")

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadLLM resolves the LLM configuration from ambient sources only
// (.env and process environment); no config file is required.
func LoadLLM() (LLMConfig, error) {
	_ = godotenv.Load()

	cfg := loadLLM(newViper())
	if err := validateLLMConfig(&cfg); err != nil {
		return LLMConfig{}, err
	}
	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)
	return v
}

func loadLLM(v *viper.Viper) LLMConfig {
	cfg := LLMConfig{
		Provider:        strings.ToLower(strings.TrimSpace(v.GetString("llm.provider"))),
		APIKey:          expandEnvVar(v, v.GetString("llm.api_key")),
		Model:           v.GetString("llm.model"),
		BaseURL:         v.GetString("llm.base_url"),
		CredentialsPath: v.GetString("llm.credentials_path"),
		Timeout:         v.GetDuration("llm.timeout"),
		Temperature:     v.GetFloat64("llm.temperature"),
	}

	// Fall back to the vendor's conventional variable, e.g. OPENAI_API_KEY
	if cfg.APIKey == "" {
		if envKey, ok := providerAPIKeyEnv[cfg.Provider]; ok {
			cfg.APIKey = v.GetString(strings.ToLower(envKey))
		}
	}
	if cfg.CredentialsPath == "" && cfg.Provider == ProviderGemini {
		cfg.CredentialsPath = v.GetString("google_application_credentials")
	}

	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	// LLM defaults
	v.SetDefault("llm.provider", ProviderOpenAI)
	v.SetDefault("llm.timeout", "30s")
	v.SetDefault("llm.temperature", 0)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if value == "" {
		return value
	}

	// Check if value is in format ${VAR_NAME}
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := v.GetString(envVar); envValue != "" {
			return envValue
		}
		// Try lowercase version
		if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		// Try direct os.Getenv as last resort
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// validateLLMConfig rejects unknown providers and non-positive timeouts.
// A missing credential is not an error here: it surfaces when a client is built.
func validateLLMConfig(cfg *LLMConfig) error {
	if _, ok := providerAPIKeyEnv[cfg.Provider]; !ok {
		return fmt.Errorf("llm.provider %q is not supported", cfg.Provider)
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("llm.timeout must be positive, got %s", cfg.Timeout)
	}
	return nil
}
