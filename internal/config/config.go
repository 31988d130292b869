package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultModel    = "gemini-2.5-flash"
	DefaultAddr     = ":8080"
	DefaultLanguage = "es-ES"
)

// Config reúne todas as variáveis usadas pelas demonstrações
type Config struct {
	Model  ModelConfig  `yaml:"model"`
	Speech SpeechConfig `yaml:"speech"`
	MCP    MCPConfig    `yaml:"mcp"`
	HTTP   HTTPConfig   `yaml:"http"`
	Thread ThreadConfig `yaml:"thread"`
	Log    LogConfig    `yaml:"log"`
}

// ModelConfig descreve como conectar ao modelo hospedado
type ModelConfig struct {
	Name     string `yaml:"name"`
	APIKey   string `yaml:"api_key"`
	VertexAI bool   `yaml:"vertex_ai"`
	Project  string `yaml:"project"`
	Location string `yaml:"location"`
}

type SpeechConfig struct {
	Model    string `yaml:"model"`
	Language string `yaml:"language"`
}

type MCPConfig struct {
	Endpoint string `yaml:"endpoint"`
	Token    string `yaml:"token"`
}

type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

// ThreadConfig escolhe onde as threads de conversação são persistidas
type ThreadConfig struct {
	Store       string `yaml:"store"`
	Dir         string `yaml:"dir"`
	RedisURL    string `yaml:"redis_url"`
	DatabaseURL string `yaml:"database_url"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Load carrega o .env (se existir), aplica o arquivo YAML opcional e
// sobrescreve com as variáveis de ambiente.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if path := os.Getenv("ADK_PATTERNS_CONFIG"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Model.Name = getEnvOrDefault("MODEL", c.Model.Name)
	c.Model.APIKey = getEnvOrDefault("GOOGLE_API_KEY", c.Model.APIKey)
	c.Model.VertexAI = getEnvAsBoolOrDefault("GOOGLE_GENAI_USE_VERTEXAI", c.Model.VertexAI)
	c.Model.Project = getEnvOrDefault("GOOGLE_CLOUD_PROJECT", c.Model.Project)
	c.Model.Location = getEnvOrDefault("GOOGLE_CLOUD_LOCATION", c.Model.Location)

	c.Speech.Model = getEnvOrDefault("SPEECH_MODEL", c.Speech.Model)
	c.Speech.Language = getEnvOrDefault("SPEECH_LANGUAGE", c.Speech.Language)

	c.MCP.Endpoint = getEnvOrDefault("MCP_ENDPOINT", c.MCP.Endpoint)
	c.MCP.Token = getEnvOrDefault("X_TIGER_TOKEN", c.MCP.Token)

	c.HTTP.Addr = getEnvOrDefault("HTTP_ADDR", c.HTTP.Addr)

	c.Thread.Store = getEnvOrDefault("THREAD_STORE", c.Thread.Store)
	c.Thread.Dir = getEnvOrDefault("THREAD_DIR", c.Thread.Dir)
	c.Thread.RedisURL = getEnvOrDefault("REDIS_URL", c.Thread.RedisURL)
	c.Thread.DatabaseURL = getEnvOrDefault("DATABASE_URL", c.Thread.DatabaseURL)

	c.Log.Level = getEnvOrDefault("LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnvOrDefault("LOG_FORMAT", c.Log.Format)
	c.Log.File = getEnvOrDefault("LOG_FILE", c.Log.File)
}

func (c *Config) applyDefaults() {
	if c.Model.Name == "" {
		c.Model.Name = DefaultModel
	}
	if c.Speech.Model == "" {
		c.Speech.Model = c.Model.Name
	}
	if c.Speech.Language == "" {
		c.Speech.Language = DefaultLanguage
	}
	if c.HTTP.Addr == "" {
		c.HTTP.Addr = DefaultAddr
	}
	if c.Thread.Store == "" {
		c.Thread.Store = "file"
	}
	if c.Thread.Dir == "" {
		c.Thread.Dir = os.TempDir()
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate verifica as credenciais do modelo antes de qualquer cliente ser criado
func (c *Config) Validate() error {
	var missing []string
	if c.Model.VertexAI {
		if c.Model.Project == "" {
			missing = append(missing, "GOOGLE_CLOUD_PROJECT")
		}
		if c.Model.Location == "" {
			missing = append(missing, "GOOGLE_CLOUD_LOCATION")
		}
	} else if c.Model.APIKey == "" {
		missing = append(missing, "GOOGLE_API_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing environment variables: %s (define them in .env)", strings.Join(missing, ", "))
	}
	return nil
}

// ValidateThreadStore verifica se o backend escolhido tem o que precisa
func (c *Config) ValidateThreadStore() error {
	switch c.Thread.Store {
	case "file":
		return nil
	case "redis":
		if c.Thread.RedisURL == "" {
			return errors.New("REDIS_URL is not set")
		}
		return nil
	case "postgres":
		if c.Thread.DatabaseURL == "" {
			return errors.New("DATABASE_URL is not set")
		}
		return nil
	default:
		return fmt.Errorf("unsupported thread store %q", c.Thread.Store)
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsBoolOrDefault(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}
