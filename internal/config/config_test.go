package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ADK_PATTERNS_CONFIG", "MODEL", "GOOGLE_API_KEY", "GOOGLE_GENAI_USE_VERTEXAI",
		"GOOGLE_CLOUD_PROJECT", "GOOGLE_CLOUD_LOCATION", "SPEECH_MODEL", "SPEECH_LANGUAGE",
		"MCP_ENDPOINT", "X_TIGER_TOKEN", "HTTP_ADDR", "THREAD_STORE", "THREAD_DIR",
		"REDIS_URL", "DATABASE_URL", "LOG_LEVEL", "LOG_FORMAT", "LOG_FILE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.Model.Name != DefaultModel {
		t.Errorf("Expected model %q, got %q", DefaultModel, cfg.Model.Name)
	}
	if cfg.Speech.Model != DefaultModel {
		t.Errorf("Expected speech model to fall back to %q, got %q", DefaultModel, cfg.Speech.Model)
	}
	if cfg.Speech.Language != DefaultLanguage {
		t.Errorf("Expected language %q, got %q", DefaultLanguage, cfg.Speech.Language)
	}
	if cfg.HTTP.Addr != DefaultAddr {
		t.Errorf("Expected addr %q, got %q", DefaultAddr, cfg.HTTP.Addr)
	}
	if cfg.Thread.Store != "file" {
		t.Errorf("Expected file thread store, got %q", cfg.Thread.Store)
	}
	if cfg.Thread.Dir != os.TempDir() {
		t.Errorf("Expected thread dir %q, got %q", os.TempDir(), cfg.Thread.Dir)
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "model:\n  name: from-file\n  api_key: file-key\nhttp:\n  addr: \":9090\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("ADK_PATTERNS_CONFIG", path)
	t.Setenv("MODEL", "from-env")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.Model.Name != "from-env" {
		t.Errorf("Expected env to win, got %q", cfg.Model.Name)
	}
	if cfg.Model.APIKey != "file-key" {
		t.Errorf("Expected api key from file, got %q", cfg.Model.APIKey)
	}
	if cfg.HTTP.Addr != ":9090" {
		t.Errorf("Expected addr from file, got %q", cfg.HTTP.Addr)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("model: [broken"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("ADK_PATTERNS_CONFIG", path)

	if _, err := Load(); err == nil {
		t.Fatal("Expected error for malformed config file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		model   ModelConfig
		wantErr string
	}{
		{"api key present", ModelConfig{APIKey: "k"}, ""},
		{"api key missing", ModelConfig{}, "GOOGLE_API_KEY"},
		{"vertex complete", ModelConfig{VertexAI: true, Project: "p", Location: "l"}, ""},
		{"vertex missing both", ModelConfig{VertexAI: true}, "GOOGLE_CLOUD_PROJECT, GOOGLE_CLOUD_LOCATION"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{Model: tc.model}
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestValidateThreadStore(t *testing.T) {
	tests := []struct {
		name    string
		thread  ThreadConfig
		wantErr bool
	}{
		{"file", ThreadConfig{Store: "file"}, false},
		{"redis without url", ThreadConfig{Store: "redis"}, true},
		{"redis with url", ThreadConfig{Store: "redis", RedisURL: "redis://localhost:6379/0"}, false},
		{"postgres without url", ThreadConfig{Store: "postgres"}, true},
		{"unknown", ThreadConfig{Store: "s3"}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{Thread: tc.thread}
			if err := cfg.ValidateThreadStore(); (err != nil) != tc.wantErr {
				t.Errorf("ValidateThreadStore() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestGetEnvAsBoolOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		envValue   string
		defaultVal bool
		expected   bool
	}{
		{"parses true", "true", false, true},
		{"parses 1", "1", false, true},
		{"uses default for empty", "", true, true},
		{"uses default for garbage", "maybe", false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("TEST_BOOL", tc.envValue)
			if got := getEnvAsBoolOrDefault("TEST_BOOL", tc.defaultVal); got != tc.expected {
				t.Errorf("Expected %v, got %v", tc.expected, got)
			}
		})
	}
}
