package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rupor-github/gencfg"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "figc.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	t.Setenv("FIGMA_API_KEY", "figd_from_env")
	t.Setenv("FIGMA_FILE_KEY", "https://www.figma.com/design/AbC123/Landing")

	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}

	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
	if string(cfg.Figma.APIKey) != "figd_from_env" {
		t.Errorf("APIKey was not picked from environment")
	}
	if cfg.Figma.FileKey != "https://www.figma.com/design/AbC123/Landing" {
		t.Errorf("FileKey = %q", cfg.Figma.FileKey)
	}
	if cfg.Figma.BaseURL != "https://api.figma.com/v1" {
		t.Errorf("BaseURL = %q", cfg.Figma.BaseURL)
	}
	if cfg.Figma.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Figma.Timeout)
	}
	if !cfg.Document.Fonts.Enable || len(cfg.Document.Fonts.Weights) != 5 {
		t.Errorf("unexpected fonts defaults: %+v", cfg.Document.Fonts)
	}
	if cfg.Document.TitleTemplate != "Figma Design" {
		t.Errorf("TitleTemplate = %q", cfg.Document.TitleTemplate)
	}
	if cfg.Server.CacheTTL != 5*time.Minute {
		t.Errorf("CacheTTL = %v, want 5m", cfg.Server.CacheTTL)
	}
}

func TestLoadConfiguration_NoEnvironment(t *testing.T) {
	t.Setenv("FIGMA_API_KEY", "")
	t.Setenv("FIGMA_FILE_KEY", "")

	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("missing credentials must not fail loading: %v", err)
	}
	if cfg.Figma.APIKey != "" || cfg.Figma.FileKey != "" {
		t.Errorf("expected empty credentials, got %q %q", cfg.Figma.APIKey, cfg.Figma.FileKey)
	}
}

func TestLoadConfiguration_Credentials(t *testing.T) {
	tests := []struct {
		name    string
		apiKey  *string
		fileKey *string
		wantAPI string
		wantKey string
	}{
		{name: "unset", wantAPI: "", wantKey: ""},
		{name: "api key only", apiKey: ptr("figd_only"), wantAPI: "figd_only", wantKey: ""},
		{name: "file key only", fileKey: ptr("AbC123"), wantAPI: "", wantKey: "AbC123"},
		{name: "numeric file key", apiKey: ptr("figd_x"), fileKey: ptr("12345"), wantAPI: "figd_x", wantKey: "12345"},
		{name: "yaml looking value", apiKey: ptr("key: value # x"), fileKey: ptr("true"), wantAPI: "key: value # x", wantKey: "true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setOrUnset(t, "FIGMA_API_KEY", tt.apiKey)
			setOrUnset(t, "FIGMA_FILE_KEY", tt.fileKey)

			cfg, err := LoadConfiguration("")
			if err != nil {
				t.Fatalf("LoadConfiguration() error = %v", err)
			}
			if string(cfg.Figma.APIKey) != tt.wantAPI {
				t.Errorf("APIKey = %q, want %q", string(cfg.Figma.APIKey), tt.wantAPI)
			}
			if cfg.Figma.FileKey != tt.wantKey {
				t.Errorf("FileKey = %q, want %q", cfg.Figma.FileKey, tt.wantKey)
			}

			if _, err := Prepare(); err != nil {
				t.Errorf("Prepare() error = %v", err)
			}
		})
	}
}

func ptr(s string) *string { return &s }

func setOrUnset(t *testing.T, name string, value *string) {
	t.Helper()
	// Setenv registers restoration of the original value
	t.Setenv(name, "")
	if value == nil {
		os.Unsetenv(name)
		return
	}
	os.Setenv(name, *value)
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, `version: 1
figma:
  file_key: AbC123
  timeout: 1m30s
document:
  title_template: "{{ .FileName }} / {{ .FrameName }}"
  output_name_template: "{{ .FileKey }}-{{ .FrameName }}"
  fonts:
    enable: false
    weights: [400]
server:
  listen: "0.0.0.0:9090"
  cache_ttl: 0s
logging:
  console:
    level: debug
  file:
    level: normal
    destination: `+filepath.Join(dir, "logs", "figc.log")+`
    mode: rotate
    max_size_mb: 10
    max_backups: 3
reporting:
  destination: `+filepath.Join(dir, "report.zip")+`
`)

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Figma.FileKey != "AbC123" {
		t.Errorf("FileKey = %q", cfg.Figma.FileKey)
	}
	if cfg.Figma.Timeout != 90*time.Second {
		t.Errorf("Timeout = %v", cfg.Figma.Timeout)
	}
	// values not present in the file come from defaults
	if cfg.Figma.BaseURL != "https://api.figma.com/v1" {
		t.Errorf("BaseURL = %q", cfg.Figma.BaseURL)
	}
	// templates are not expanded at load time
	if cfg.Document.TitleTemplate != "{{ .FileName }} / {{ .FrameName }}" {
		t.Errorf("TitleTemplate = %q", cfg.Document.TitleTemplate)
	}
	if cfg.Document.Fonts.Enable || len(cfg.Document.Fonts.Weights) != 1 {
		t.Errorf("Fonts = %+v", cfg.Document.Fonts)
	}
	if cfg.Server.Listen != "0.0.0.0:9090" || cfg.Server.CacheTTL != 0 {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if cfg.Logging.FileLogger.Mode != "rotate" || cfg.Logging.FileLogger.MaxSizeMB != 10 {
		t.Errorf("FileLogger = %+v", cfg.Logging.FileLogger)
	}
	// sanitizer creates directory for the log file
	if _, err := os.Stat(filepath.Join(dir, "logs")); err != nil {
		t.Errorf("log directory was not created: %v", err)
	}
}

func TestLoadConfiguration_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "version: 1\nfigma:\n  file_key: x\n  invalid indent\n"},
		{"unknown field", "version: 1\nunknown_field: value\n"},
		{"bad version", "version: 2\n"},
		{"bad base url", "version: 1\nfigma:\n  base_url: not a url\n"},
		{"bad font weight", "version: 1\ndocument:\n  fonts:\n    weights: [50]\n"},
		{"bad listen address", "version: 1\nserver:\n  listen: nowhere\n"},
		{"tiny body limit", "version: 1\nserver:\n  body_limit: 10\n"},
		{"bad log mode", "version: 1\nlogging:\n  file:\n    level: normal\n    mode: sometimes\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfiguration(writeConfig(t, tt.content)); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := LoadConfiguration("/nonexistent/config.yaml"); err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {}

	cfg, err := LoadConfiguration("", option)
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
}

func TestPrepare(t *testing.T) {
	t.Setenv("FIGMA_API_KEY", "figd_very_secret")

	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	if strings.Contains(string(data), "figd_very_secret") {
		t.Errorf("prepared configuration leaks API key:\n%s", data)
	}

	cfg := &Config{}
	if _, err = unmarshalConfig(data, cfg, true); err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	t.Setenv("FIGMA_API_KEY", "figd_very_secret")

	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatal(err)
	}

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if strings.Contains(string(data), "figd_very_secret") {
		t.Errorf("dumped configuration leaks API key:\n%s", data)
	}
	if !strings.Contains(string(data), "timeout: 30s") {
		t.Errorf("durations must be dumped in readable form:\n%s", data)
	}

	cfg2, err := unmarshalConfig(data, &Config{}, false)
	if err != nil {
		t.Fatalf("Dumped config cannot be loaded: %v", err)
	}
	if cfg2.Server != cfg.Server {
		t.Errorf("Server mismatch after dump/load: got %+v, want %+v", cfg2.Server, cfg.Server)
	}
}
