package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	FigmaConfig struct {
		APIKey  SecretString  `yaml:"api_key"`
		FileKey string        `yaml:"file_key"`
		BaseURL string        `yaml:"base_url" validate:"required,url"`
		Timeout time.Duration `yaml:"timeout" validate:"gte=0"`
	}

	FontsConfig struct {
		Enable  bool   `yaml:"enable"`
		URL     string `yaml:"url" validate:"omitempty,url"`
		Weights []int  `yaml:"weights" validate:"dive,min=100,max=900"`
	}

	DocumentConfig struct {
		TitleTemplate         string      `yaml:"title_template"`
		OutputNameTemplate    string      `yaml:"output_name_template"`
		FileNameTransliterate bool        `yaml:"file_name_transliterate"`
		StylesheetPath        string      `yaml:"stylesheet_path" sanitize:"assure_file_access"`
		Fonts                 FontsConfig `yaml:"fonts"`
	}

	ServerConfig struct {
		Listen    string        `yaml:"listen" validate:"required,hostname_port"`
		CacheTTL  time.Duration `yaml:"cache_ttl" validate:"gte=0"`
		BodyLimit int           `yaml:"body_limit" validate:"min=1024"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Figma     FigmaConfig    `yaml:"figma"`
		Document  DocumentConfig `yaml:"document"`
		Server    ServerConfig   `yaml:"server"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field names above, these are expanded per
	// conversion and not when configuration is loaded
	OutputNameTemplateFieldName TemplateFieldName = "output_name_template"
	TitleTemplateFieldName      TemplateFieldName = "title_template"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(OutputNameTemplateFieldName)),
	gencfg.WithDoNotExpandField(string(TitleTemplateFieldName)),
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to provide
// sane defaults and performs validation. Credentials are picked from the
// environment by the template, so .env must be loaded before this is called.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice. Values picked from the environment are expanded, so secrets are
// masked.
func Prepare() ([]byte, error) {
	data, err := gencfg.Process(ConfigTmpl, requiredOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, false)
	if err != nil {
		return nil, err
	}
	return Dump(cfg)
}

// Dump returns configuration as yaml, secrets are masked.
func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}
