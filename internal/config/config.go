// Package config provides file-based configuration for the Q&A web server.
// XML is the default format; .yaml and .yml files are also accepted.
package config

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// AppConfig represents the root configuration structure
type AppConfig struct {
	XMLName xml.Name `xml:"DocQAWeb" yaml:"-"`

	Server     ServerConfig     `xml:"Server" yaml:"server"`
	Backend    BackendConfig    `xml:"Backend" yaml:"backend"`
	UI         UIConfig         `xml:"UI" yaml:"ui"`
	Processing ProcessingConfig `xml:"Processing" yaml:"processing"`
	Advanced   AdvancedConfig   `xml:"Advanced" yaml:"advanced"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Port         int    `xml:"Port" yaml:"port"`
	BindAddress  string `xml:"BindAddress" yaml:"bindAddress"`
	EnableCORS   bool   `xml:"EnableCORS" yaml:"enableCors"`
	AllowOrigins string `xml:"AllowOrigins" yaml:"allowOrigins"`
	ReadTimeout  int    `xml:"ReadTimeoutSeconds" yaml:"readTimeoutSeconds"`
	WriteTimeout int    `xml:"WriteTimeoutSeconds" yaml:"writeTimeoutSeconds"`
	IdleTimeout  int    `xml:"IdleTimeoutSeconds" yaml:"idleTimeoutSeconds"`
	BodyLimit    string `xml:"BodyLimit" yaml:"bodyLimit"`
}

// BackendConfig describes the question-answering service.
type BackendConfig struct {
	BaseURL     string `xml:"BaseURL" yaml:"baseUrl"`
	UploadPath  string `xml:"UploadPath" yaml:"uploadPath"`
	Timeout     int    `xml:"TimeoutSeconds" yaml:"timeoutSeconds"` // 0 = wait indefinitely
	EnableProxy bool   `xml:"EnableProxy" yaml:"enableProxy"`
}

// UIConfig contains page text settings
type UIConfig struct {
	Title            string `xml:"Title" yaml:"title"`
	AcceptFileTypes  string `xml:"AcceptFileTypes" yaml:"acceptFileTypes"`
	GenericErrorText string `xml:"GenericErrorText" yaml:"genericErrorText"`
}

// ProcessingConfig contains submission tracking and response settings
type ProcessingConfig struct {
	SubmissionRetentionMinutes int  `xml:"SubmissionRetentionMinutes" yaml:"submissionRetentionMinutes"`
	CleanupIntervalMinutes     int  `xml:"CleanupIntervalMinutes" yaml:"cleanupIntervalMinutes"`
	EnableCompression          bool `xml:"EnableCompression" yaml:"enableCompression"`
	CompressionLevel           int  `xml:"CompressionLevel" yaml:"compressionLevel"`
}

// AdvancedConfig contains logging options
type AdvancedConfig struct {
	LogLevel             string `xml:"LogLevel" yaml:"logLevel"`
	EnableRequestLogging bool   `xml:"EnableRequestLogging" yaml:"enableRequestLogging"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:         8080,
			BindAddress:  "0.0.0.0",
			EnableCORS:   false,
			AllowOrigins: "*",
			ReadTimeout:  30,
			WriteTimeout: 300,
			IdleTimeout:  120,
			BodyLimit:    "50M",
		},
		Backend: BackendConfig{
			BaseURL:     "http://localhost:8000",
			UploadPath:  "/api/v1/hackrx/upload",
			Timeout:     0,
			EnableProxy: true,
		},
		UI: UIConfig{
			Title:            "Document Q&A",
			AcceptFileTypes:  ".pdf,.docx,.eml,.msg,.txt",
			GenericErrorText: "An error occurred while processing your request. Please try again.",
		},
		Processing: ProcessingConfig{
			SubmissionRetentionMinutes: 30,
			CleanupIntervalMinutes:     5,
			EnableCompression:          true,
			CompressionLevel:           5,
		},
		Advanced: AdvancedConfig{
			LogLevel:             "info",
			EnableRequestLogging: true,
		},
	}
}

// LoadConfig loads configuration from an XML or YAML file. A missing file
// is created with defaults.
func LoadConfig(configPath string) (*AppConfig, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := DefaultConfig()
		if err := config.Save(configPath); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		config.applyEnvironmentOverrides()
		if err := config.Validate(); err != nil {
			return nil, err
		}
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Unset fields keep their defaults
	config := DefaultConfig()
	if isYAML(configPath) {
		err = yaml.Unmarshal(data, config)
	} else {
		err = xml.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.applyEnvironmentOverrides()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves the configuration, choosing the format from the file extension
func (c *AppConfig) Save(configPath string) error {
	var content []byte
	if isYAML(configPath) {
		out, err := yaml.Marshal(c)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		content = append([]byte("# Document Q&A web configuration\n"), out...)
	} else {
		out, err := xml.MarshalIndent(c, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		header := []byte(xml.Header + "\n<!-- Document Q&A web configuration -->\n<!-- This file is auto-generated on first run -->\n\n")
		content = append(header, out...)
	}

	if dir := filepath.Dir(configPath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	if err := os.WriteFile(configPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks values that would otherwise fail at request time
func (c *AppConfig) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("backend base URL is required")
	}
	if !strings.HasPrefix(c.Backend.UploadPath, "/") {
		return fmt.Errorf("backend upload path must start with /: %q", c.Backend.UploadPath)
	}
	if c.Processing.CleanupIntervalMinutes <= 0 {
		return fmt.Errorf("cleanup interval must be positive: %d", c.Processing.CleanupIntervalMinutes)
	}
	if c.Backend.Timeout < 0 {
		return fmt.Errorf("backend timeout must not be negative: %d", c.Backend.Timeout)
	}
	return nil
}

// applyEnvironmentOverrides allows environment variables to override config values
func (c *AppConfig) applyEnvironmentOverrides() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	if backend := os.Getenv("BACKEND_URL"); backend != "" {
		c.Backend.BaseURL = backend
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.Advanced.LogLevel = level
	}
}

// GetServerAddr returns the server bind address
func (c *AppConfig) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.BindAddress, c.Server.Port)
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
