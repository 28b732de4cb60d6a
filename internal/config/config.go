package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Transcriber TranscriberConfig `yaml:"transcriber"`
	Summarizer  SummarizerConfig  `yaml:"summarizer"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type TranscriberConfig struct {
	Mode     string        `yaml:"mode"` // "api" or "local"
	Language string        `yaml:"language"`
	API      APIConfig     `yaml:"api"`
	Whisper  WhisperConfig `yaml:"whisper"`
}

// APIConfig points at an OpenAI-compatible /audio/transcriptions endpoint.
type APIConfig struct {
	BaseURL        string `yaml:"base_url"`
	APIKey         string `yaml:"api_key"`
	Model          string `yaml:"model"`
	ResponseFormat string `yaml:"response_format"`
}

// WhisperConfig drives a local whisper.cpp binary.
type WhisperConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ModelPath  string `yaml:"model_path"`
	Threads    int    `yaml:"threads"`
}

type SummarizerConfig struct {
	Model       string   `yaml:"model"`
	APIKeys     []string `yaml:"api_keys"`
	MaxTokens   int      `yaml:"max_tokens"`
	Temperature float64  `yaml:"temperature"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Load reads, parses, and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Transcriber.Mode == "" {
		c.Transcriber.Mode = "api"
	}

	switch c.Transcriber.Mode {
	case "api":
		if c.Transcriber.API.APIKey == "" {
			return fmt.Errorf("transcriber.api.api_key is required in api mode")
		}
		if c.Transcriber.API.BaseURL == "" {
			c.Transcriber.API.BaseURL = "https://api.openai.com/v1"
		}
		if c.Transcriber.API.Model == "" {
			c.Transcriber.API.Model = "whisper-1"
		}
		if c.Transcriber.API.ResponseFormat == "" {
			c.Transcriber.API.ResponseFormat = "verbose_json"
		}
	case "local":
		if c.Transcriber.Whisper.BinaryPath == "" {
			return fmt.Errorf("transcriber.whisper.binary_path is required in local mode")
		}
		if c.Transcriber.Whisper.ModelPath == "" {
			return fmt.Errorf("transcriber.whisper.model_path is required in local mode")
		}
		if c.Transcriber.Whisper.Threads == 0 {
			c.Transcriber.Whisper.Threads = 8
		}
	default:
		return fmt.Errorf("transcriber.mode must be \"api\" or \"local\", got %q", c.Transcriber.Mode)
	}

	if len(c.Summarizer.APIKeys) == 0 {
		return fmt.Errorf("summarizer.api_keys is required")
	}
	if c.Summarizer.Model == "" {
		c.Summarizer.Model = "gemini-2.5-flash"
	}

	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}

	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}
