package config

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Collaborators
	News      NewsConfig
	Wikipedia WikipediaConfig
	Shell     ShellConfig
	Speech    SpeechConfig

	// Assistant core
	Knowledge KnowledgeConfig
	Synth     SynthConfig
	Assistant AssistantConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	PerMin int
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"` // Global timeout for entire fallback chain
	MaxTokens       int              `yaml:"max_tokens"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

type NewsConfig struct {
	APIKey  string
	BaseURL string
	Country string
	Timeout string
}

type WikipediaConfig struct {
	APIURL   string
	PageURL  string
	MaxLines int
	Timeout  string
	CacheTTL string
}

type ShellConfig struct {
	Shell       string
	Timeout     string
	LaunchGrace string
	MaxOutput   int
	Dir         string
	Probe       []string
}

type SpeechConfig struct {
	Enabled bool
	Engines []string
	Voice   string
	Timeout string
}

type KnowledgeConfig struct {
	Driver     string // file | sqlite
	Path       string
	MaxHistory int
}

type SynthConfig struct {
	ScreenshotDir string
	EngineURL     string
}

// AssistantConfig holds the phrase tables and reply texts of the command router.
// Everything in here is re-read on config file change.
type AssistantConfig struct {
	StrictConfirmation bool
	MinSynthConfidence float64
	MaxSpokenLength    int
	AffirmativeTokens  []string
	NegativeTokens     []string
	FillerWords        []string
	DangerKeywords     []string
	GreetingPhrases    []string
	NewsPhrases        []string
	Messages           MessagesConfig
}

type MessagesConfig struct {
	Greeting             string
	Executing            string
	Cancelled            string
	NewsUnavailable      string
	WikipediaUnavailable string
	LLMUnavailable       string
	ExecutionFailed      string
	Unexpected           string
	NothingPending       string
	ConfirmationRequired string
	LongOutput           string
	SimilarHint          string
	GeneratedHint        string
}

var watchOnce sync.Once

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/jarvis/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/jarvis/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return build()
}

// Watch re-reads the config file whenever it changes and hands the result to fn.
// Reloads that fail validation are passed to onErr and otherwise ignored.
// Only the first call registers a watcher.
func Watch(fn func(*Config), onErr func(error)) {
	watchOnce.Do(func() {
		if viper.ConfigFileUsed() == "" {
			return
		}
		viper.OnConfigChange(func(e fsnotify.Event) {
			if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
				return
			}
			cfg, err := build()
			if err != nil {
				if onErr != nil {
					onErr(fmt.Errorf("reload %s: %w", e.Name, err))
				}
				return
			}
			fn(cfg)
		})
		viper.WatchConfig()
	})
}

func build() (*Config, error) {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetString("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")
	cfg.LLM.MaxTokens = viper.GetInt("llm.max_tokens")

	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	// No providers section: groq keyed by GROQ_API_KEY.
	if len(cfg.LLM.Providers) == 0 {
		cfg.LLM.Providers = []ProviderConfig{{
			Name:     "groq",
			Enabled:  true,
			Priority: 1,
			APIKey:   expandEnvVar("${GROQ_API_KEY}"),
			Model:    "llama-3.3-70b-versatile",
			Timeout:  "30s",
		}}
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}

	// Collaborators
	cfg.News.APIKey = expandEnvVar(viper.GetString("news.api_key"))
	if newsKey := viper.GetString("news_api_key"); newsKey != "" && cfg.News.APIKey == "" {
		cfg.News.APIKey = newsKey
	}
	cfg.News.BaseURL = viper.GetString("news.base_url")
	cfg.News.Country = viper.GetString("news.country")
	cfg.News.Timeout = viper.GetString("news.timeout")

	cfg.Wikipedia.APIURL = viper.GetString("wikipedia.api_url")
	cfg.Wikipedia.PageURL = viper.GetString("wikipedia.page_url")
	cfg.Wikipedia.MaxLines = viper.GetInt("wikipedia.max_lines")
	cfg.Wikipedia.Timeout = viper.GetString("wikipedia.timeout")
	cfg.Wikipedia.CacheTTL = viper.GetString("wikipedia.cache_ttl")

	cfg.Shell.Shell = viper.GetString("shell.shell")
	cfg.Shell.Timeout = viper.GetString("shell.timeout")
	cfg.Shell.LaunchGrace = viper.GetString("shell.launch_grace")
	cfg.Shell.MaxOutput = viper.GetInt("shell.max_output")
	cfg.Shell.Dir = viper.GetString("shell.dir")
	cfg.Shell.Probe = viper.GetStringSlice("shell.probe")

	cfg.Speech.Enabled = viper.GetBool("speech.enabled")
	cfg.Speech.Engines = viper.GetStringSlice("speech.engines")
	cfg.Speech.Voice = viper.GetString("speech.voice")
	cfg.Speech.Timeout = viper.GetString("speech.timeout")

	// Assistant core
	cfg.Knowledge.Driver = strings.ToLower(viper.GetString("knowledge.driver"))
	cfg.Knowledge.Path = viper.GetString("knowledge.path")
	cfg.Knowledge.MaxHistory = viper.GetInt("knowledge.max_history")
	switch cfg.Knowledge.Driver {
	case "file", "sqlite":
	default:
		return nil, fmt.Errorf("knowledge.driver %q: must be file or sqlite", cfg.Knowledge.Driver)
	}
	if cfg.Knowledge.MaxHistory < 0 {
		return nil, fmt.Errorf("knowledge.max_history must not be negative")
	}

	cfg.Synth.ScreenshotDir = viper.GetString("synth.screenshot_dir")
	cfg.Synth.EngineURL = viper.GetString("synth.engine_url")

	a := &cfg.Assistant
	a.StrictConfirmation = viper.GetBool("assistant.strict_confirmation")
	a.MinSynthConfidence = viper.GetFloat64("assistant.min_synth_confidence")
	a.MaxSpokenLength = viper.GetInt("assistant.max_spoken_length")
	a.AffirmativeTokens = viper.GetStringSlice("assistant.affirmative_tokens")
	a.NegativeTokens = viper.GetStringSlice("assistant.negative_tokens")
	a.FillerWords = viper.GetStringSlice("assistant.filler_words")
	a.DangerKeywords = viper.GetStringSlice("assistant.danger_keywords")
	a.GreetingPhrases = viper.GetStringSlice("assistant.greeting_phrases")
	a.NewsPhrases = viper.GetStringSlice("assistant.news_phrases")

	m := &a.Messages
	m.Greeting = viper.GetString("assistant.messages.greeting")
	m.Executing = viper.GetString("assistant.messages.executing")
	m.Cancelled = viper.GetString("assistant.messages.cancelled")
	m.NewsUnavailable = viper.GetString("assistant.messages.news_unavailable")
	m.WikipediaUnavailable = viper.GetString("assistant.messages.wikipedia_unavailable")
	m.LLMUnavailable = viper.GetString("assistant.messages.llm_unavailable")
	m.ExecutionFailed = viper.GetString("assistant.messages.execution_failed")
	m.Unexpected = viper.GetString("assistant.messages.unexpected")
	m.NothingPending = viper.GetString("assistant.messages.nothing_pending")
	m.ConfirmationRequired = viper.GetString("assistant.messages.confirmation_required")
	m.LongOutput = viper.GetString("assistant.messages.long_output")
	m.SimilarHint = viper.GetString("assistant.messages.similar_hint")
	m.GeneratedHint = viper.GetString("assistant.messages.generated_hint")

	if len(a.AffirmativeTokens) == 0 || len(a.NegativeTokens) == 0 {
		return nil, fmt.Errorf("assistant: affirmative and negative tokens are required")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.per_min", 60)

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 3)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s") // Default: 60 seconds for entire fallback chain
	viper.SetDefault("llm.max_tokens", 100)

	// Collaborators
	viper.SetDefault("news.base_url", "https://newsapi.org/v2")
	viper.SetDefault("news.country", "us")
	viper.SetDefault("news.timeout", "10s")
	viper.SetDefault("wikipedia.api_url", "https://en.wikipedia.org/w/api.php")
	viper.SetDefault("wikipedia.page_url", "https://en.wikipedia.org/wiki/")
	viper.SetDefault("wikipedia.max_lines", 5)
	viper.SetDefault("wikipedia.timeout", "10s")
	viper.SetDefault("wikipedia.cache_ttl", "30m")
	viper.SetDefault("shell.shell", "bash")
	viper.SetDefault("shell.timeout", "30s")
	viper.SetDefault("shell.launch_grace", "2s")
	viper.SetDefault("shell.max_output", 64*1024)
	viper.SetDefault("shell.probe", []string{
		"scrot", "import", "gnome-screenshot",
		"cheese", "guvcview", "kamoso",
		"gnome-terminal", "xterm", "konsole",
		"firefox", "xdg-open",
	})
	viper.SetDefault("speech.enabled", true)
	viper.SetDefault("speech.engines", []string{"espeak", "spd-say", "say"})
	viper.SetDefault("speech.timeout", "30s")

	// Assistant core
	viper.SetDefault("knowledge.driver", "file")
	viper.SetDefault("knowledge.path", "learning.json")
	viper.SetDefault("knowledge.max_history", 1000)
	viper.SetDefault("synth.engine_url", "https://www.google.com/search?q=%s")

	viper.SetDefault("assistant.strict_confirmation", false)
	viper.SetDefault("assistant.min_synth_confidence", 0.5)
	viper.SetDefault("assistant.max_spoken_length", 100)
	viper.SetDefault("assistant.affirmative_tokens", []string{"yes", "sure", "proceed"})
	viper.SetDefault("assistant.negative_tokens", []string{"no", "cancel"})
	viper.SetDefault("assistant.filler_words", []string{"please", "now", "can you", "kindly", "hey jarvis", "jarvis", "sure"})
	viper.SetDefault("assistant.danger_keywords", []string{"rm ", "shutdown", "reboot", "sudo", "chmod 777", "dd if="})
	viper.SetDefault("assistant.greeting_phrases", []string{"hey jarvis", "hello", "hi", "good morning", "good evening"})
	viper.SetDefault("assistant.news_phrases", []string{"news", "get news", "tell me news", "what's the news"})

	viper.SetDefault("assistant.messages.greeting", "Hello, I am JARVIS. How can I help you?")
	viper.SetDefault("assistant.messages.executing", "Executing command.")
	viper.SetDefault("assistant.messages.cancelled", "Command cancelled.")
	viper.SetDefault("assistant.messages.news_unavailable", "Sorry, I could not fetch the news at this moment.")
	viper.SetDefault("assistant.messages.wikipedia_unavailable", "Sorry, I could not find any results on Wikipedia.")
	viper.SetDefault("assistant.messages.llm_unavailable", "I'm not sure how to help with that. Can you try rephrasing?")
	viper.SetDefault("assistant.messages.execution_failed", "Sorry, I couldn't execute that command.")
	viper.SetDefault("assistant.messages.unexpected", "An unexpected error occurred.")
	viper.SetDefault("assistant.messages.nothing_pending", "No pending command to execute.")
	viper.SetDefault("assistant.messages.confirmation_required", "A command is waiting for confirmation. Say 'yes' or 'no'.")
	viper.SetDefault("assistant.messages.long_output", "Commands executed successfully")
	viper.SetDefault("assistant.messages.similar_hint", "I think you want something similar to \"%s\". Let me try that.")
	viper.SetDefault("assistant.messages.generated_hint", "I'll try to execute that based on what I understand.")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
