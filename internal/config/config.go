// Package config loads startups settings from a YAML file and STARTUPS_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/StartupsStudio/startups.org.ai-sub000/internal/llm"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. STARTUPS_LLM_MODEL.
const EnvPrefix = "STARTUPS"

// ErrInvalidProvider is returned for an llm.provider other than ollama or gemini.
var ErrInvalidProvider = errors.New("invalid llm provider")

// Config is the full application configuration.
type Config struct {
	DBPath   string
	LogLevel string
	LogJSON  bool
	LLM      llm.LLMConfig
	// KitParallel caps how many generators the kit command runs at once.
	KitParallel int
	// File is the config file that was read, empty when none was found.
	File string
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		DBPath:      DefaultDBPath(),
		LogLevel:    "warn",
		LLM:         llm.DefaultConfig(),
		KitParallel: 2,
	}
}

// DefaultDBPath is ~/.startups/startups.db, or startups.db in the working
// directory when there is no home directory.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "startups.db"
	}
	return filepath.Join(home, ".startups", "startups.db")
}

// SearchPaths lists the files Load tries, in order, when given no path.
func SearchPaths() []string {
	paths := []string{"startups.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "startups", "config.yaml"))
	}
	return paths
}

// Load reads path, or the first file in SearchPaths when path is empty,
// then applies environment overrides. A missing explicit path is an
// error; finding no file during the search is not. Non-positive timeouts
// and negative retry or cache counts fall back to defaults.
func Load(path string) (Config, error) {
	def := Default()
	v := newViper(def)

	if path == "" {
		for _, candidate := range SearchPaths() {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := Config{
		DBPath:   v.GetString("db_path"),
		LogLevel: strings.ToLower(v.GetString("log.level")),
		LogJSON:  v.GetBool("log.json"),
		File:     v.ConfigFileUsed(),
	}
	if n := v.GetInt("kit.parallel"); n > 0 {
		cfg.KitParallel = n
	} else {
		cfg.KitParallel = def.KitParallel
	}

	provider := llm.Provider(strings.ToLower(v.GetString("llm.provider")))
	switch provider {
	case llm.ProviderOllama, llm.ProviderGemini:
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrInvalidProvider, provider)
	}

	cfg.LLM = def.LLM
	cfg.LLM.Enabled = v.GetBool("llm.enabled")
	cfg.LLM.LogCalls = v.GetBool("llm.log_calls")
	cfg.LLM.Provider = provider
	cfg.LLM.Endpoint = v.GetString("llm.endpoint")
	cfg.LLM.Model = v.GetString("llm.model")
	cfg.LLM.APIKey = v.GetString("llm.api_key")
	if n := v.GetInt("llm.timeout_ms"); n > 0 {
		cfg.LLM.TimeoutMs = n
	}
	if n := v.GetInt("llm.max_retries"); n >= 0 {
		cfg.LLM.MaxRetries = n
	}
	if n := v.GetInt("llm.cache_size"); n >= 0 {
		cfg.LLM.CacheSize = n
	}
	for _, task := range llm.AllTasks() {
		cfg.LLM = cfg.LLM.WithTaskTimeout(task, v.GetInt("llm.tasks."+string(task)+".timeout_ms"))
	}
	if cfg.DBPath == "" {
		cfg.DBPath = def.DBPath
	}
	return cfg, nil
}

func newViper(def Config) *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("db_path", def.DBPath)
	v.SetDefault("log.level", def.LogLevel)
	v.SetDefault("log.json", def.LogJSON)
	v.SetDefault("kit.parallel", def.KitParallel)
	v.SetDefault("llm.enabled", def.LLM.Enabled)
	v.SetDefault("llm.log_calls", def.LLM.LogCalls)
	v.SetDefault("llm.provider", string(def.LLM.Provider))
	v.SetDefault("llm.endpoint", def.LLM.Endpoint)
	v.SetDefault("llm.model", def.LLM.Model)
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.timeout_ms", def.LLM.TimeoutMs)
	v.SetDefault("llm.max_retries", def.LLM.MaxRetries)
	v.SetDefault("llm.cache_size", def.LLM.CacheSize)
	for _, task := range llm.AllTasks() {
		v.SetDefault("llm.tasks."+string(task)+".timeout_ms", 0)
	}
	return v
}
