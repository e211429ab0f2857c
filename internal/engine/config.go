package engine

import (
	"time"

	"github.com/anatolykoptev/go-kit/llm"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	LLMAPIKey      string
	LLMAPIBase     string
	LLMModel       string
	LLMTemperature float64
	LLMMaxTokens   int
	LLMClient      *llm.Client      // nil = rule-based answer synthesis only
	Now            func() time.Time // nil = time.Now; tests pin a fixed instant
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (scoring, draft).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	if c.Now == nil {
		c.Now = time.Now
	}
	cfg = c
	Cfg = &cfg
}

// Now returns the engine clock's current time.
func Now() time.Time {
	if cfg.Now != nil {
		return cfg.Now()
	}
	return time.Now()
}
