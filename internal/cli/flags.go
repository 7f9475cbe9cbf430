package cli

import (
	"time"

	"codeberg.org/snonux/xltranslate/internal/translation"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	Output     string
	BatchFile  string
	Backup     bool
	ListModels bool
	Verbose    bool

	// Translation flags
	SourceLang     string
	TargetLang     string
	Provider       string
	OpenAIModel    string
	GeminiModel    string
	ChunkThreshold int
	Sentinel       string
	Timeout        time.Duration

	// Column selection
	Columns string

	// Cache and circuit breaker
	Cache           bool
	CacheDB         string
	Breaker         bool
	BreakerFailures uint32
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	defaults := translation.DefaultConfig()
	return &Flags{
		SourceLang:      defaults.SourceLang,
		TargetLang:      defaults.TargetLang,
		Provider:        defaults.Provider,
		OpenAIModel:     defaults.OpenAIModel,
		GeminiModel:     defaults.GeminiModel,
		ChunkThreshold:  defaults.ChunkThreshold,
		Sentinel:        defaults.SentinelPrefix,
		BreakerFailures: defaults.BreakerFailures,
	}
}
