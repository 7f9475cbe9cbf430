package translation

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

const (
	// DefaultChunkThreshold is the text length above which input is split
	// into sentences before translation.
	DefaultChunkThreshold = 4000

	// DefaultSentinelPrefix marks cells whose translation failed.
	DefaultSentinelPrefix = "[UNTRANSLATED] "

	// AbsenceMarker is the stringified form of a missing value.
	AbsenceMarker = "nan"

	// ChunkDelimiter separates sentences when long text is chunked.
	ChunkDelimiter = ". "

	// AutoDetect lets the provider detect the source language.
	AutoDetect = "auto"
)

// Config holds everything a translation run needs. It is built once from
// flags and config file and passed explicitly to the processor.
type Config struct {
	Provider string // "openai" or "gemini"

	SourceLang     string
	TargetLang     string
	ChunkThreshold int
	SentinelPrefix string
	Timeout        time.Duration // per provider call, 0 means no timeout

	// OpenAI settings
	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string

	// Gemini settings
	GeminiKey     string
	GeminiModel   string
	GeminiBaseURL string

	// Circuit breaker around the provider
	BreakerEnabled  bool
	BreakerFailures uint32
	BreakerCooldown time.Duration
}

// DefaultConfig returns the English to French configuration used when
// nothing else is specified.
func DefaultConfig() *Config {
	return &Config{
		Provider:        "openai",
		SourceLang:      "en",
		TargetLang:      "fr",
		ChunkThreshold:  DefaultChunkThreshold,
		SentinelPrefix:  DefaultSentinelPrefix,
		OpenAIModel:     "gpt-4o-mini",
		GeminiModel:     "gemini-2.0-flash",
		BreakerFailures: 5,
		BreakerCooldown: 30 * time.Second,
	}
}

// Validate checks the language pair and the chunking threshold.
func (c *Config) Validate() error {
	if c.SourceLang != AutoDetect {
		if _, err := language.Parse(c.SourceLang); err != nil {
			return fmt.Errorf("invalid source language %q: %w", c.SourceLang, err)
		}
	}
	if c.TargetLang == AutoDetect {
		return fmt.Errorf("target language cannot be %q", AutoDetect)
	}
	if _, err := language.Parse(c.TargetLang); err != nil {
		return fmt.Errorf("invalid target language %q: %w", c.TargetLang, err)
	}
	if c.ChunkThreshold <= 0 {
		return fmt.Errorf("chunk threshold must be positive, got %d", c.ChunkThreshold)
	}
	return nil
}

// LanguageName returns the English name of a language tag, e.g. "fr" ->
// "French". Unknown tags are returned unchanged.
func LanguageName(tag string) string {
	t, err := language.Parse(tag)
	if err != nil {
		return tag
	}
	if name := display.English.Tags().Name(t); name != "" {
		return name
	}
	return tag
}

// instruction is the system prompt shared by the chat based providers.
func instruction(source, target string) string {
	if source == AutoDetect || source == "" {
		return fmt.Sprintf("You are a professional translator. Translate the user's text into %s. "+
			"Respond with only the translation, nothing else. Keep numbers, codes and line breaks unchanged.",
			LanguageName(target))
	}
	return fmt.Sprintf("You are a professional translator. Translate the user's text from %s into %s. "+
		"Respond with only the translation, nothing else. Keep numbers, codes and line breaks unchanged.",
		LanguageName(source), LanguageName(target))
}
