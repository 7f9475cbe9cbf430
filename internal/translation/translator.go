package translation

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
)

// Translator applies the cell translation policy on top of a Provider
type Translator struct {
	provider Provider
	config   *Config
	cache    Cache

	calls     int
	cacheHits int
}

// NewTranslator creates a new translator for the configured language pair
func NewTranslator(provider Provider, config *Config) *Translator {
	if config == nil {
		config = DefaultConfig()
	}
	return &Translator{
		provider: provider,
		config:   config,
	}
}

// UseCache makes the translator consult cache before calling the provider
func (t *Translator) UseCache(cache Cache) {
	t.cache = cache
}

// Config returns the translator configuration
func (t *Translator) Config() *Config {
	return t.config
}

// Calls returns the number of provider calls made so far
func (t *Translator) Calls() int {
	return t.calls
}

// CacheHits returns the number of chunks served from the cache
func (t *Translator) CacheHits() int {
	return t.cacheHits
}

// IsBlank reports whether text is empty or the absence marker; such values
// are never translated.
func IsBlank(text string) bool {
	return text == "" || strings.EqualFold(text, AbsenceMarker)
}

// TranslateOne translates a single value. Blank values are returned as is.
// Values longer than the chunk threshold are split on ". ", each non-empty
// part is translated on its own, and the results are joined with ". ".
// On failure the returned error is a *TranslationError.
func (t *Translator) TranslateOne(ctx context.Context, text string) (string, error) {
	if IsBlank(text) {
		return text, nil
	}

	if utf8.RuneCountInString(text) <= t.threshold() {
		return t.translateChunk(ctx, text, text, 0)
	}

	parts := strings.Split(text, ChunkDelimiter)
	translated := make([]string, 0, len(parts))
	for i, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		out, err := t.translateChunk(ctx, text, part, i)
		if err != nil {
			return "", err
		}
		translated = append(translated, out)
	}

	log.Debug().
		Int("length", utf8.RuneCountInString(text)).
		Int("chunks", len(translated)).
		Msg("Translated long text in chunks")

	return strings.Join(translated, ChunkDelimiter), nil
}

func (t *Translator) translateChunk(ctx context.Context, original, chunk string, index int) (string, error) {
	source, target := t.config.SourceLang, t.config.TargetLang

	if t.cache != nil {
		cached, ok, err := t.cache.Get(source, target, chunk)
		if err != nil {
			log.Warn().Err(err).Msg("Translation cache lookup failed")
		} else if ok {
			t.cacheHits++
			return cached, nil
		}
	}

	callCtx := ctx
	if t.config.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, t.config.Timeout)
		defer cancel()
	}

	t.calls++
	out, err := t.provider.Translate(callCtx, chunk, source, target)
	if err != nil {
		return "", &TranslationError{
			Text:     original,
			Chunk:    index,
			Provider: t.provider.Name(),
			Err:      err,
		}
	}

	if t.cache != nil {
		if err := t.cache.Put(source, target, chunk, out); err != nil {
			log.Warn().Err(err).Msg("Failed to store translation in cache")
		}
	}

	return out, nil
}

func (t *Translator) threshold() int {
	if t.config.ChunkThreshold > 0 {
		return t.config.ChunkThreshold
	}
	return DefaultChunkThreshold
}
