package translation

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"codeberg.org/snonux/xltranslate/internal/testutil"
)

func newTestTranslator(mock *testutil.MockProvider) *Translator {
	return NewTranslator(mock, DefaultConfig())
}

func TestNewTranslator(t *testing.T) {
	mock := testutil.NewMockProvider()
	translator := NewTranslator(mock, nil)

	if translator == nil {
		t.Fatal("NewTranslator returned nil")
	}

	if translator.Config().ChunkThreshold != DefaultChunkThreshold {
		t.Errorf("Expected default chunk threshold %d, got %d", DefaultChunkThreshold, translator.Config().ChunkThreshold)
	}

	if translator.Config().SourceLang != "en" || translator.Config().TargetLang != "fr" {
		t.Errorf("Expected en->fr defaults, got %s->%s", translator.Config().SourceLang, translator.Config().TargetLang)
	}
}

func TestTranslateOne_Blank(t *testing.T) {
	tests := []string{"", "nan", "NaN", "NAN"}

	for _, input := range tests {
		t.Run("input_"+input, func(t *testing.T) {
			mock := testutil.NewMockProvider()
			translator := newTestTranslator(mock)

			got, err := translator.TranslateOne(context.Background(), input)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != input {
				t.Errorf("TranslateOne(%q) = %q, want unchanged", input, got)
			}
			if mock.CallCount() != 0 {
				t.Errorf("Expected no provider calls, got %d", mock.CallCount())
			}
		})
	}
}

func TestTranslateOne_Short(t *testing.T) {
	mock := testutil.NewMockProvider()
	mock.Responses["Hello world"] = "Bonjour le monde"
	translator := newTestTranslator(mock)

	got, err := translator.TranslateOne(context.Background(), "Hello world")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != "Bonjour le monde" {
		t.Errorf("Expected 'Bonjour le monde', got '%s'", got)
	}
	if mock.CallCount() != 1 {
		t.Errorf("Expected exactly one provider call, got %d", mock.CallCount())
	}
	if translator.Calls() != 1 {
		t.Errorf("Expected Calls() = 1, got %d", translator.Calls())
	}
}

func TestTranslateOne_ThresholdBoundary(t *testing.T) {
	atLimit := strings.Repeat("a", DefaultChunkThreshold-3) + ". b"
	if len([]rune(atLimit)) != DefaultChunkThreshold {
		t.Fatalf("fixture has wrong length %d", len([]rune(atLimit)))
	}

	mock := testutil.NewMockProvider()
	translator := newTestTranslator(mock)
	if _, err := translator.TranslateOne(context.Background(), atLimit); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("Text at the threshold must not be chunked, got %d calls", mock.CallCount())
	}

	overLimit := atLimit + "c"
	mock = testutil.NewMockProvider()
	translator = newTestTranslator(mock)
	if _, err := translator.TranslateOne(context.Background(), overLimit); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("Text over the threshold must be chunked, got %d calls", mock.CallCount())
	}
}

func TestTranslateOne_ThresholdCountsRunes(t *testing.T) {
	// 2001 two-byte runes: over 4000 bytes but under the threshold in runes
	text := strings.Repeat("я", 2001)

	mock := testutil.NewMockProvider()
	translator := newTestTranslator(mock)
	if _, err := translator.TranslateOne(context.Background(), text); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("Expected one call, got %d", mock.CallCount())
	}
}

func TestTranslateOne_Chunked(t *testing.T) {
	config := DefaultConfig()
	config.ChunkThreshold = 20

	mock := testutil.NewMockProvider()
	mock.Transform = strings.ToUpper
	translator := NewTranslator(mock, config)

	input := "first sentence. . second sentence.  . third"
	got, err := translator.TranslateOne(context.Background(), input)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := "FIRST SENTENCE. SECOND SENTENCE. THIRD"
	if got != want {
		t.Errorf("TranslateOne() = %q, want %q", got, want)
	}

	wantCalls := []string{"first sentence", "second sentence", "third"}
	if strings.Join(mock.Calls, "|") != strings.Join(wantCalls, "|") {
		t.Errorf("Provider calls = %v, want %v", mock.Calls, wantCalls)
	}
}

func TestTranslateOne_Failure(t *testing.T) {
	connErr := &testutil.ConnectionError{Host: "translate.example"}

	mock := testutil.NewMockProvider()
	mock.Errors["Test"] = connErr
	translator := newTestTranslator(mock)

	got, err := translator.TranslateOne(context.Background(), "Test")
	if err == nil {
		t.Fatal("Expected error")
	}
	if got != "" {
		t.Errorf("Expected empty result on failure, got %q", got)
	}

	var trErr *TranslationError
	if !errors.As(err, &trErr) {
		t.Fatalf("Expected *TranslationError, got %T", err)
	}
	if trErr.Text != "Test" {
		t.Errorf("Expected original text 'Test', got %q", trErr.Text)
	}
	if trErr.Provider != "mock" {
		t.Errorf("Expected provider 'mock', got %q", trErr.Provider)
	}
	if !errors.Is(err, connErr) {
		t.Error("TranslationError must unwrap to the provider error")
	}
}

func TestTranslateOne_ChunkFailureStopsEarly(t *testing.T) {
	config := DefaultConfig()
	config.ChunkThreshold = 5

	mock := testutil.NewMockProvider()
	mock.Errors["two"] = errors.New("boom")
	translator := NewTranslator(mock, config)

	_, err := translator.TranslateOne(context.Background(), "one. two. three")

	var trErr *TranslationError
	if !errors.As(err, &trErr) {
		t.Fatalf("Expected *TranslationError, got %v", err)
	}
	if trErr.Chunk != 1 {
		t.Errorf("Expected failing chunk 1, got %d", trErr.Chunk)
	}
	if trErr.Text != "one. two. three" {
		t.Errorf("Expected full original text, got %q", trErr.Text)
	}
	if mock.CallCount() != 2 {
		t.Errorf("Expected translation to stop after the failing chunk, got %d calls", mock.CallCount())
	}
}

func TestTranslateOne_Timeout(t *testing.T) {
	config := DefaultConfig()
	config.Timeout = time.Nanosecond

	mock := testutil.NewMockProvider()
	translator := NewTranslator(mock, config)

	_, err := translator.TranslateOne(context.Background(), "slow")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected deadline exceeded, got %v", err)
	}
}

func TestTranslateOne_Cache(t *testing.T) {
	mock := testutil.NewMockProvider()
	translator := newTestTranslator(mock)
	cache := NewMemoryCache()
	translator.UseCache(cache)

	for i := 0; i < 3; i++ {
		got, err := translator.TranslateOne(context.Background(), "Hello")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if got != "[fr] Hello" {
			t.Errorf("Expected '[fr] Hello', got %q", got)
		}
	}

	if mock.CallCount() != 1 {
		t.Errorf("Expected one provider call with cache, got %d", mock.CallCount())
	}
	if translator.CacheHits() != 2 {
		t.Errorf("Expected 2 cache hits, got %d", translator.CacheHits())
	}
	if cache.Len() != 1 {
		t.Errorf("Expected 1 cached translation, got %d", cache.Len())
	}
}

func TestTranslateOne_FailuresAreNotCached(t *testing.T) {
	mock := testutil.NewMockProvider()
	mock.Err = errors.New("down")
	translator := newTestTranslator(mock)
	cache := NewMemoryCache()
	translator.UseCache(cache)

	if _, err := translator.TranslateOne(context.Background(), "Hello"); err == nil {
		t.Fatal("Expected error")
	}
	if cache.Len() != 0 {
		t.Errorf("Failed translations must not be cached, got %d entries", cache.Len())
	}
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"nan", true},
		{"NaN", true},
		{" nan", false},
		{"banana", false},
		{" ", false},
	}

	for _, tt := range tests {
		if got := IsBlank(tt.input); got != tt.want {
			t.Errorf("IsBlank(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
