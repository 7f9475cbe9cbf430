package translation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"codeberg.org/snonux/xltranslate/internal/testutil"
)

// TestTranslatorProperties checks the cell policy with generated input
func TestTranslatorProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// Property: blank values are returned unchanged without a provider call
	properties.Property("blank values pass through", prop.ForAll(
		func(text string) bool {
			mock := testutil.NewMockProvider()
			out, err := NewTranslator(mock, DefaultConfig()).TranslateOne(context.Background(), text)
			return err == nil && out == text && mock.CallCount() == 0
		},
		gen.OneConstOf("", "nan", "NaN", "NAN", "Nan", "nAn"),
	))

	// Property: text within the threshold is translated with exactly one call
	properties.Property("short text uses one call", prop.ForAll(
		func(text string) bool {
			mock := testutil.NewMockProvider()
			out, err := NewTranslator(mock, DefaultConfig()).TranslateOne(context.Background(), text)
			return err == nil && out == "[fr] "+text && mock.CallCount() == 1
		},
		gen.AlphaString().SuchThat(func(s string) bool { return !IsBlank(s) }),
	))

	// Property: long text is split on ". " and translated part by part
	properties.Property("long text is chunked per non-empty part", prop.ForAll(
		func(parts []string) bool {
			config := DefaultConfig()
			config.ChunkThreshold = 8

			text := strings.Join(parts, ChunkDelimiter)
			if IsBlank(text) {
				return true
			}

			mock := testutil.NewMockProvider()
			mock.Transform = strings.ToUpper
			out, err := NewTranslator(mock, config).TranslateOne(context.Background(), text)
			if err != nil {
				return false
			}

			if len([]rune(text)) <= config.ChunkThreshold {
				return mock.CallCount() == 1 && out == strings.ToUpper(text)
			}

			var want []string
			for _, p := range parts {
				if strings.TrimSpace(p) != "" {
					want = append(want, strings.ToUpper(p))
				}
			}
			return mock.CallCount() == len(want) && out == strings.Join(want, ChunkDelimiter)
		},
		gen.SliceOf(gen.AlphaString()),
	))

	// Property: a failing provider never panics and always yields a
	// TranslationError carrying the original text
	properties.Property("failures become translation errors", prop.ForAll(
		func(text string) bool {
			mock := testutil.NewMockProvider()
			mock.Err = errors.New("unavailable")
			out, err := NewTranslator(mock, DefaultConfig()).TranslateOne(context.Background(), text)

			var trErr *TranslationError
			return out == "" && errors.As(err, &trErr) && trErr.Text == text
		},
		gen.AlphaString().SuchThat(func(s string) bool { return !IsBlank(s) }),
	))

	properties.TestingRun(t)
}
