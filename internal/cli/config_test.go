package cli

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/xltranslate/internal/translation"
)

func resetViper(t *testing.T) {
	t.Helper()

	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	t.Cleanup(func() {
		*viper.GetViper() = *originalConfig
	})
	viper.Reset()
}

func TestGetOpenAIKey(t *testing.T) {
	tests := []struct {
		name      string
		envKey    string
		configKey string
		expected  string
	}{
		{"from environment", "env-test-key", "config-test-key", "env-test-key"},
		{"from config when no env", "", "config-test-key", "config-test-key"},
		{"empty when neither set", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper(t)
			t.Setenv("OPENAI_API_KEY", tt.envKey)

			if tt.configKey != "" {
				viper.Set("openai.api_key", tt.configKey)
			}

			if got := GetOpenAIKey(); got != tt.expected {
				t.Errorf("GetOpenAIKey() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetGeminiKey(t *testing.T) {
	tests := []struct {
		name      string
		gemini    string
		google    string
		configKey string
		expected  string
	}{
		{"gemini env wins", "gemini-key", "google-key", "config-key", "gemini-key"},
		{"google env fallback", "", "google-key", "config-key", "google-key"},
		{"config fallback", "", "", "config-key", "config-key"},
		{"empty", "", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper(t)
			t.Setenv("GEMINI_API_KEY", tt.gemini)
			t.Setenv("GOOGLE_API_KEY", tt.google)

			if tt.configKey != "" {
				viper.Set("gemini.api_key", tt.configKey)
			}

			if got := GetGeminiKey(); got != tt.expected {
				t.Errorf("GetGeminiKey() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestBuildTranslationConfig_Defaults(t *testing.T) {
	resetViper(t)
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")

	cmd := &cobra.Command{}
	setupFlags(cmd, NewFlags())

	got := BuildTranslationConfig()
	want := translation.DefaultConfig()

	if got.SourceLang != want.SourceLang || got.TargetLang != want.TargetLang {
		t.Errorf("Language pair = %s->%s, want %s->%s", got.SourceLang, got.TargetLang, want.SourceLang, want.TargetLang)
	}
	if got.ChunkThreshold != want.ChunkThreshold {
		t.Errorf("ChunkThreshold = %d, want %d", got.ChunkThreshold, want.ChunkThreshold)
	}
	if got.SentinelPrefix != want.SentinelPrefix {
		t.Errorf("SentinelPrefix = %q, want %q", got.SentinelPrefix, want.SentinelPrefix)
	}
	if got.BreakerEnabled || got.Timeout != 0 {
		t.Errorf("Breaker and timeout should be off by default: %+v", got)
	}
}

func TestBuildTranslationConfig_Overrides(t *testing.T) {
	resetViper(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cmd := &cobra.Command{}
	setupFlags(cmd, NewFlags())

	cmd.Flags().Set("source", "de")
	cmd.Flags().Set("target", "en")
	cmd.Flags().Set("chunk-threshold", "500")
	cmd.Flags().Set("sentinel", "?? ")
	cmd.Flags().Set("timeout", "15s")
	cmd.Flags().Set("breaker", "true")
	cmd.Flags().Set("breaker-failures", "2")
	viper.Set("openai.base_url", "http://localhost:8080/v1")
	viper.Set("breaker.cooldown", "1m")

	got := BuildTranslationConfig()

	checks := []struct {
		name string
		got  interface{}
		want interface{}
	}{
		{"SourceLang", got.SourceLang, "de"},
		{"TargetLang", got.TargetLang, "en"},
		{"ChunkThreshold", got.ChunkThreshold, 500},
		{"SentinelPrefix", got.SentinelPrefix, "?? "},
		{"Timeout", got.Timeout, 15 * time.Second},
		{"BreakerEnabled", got.BreakerEnabled, true},
		{"BreakerFailures", got.BreakerFailures, uint32(2)},
		{"BreakerCooldown", got.BreakerCooldown, time.Minute},
		{"OpenAIBaseURL", got.OpenAIBaseURL, "http://localhost:8080/v1"},
		{"OpenAIKey", got.OpenAIKey, "sk-test"},
	}

	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}
