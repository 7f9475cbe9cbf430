package cli

import (
	"os"

	"github.com/spf13/viper"

	"codeberg.org/snonux/xltranslate/internal/translation"
)

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("openai.api_key")
}

// GetGeminiKey retrieves the Gemini API key. GEMINI_API_KEY wins over
// GOOGLE_API_KEY, and both win over the config file.
func GetGeminiKey() string {
	for _, env := range []string{"GEMINI_API_KEY", "GOOGLE_API_KEY"} {
		if key := os.Getenv(env); key != "" {
			return key
		}
	}
	return viper.GetString("gemini.api_key")
}

// BuildTranslationConfig assembles the translation settings from flags,
// config file and environment. Unset values keep their defaults.
func BuildTranslationConfig() *translation.Config {
	config := translation.DefaultConfig()

	setString(&config.Provider, "translation.provider")
	setString(&config.SourceLang, "translation.source")
	setString(&config.TargetLang, "translation.target")
	setString(&config.OpenAIModel, "openai.model")
	setString(&config.OpenAIBaseURL, "openai.base_url")
	setString(&config.GeminiModel, "gemini.model")
	setString(&config.GeminiBaseURL, "gemini.base_url")

	if viper.IsSet("translation.sentinel") {
		config.SentinelPrefix = viper.GetString("translation.sentinel")
	}
	if n := viper.GetInt("translation.chunk_threshold"); n != 0 {
		config.ChunkThreshold = n
	}
	config.Timeout = viper.GetDuration("translation.timeout")

	config.BreakerEnabled = viper.GetBool("breaker.enabled")
	if n := viper.GetUint32("breaker.failures"); n > 0 {
		config.BreakerFailures = n
	}
	if d := viper.GetDuration("breaker.cooldown"); d > 0 {
		config.BreakerCooldown = d
	}

	config.OpenAIKey = GetOpenAIKey()
	config.GeminiKey = GetGeminiKey()

	return config
}

func setString(dst *string, key string) {
	if v := viper.GetString(key); v != "" {
		*dst = v
	}
}
