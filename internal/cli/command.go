package cli

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/xltranslate/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xltranslate [input.xlsx]",
		Short: "Spreadsheet batch translator",
		Long: `xltranslate translates every text cell of an xlsx workbook from one
language into another and writes a new workbook with the same sheets,
columns and rows. Numeric and boolean columns are left untouched.

Cells that cannot be translated are kept with an "[UNTRANSLATED] " prefix
so a failed call never aborts the run.

Examples:
  xltranslate report.xlsx                     # English to French, writes report_fr.xlsx
  xltranslate -s de -t en report.xlsx -o out.xlsx
  xltranslate --provider gemini report.xlsx   # Use Gemini instead of OpenAI
  xltranslate --columns 'column != "ID"' report.xlsx
  xltranslate --batch workbooks.txt           # One "input.xlsx [= output.xlsx]" per line`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.xltranslate.yaml)")
	cmd.PersistentFlags().BoolVar(&flags.Verbose, "verbose", false, "Enable debug logging")

	// Local flags
	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Output workbook (default is <input>_<target>.xlsx)")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Translate workbooks listed in file (one per line)")
	cmd.Flags().BoolVar(&flags.Backup, "backup", false, "Move an existing output file to archive/ before writing")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI models for the current API key")

	// Translation flags
	cmd.Flags().StringVarP(&flags.SourceLang, "source", "s", flags.SourceLang, "Source language (BCP-47 tag or 'auto')")
	cmd.Flags().StringVarP(&flags.TargetLang, "target", "t", flags.TargetLang, "Target language (BCP-47 tag)")
	cmd.Flags().StringVar(&flags.Provider, "provider", flags.Provider, "Translation provider: openai or gemini")
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI chat model used for translation")
	cmd.Flags().StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model used for translation")
	cmd.Flags().IntVar(&flags.ChunkThreshold, "chunk-threshold", flags.ChunkThreshold, "Split cells longer than this many characters into sentences")
	cmd.Flags().StringVar(&flags.Sentinel, "sentinel", flags.Sentinel, "Prefix for cells whose translation failed")
	cmd.Flags().DurationVar(&flags.Timeout, "timeout", 0, "Timeout per translation call (0 disables)")
	cmd.Flags().StringVar(&flags.Columns, "columns", "", "Expression selecting text columns to translate (vars: sheet, column, index, rows)")

	// Cache and breaker flags
	cmd.Flags().BoolVar(&flags.Cache, "cache", false, "Reuse translations of repeated cells within a run")
	cmd.Flags().StringVar(&flags.CacheDB, "cache-db", "", "SQLite file persisting translations across runs")
	cmd.Flags().BoolVar(&flags.Breaker, "breaker", false, "Stop calling the provider after consecutive failures")
	cmd.Flags().Uint32Var(&flags.BreakerFailures, "breaker-failures", flags.BreakerFailures, "Consecutive failures that open the breaker")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("translation.source", cmd.Flags().Lookup("source"))
	viper.BindPFlag("translation.target", cmd.Flags().Lookup("target"))
	viper.BindPFlag("translation.provider", cmd.Flags().Lookup("provider"))
	viper.BindPFlag("translation.chunk_threshold", cmd.Flags().Lookup("chunk-threshold"))
	viper.BindPFlag("translation.sentinel", cmd.Flags().Lookup("sentinel"))
	viper.BindPFlag("translation.timeout", cmd.Flags().Lookup("timeout"))
	viper.BindPFlag("openai.model", cmd.Flags().Lookup("openai-model"))
	viper.BindPFlag("gemini.model", cmd.Flags().Lookup("gemini-model"))
	viper.BindPFlag("processor.columns", cmd.Flags().Lookup("columns"))
	viper.BindPFlag("processor.backup", cmd.Flags().Lookup("backup"))
	viper.BindPFlag("cache.enabled", cmd.Flags().Lookup("cache"))
	viper.BindPFlag("cache.db", cmd.Flags().Lookup("cache-db"))
	viper.BindPFlag("breaker.enabled", cmd.Flags().Lookup("breaker"))
	viper.BindPFlag("breaker.failures", cmd.Flags().Lookup("breaker-failures"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Error().Err(err).Msg("Error getting home directory")
			return
		}

		// Search config in home directory with name ".xltranslate" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".xltranslate")
	}

	// Environment variables
	viper.SetEnvPrefix("XLTRANSLATE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		log.Info().Str("file", viper.ConfigFileUsed()).Msg("Using config file")
	} else if cfgFile != "" {
		log.Warn().Err(err).Str("file", cfgFile).Msg("Could not read config file")
	}
}
