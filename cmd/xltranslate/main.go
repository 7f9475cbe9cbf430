package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/xltranslate/internal"
	"codeberg.org/snonux/xltranslate/internal/cache"
	"codeberg.org/snonux/xltranslate/internal/cli"
	"codeberg.org/snonux/xltranslate/internal/models"
	"codeberg.org/snonux/xltranslate/internal/processor"
	"codeberg.org/snonux/xltranslate/internal/translation"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)
	rootCmd.SilenceUsage = true

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.SetupEnvironment(flags.Verbose)
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Execute command
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	ctx := cmd.Context()

	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey(), viper.GetString("openai.base_url"))
		return lister.ListAvailableModels(ctx, os.Stdout)
	}

	if flags.BatchFile == "" && len(args) == 0 {
		return errors.New("no input workbook given (pass a file or use --batch)")
	}

	config := cli.BuildTranslationConfig()
	if err := config.Validate(); err != nil {
		return err
	}

	provider, err := translation.NewProvider(ctx, config)
	if err != nil {
		return err
	}
	if err := provider.IsAvailable(); err != nil {
		return fmt.Errorf("%s provider not available: %w", provider.Name(), err)
	}
	log.Debug().
		Str("provider", provider.Name()).
		Str("source", config.SourceLang).
		Str("target", config.TargetLang).
		Str("version", internal.Version).
		Msg("Translator ready")

	translator := translation.NewTranslator(provider, config)

	// Optional translation cache, persistent when a database is given
	if dbPath := viper.GetString("cache.db"); dbPath != "" {
		store, err := cache.OpenSQLite(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()
		translator.UseCache(store)
	} else if viper.GetBool("cache.enabled") {
		translator.UseCache(translation.NewMemoryCache())
	}

	proc, err := processor.NewProcessor(translator, &processor.Options{
		ColumnFilter: viper.GetString("processor.columns"),
		Backup:       viper.GetBool("processor.backup"),
	})
	if err != nil {
		return err
	}

	if flags.BatchFile != "" {
		if flags.Output != "" {
			log.Warn().Msg("--output is ignored in batch mode; set outputs in the batch file")
		}
		return proc.ProcessBatch(ctx, flags.BatchFile)
	}

	input := args[0]
	output := flags.Output
	if output == "" {
		output = internal.OutputPath(input, config.TargetLang)
	}

	_, err = proc.Run(ctx, input, output)
	return err
}
