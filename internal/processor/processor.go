package processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"codeberg.org/snonux/xltranslate/internal"
	"codeberg.org/snonux/xltranslate/internal/archive"
	"codeberg.org/snonux/xltranslate/internal/batch"
	"codeberg.org/snonux/xltranslate/internal/translation"
	"codeberg.org/snonux/xltranslate/internal/workbook"
)

// Options configures a Processor
type Options struct {
	// ColumnFilter is an optional expression narrowing the translated columns
	ColumnFilter string
	// Backup moves an existing output file to an archive directory first
	Backup bool
	// Out receives progress lines, os.Stdout when nil
	Out io.Writer
}

// Stats summarises one processed workbook
type Stats struct {
	Sheets        int
	Columns       int // textual columns that were translated
	Cells         int // cells sent through the translator
	Blank         int // empty or absent cells left untouched
	Failed        int // cells replaced by sentinel-tagged text
	ProviderCalls int
	CacheHits     int
}

// Processor translates the textual cells of workbooks
type Processor struct {
	translator *translation.Translator
	filter     *ColumnFilter
	sentinel   string
	backup     bool
	out        io.Writer
}

// NewProcessor creates a new workbook processor
func NewProcessor(translator *translation.Translator, opts *Options) (*Processor, error) {
	if opts == nil {
		opts = &Options{}
	}

	filter, err := NewColumnFilter(opts.ColumnFilter)
	if err != nil {
		return nil, err
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	return &Processor{
		translator: translator,
		filter:     filter,
		sentinel:   translator.Config().SentinelPrefix,
		backup:     opts.Backup,
		out:        out,
	}, nil
}

// SafeTranslate translates text and never fails: when the translator
// reports an error the original text is returned with the sentinel prefix.
func (p *Processor) SafeTranslate(ctx context.Context, text string) string {
	out, _ := p.translate(ctx, text)
	return out
}

// translate is SafeTranslate that also hands back the error for reporting
func (p *Processor) translate(ctx context.Context, text string) (string, error) {
	translated, err := p.translator.TranslateOne(ctx, text)
	if err != nil {
		return p.sentinel + text, err
	}
	return translated, nil
}

// Process translates every textual column of every sheet in place.
// Sheets, columns and cells are handled strictly in order.
func (p *Processor) Process(ctx context.Context, wb *workbook.Workbook) (Stats, error) {
	var stats Stats
	callsBefore, hitsBefore := p.translator.Calls(), p.translator.CacheHits()

	for _, sheet := range wb.Sheets {
		fmt.Fprintf(p.out, "Translating sheet: %s ...\n", sheet.Name)
		stats.Sheets++

		for _, col := range sheet.Columns {
			if !col.IsText() {
				continue
			}

			ok, err := p.filter.Match(sheet.Name, col.Name, col.Index, sheet.RowCount)
			if err != nil {
				return stats, err
			}
			if !ok {
				log.Debug().Str("sheet", sheet.Name).Str("column", col.Name).Msg("Column excluded by filter")
				continue
			}

			stats.Columns++
			p.processColumn(ctx, sheet.Name, col, &stats)
		}
	}

	stats.ProviderCalls = p.translator.Calls() - callsBefore
	stats.CacheHits = p.translator.CacheHits() - hitsBefore
	return stats, nil
}

func (p *Processor) processColumn(ctx context.Context, sheet string, col *workbook.Column, stats *Stats) {
	for i := range col.Cells {
		cell := &col.Cells[i]
		if translation.IsBlank(cell.Value) {
			stats.Blank++
			continue
		}

		stats.Cells++
		translated, err := p.translate(ctx, cell.Value)
		if err != nil {
			stats.Failed++
			var trErr *translation.TranslationError
			event := log.Warn().Err(err).
				Str("sheet", sheet).
				Str("column", col.Name).
				Int("row", i+2)
			if errors.As(err, &trErr) {
				event = event.Int("chunk", trErr.Chunk)
			}
			event.Msg("Translation failed, keeping original text")
		}

		cell.Value = translated
		cell.Kind = workbook.KindText
	}
}

// Run loads input, translates it and writes the result to output.
// Load and write failures abort the run; cell failures do not.
func (p *Processor) Run(ctx context.Context, input, output string) (Stats, error) {
	wb, err := workbook.Load(input)
	if err != nil {
		return Stats{}, err
	}

	stats, err := p.Process(ctx, wb)
	if err != nil {
		return stats, err
	}

	if p.backup {
		if _, err := archive.BackupFile(output); err != nil {
			return stats, fmt.Errorf("failed to back up existing output: %w", err)
		}
	}

	if err := workbook.Save(wb, output); err != nil {
		return stats, err
	}

	log.Info().
		Str("input", input).
		Int("sheets", stats.Sheets).
		Int("columns", stats.Columns).
		Int("cells", stats.Cells).
		Int("blank", stats.Blank).
		Int("failed", stats.Failed).
		Int("provider_calls", stats.ProviderCalls).
		Int("cache_hits", stats.CacheHits).
		Msg("Workbook translated")

	fmt.Fprintf(p.out, "Translation finished, saved to %s\n", output)
	return stats, nil
}

// ProcessBatch runs every workbook listed in batchFile in order. Outputs
// that are not given in the file are derived from the input name.
func (p *Processor) ProcessBatch(ctx context.Context, batchFile string) error {
	entries, err := batch.ReadBatchFile(batchFile)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("batch file %s lists no workbooks", batchFile)
	}

	target := p.translator.Config().TargetLang
	for i, entry := range entries {
		output := entry.Output
		if output == "" {
			output = internal.OutputPath(entry.Input, target)
		}

		log.Info().Int("job", i+1).Int("of", len(entries)).Str("input", entry.Input).Msg("Processing workbook")
		if _, err := p.Run(ctx, entry.Input, output); err != nil {
			return fmt.Errorf("workbook %s: %w", entry.Input, err)
		}
	}

	return nil
}
