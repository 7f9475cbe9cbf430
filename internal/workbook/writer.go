package workbook

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// Save writes wb to path as a new xlsx file. Sheet order, sheet names,
// column order and row order are kept; no index column is added.
func Save(wb *Workbook, path string) error {
	if len(wb.Sheets) == 0 {
		return &FileWriteError{Path: path, Err: ErrNoSheets}
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &FileWriteError{Path: path, Err: err}
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	w := &sheetWriter{f: f, styles: make(map[string]int)}
	defaultSheet := f.GetSheetName(0)
	for i, sheet := range wb.Sheets {
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, sheet.Name); err != nil {
				return &FileWriteError{Path: path, Sheet: sheet.Name, Err: err}
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return &FileWriteError{Path: path, Sheet: sheet.Name, Err: err}
		}

		if err := w.writeSheet(sheet); err != nil {
			return &FileWriteError{Path: path, Sheet: sheet.Name, Err: err}
		}
	}
	f.SetActiveSheet(0)

	if err := f.SaveAs(path); err != nil {
		return &FileWriteError{Path: path, Err: err}
	}

	log.Debug().Str("path", path).Int("sheets", len(wb.Sheets)).Msg("Saved workbook")
	return nil
}

// sheetWriter writes cells of one file and shares a style per number format.
type sheetWriter struct {
	f      *excelize.File
	styles map[string]int
}

func (w *sheetWriter) writeSheet(sheet *Sheet) error {
	for _, col := range sheet.Columns {
		if col.Name != "" {
			head := col.Header
			if head.Value != col.Name {
				// Renamed or built in memory
				head = Cell{Value: col.Name, Kind: KindText}
			}
			if err := w.writeCell(sheet.Name, col.Index, 1, head, false); err != nil {
				return err
			}
		}

		for rowIdx, cell := range col.Cells {
			if cell.Value == "" {
				continue
			}
			if err := w.writeCell(sheet.Name, col.Index, rowIdx+2, cell, col.IsText()); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *sheetWriter) writeCell(sheet string, colIdx, rowNum int, cell Cell, asText bool) error {
	ref, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
	if err != nil {
		return err
	}

	value := typedValue(cell, asText)
	if err := w.f.SetCellValue(sheet, ref, value); err != nil {
		return err
	}

	if _, isString := value.(string); isString || !cell.HasNumFmt() {
		return nil
	}
	styleID, err := w.numFmtStyle(cell)
	if err != nil {
		return err
	}
	return w.f.SetCellStyle(sheet, ref, ref, styleID)
}

func (w *sheetWriter) numFmtStyle(cell Cell) (int, error) {
	key := strconv.Itoa(cell.NumFmt) + "|" + cell.CustomNumFmt
	if id, ok := w.styles[key]; ok {
		return id, nil
	}

	style := &excelize.Style{NumFmt: cell.NumFmt}
	if cell.CustomNumFmt != "" {
		code := cell.CustomNumFmt
		style.CustomNumFmt = &code
	}
	id, err := w.f.NewStyle(style)
	if err != nil {
		return 0, err
	}
	w.styles[key] = id
	return id, nil
}

// typedValue converts a cell back to the Go value excelize should store.
// Cells of textual columns are written as strings throughout.
func typedValue(cell Cell, asText bool) interface{} {
	if asText {
		return cell.Value
	}
	switch cell.Kind {
	case KindNumber:
		if i, err := strconv.ParseInt(cell.Value, 10, 64); err == nil {
			return i
		}
		if fl, err := strconv.ParseFloat(cell.Value, 64); err == nil {
			return fl
		}
	case KindBool:
		return strings.EqualFold(cell.Value, "TRUE")
	}
	return cell.Value
}
