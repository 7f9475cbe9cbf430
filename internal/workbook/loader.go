package workbook

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// Load reads every sheet of the xlsx file at path. The first row of each
// sheet is taken as the header.
func Load(path string) (*Workbook, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &FileAccessError{Path: path, Err: ErrFileNotFound}
		}
		return nil, &FileAccessError{Path: path, Err: err}
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	defer f.Close()

	names := f.GetSheetList()
	if len(names) == 0 {
		return nil, &FileAccessError{Path: path, Err: ErrNoSheets}
	}

	wb := &Workbook{Path: path}
	for _, name := range names {
		sheet, err := readSheet(f, name)
		if err != nil {
			return nil, &FileAccessError{Path: path, Err: fmt.Errorf("sheet %q: %w", name, err)}
		}
		log.Debug().
			Str("sheet", name).
			Int("columns", len(sheet.Columns)).
			Int("rows", sheet.RowCount).
			Msg("Loaded sheet")
		wb.Sheets = append(wb.Sheets, sheet)
	}

	return wb, nil
}

func readSheet(f *excelize.File, name string) (*Sheet, error) {
	rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	sheet := &Sheet{Name: name}
	if len(rows) == 0 {
		return sheet, nil
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	header := rows[0]
	data := rows[1:]
	sheet.RowCount = len(data)

	for colIdx := 0; colIdx < width; colIdx++ {
		head, err := readCell(f, name, colIdx, 1, valueAt(header, colIdx))
		if err != nil {
			return nil, err
		}
		col := &Column{
			Name:   head.Value,
			Header: head,
			Index:  colIdx,
			Cells:  make([]Cell, len(data)),
		}
		for rowIdx, row := range data {
			cell, err := readCell(f, name, colIdx, rowIdx+2, valueAt(row, colIdx))
			if err != nil {
				return nil, err
			}
			col.Cells[rowIdx] = cell
		}
		col.Kind = columnKind(col.Cells)
		sheet.Columns = append(sheet.Columns, col)
	}

	return sheet, nil
}

// readCell combines the raw value with the stored cell type so that strings
// which merely look numeric stay textual.
func readCell(f *excelize.File, sheet string, colIdx, rowNum int, raw string) (Cell, error) {
	if raw == "" {
		return Cell{Kind: KindEmpty}, nil
	}

	ref, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
	if err != nil {
		return Cell{}, err
	}
	cellType, err := f.GetCellType(sheet, ref)
	if err != nil {
		return Cell{}, err
	}

	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return Cell{Value: raw, Kind: KindText}, nil
	case excelize.CellTypeBool:
		if raw == "1" || strings.EqualFold(raw, "TRUE") {
			return Cell{Value: "TRUE", Kind: KindBool}, nil
		}
		return Cell{Value: "FALSE", Kind: KindBool}, nil
	default:
		cell := Cell{Value: raw, Kind: inferKind(raw)}
		if cell.Kind == KindNumber {
			if err := readNumFmt(f, sheet, ref, &cell); err != nil {
				return Cell{}, err
			}
		}
		return cell, nil
	}
}

// readNumFmt copies the number format of a numeric cell. Dates are stored
// as serials and only their format tells them apart from plain numbers.
func readNumFmt(f *excelize.File, sheet, ref string, cell *Cell) error {
	styleID, err := f.GetCellStyle(sheet, ref)
	if err != nil || styleID == 0 {
		return err
	}
	style, err := f.GetStyle(styleID)
	if err != nil {
		return err
	}
	cell.NumFmt = style.NumFmt
	if style.CustomNumFmt != nil {
		cell.CustomNumFmt = *style.CustomNumFmt
	}
	return nil
}

func valueAt(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}
