package workbook

import (
	"math"
	"strconv"
	"strings"
)

// Kind is the inferred value kind of a cell or column.
type Kind int

const (
	// KindEmpty marks a blank cell, or a column with no data at all.
	KindEmpty Kind = iota
	// KindNumber marks numeric values, including dates stored as serials.
	KindNumber
	// KindBool marks boolean values.
	KindBool
	// KindText marks string values.
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindText:
		return "text"
	default:
		return "empty"
	}
}

// Cell is a single cell holding its raw string representation. Numeric
// cells also carry the number format of the source cell, so dates and
// percentages keep displaying the same way. Zero values mean General.
type Cell struct {
	Value        string
	Kind         Kind
	NumFmt       int    // built-in number format id
	CustomNumFmt string // format code when the format is not built in
}

// HasNumFmt reports whether the cell carries a non-General number format.
func (c Cell) HasNumFmt() bool {
	return c.NumFmt != 0 || c.CustomNumFmt != ""
}

// Column is a named column of a sheet. Cells has one entry per data row.
// Header is the row 1 cell that Name was read from.
type Column struct {
	Name   string
	Header Cell
	Index  int // 0-based position in the sheet
	Kind   Kind
	Cells  []Cell
}

// IsText reports whether the column holds textual values and is therefore
// a candidate for translation.
func (c *Column) IsText() bool {
	return c.Kind == KindText
}

// Sheet is one tab of a workbook: a header row followed by data rows.
type Sheet struct {
	Name     string
	Columns  []*Column
	RowCount int // number of data rows, header excluded
}

// Column returns the column with the given header name.
func (s *Sheet) Column(name string) (*Column, bool) {
	for _, c := range s.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// Workbook is the full in-memory representation of a spreadsheet.
type Workbook struct {
	Path   string
	Sheets []*Sheet
}

// Sheet returns the sheet with the given name.
func (w *Workbook) Sheet(name string) (*Sheet, bool) {
	for _, s := range w.Sheets {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// SheetNames returns the sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	names := make([]string, 0, len(w.Sheets))
	for _, s := range w.Sheets {
		names = append(names, s.Name)
	}
	return names
}

// NewColumn builds a column from raw values and infers its kind.
func NewColumn(name string, index int, values []string) *Column {
	col := &Column{Name: name, Index: index, Cells: make([]Cell, len(values))}
	for i, v := range values {
		col.Cells[i] = Cell{Value: v, Kind: inferKind(v)}
	}
	col.Kind = columnKind(col.Cells)
	return col
}

// inferKind classifies a raw value that carries no type information.
func inferKind(v string) Kind {
	if v == "" {
		return KindEmpty
	}
	// ParseFloat accepts "nan" and "inf"; those are text in a sheet.
	if f, err := strconv.ParseFloat(v, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return KindNumber
	}
	switch strings.ToUpper(v) {
	case "TRUE", "FALSE":
		return KindBool
	}
	return KindText
}

// columnKind mirrors dtype inference: any text makes the column textual,
// otherwise the column takes the kind of its first non-empty cell.
func columnKind(cells []Cell) Kind {
	kind := KindEmpty
	for _, c := range cells {
		switch {
		case c.Kind == KindText:
			return KindText
		case c.Kind != KindEmpty && kind == KindEmpty:
			kind = c.Kind
		case c.Kind != KindEmpty && c.Kind != kind:
			// mixed numbers and bools are an object column
			return KindText
		}
	}
	return kind
}
