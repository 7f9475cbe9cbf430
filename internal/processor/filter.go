package processor

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// ColumnFilter narrows the set of textual columns that get translated.
// The expression sees sheet (string), column (string), index (int, 0-based)
// and rows (int), and must evaluate to a bool, e.g.
//
//	column != "ID" && sheet startsWith "Data"
type ColumnFilter struct {
	source  string
	program *vm.Program
}

// NewColumnFilter compiles expression. An empty expression selects every
// textual column.
func NewColumnFilter(expression string) (*ColumnFilter, error) {
	f := &ColumnFilter{source: expression}
	if expression == "" {
		return f, nil
	}

	program, err := expr.Compile(expression, expr.Env(filterEnv("", "", 0, 0)), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile column filter %q: %w", expression, err)
	}
	f.program = program
	return f, nil
}

// Match reports whether the column should be translated
func (f *ColumnFilter) Match(sheet, column string, index, rows int) (bool, error) {
	if f == nil || f.program == nil {
		return true, nil
	}

	out, err := expr.Run(f.program, filterEnv(sheet, column, index, rows))
	if err != nil {
		return false, fmt.Errorf("evaluate column filter %q: %w", f.source, err)
	}
	return out.(bool), nil
}

// String returns the filter expression
func (f *ColumnFilter) String() string {
	if f == nil {
		return ""
	}
	return f.source
}

func filterEnv(sheet, column string, index, rows int) map[string]any {
	return map[string]any{
		"sheet":  sheet,
		"column": column,
		"index":  index,
		"rows":   rows,
	}
}
