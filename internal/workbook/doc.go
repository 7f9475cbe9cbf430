// Package workbook loads xlsx spreadsheets into an ordered in-memory model
// and writes that model back out, one sheet per input sheet. Column value
// kinds are inferred the way a dataframe infers dtypes so that callers can
// tell textual columns apart from numeric ones.
package workbook
