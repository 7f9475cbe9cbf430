package workbook

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrNoSheets indicates the input workbook contains no worksheets.
var ErrNoSheets = errors.New("workbook has no sheets")

// FileAccessError is returned by Load when the input cannot be read or parsed.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot read workbook %q: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// FileWriteError is returned by Save when the output cannot be written.
type FileWriteError struct {
	Path  string
	Sheet string // empty when the failure is not tied to a sheet
	Err   error
}

func (e *FileWriteError) Error() string {
	if e.Sheet != "" {
		return fmt.Sprintf("cannot write workbook %q (sheet %q): %v", e.Path, e.Sheet, e.Err)
	}
	return fmt.Sprintf("cannot write workbook %q: %v", e.Path, e.Err)
}

func (e *FileWriteError) Unwrap() error {
	return e.Err
}
