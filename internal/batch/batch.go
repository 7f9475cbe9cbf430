package batch

import (
	"fmt"
	"os"
	"strings"
)

// Entry is one workbook to translate. Output is empty when the batch file
// did not name one.
type Entry struct {
	Input  string
	Output string
}

// ReadBatchFile reads workbook paths from a file and returns Entry slice
// Supports formats:
// - Input only: "report.xlsx" (output derived from the input name)
// - With output: "report.xlsx = translated/report.xlsx"
// Blank lines and lines starting with '#' are ignored.
func ReadBatchFile(filename string) ([]Entry, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var entries []Entry
	for n, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		input, output, found := strings.Cut(line, "=")
		input = strings.TrimSpace(input)
		output = strings.TrimSpace(output)

		if input == "" {
			return nil, fmt.Errorf("%s:%d: missing input workbook", filename, n+1)
		}
		if found && output == "" {
			return nil, fmt.Errorf("%s:%d: missing output workbook after '='", filename, n+1)
		}

		entries = append(entries, Entry{Input: input, Output: output})
	}

	return entries, nil
}
