package processor

import "testing"

func TestColumnFilter(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		sheet      string
		column     string
		index      int
		want       bool
	}{
		{"empty matches", "", "Data", "Name", 0, true},
		{"column excluded", `column != "ID"`, "Data", "ID", 0, false},
		{"column included", `column != "ID"`, "Data", "Name", 1, true},
		{"sheet prefix", `sheet startsWith "Env"`, "General Env", "Name", 0, false},
		{"index range", `index >= 1 && index < 3`, "Data", "Notes", 2, true},
		{"column list", `column in ["Title", "Body"]`, "Data", "Footer", 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewColumnFilter(tt.expression)
			if err != nil {
				t.Fatalf("NewColumnFilter(%q) failed: %v", tt.expression, err)
			}

			got, err := f.Match(tt.sheet, tt.column, tt.index, 10)
			if err != nil {
				t.Fatalf("Match failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Match(%q, %q, %d) = %v, want %v", tt.sheet, tt.column, tt.index, got, tt.want)
			}
		})
	}
}

func TestColumnFilter_Invalid(t *testing.T) {
	tests := []string{
		"column ==",
		`column + 1`,
		"unknown > 1",
	}

	for _, expression := range tests {
		if _, err := NewColumnFilter(expression); err == nil {
			t.Errorf("NewColumnFilter(%q) expected error", expression)
		}
	}
}

func TestColumnFilter_Nil(t *testing.T) {
	var f *ColumnFilter

	ok, err := f.Match("Data", "Name", 0, 1)
	if err != nil || !ok {
		t.Errorf("nil filter Match() = %v, %v; want true, nil", ok, err)
	}
	if f.String() != "" {
		t.Errorf("nil filter String() = %q", f.String())
	}
}
