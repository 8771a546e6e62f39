package riasec

import (
	"errors"
	"strings"
	"testing"
)

func TestDescribe_ValidCode(t *testing.T) {
	desc, err := Describe("ira")
	if err != nil {
		t.Fatalf("Describe(ira) error: %v", err)
	}

	if desc.Code != "IRA" {
		t.Errorf("code = %q, want IRA", desc.Code)
	}
	if len(desc.Breakdown) != 3 {
		t.Fatalf("breakdown length = %d, want 3", len(desc.Breakdown))
	}
	if desc.Breakdown[0].Name != "Investigative" || desc.Breakdown[0].Role != "core drive" {
		t.Errorf("breakdown[0] = %+v", desc.Breakdown[0])
	}
	if desc.Breakdown[2].Role != "supporting amplifier" {
		t.Errorf("breakdown[2].Role = %q", desc.Breakdown[2].Role)
	}
	if !strings.Contains(desc.Summary, "Investigative") {
		t.Errorf("summary missing primary type name: %q", desc.Summary)
	}
	if len(desc.Themes) == 0 {
		t.Error("themes empty")
	}
}

func TestDescribe_InvalidCodes(t *testing.T) {
	tests := []string{"", "I", "IRAS", "IXA", "IIA", "123"}

	for _, code := range tests {
		_, err := Describe(code)
		var invalid *InvalidCodeError
		if !errors.As(err, &invalid) {
			t.Errorf("Describe(%q) error = %v, want InvalidCodeError", code, err)
		}
	}
}

func TestCombinationTable_Complete(t *testing.T) {
	// 6 * 5 * 4 ordered combinations of distinct letters.
	if len(combinations) != 120 {
		t.Errorf("combination table has %d entries, want 120", len(combinations))
	}
	if _, ok := combinations["SEC"]; !ok {
		t.Error("missing combination SEC")
	}
	if _, ok := combinations["RRA"]; ok {
		t.Error("table contains repeated-letter code RRA")
	}
}

func TestParseCode_Uppercases(t *testing.T) {
	letters, err := ParseCode(" sec ")
	if err != nil {
		t.Fatalf("ParseCode error: %v", err)
	}
	if letters != [3]Type{Social, Enterprising, Conventional} {
		t.Errorf("letters = %v", letters)
	}
}
