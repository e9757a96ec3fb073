package sizecmp

import "testing"

func TestCompareReportsSavings(t *testing.T) {
	host := map[string]any{
		"users": []any{
			map[string]any{"id": 1, "name": "Alice", "role": "admin"},
			map[string]any{"id": 2, "name": "Bob", "role": "user"},
		},
	}
	report, err := Compare(host)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	if report.TOONBytes >= report.JSONBytes {
		t.Errorf("expected TOON to be smaller: toon=%d json=%d", report.TOONBytes, report.JSONBytes)
	}
	if report.SavedBytes != report.JSONBytes-report.TOONBytes {
		t.Errorf("SavedBytes = %d, want %d", report.SavedBytes, report.JSONBytes-report.TOONBytes)
	}
	if report.SavedPercent <= 0 {
		t.Errorf("SavedPercent = %v, want > 0", report.SavedPercent)
	}
}

func TestCompareRejectsUnsupportedInput(t *testing.T) {
	_, err := Compare(map[int]string{1: "a"})
	if err == nil {
		t.Fatal("expected an error for a non-string-keyed map")
	}
}
