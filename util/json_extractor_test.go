package util

import (
	"encoding/json"
	"testing"
)

func TestFirstJSONObject_PlainObject(t *testing.T) {
	raw := `{"summary": "ok", "days": []}`

	got, err := FirstJSONObject(raw)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != raw {
		t.Errorf("Expected %q, got %q", raw, got)
	}
}

func TestFirstJSONObject_SurroundedByProse(t *testing.T) {
	raw := "Sure! Here is your itinerary:\n```json\n{\"summary\": \"trip\", \"days\": [{\"day\": 1}]}\n```\nEnjoy!"

	got, err := FirstJSONObject(raw)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(got), &decoded); err != nil {
		t.Fatalf("Extracted text is not valid JSON: %v", err)
	}
	if decoded["summary"] != "trip" {
		t.Errorf("Unexpected extraction: %q", got)
	}
}

// Braces inside quoted strings must not affect depth counting.
func TestFirstJSONObject_BracesInsideStrings(t *testing.T) {
	raw := `prefix {"summary": "a {weird} summary with \" and }", "days": []} suffix`

	got, err := FirstJSONObject(raw)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var decoded struct {
		Summary string `json:"summary"`
	}
	if err := json.Unmarshal([]byte(got), &decoded); err != nil {
		t.Fatalf("Extracted text is not valid JSON: %v (%q)", err, got)
	}
	if decoded.Summary != `a {weird} summary with " and }` {
		t.Errorf("Unexpected summary: %q", decoded.Summary)
	}
}

func TestFirstJSONObject_EscapedBackslashBeforeQuote(t *testing.T) {
	raw := `{"title": "ends with backslash \\", "n": 1}`

	got, err := FirstJSONObject(raw)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != raw {
		t.Errorf("Expected full object, got %q", got)
	}
}

func TestFirstJSONObject_NoObject(t *testing.T) {
	if _, err := FirstJSONObject("no json here at all"); err == nil {
		t.Error("Expected error for text without an object")
	}
}

func TestFirstJSONObject_Unbalanced(t *testing.T) {
	if _, err := FirstJSONObject(`{"summary": "cut off`); err == nil {
		t.Error("Expected error for unbalanced object")
	}
}

func TestFirstJSONArray_SurroundedByProse(t *testing.T) {
	raw := `The venues are: [{"name": "Cafe A", "category": "restaurant"}] done`

	got, err := FirstJSONArray(raw)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var decoded []map[string]string
	if err := json.Unmarshal([]byte(got), &decoded); err != nil {
		t.Fatalf("Extracted text is not valid JSON: %v", err)
	}
	if len(decoded) != 1 || decoded[0]["name"] != "Cafe A" {
		t.Errorf("Unexpected extraction: %q", got)
	}
}
