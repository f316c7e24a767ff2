package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestExtractJSONObject_Plain(t *testing.T) {
	raw, err := ExtractJSONObject(`{"score": 85, "feedback": "good"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != `{"score": 85, "feedback": "good"}` {
		t.Fatalf("unexpected extraction: %s", raw)
	}
}

func TestExtractJSONObject_FencedWithCommentary(t *testing.T) {
	reply := "Sure, here is the grading result you asked for:\n\n```json\n{\"score\": 72, \"feedback\": \"solid issue spotting\"}\n```\nLet me know if you need anything else."

	fenced, err := ExtractJSONObject(reply)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	plain, err := ExtractJSONObject(`{"score": 72, "feedback": "solid issue spotting"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Fenced and unfenced forms of the same payload must parse identically.
	var a, b map[string]any
	if err := json.Unmarshal(fenced, &a); err != nil {
		t.Fatalf("unmarshal fenced: %v", err)
	}
	if err := json.Unmarshal(plain, &b); err != nil {
		t.Fatalf("unmarshal plain: %v", err)
	}
	if a["score"] != b["score"] || a["feedback"] != b["feedback"] {
		t.Fatalf("fenced %v != plain %v", a, b)
	}
}

func TestExtractJSONObject_FenceWithoutLanguageTag(t *testing.T) {
	raw, err := ExtractJSONObject("```\n{\"question\": \"What is consideration?\"}\n```")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var m map[string]string
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m["question"] != "What is consideration?" {
		t.Fatalf("unexpected payload: %v", m)
	}
}

func TestExtractJSONObject_FirstOfMultiple(t *testing.T) {
	raw, err := ExtractJSONObject(`{"a": 1} trailing text {"b": 2}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != `{"a": 1}` {
		t.Fatalf("expected first object, got %s", raw)
	}
}

func TestExtractJSONObject_NestedAndBracesInStrings(t *testing.T) {
	in := `note: {"text": "use } and { carefully", "nested": {"ok": true}}`
	raw, err := ExtractJSONObject(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m["text"] != "use } and { carefully" {
		t.Fatalf("string braces mishandled: %v", m)
	}
}

func TestExtractJSONObject_Truncated(t *testing.T) {
	_, err := ExtractJSONObject(`{"score": 90, "feedback": "cut off`)
	if err == nil {
		t.Fatal("expected error for truncated input")
	}
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
}

func TestExtractJSONObject_NoObject(t *testing.T) {
	_, err := ExtractJSONObject("I cannot answer that.")
	if err == nil {
		t.Fatal("expected error when reply has no object")
	}
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
}
