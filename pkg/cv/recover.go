package cv

import (
	"encoding/json"
	"strings"
)

// RecoveryKind classifies why a model completion could not be turned into a
// JSON object.
type RecoveryKind string

const (
	NoJSONFound RecoveryKind = "no_json_found"
	InvalidJSON RecoveryKind = "invalid_json"
)

// RecoveryError carries the original raw completion so operators can inspect
// what the model actually said.
type RecoveryError struct {
	Kind RecoveryKind
	Raw  string
	err  error
}

func (e *RecoveryError) Error() string {
	switch e.Kind {
	case NoJSONFound:
		return "no JSON object found in model output"
	default:
		if e.err != nil {
			return "model output is not valid JSON: " + e.err.Error()
		}
		return "model output is not valid JSON"
	}
}

func (e *RecoveryError) Unwrap() error { return e.err }

// Recover extracts a JSON object from a noisy model completion. Completions
// are not guaranteed to be pure JSON: they may be wrapped in prose or
// markdown fences. After stripping fences it first attempts a strict
// whole-string parse, then falls back to slicing between the first "{" and
// the last "}". The brace slice is a best-effort heuristic, not a JSON
// tokenizer; it misfires when the model emits an example object before the
// real answer, which is an accepted limitation.
func Recover(raw string) (map[string]any, error) {
	cleaned := strings.TrimSpace(stripFences(raw))

	var obj map[string]any
	if err := json.Unmarshal([]byte(cleaned), &obj); err == nil {
		return obj, nil
	}

	first := strings.Index(cleaned, "{")
	last := strings.LastIndex(cleaned, "}")
	if first < 0 || last < first {
		return nil, &RecoveryError{Kind: NoJSONFound, Raw: raw}
	}
	if err := json.Unmarshal([]byte(cleaned[first:last+1]), &obj); err != nil {
		return nil, &RecoveryError{Kind: InvalidJSON, Raw: raw, err: err}
	}
	return obj, nil
}

// stripFences removes triple-backtick fence markers (optionally tagged
// "json") anywhere in the text, keeping whatever they wrapped.
func stripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```JSON", "")
	s = strings.ReplaceAll(s, "```", "")
	return s
}
