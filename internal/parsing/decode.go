// Package parsing decodes model completions into JSON trees and extracts
// typed fields from them without ever failing on a missing or mistyped field.
package parsing

import (
	"context"
	"math"
	"strings"

	"github.com/jonathan/skill-intel/internal/llm"
	"github.com/tidwall/gjson"
)

// Decode strips code fences from a completion and parses it as JSON.
func Decode(text string) (gjson.Result, error) {
	cleaned := llm.CleanJSONBlock(text)
	if cleaned == "" {
		return gjson.Result{}, &ParseError{Message: "empty response"}
	}
	if !gjson.Valid(cleaned) {
		return gjson.Result{}, &ParseError{Message: "invalid JSON", Cause: snippetError(cleaned)}
	}
	return gjson.Parse(cleaned), nil
}

// DecodeObject decodes a completion that must be a JSON object.
func DecodeObject(text string) (gjson.Result, error) {
	return decodeShape(text, "object", gjson.Result.IsObject)
}

// DecodeArray decodes a completion that must be a JSON array.
func DecodeArray(text string) (gjson.Result, error) {
	return decodeShape(text, "array", gjson.Result.IsArray)
}

func decodeShape(text, expected string, ok func(gjson.Result) bool) (gjson.Result, error) {
	result, err := Decode(text)
	if err != nil {
		return gjson.Result{}, err
	}
	if !ok(result) {
		return gjson.Result{}, &ShapeError{Expected: expected, Got: kind(result)}
	}
	return result, nil
}

// CompleteObject runs prompt through client and decodes the completion as an object.
func CompleteObject(ctx context.Context, client llm.Client, prompt string, tier llm.ModelTier) (gjson.Result, error) {
	text, err := client.Complete(ctx, prompt, tier)
	if err != nil {
		return gjson.Result{}, err
	}
	return DecodeObject(text)
}

// CompleteArray runs prompt through client and decodes the completion as an array.
func CompleteArray(ctx context.Context, client llm.Client, prompt string, tier llm.ModelTier) (gjson.Result, error) {
	text, err := client.Complete(ctx, prompt, tier)
	if err != nil {
		return gjson.Result{}, err
	}
	return DecodeArray(text)
}

// StringList collects the non-blank string elements of an array.
// Anything that is not an array yields an empty slice.
func StringList(r gjson.Result) []string {
	out := []string{}
	if !r.IsArray() {
		return out
	}
	r.ForEach(func(_, v gjson.Result) bool {
		if v.Type == gjson.String {
			if s := strings.TrimSpace(v.Str); s != "" {
				out = append(out, s)
			}
		}
		return true
	})
	return out
}

// Strings returns the string elements of the array at path.
func Strings(r gjson.Result, path string) []string {
	return StringList(r.Get(path))
}

// Text returns the string at path, or "" when absent or not a string.
func Text(r gjson.Result, path string) string {
	v := r.Get(path)
	if v.Type != gjson.String {
		return ""
	}
	return strings.TrimSpace(v.Str)
}

// Float returns the number at path. ok is false when absent, not a number
// or not finite.
func Float(r gjson.Result, path string) (value float64, ok bool) {
	v := r.Get(path)
	if v.Type != gjson.Number {
		return 0, false
	}
	if math.IsNaN(v.Num) || math.IsInf(v.Num, 0) {
		return 0, false
	}
	return v.Num, true
}

// Int returns the number at path truncated to an int.
func Int(r gjson.Result, path string) (value int, ok bool) {
	f, ok := Float(r, path)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// HasAny reports whether at least one of the paths exists.
func HasAny(r gjson.Result, paths ...string) bool {
	for _, p := range paths {
		if r.Get(p).Exists() {
			return true
		}
	}
	return false
}

func kind(r gjson.Result) string {
	switch {
	case r.IsObject():
		return "object"
	case r.IsArray():
		return "array"
	}
	switch r.Type {
	case gjson.String:
		return "string"
	case gjson.Number:
		return "number"
	case gjson.True, gjson.False:
		return "boolean"
	case gjson.Null:
		return "null"
	}
	return "unknown"
}

type snippet string

func (s snippet) Error() string { return "near " + string(s) }

// snippetError quotes the start of an undecodable payload for logs.
func snippetError(s string) error {
	const limit = 80
	if len(s) > limit {
		s = s[:limit] + "..."
	}
	return snippet(s)
}
