// Package codec builds parse functions with the func(string) (T, error)
// shape expected by guard, tuple and valid.
package codec

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

func JSONParseFn[T any]() func(string) (T, error) {
	return func(s string) (T, error) {
		var out T
		if err := json.Unmarshal([]byte(s), &out); err != nil {
			return out, fmt.Errorf("parse json into %T: %w", out, err)
		}
		return out, nil
	}
}

func JSONArrayParseFn[T any]() func(string) ([]T, error) {
	return JSONParseFn[[]T]()
}

func YAMLParseFn[T any]() func(string) (T, error) {
	return func(s string) (T, error) {
		var out T
		if err := yaml.Unmarshal([]byte(s), &out); err != nil {
			return out, fmt.Errorf("parse yaml into %T: %w", out, err)
		}
		return out, nil
	}
}

func YAMLArrayParseFn[T any]() func(string) ([]T, error) {
	return YAMLParseFn[[]T]()
}

// ParseFn picks the parser for a format name ("json" or "yaml").
func ParseFn[T any](format string) (func(string) (T, error), error) {
	switch format {
	case "json":
		return JSONParseFn[T](), nil
	case "yaml", "yml":
		return YAMLParseFn[T](), nil
	}
	return nil, fmt.Errorf("unknown format %q", format)
}
