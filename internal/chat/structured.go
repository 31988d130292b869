package chat

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"
)

// ErrInvalidOutput indica que a resposta não é um JSON válido para o schema
var ErrInvalidOutput = errors.New("structured output does not match schema")

var schemaCache sync.Map // reflect.Type -> *jsonschema.Resolved

// Decode valida o texto do modelo contra o schema inferido de T e o
// decodifica. Cercas de código markdown são removidas antes.
func Decode[T any](text string) (T, error) {
	var out T

	raw := StripFences(text)
	if raw == "" {
		return out, fmt.Errorf("%w: empty response", ErrInvalidOutput)
	}

	resolved, err := resolvedSchema[T]()
	if err != nil {
		return out, err
	}

	var instance any
	if err := json.Unmarshal([]byte(raw), &instance); err != nil {
		return out, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	if err := resolved.Validate(instance); err != nil {
		return out, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return out, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	return out, nil
}

func resolvedSchema[T any]() (*jsonschema.Resolved, error) {
	typ := reflect.TypeFor[T]()
	if cached, ok := schemaCache.Load(typ); ok {
		return cached.(*jsonschema.Resolved), nil
	}

	schema, err := jsonschema.For[T](nil)
	if err != nil {
		return nil, fmt.Errorf("failed to infer schema for %s: %w", typ, err)
	}
	// o modelo às vezes inclui campos extras; eles são ignorados
	schema.AdditionalProperties = nil

	resolved, err := schema.Resolve(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve schema for %s: %w", typ, err)
	}
	schemaCache.Store(typ, resolved)
	return resolved, nil
}

// StripFences remove ```json ... ``` em volta de uma resposta
func StripFences(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```JSON")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
