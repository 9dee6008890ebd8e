package mapping

import (
	"fmt"

	"vindicia_gateway/internal/domain/entities"
)

// AsList normalizes the single-vs-array ambiguity of decoded XML repeating
// groups: a missing value yields nil, a bare object a one-element list, an
// existing list is returned as-is. Idempotent, so callers can apply it to
// already-normalized data.
func AsList(v any) []any {
	switch t := v.(type) {
	case nil:
		return nil
	case []any:
		return t
	default:
		return []any{t}
	}
}

// recordsIn normalizes a repeating group field and asserts every element is
// an associative record.
func recordsIn(r entities.Record, entity, field string) ([]entities.Record, error) {
	items := AsList(r[field])
	out := make([]entities.Record, 0, len(items))
	for i, item := range items {
		rec, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s.%s[%d]: expected object, got %T", ErrMalformedResponse, entity, field, i, item)
		}
		out = append(out, rec)
	}
	return out, nil
}

// requireString reads a field the wire contract makes mandatory.
func requireString(r entities.Record, entity, field string) (string, error) {
	v, ok := r[field]
	if !ok || v == nil {
		return "", fmt.Errorf("%w: %s is missing %s", ErrMalformedResponse, entity, field)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s.%s: expected string, got %T", ErrMalformedResponse, entity, field, v)
	}
	return s, nil
}

func optionalString(r entities.Record, entity, field string) (*string, error) {
	v, ok := r[field]
	if !ok || v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s: expected string, got %T", ErrMalformedResponse, entity, field, v)
	}
	return &s, nil
}

func stringIn(r entities.Record, field string) string {
	if s, ok := r[field].(string); ok {
		return s
	}
	return ""
}

func recordIn(r entities.Record, entity, field string) (entities.Record, error) {
	v, ok := r[field]
	if !ok || v == nil {
		return nil, nil
	}
	rec, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s: expected object, got %T", ErrMalformedResponse, entity, field, v)
	}
	return rec, nil
}
