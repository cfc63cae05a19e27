package generator

import (
	"math"

	"github.com/kart-io/dispatchhub/pkg/errors"
	"github.com/kart-io/dispatchhub/pkg/request"
)

// round2 rounds to two decimal places, the precision every monetary
// aggregate in the pipeline is reported at.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// toFloat converts the numeric types a parsed payload may carry.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// toInt converts the integer types a parsed payload may carry.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		if n == math.Trunc(n) {
			return int(n), true
		}
		return 0, false
	default:
		return 0, false
	}
}

// itemList extracts a list of item mappings from the payload. Both
// []map[string]any and []any element forms are accepted.
func itemList(p request.Payload, key string) ([]map[string]any, error) {
	raw, ok := p[key]
	if !ok {
		return nil, errors.Newf(errors.ErrMissingField, "payload is missing required field %q", key).
			WithContext("field", key)
	}

	switch list := raw.(type) {
	case []map[string]any:
		return list, nil
	case []any:
		items := make([]map[string]any, len(list))
		for i, el := range list {
			item, ok := el.(map[string]any)
			if !ok {
				return nil, errors.Newf(errors.ErrInvalidPayload, "field %q item %d is not a mapping", key, i).
					WithContext("field", key)
			}
			items[i] = item
		}
		return items, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidPayload, "field %q is not a list", key).
			WithContext("field", key)
	}
}

// numberField extracts a required numeric payload field.
func numberField(p request.Payload, key string) (float64, error) {
	raw, ok := p[key]
	if !ok {
		return 0, errors.Newf(errors.ErrMissingField, "payload is missing required field %q", key).
			WithContext("field", key)
	}
	n, ok := toFloat(raw)
	if !ok {
		return 0, errors.Newf(errors.ErrInvalidPayload, "field %q is not a number", key).
			WithContext("field", key)
	}
	return n, nil
}

// stringField extracts a required string payload field.
func stringField(p request.Payload, key string) (string, error) {
	raw, ok := p[key]
	if !ok {
		return "", errors.Newf(errors.ErrMissingField, "payload is missing required field %q", key).
			WithContext("field", key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", errors.Newf(errors.ErrInvalidPayload, "field %q is not a string", key).
			WithContext("field", key)
	}
	return s, nil
}

// itemNumber extracts a required numeric field from a list item.
func itemNumber(item map[string]any, listKey, key string, index int) (float64, error) {
	raw, ok := item[key]
	if !ok {
		return 0, errors.Newf(errors.ErrMissingField, "%s item %d is missing field %q", listKey, index, key).
			WithContext("field", key)
	}
	n, ok := toFloat(raw)
	if !ok {
		return 0, errors.Newf(errors.ErrInvalidPayload, "%s item %d field %q is not a number", listKey, index, key).
			WithContext("field", key)
	}
	return n, nil
}

// itemInt extracts a required integer field from a list item.
func itemInt(item map[string]any, listKey, key string, index int) (int, error) {
	raw, ok := item[key]
	if !ok {
		return 0, errors.Newf(errors.ErrMissingField, "%s item %d is missing field %q", listKey, index, key).
			WithContext("field", key)
	}
	n, ok := toInt(raw)
	if !ok {
		return 0, errors.Newf(errors.ErrInvalidPayload, "%s item %d field %q is not an integer", listKey, index, key).
			WithContext("field", key)
	}
	return n, nil
}

// itemString extracts a required string field from a list item.
func itemString(item map[string]any, listKey, key string, index int) (string, error) {
	raw, ok := item[key]
	if !ok {
		return "", errors.Newf(errors.ErrMissingField, "%s item %d is missing field %q", listKey, index, key).
			WithContext("field", key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", errors.Newf(errors.ErrInvalidPayload, "%s item %d field %q is not a string", listKey, index, key).
			WithContext("field", key)
	}
	return s, nil
}
