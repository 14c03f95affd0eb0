package logprobs

import (
	"encoding/json"
	"math"
)

// asAttrMap accepts the single supported mapping representation: string-keyed
// maps, which is what encoding/json produces for objects.
func asAttrMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// asSequence accepts []any as well as []map[string]any, which some decoders
// and hand-built fixtures produce for entry lists.
func asSequence(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case []map[string]any:
		out := make([]any, len(s))
		for i, m := range s {
			out[i] = m
		}
		return out, true
	}
	return nil, false
}

// asFloat widens any numeric input to float64. Integer inputs are accepted,
// so a logprob of 0 becomes 0.0. json.Number is supported for decoders
// running with UseNumber.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// asInt accepts any integer-valued numeric. Floats are accepted only when
// integral, because encoding/json decodes every JSON number to float64 and
// byte values arrive that way.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		if uint64(n) > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case float64:
		if math.Trunc(n) != n || math.IsInf(n, 0) || n >= math.MaxInt || n < math.MinInt {
			return 0, false
		}
		return int(n), true
	case float32:
		return asInt(float64(n))
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	}
	return 0, false
}
