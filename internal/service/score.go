package service

import (
	"reflect"

	"github.com/shiprate/shiprate-server/internal/model"
)

// averageScore computes the arithmetic mean of every numeric "score" value
// in a rating's category map. Categories whose sub-record is missing, not a
// map, or holds a non-numeric score are skipped, not zero-filled. A rating
// with no usable score averages to 0.0; this function has no failure mode.
func averageScore(scores model.ScoreMap) float64 {
	var sum float64
	var n int
	for _, sub := range scores {
		entry, ok := asStringMap(sub)
		if !ok {
			continue
		}
		v, ok := asFloat(entry["score"])
		if !ok {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// asStringMap accepts plain maps plus named map types (store decoders hand
// back their own map aliases for nested documents).
func asStringMap(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	m := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		m[iter.Key().String()] = iter.Value().Interface()
	}
	return m, true
}

func asFloat(v any) (float64, bool) {
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
