package predictor

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// integerFields arrive from HTML forms as strings but are integers to the model.
var integerFields = map[string]bool{
	"Age":                  true,
	"Sports_or_team_games": true,
	"Comfort_talking":      true,
}

// Prepare normalises raw answers into a row keyed by feature column.
// Absent and null answers are left out and later encoded as missing.
func (s *Schema) Prepare(answers map[string]any) (map[string]any, error) {
	row := make(map[string]any, len(s.FeatureColumns))
	for _, col := range s.FeatureColumns {
		v, ok := answers[col]
		if !ok || v == nil {
			continue
		}
		if integerFields[col] {
			if str, isStr := v.(string); isStr {
				n, err := strconv.Atoi(strings.TrimSpace(str))
				if err != nil {
					return nil, fmt.Errorf("field %s: %q is not an integer", col, str)
				}
				row[col] = n
				continue
			}
			row[col] = v
			continue
		}
		row[col] = strings.TrimSpace(Stringify(v))
	}
	return row, nil
}

// Vector encodes a prepared row in feature-column order. Numeric columns are
// coerced to float, categorical columns become the index of their declared
// level. Anything unparseable or unknown is NaN, which LightGBM treats as missing.
func (s *Schema) Vector(row map[string]any) ([]float64, error) {
	out := make([]float64, len(s.FeatureColumns))
	for i, col := range s.FeatureColumns {
		out[i] = math.NaN()
		v, ok := row[col]
		if !ok {
			continue
		}
		switch {
		case s.isNumeric(col):
			out[i] = toFloat(v)
		case s.isCategorical(col):
			out[i] = encodeLevel(v, s.CategoryLevels[col])
		default:
			return nil, fmt.Errorf("column %s is neither numeric nor categorical", col)
		}
	}
	return out, nil
}

func encodeLevel(v any, levels []Level) float64 {
	if len(levels) == 0 {
		return math.NaN()
	}
	if levels[0].Numeric {
		f := toFloat(v)
		if math.IsNaN(f) {
			return f
		}
		for i, l := range levels {
			if l.Numeric && l.Num == f {
				return float64(i)
			}
		}
		return math.NaN()
	}

	str := Stringify(v)
	for i, l := range levels {
		if !l.Numeric && l.Str == str {
			return float64(i)
		}
	}
	return math.NaN()
}

func toFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return math.NaN()
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

// Stringify formats a raw answer the way categorical levels are compared.
func Stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}
