package predictor

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strconv"
)

//go:embed schema.json
var defaultSchema []byte

// Level is one declared category value. Training bundles mix numeric
// levels (1..5 ratings) with string levels.
type Level struct {
	Num     float64
	Str     string
	Numeric bool
}

func (l *Level) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		return json.Unmarshal(b, &l.Str)
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("category level %s is neither string nor number", b)
	}
	l.Num, l.Numeric = f, true
	return nil
}

func (l Level) String() string {
	if l.Numeric {
		return strconv.FormatFloat(l.Num, 'f', -1, 64)
	}
	return l.Str
}

// Schema describes the feature vector the classifier was trained on.
type Schema struct {
	FeatureColumns []string           `json:"feature_columns"`
	CatCols        []string           `json:"cat_cols"`
	NumCols        []string           `json:"num_cols"`
	CategoryLevels map[string][]Level `json:"category_levels"`
}

// DefaultSchema returns the schema shipped with the binary.
func DefaultSchema() (*Schema, error) {
	return parseSchema(defaultSchema)
}

// LoadSchema reads a schema sidecar, or the embedded default when path is empty.
func LoadSchema(path string) (*Schema, error) {
	if path == "" {
		return DefaultSchema()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	return parseSchema(b)
}

func parseSchema(b []byte) (*Schema, error) {
	var s Schema
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("decode schema: %w", err)
	}
	if len(s.FeatureColumns) == 0 {
		return nil, fmt.Errorf("schema has no feature columns")
	}
	for _, c := range s.CatCols {
		if !slices.Contains(s.FeatureColumns, c) {
			return nil, fmt.Errorf("categorical column %q is not a feature", c)
		}
	}
	for _, c := range s.NumCols {
		if !slices.Contains(s.FeatureColumns, c) {
			return nil, fmt.Errorf("numeric column %q is not a feature", c)
		}
	}
	return &s, nil
}

func (s *Schema) isNumeric(col string) bool     { return slices.Contains(s.NumCols, col) }
func (s *Schema) isCategorical(col string) bool { return slices.Contains(s.CatCols, col) }
