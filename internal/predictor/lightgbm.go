package predictor

import (
	"fmt"

	"github.com/dmitryikh/leaves"
)

// LightGBM wraps a LightGBM text model exported with save_model.
type LightGBM struct {
	model *leaves.Ensemble
}

// LoadLightGBM parses the model file, applying its sigmoid transformation
// so predictions are probabilities of the positive class.
func LoadLightGBM(path string) (*LightGBM, error) {
	model, err := leaves.LGEnsembleFromFile(path, true)
	if err != nil {
		return nil, fmt.Errorf("load lightgbm model: %w", err)
	}
	return &LightGBM{model: model}, nil
}

func (m *LightGBM) NFeatures() int {
	return m.model.NFeatures()
}

func (m *LightGBM) PredictProba(features []float64) (float64, error) {
	if len(features) != m.model.NFeatures() {
		return 0, fmt.Errorf("model expects %d features, got %d", m.model.NFeatures(), len(features))
	}
	return m.model.PredictSingle(features, 0), nil
}
