// Package predictor turns screening answers into a dropout-risk percentage.
package predictor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var errNoModel = errors.New("dropout model not loaded")

// Classifier returns the positive-class probability for one feature vector.
type Classifier interface {
	PredictProba(features []float64) (float64, error)
}

type Result struct {
	Percentage int  `json:"dropout_percentage"`
	CanSignup  bool `json:"can_signup"`
	Threshold  int  `json:"threshold"`
	// Fallback is set when the percentage is the configured default
	// rather than a model output.
	Fallback bool `json:"-"`
}

type Predictor struct {
	schema    *Schema
	model     Classifier
	threshold int
	fallback  int
	tracer    trace.Tracer
}

// New builds a predictor. A nil model is allowed; every prediction then
// returns the fallback percentage.
func New(schema *Schema, model Classifier, threshold, fallback int) *Predictor {
	return &Predictor{
		schema:    schema,
		model:     model,
		threshold: threshold,
		fallback:  fallback,
		tracer:    otel.Tracer("hexecutioners/predictor"),
	}
}

func (p *Predictor) Threshold() int { return p.threshold }

// Eligible reports whether a percentage passes the signup gate.
func (p *Predictor) Eligible(percentage int) bool {
	return percentage <= p.threshold
}

// Predict never fails: errors and panics are logged and replaced by the
// fallback percentage.
func (p *Predictor) Predict(ctx context.Context, answers map[string]any) Result {
	_, span := p.tracer.Start(ctx, "predictor.Predict")
	defer span.End()

	pct, err := p.percentage(answers)
	res := Result{Percentage: pct, Threshold: p.threshold}
	if err != nil {
		slog.Error("dropout prediction failed, using fallback", "error", err, "fallback", p.fallback)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		res.Percentage = p.fallback
		res.Fallback = true
	}
	res.CanSignup = p.Eligible(res.Percentage)

	span.SetAttributes(
		attribute.Int("dropout.percentage", res.Percentage),
		attribute.Bool("dropout.fallback", res.Fallback),
	)
	return res
}

func (p *Predictor) percentage(answers map[string]any) (pct int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("prediction panicked: %v", r)
		}
	}()

	if p.model == nil || p.schema == nil {
		return 0, errNoModel
	}
	row, err := p.schema.Prepare(answers)
	if err != nil {
		return 0, err
	}
	features, err := p.schema.Vector(row)
	if err != nil {
		return 0, err
	}
	prob, err := p.model.PredictProba(features)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(prob) || math.IsInf(prob, 0) {
		return 0, fmt.Errorf("model returned %v", prob)
	}

	return min(max(int(prob*100), 0), 100), nil
}
