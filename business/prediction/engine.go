package prediction

import (
	"creditAdvisor/domain"
	"fmt"
	"sync"
	"sync/atomic"
)

const (
	sourceRule  = "rule"
	sourceModel = "model"
)

// Engine predicts credit categories. Rules run first; the trained scorer
// decides only when no rule fires.
//
// The trained model is swapped atomically on Retrain, so concurrent Predict
// calls see either the old or the new model in full.
type Engine struct {
	cfg       Config
	extractor *FeatureExtractor
	rules     *ThresholdClassifier

	current atomic.Pointer[modelState]

	retrainMu  sync.Mutex
	generation uint64
}

func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	extractor, err := NewFeatureExtractor(cfg.Features)
	if err != nil {
		return nil, err
	}

	return &Engine{
		cfg:       cfg,
		extractor: extractor,
		rules:     NewThresholdClassifier(cfg.Cutoffs, cfg.PaymentSignal),
	}, nil
}

func (e *Engine) FeatureSet() string {
	return e.cfg.FeatureSet
}

// Retrain builds a model from examples and publishes it. On any error the
// previous model keeps serving.
func (e *Engine) Retrain(examples []domain.TrainingExample) (domain.TrainingStats, error) {
	stats, err := e.retrain(examples)
	if err != nil {
		RetrainsTotal.WithLabelValues("failed").Inc()
		return domain.TrainingStats{}, err
	}
	RetrainsTotal.WithLabelValues("ok").Inc()
	TrainingProfiles.Set(float64(stats.Count))
	return stats, nil
}

func (e *Engine) retrain(examples []domain.TrainingExample) (domain.TrainingStats, error) {
	if len(examples) == 0 {
		return domain.TrainingStats{}, domain.ErrEmptyTrainingSet
	}

	e.retrainMu.Lock()
	defer e.retrainMu.Unlock()

	data := make([]domain.TrainingExample, len(examples))
	copy(data, examples)

	labelled := make([]LabeledVector, len(data))
	for i, ex := range data {
		if !ex.Category.IsValid() {
			return domain.TrainingStats{}, fmt.Errorf("training example %d: %w: %q", i, domain.ErrUnknownCategory, ex.Category)
		}
		v, err := e.extractor.Extract(ex.CreditProfile)
		if err != nil {
			return domain.TrainingStats{}, fmt.Errorf("training example %d: %w", i, err)
		}
		labelled[i] = LabeledVector{Features: v, Category: ex.Category}
	}

	scorer, err := TrainScorer(e.cfg.Weights(), labelled)
	if err != nil {
		return domain.TrainingStats{}, err
	}

	e.generation++
	state := newModelState(scorer, data, e.cfg.FeatureSet, e.generation)
	e.current.Store(state)

	return state.statsCopy(), nil
}

// PaymentQuality is the 0-1 payment signal of the active feature set: the
// on-time rate for income, the share of months without a miss for fico.
func (e *Engine) PaymentQuality(p domain.CreditProfile) float64 {
	return e.rules.paymentQuality(p)
}

// Stats reports the model currently serving predictions.
func (e *Engine) Stats() (domain.TrainingStats, bool) {
	m := e.current.Load()
	if m == nil {
		return domain.TrainingStats{}, false
	}
	return m.statsCopy(), true
}

// Generation increases by one on every successful Retrain; 0 means untrained.
func (e *Engine) Generation() uint64 {
	m := e.current.Load()
	if m == nil {
		return 0
	}
	return m.stats.Generation
}

func (e *Engine) Predict(p domain.CreditProfile) (domain.Category, error) {
	exp, err := e.explain(p, false)
	if err != nil {
		return "", err
	}

	source := sourceModel
	if exp.Rule != "" {
		source = sourceRule
	}
	PredictionsTotal.WithLabelValues(string(exp.Category), source).Inc()

	return exp.Category, nil
}

// Explain runs a prediction and returns every intermediate value. Scores are
// included even when a rule decides, as long as a model is trained.
func (e *Engine) Explain(p domain.CreditProfile) (domain.PredictionExplanation, error) {
	return e.explain(p, true)
}

func (e *Engine) explain(p domain.CreditProfile, full bool) (domain.PredictionExplanation, error) {
	v, err := e.extractor.Extract(p)
	if err != nil {
		return domain.PredictionExplanation{}, err
	}

	m := e.current.Load()
	exp := domain.PredictionExplanation{
		FeatureSet: e.cfg.FeatureSet,
		Features:   []float64(v),
	}
	if m != nil {
		exp.Generation = m.stats.Generation
	}

	cat, rule, ok, err := e.rules.evaluate(p)
	if err != nil {
		return domain.PredictionExplanation{}, err
	}
	if ok {
		exp.Category = cat
		exp.Rule = rule
		if !full || m == nil {
			return exp, nil
		}
	}

	if m == nil {
		return domain.PredictionExplanation{}, domain.ErrModelNotTrained
	}

	combined, err := m.scorer.Combine(v)
	if err != nil {
		return domain.PredictionExplanation{}, err
	}
	scores, err := m.scorer.Score(v)
	if err != nil {
		return domain.PredictionExplanation{}, err
	}
	exp.Combined = combined
	exp.Scores = scores

	if !ok {
		exp.Category = bestCategory(scores)
	}
	return exp, nil
}
