package prediction

import (
	"creditAdvisor/domain"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// LabeledVector is one training point of the scorer.
type LabeledVector struct {
	Features FeatureVector
	Category domain.Category
}

// regressionLine is y = alpha + beta*x.
type regressionLine struct {
	Alpha float64
	Beta  float64
}

func (l regressionLine) predict(x float64) float64 {
	return l.Alpha + l.Beta*x
}

// CategoryScorer holds one least-squares line per category over the combined
// feature scalar. A trained scorer is never mutated.
type CategoryScorer struct {
	weights []float64
	lines   map[domain.Category]regressionLine
}

// TrainScorer fits every category's line over the same combined x-values,
// labelling each point 1 for its own category and 0 otherwise.
func TrainScorer(weights []float64, examples []LabeledVector) (*CategoryScorer, error) {
	if len(examples) == 0 {
		return nil, domain.ErrEmptyTrainingSet
	}

	s := &CategoryScorer{
		weights: append([]float64(nil), weights...),
		lines:   make(map[domain.Category]regressionLine, len(domain.Categories)),
	}

	xs := make([]float64, len(examples))
	for i, ex := range examples {
		x, err := s.Combine(ex.Features)
		if err != nil {
			return nil, fmt.Errorf("training example %d: %w", i, err)
		}
		xs[i] = x
	}

	ys := make([]float64, len(examples))
	for _, c := range domain.Categories {
		for i, ex := range examples {
			if ex.Category == c {
				ys[i] = 1
			} else {
				ys[i] = 0
			}
		}
		s.lines[c] = fitLine(xs, ys)
	}

	return s, nil
}

// fitLine falls back to the horizontal line through mean(ys) when the slope is
// undefined (fewer than two points or no spread in xs).
func fitLine(xs, ys []float64) regressionLine {
	if len(xs) < 2 {
		return regressionLine{Alpha: stat.Mean(ys, nil)}
	}
	if v := stat.Variance(xs, nil); v == 0 || math.IsNaN(v) {
		return regressionLine{Alpha: stat.Mean(ys, nil)}
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	return regressionLine{Alpha: alpha, Beta: beta}
}

// Combine reduces a vector to Σ wᵢ·featureᵢ.
func (s *CategoryScorer) Combine(v FeatureVector) (float64, error) {
	if len(v) != len(s.weights) {
		return 0, fmt.Errorf("%w: feature vector has %d entries, expected %d", domain.ErrInvalidProfile, len(v), len(s.weights))
	}
	sum := 0.0
	for i, w := range s.weights {
		sum += w * v[i]
	}
	return sum, nil
}

// Score evaluates every category's line at the vector's combined value. The
// values are not probabilities and may fall outside [0, 1].
func (s *CategoryScorer) Score(v FeatureVector) (map[domain.Category]float64, error) {
	x, err := s.Combine(v)
	if err != nil {
		return nil, err
	}

	out := make(map[domain.Category]float64, len(s.lines))
	for _, c := range domain.Categories {
		out[c] = s.lines[c].predict(x)
	}
	return out, nil
}

// bestCategory picks the highest score; ties go to the earlier category.
func bestCategory(scores map[domain.Category]float64) domain.Category {
	best := domain.Categories[len(domain.Categories)-1]
	bestScore := math.Inf(-1)
	for _, c := range domain.Categories {
		v, ok := scores[c]
		if !ok || math.IsNaN(v) {
			continue
		}
		if v > bestScore {
			best = c
			bestScore = v
		}
	}
	return best
}
