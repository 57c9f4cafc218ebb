package prediction

import (
	"creditAdvisor/domain"
	"time"
)

// modelState is one published model. It is built fully before being
// published and never changes afterwards.
type modelState struct {
	scorer *CategoryScorer
	stats  domain.TrainingStats
}

func newModelState(scorer *CategoryScorer, examples []domain.TrainingExample, featureSet string, generation uint64) *modelState {
	perCategory := make(map[domain.Category]int, len(domain.Categories))
	for _, c := range domain.Categories {
		perCategory[c] = 0
	}
	for _, ex := range examples {
		perCategory[ex.Category]++
	}

	return &modelState{
		scorer: scorer,
		stats: domain.TrainingStats{
			Count:       len(examples),
			PerCategory: perCategory,
			FeatureSet:  featureSet,
			Generation:  generation,
			TrainedAt:   time.Now(),
		},
	}
}

// statsCopy keeps callers from reaching into the published map.
func (m *modelState) statsCopy() domain.TrainingStats {
	out := m.stats
	out.PerCategory = make(map[domain.Category]int, len(m.stats.PerCategory))
	for k, v := range m.stats.PerCategory {
		out.PerCategory[k] = v
	}
	return out
}
