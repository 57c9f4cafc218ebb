package prediction

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	PredictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "credit_predictions_total",
			Help: "Count of credit category predictions by category and deciding source (rule or model).",
		},
		[]string{"category", "source"},
	)

	RetrainsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "credit_model_retrains_total",
			Help: "Count of retrain attempts by outcome.",
		},
		[]string{"outcome"},
	)

	TrainingProfiles = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "credit_model_training_profiles",
		Help: "Number of profiles behind the model currently serving predictions.",
	})
)

func init() {
	prometheus.MustRegister(PredictionsTotal, RetrainsTotal, TrainingProfiles)
}
