package main

import (
	"creditAdvisor/internal/datagen"
	"creditAdvisor/pkg/logger"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

func main() {
	outDir := flag.String("out", "data", "directory to write training-data.json and credit-cards.json into")
	perCategory := flag.Int("per-category", 1000, "training profiles generated per category")
	perBrand := flag.Int("cards-per-brand", 5, "cards generated per brand and category")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "random seed")
	flag.Parse()

	logger.Init(os.Getenv("APP_ENV"))

	if *perCategory <= 0 || *perBrand <= 0 {
		logger.Fatal("Counts must be greater than 0", "per_category", *perCategory, "cards_per_brand", *perBrand)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		logger.Fatal("Failed to create output directory", "dir", *outDir, "error", err)
	}

	gen := datagen.New(*seed)

	training := gen.TrainingSet(*perCategory)
	if err := writeJSON(filepath.Join(*outDir, "training-data.json"), training); err != nil {
		logger.Fatal("Failed to write training data", "error", err)
	}

	cards := gen.Cards(*perBrand)
	if err := writeJSON(filepath.Join(*outDir, "credit-cards.json"), cards); err != nil {
		logger.Fatal("Failed to write cards", "error", err)
	}

	logger.Info("Data generated",
		"dir", *outDir,
		"seed", *seed,
		"training_profiles", len(training),
		"cards", len(cards),
	)
}

func writeJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s error: %w", path, err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write %s error: %w", path, err)
	}
	return nil
}
