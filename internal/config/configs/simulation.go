package configs

import "time"

// Simulation tunes the engine and its progress indicator.
type Simulation struct {
	// Seed fixes the seed of every run. Zero draws a fresh seed per run.
	Seed int64 `env:"SEED" envDefault:"0"`
	// ProgressInterval is the delay between progress updates.
	ProgressInterval time.Duration `env:"PROGRESS_INTERVAL" envDefault:"200ms"`
	// ProgressStep is the percentage added on every update.
	ProgressStep int `env:"PROGRESS_STEP" envDefault:"10"`
}
