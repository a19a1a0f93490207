package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr    string
	CORSOrigins []string

	// Grading policy. Thresholds and stop words are tunable policy, not
	// structural contracts; defaults match the documented behavior.
	PassThreshold float64  // passing percentage for submissions
	StopWords     []string // optional stop-word override
	MinWordFloor  int      // absolute short-answer word floor
	LengthRatio   float64  // floor as fraction of expected length
	TierExcellent float64
	TierGood      float64
	TierPartial   float64
}

func FromEnv() Config {
	// .env is optional; real env always wins.
	_ = godotenv.Load()

	return Config{
		HTTPAddr:      envOr("HTTP_ADDR", ":8080"),
		CORSOrigins:   csvOr("CORS_ORIGINS", "http://localhost:3000"),
		PassThreshold: envFloat("PASS_THRESHOLD", 40),
		StopWords:     csvOr("STOP_WORDS", ""),
		MinWordFloor:  envInt("MIN_WORD_FLOOR", 3),
		LengthRatio:   envFloat("LENGTH_RATIO", 0.3),
		TierExcellent: envFloat("TIER_EXCELLENT", 0.8),
		TierGood:      envFloat("TIER_GOOD", 0.5),
		TierPartial:   envFloat("TIER_PARTIAL", 0.2),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envFloat(k string, def float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(k), 64); err == nil {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(k)); err == nil {
		return v
	}
	return def
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
