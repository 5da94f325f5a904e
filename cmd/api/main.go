package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"gopkg.in/yaml.v2"

	"bess_economics/pkg/api/evaluation"
	"bess_economics/pkg/api/gate"
	"bess_economics/pkg/api/runs"
	"bess_economics/pkg/core/pipeline"
	"bess_economics/pkg/core/store"
)

type serverConfig struct {
	Addr          string  `yaml:"addr"`
	DiscountRate  float64 `yaml:"discount_rate"`
	StrictBalance bool    `yaml:"strict_balance"`
}

// loadConfig reads config/server.yaml when present; a missing file keeps
// the defaults.
func loadConfig() serverConfig {
	cfg := serverConfig{Addr: ":8080"}
	data, err := os.ReadFile("config/server.yaml")
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		slog.Warn("ignoring malformed server config", "err", err)
	}
	return cfg
}

func main() {
	godotenv.Load()

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.Kitchen,
	})))

	cfg := loadConfig()

	eval := pipeline.New()
	if cfg.DiscountRate > 0 {
		eval.DiscountRate = cfg.DiscountRate
	}
	eval.Validation.Strict = cfg.StrictBalance

	auth := gate.AllowAll{}
	evaluation.InitHandler(eval, auth)

	// Run persistence is optional: without DATABASE_URL the endpoints stay
	// registered and report the missing pool per request.
	if err := store.InitDB(context.Background()); err != nil {
		slog.Warn("run persistence disabled", "err", err)
	} else {
		defer store.Close()
	}
	runs.InitHandler(eval, store.NewRunRepo(), auth)

	http.HandleFunc("/api/evaluate", evaluation.HandleEvaluate)
	http.HandleFunc("/api/sensitivity", evaluation.HandleSensitivity)
	http.HandleFunc("/api/defaults", evaluation.HandleDefaults)
	http.HandleFunc("/api/runs", runs.HandleRuns)

	slog.Info("API server starting", "addr", cfg.Addr,
		"discount_rate", eval.DiscountRate, "strict_balance", cfg.StrictBalance)
	if err := http.ListenAndServe(cfg.Addr, nil); err != nil {
		slog.Error("server failed", "err", err)
		os.Exit(1)
	}
}
