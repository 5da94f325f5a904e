package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"bess_economics/pkg/core/params"
	"bess_economics/pkg/core/pipeline"
	"bess_economics/pkg/core/store"
	"bess_economics/pkg/core/utils"
	"bess_economics/pkg/report"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, assuming environment variables are set.")
	}

	scenarioPath := flag.String("scenario", "", "hjson scenario file (default: documented base case)")
	csvDir := flag.String("csv", "", "directory for the yearly statement CSVs")
	htmlPath := flag.String("html", "", "write the HTML report to this file")
	save := flag.Bool("save", false, "persist the run (requires DATABASE_URL)")
	flag.Parse()

	in := pipeline.Input{Params: params.Defaults()}
	name := "base_case"
	if *scenarioPath != "" {
		sc, err := utils.LoadScenarioFile(*scenarioPath)
		if err != nil {
			log.Fatalf("Scenario load failed: %v", err)
		}
		in = pipeline.Input{Params: sc.Params, SpotPrices: sc.SpotPrices}
		name = sc.Name
		fmt.Printf("Loaded scenario %q from %s\n", name, *scenarioPath)
	}

	res, err := pipeline.New().Evaluate(in)
	if err != nil {
		log.Fatalf("Evaluation failed: %v", err)
	}

	fmt.Print(report.Markdown(res))

	if *csvDir != "" {
		if err := writeCSVs(*csvDir, res); err != nil {
			log.Fatalf("CSV export failed: %v", err)
		}
		fmt.Printf("Statement CSVs written to %s\n", *csvDir)
	}

	if *htmlPath != "" {
		html, err := report.HTML(res)
		if err != nil {
			log.Fatalf("HTML rendering failed: %v", err)
		}
		if err := os.WriteFile(*htmlPath, []byte(html), 0o644); err != nil {
			log.Fatalf("HTML export failed: %v", err)
		}
		fmt.Printf("HTML report written to %s\n", *htmlPath)
	}

	if *save {
		ctx := context.Background()
		if err := store.InitDB(ctx); err != nil {
			log.Fatalf("Database init failed: %v", err)
		}
		defer store.Close()

		id, err := store.NewRunRepo().Save(ctx, name, res)
		if err != nil {
			log.Fatalf("Run save failed: %v", err)
		}
		fmt.Printf("Run saved as %s (scenario %q)\n", id, name)
	}
}

func writeCSVs(dir string, res *pipeline.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	writers := []struct {
		file  string
		write func(f *os.File) error
	}{
		{"income.csv", func(f *os.File) error { return report.WriteIncomeCSV(f, res) }},
		{"cash_flow.csv", func(f *os.File) error { return report.WriteCashFlowCSV(f, res) }},
		{"balance.csv", func(f *os.File) error { return report.WriteBalanceCSV(f, res) }},
	}
	for _, w := range writers {
		f, err := os.Create(filepath.Join(dir, w.file))
		if err != nil {
			return err
		}
		if err := w.write(f); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}
