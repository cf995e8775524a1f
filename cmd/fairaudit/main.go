package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"fairlens/adapters/excel"
	"fairlens/adapters/postgres"
	"fairlens/domain/frame"
	"fairlens/internal/config"
	"fairlens/internal/report"
	"fairlens/ports"
)

func main() {
	in := flag.String("in", "", "input dataset path (.xlsx or .csv); falls back to FAIRLENS_DATA_FILE")
	table := flag.String("table", "", "postgres table to audit; falls back to FAIRLENS_DB_TABLE")
	pred := flag.String("pred", "", "comma-separated predicted-label columns (required)")
	cond := flag.String("cond", "", "unprivileged-group condition, e.g. sex=female,age_band=young")
	positive := flag.String("positive", "", "positive label; falls back to FAIRLENS_POSITIVE_LABEL")
	format := flag.String("format", "json", "output format: json or text")
	flag.Parse()

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	if *in != "" {
		os.Setenv("FAIRLENS_DATA_FILE", *in)
	}
	if *table != "" {
		os.Setenv("FAIRLENS_DB_TABLE", *table)
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	predCols := splitList(*pred)
	if len(predCols) == 0 {
		fmt.Fprintln(os.Stderr, "-pred is required")
		os.Exit(2)
	}

	condition, err := parseCondition(*cond)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid -cond:", err)
		os.Exit(2)
	}

	positiveLabel := appConfig.Audit.PositiveLabel
	if *positive != "" {
		positiveLabel = *positive
	}

	ctx := context.Background()
	source, cleanup, err := buildSource(appConfig)
	if err != nil {
		log.Fatalf("Failed to open data source: %v", err)
	}
	defer cleanup()

	tableData, err := source.Load(ctx)
	if err != nil {
		log.Fatalf("Failed to load table: %v", err)
	}

	runner := report.NewRunner(appConfig.Audit.TrueColumn, int64(appConfig.Audit.Concurrency))
	rep, err := runner.Run(ctx, tableData, condition, predCols, parseValue(positiveLabel))
	if err != nil {
		log.Fatalf("Audit failed: %v", err)
	}

	switch *format {
	case "text":
		printText(rep)
	default:
		out, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			log.Fatalf("Failed to encode report: %v", err)
		}
		fmt.Println(string(out))
	}
}

// buildSource picks the table source: a file when configured, the database
// otherwise.
func buildSource(cfg *config.Config) (ports.TableSource, func(), error) {
	if cfg.Data.File != "" {
		return excel.NewDataReader(cfg.Data.File), func() {}, nil
	}

	db, err := postgres.Connect(cfg.Database.URL)
	if err != nil {
		return nil, nil, err
	}
	loader := postgres.NewTableLoader(db, cfg.Database.Table, nil)
	return loader, func() { db.Close() }, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// parseCondition turns "sex=female,age_band=young" into a typed condition.
func parseCondition(s string) (frame.Condition, error) {
	cond := frame.Condition{}
	for _, part := range splitList(s) {
		key, value, found := strings.Cut(part, "=")
		if !found || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("expected column=value, got %q", part)
		}
		cond[strings.TrimSpace(key)] = parseValue(strings.TrimSpace(value))
	}
	return cond, nil
}

func parseValue(s string) frame.Value {
	if s == "" {
		return frame.Missing()
	}
	if num, err := strconv.ParseFloat(s, 64); err == nil {
		return frame.Num(num)
	}
	return frame.Str(s)
}

func printText(rep *report.AuditReport) {
	fmt.Printf("Audit %s (%d rows, created %s)\n", rep.ID, rep.Rows, rep.CreatedAt)
	if len(rep.Condition) > 0 {
		pairs := make([]string, 0, len(rep.Condition))
		for k, v := range rep.Condition {
			pairs = append(pairs, k+"="+v)
		}
		sort.Strings(pairs)
		fmt.Printf("Unprivileged group: %s\n", strings.Join(pairs, ", "))
	}
	fmt.Printf("Positive label: %s\n", rep.Positive)

	for _, audit := range rep.Columns {
		fmt.Printf("\n== %s ==\n", audit.Column)
		printSection("fairness", audit.Fairness)
		printSection("scores", audit.Scores)
		printSection("performance", audit.Performance)
		printSection("distances", audit.Distances)
	}
}

func printSection(title string, metrics map[string]float64) {
	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("%s:\n", title)
	for _, name := range names {
		fmt.Printf("  %-28s %.6f\n", name, metrics[name])
	}
}
