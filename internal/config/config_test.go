package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("FAIRLENS_DATA_FILE", "predictions.csv")
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Data.File != "predictions.csv" {
		t.Errorf("data file = %q", cfg.Data.File)
	}
	if cfg.Audit.TrueColumn != "y_true" {
		t.Errorf("true column default = %q, want y_true", cfg.Audit.TrueColumn)
	}
	if cfg.Audit.PositiveLabel != "1" {
		t.Errorf("positive label default = %q, want 1", cfg.Audit.PositiveLabel)
	}
	if cfg.Audit.Concurrency != 4 {
		t.Errorf("concurrency default = %d, want 4", cfg.Audit.Concurrency)
	}
}

func TestLoad_RequiresASource(t *testing.T) {
	t.Setenv("FAIRLENS_DATA_FILE", "")
	t.Setenv("DATABASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when no data source is configured")
	}
}

func TestLoad_DatabaseNeedsTable(t *testing.T) {
	t.Setenv("FAIRLENS_DATA_FILE", "")
	t.Setenv("DATABASE_URL", "postgres://localhost/fairlens")
	t.Setenv("FAIRLENS_DB_TABLE", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when database table is missing")
	}

	t.Setenv("FAIRLENS_DB_TABLE", "predictions")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Database.Table != "predictions" {
		t.Errorf("table = %q", cfg.Database.Table)
	}
}
