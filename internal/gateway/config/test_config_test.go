package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "APP_ENV", "LOG_LEVEL", "PUBLIC_BASE_URL", "DATABASE_URL", "SQLITE_PATH",
		"PYTHON_PATH", "CALCULATOR_SCRIPTS_DIR", "CHART_SCRIPT", "ASTROGUIDE_CONFIG",
		"ARTIFACT_BACKEND", "ARTIFACT_DIR", "ARTIFACT_S3_ENDPOINT", "ARTIFACT_MINIO_ENDPOINT",
		"ARTIFACT_S3_REGION", "ARTIFACT_S3_ACCESS_KEY", "ARTIFACT_S3_SECRET_KEY",
		"MINIO_ROOT_USER", "MINIO_ROOT_PASSWORD", "ARTIFACT_S3_BUCKET", "ARTIFACT_S3_USE_SSL",
	} {
		t.Setenv(key, "")
	}
	// keep a developer's .env out of the test
	t.Chdir(t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != ":5000" || cfg.Env != "local" || cfg.SQLitePath != "data/astro_guide.db" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.PublicBaseURL != "http://localhost:5000" || cfg.Python.Path != "python3" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Artifact.Backend != "auto" || cfg.Artifact.CanUseS3() {
		t.Fatalf("unexpected artifact defaults: %+v", cfg.Artifact)
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "astroguide.yaml")
	yaml := `
port: "8080"
log_level: debug
public_base_url: https://guide.example.com/
python:
  calculator_scripts_dir: /opt/scripts
artifact:
  endpoint: s3.example.com
  access_key: file-key
  secret_key: file-secret
  bucket: charts
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ASTROGUIDE_CONFIG", path)
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("MINIO_ROOT_USER", "env-user")
	t.Setenv("ARTIFACT_S3_USE_SSL", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != ":8080" {
		t.Fatalf("Port = %q", cfg.Port)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("LogLevel = %q, env should win", cfg.LogLevel)
	}
	if cfg.PublicBaseURL != "https://guide.example.com" {
		t.Fatalf("PublicBaseURL = %q", cfg.PublicBaseURL)
	}
	if cfg.Python.CalculatorScriptsDir != "/opt/scripts" || cfg.Python.Path != "python3" {
		t.Fatalf("Python = %+v", cfg.Python)
	}
	if cfg.Artifact.AccessKey != "env-user" || cfg.Artifact.SecretKey != "file-secret" || cfg.Artifact.UseSSL {
		t.Fatalf("Artifact = %+v", cfg.Artifact)
	}
	if !cfg.Artifact.CanUseS3() {
		t.Fatalf("expected complete s3 config")
	}
}

func TestLoadRejectsBadFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("ASTROGUIDE_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
