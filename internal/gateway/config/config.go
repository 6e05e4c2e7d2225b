// Package config loads gateway settings from an optional YAML file, a .env
// file and the process environment, in increasing priority.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port          string         `yaml:"port"`
	Env           string         `yaml:"env"`
	LogLevel      string         `yaml:"log_level"`
	PublicBaseURL string         `yaml:"public_base_url"`
	DatabaseURL   string         `yaml:"database_url"`
	SQLitePath    string         `yaml:"sqlite_path"`
	Python        PythonConfig   `yaml:"python"`
	Artifact      ArtifactConfig `yaml:"artifact"`
}

// PythonConfig locates the external calculator and chart scripts. Empty
// script settings select the built-in calculator and disable charts.
type PythonConfig struct {
	Path                 string `yaml:"path"`
	CalculatorScriptsDir string `yaml:"calculator_scripts_dir"`
	ChartScript          string `yaml:"chart_script"`
}

type ArtifactConfig struct {
	// Backend is auto, s3, disk, sql or memory. auto picks s3 when the S3
	// settings are complete and disk otherwise.
	Backend   string `yaml:"backend"`
	Dir       string `yaml:"dir"`
	Endpoint  string `yaml:"endpoint"`
	Region    string `yaml:"region"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	UseSSL    bool   `yaml:"use_ssl"`
}

const MemorySQLitePath = "memory"

// CanUseS3 reports whether every setting the S3 store needs is present.
func (a ArtifactConfig) CanUseS3() bool {
	return strings.TrimSpace(a.Endpoint) != "" &&
		strings.TrimSpace(a.AccessKey) != "" &&
		strings.TrimSpace(a.SecretKey) != "" &&
		strings.TrimSpace(a.Bucket) != ""
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := defaultConfig()
	if path := strings.TrimSpace(os.Getenv("ASTROGUIDE_CONFIG")); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return nil, err
		}
	}
	applyEnv(&cfg)
	cfg.Port = normalizePort(cfg.Port)
	cfg.PublicBaseURL = strings.TrimRight(cfg.PublicBaseURL, "/")
	if cfg.Env == "" {
		cfg.Env = "local"
	}
	return &cfg, nil
}

func loadFile(path string, cfg *Config) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.Port, "PORT")
	setString(&cfg.Env, "APP_ENV")
	setString(&cfg.LogLevel, "LOG_LEVEL")
	setString(&cfg.PublicBaseURL, "PUBLIC_BASE_URL")
	setString(&cfg.DatabaseURL, "DATABASE_URL")
	setString(&cfg.SQLitePath, "SQLITE_PATH")

	setString(&cfg.Python.Path, "PYTHON_PATH")
	setString(&cfg.Python.CalculatorScriptsDir, "CALCULATOR_SCRIPTS_DIR")
	setString(&cfg.Python.ChartScript, "CHART_SCRIPT")

	setString(&cfg.Artifact.Backend, "ARTIFACT_BACKEND")
	setString(&cfg.Artifact.Dir, "ARTIFACT_DIR")
	cfg.Artifact.Endpoint = firstNonEmpty(strings.TrimSpace(os.Getenv("ARTIFACT_S3_ENDPOINT")), strings.TrimSpace(os.Getenv("ARTIFACT_MINIO_ENDPOINT")), cfg.Artifact.Endpoint)
	setString(&cfg.Artifact.Region, "ARTIFACT_S3_REGION")
	cfg.Artifact.AccessKey = firstNonEmpty(strings.TrimSpace(os.Getenv("ARTIFACT_S3_ACCESS_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_USER")), cfg.Artifact.AccessKey)
	cfg.Artifact.SecretKey = firstNonEmpty(strings.TrimSpace(os.Getenv("ARTIFACT_S3_SECRET_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_PASSWORD")), cfg.Artifact.SecretKey)
	setString(&cfg.Artifact.Bucket, "ARTIFACT_S3_BUCKET")
	if raw := strings.TrimSpace(os.Getenv("ARTIFACT_S3_USE_SSL")); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			cfg.Artifact.UseSSL = v
		}
	}
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func normalizePort(port string) string {
	port = strings.TrimSpace(port)
	if port == "" {
		return ":5000"
	}
	if !strings.Contains(port, ":") {
		return ":" + port
	}
	return port
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
