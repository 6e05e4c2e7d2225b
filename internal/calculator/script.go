package calculator

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"astroguide/internal/gateway/entity"
	"astroguide/internal/util/jsonutil"
)

const (
	AstroScript       = "astro_calculator.py"
	HumanDesignScript = "human_design.py"
)

// Runner executes a program and returns its stdout.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// ExecRunner runs the program with os/exec. A non-zero exit returns an error
// carrying the trimmed stderr.
func ExecRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("script execution failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}

// ScriptCalculator delegates to the Python calculator scripts in Dir.
type ScriptCalculator struct {
	python string
	dir    string
	run    Runner
	logger *zap.Logger
}

type ScriptOption func(*ScriptCalculator)

// WithRunner replaces the process runner, mainly for tests.
func WithRunner(run Runner) ScriptOption {
	return func(c *ScriptCalculator) {
		if run != nil {
			c.run = run
		}
	}
}

func WithLogger(logger *zap.Logger) ScriptOption {
	return func(c *ScriptCalculator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func NewScriptCalculator(python, dir string, opts ...ScriptOption) *ScriptCalculator {
	python = strings.TrimSpace(python)
	if python == "" {
		python = "python3"
	}
	c := &ScriptCalculator{
		python: python,
		dir:    strings.TrimSpace(dir),
		run:    ExecRunner,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(zap.String("component", "calculator"))
	return c
}

func (c *ScriptCalculator) Astro(ctx context.Context, birth entity.BirthData) (entity.AstroData, error) {
	var out entity.AstroData
	if err := c.call(ctx, AstroScript, birth, &out); err != nil {
		return entity.AstroData{}, err
	}
	if out.Error != "" {
		c.logger.Warn("astro script reported an error", zap.String("error", out.Error), zap.String("sun_sign", out.SunSign))
	}
	return out, nil
}

func (c *ScriptCalculator) HumanDesign(ctx context.Context, birth entity.BirthData) (entity.HumanDesign, error) {
	var out entity.HumanDesign
	if err := c.call(ctx, HumanDesignScript, birth, &out); err != nil {
		return entity.HumanDesign{}, err
	}
	if out.Error != "" {
		c.logger.Warn("human design script reported an error", zap.String("error", out.Error), zap.String("type", out.Type))
	}
	return out, nil
}

func (c *ScriptCalculator) call(ctx context.Context, script string, birth entity.BirthData, out any) error {
	args := []string{
		filepath.Join(c.dir, script),
		strings.TrimSpace(birth.Birthday),
		birthtimeOrDefault(birth.Birthtime),
		strconv.FormatFloat(birth.Lat, 'f', -1, 64),
		strconv.FormatFloat(birth.Lng, 'f', -1, 64),
	}
	raw, err := c.run(ctx, c.python, args...)
	if err != nil {
		c.logger.Error("calculator script failed", zap.String("script", script), zap.Error(err))
		return fmt.Errorf("%s: %w", script, err)
	}
	if err := jsonutil.UnmarshalFlex(raw, out); err != nil {
		return fmt.Errorf("%s: failed to parse script output %q: %w", script, truncate(string(raw), 200), err)
	}
	return nil
}

func birthtimeOrDefault(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return entity.DefaultBirthtime
	}
	return v
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
