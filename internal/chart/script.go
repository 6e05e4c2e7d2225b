package chart

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"astroguide/internal/calculator"
	"astroguide/internal/util/jsonutil"
)

// ScriptRenderer runs chart_generator.py, which writes a PDF to the path
// given as its last argument.
type ScriptRenderer struct {
	python string
	script string
	run    calculator.Runner
	logger *zap.Logger
}

type ScriptOption func(*ScriptRenderer)

func WithRunner(run calculator.Runner) ScriptOption {
	return func(r *ScriptRenderer) {
		if run != nil {
			r.run = run
		}
	}
}

func WithLogger(logger *zap.Logger) ScriptOption {
	return func(r *ScriptRenderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

func NewScriptRenderer(python, script string, opts ...ScriptOption) *ScriptRenderer {
	python = strings.TrimSpace(python)
	if python == "" {
		python = "python3"
	}
	r := &ScriptRenderer{
		python: python,
		script: strings.TrimSpace(script),
		run:    calculator.ExecRunner,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With(zap.String("component", "chart"))
	return r
}

func (r *ScriptRenderer) Render(ctx context.Context, in Input) ([]byte, error) {
	if r.script == "" {
		return nil, ErrDisabled
	}
	hdJSON, err := jsonutil.MarshalNoEscape(in.Design)
	if err != nil {
		return nil, fmt.Errorf("encode human design: %w", err)
	}
	astroJSON, err := jsonutil.MarshalNoEscape(in.Astro)
	if err != nil {
		return nil, fmt.Errorf("encode astro data: %w", err)
	}

	dir, err := os.MkdirTemp("", "astroguide-chart-*")
	if err != nil {
		return nil, fmt.Errorf("chart temp dir: %w", err)
	}
	defer os.RemoveAll(dir)
	outPath := filepath.Join(dir, "chart.pdf")

	if _, err := r.run(ctx, r.python, r.script, string(hdJSON), string(astroJSON), in.Name, outPath); err != nil {
		r.logger.Error("chart script failed", zap.String("name", in.Name), zap.Error(err))
		return nil, fmt.Errorf("chart generator: %w", err)
	}
	raw, err := os.ReadFile(outPath)
	if err != nil {
		return nil, fmt.Errorf("chart generator produced no file: %w", err)
	}
	pages, err := Validate(raw)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("chart rendered", zap.String("name", in.Name), zap.Int("pages", pages), zap.Int("bytes", len(raw)))
	return raw, nil
}
