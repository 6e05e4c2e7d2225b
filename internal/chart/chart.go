// Package chart renders the downloadable body-graph chart of a profile.
package chart

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"astroguide/internal/gateway/entity"
)

// Namespace is the artifact namespace charts are stored under.
const Namespace = "charts"

// ErrDisabled is returned when no renderer is configured.
var ErrDisabled = errors.New("chart rendering is disabled")

// Input is everything a chart is drawn from.
type Input struct {
	Name   string
	Design entity.HumanDesign
	Astro  entity.AstroData
}

type Renderer interface {
	Render(ctx context.Context, in Input) ([]byte, error)
}

// DisabledRenderer always fails with ErrDisabled.
type DisabledRenderer struct{}

func (DisabledRenderer) Render(context.Context, Input) ([]byte, error) {
	return nil, ErrDisabled
}

// FileName builds "<name>_<unix millis>.pdf". Runs of space become one
// underscore and every rune outside [A-Za-z0-9_-] becomes an underscore, so
// the result is a single URL path segment.
func FileName(name string, now time.Time) string {
	return fileBase(name) + "_" + strconv.FormatInt(now.UnixMilli(), 10) + ".pdf"
}

// IsFileOf reports whether file is a FileName of name at some instant.
func IsFileOf(name, file string) bool {
	stamp, ok := strings.CutPrefix(file, fileBase(name)+"_")
	if !ok {
		return false
	}
	stamp, ok = strings.CutSuffix(stamp, ".pdf")
	if !ok || stamp == "" {
		return false
	}
	for _, r := range stamp {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func fileBase(name string) string {
	base := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		}
		return '_'
	}, strings.Join(strings.Fields(name), "_"))
	if base == "" {
		return "chart"
	}
	return base
}

// Validate parses raw as a PDF and returns its page count.
func Validate(raw []byte) (int, error) {
	if len(raw) == 0 {
		return 0, fmt.Errorf("chart pdf is empty")
	}
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(raw), model.NewDefaultConfiguration())
	if err != nil {
		return 0, fmt.Errorf("pdfcpu read: %w", err)
	}
	if ctx.PageCount < 1 {
		return 0, fmt.Errorf("chart pdf has no pages")
	}
	return ctx.PageCount, nil
}
