// Package calculator obtains astrological and human-design data for a birth
// moment, either from external scripts or from a deterministic built-in model.
package calculator

import (
	"context"

	"astroguide/internal/gateway/entity"
)

// Calculator computes the data a profile is derived from.
type Calculator interface {
	Astro(ctx context.Context, birth entity.BirthData) (entity.AstroData, error)
	HumanDesign(ctx context.Context, birth entity.BirthData) (entity.HumanDesign, error)
}

// Kind names a calculation for logging and metrics.
type Kind string

const (
	KindAstro       Kind = "astro"
	KindHumanDesign Kind = "human_design"
)
