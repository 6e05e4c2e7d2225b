// Package intake turns a submitted birth form into a stored profile.
package intake

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/url"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"astroguide/internal/calculator"
	"astroguide/internal/chart"
	"astroguide/internal/gateway/entity"
	artifactrepo "astroguide/internal/gateway/repository/artifact"
	profilerepo "astroguide/internal/gateway/repository/profile"
	"astroguide/internal/geo"
	"astroguide/internal/guide"
	"astroguide/internal/observability"
)

// Request is the raw intake form.
type Request struct {
	Name       string `json:"name"`
	Birthday   string `json:"birthday"`
	Birthtime  string `json:"birthtime"`
	Birthplace string `json:"birthplace"`
	JobTitle   string `json:"jobTitle"`
}

// Result is the stored profile plus the welcome message.
type Result struct {
	Profile      entity.Profile
	ChatResponse string
}

type Geocoder interface {
	Lookup(place string) geo.Location
}

type Deps struct {
	Calculator calculator.Calculator
	Geocoder   Geocoder
	Renderer   chart.Renderer
	Artifacts  artifactrepo.Store
	Profiles   profilerepo.Store
	Metrics    *observability.Metrics
	Logger     *zap.Logger
	// PublicBaseURL prefixes chart links, e.g. "http://localhost:5000".
	PublicBaseURL string
}

type Service struct {
	deps      Deps
	now       func() time.Time
	sanitizer *bluemonday.Policy
}

func New(deps Deps, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	if deps.Renderer == nil {
		deps.Renderer = chart.DisabledRenderer{}
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	deps.Logger = deps.Logger.With(zap.String("component", "intake"))
	deps.PublicBaseURL = strings.TrimRight(strings.TrimSpace(deps.PublicBaseURL), "/")
	return &Service{deps: deps, now: now, sanitizer: bluemonday.StrictPolicy()}
}

// Prepare strips markup and surrounding space from every field and applies
// the default birthtime.
func (s *Service) Prepare(req Request) Request {
	clean := func(v string) string {
		// the policy escapes entities in text; only tag removal is wanted
		return strings.TrimSpace(html.UnescapeString(s.sanitizer.Sanitize(strings.TrimSpace(v))))
	}
	out := Request{
		Name:       clean(req.Name),
		Birthday:   clean(req.Birthday),
		Birthtime:  clean(req.Birthtime),
		Birthplace: clean(req.Birthplace),
		JobTitle:   clean(req.JobTitle),
	}
	if out.Birthtime == "" {
		out.Birthtime = entity.DefaultBirthtime
	}
	return out
}

func validate(req Request) error {
	if req.Name == "" || req.Birthday == "" || req.Birthplace == "" || req.JobTitle == "" {
		return entity.InvalidInput("All fields are required")
	}
	if _, err := time.Parse(entity.BirthdayLayout, req.Birthday); err != nil {
		return entity.InvalidInput("Invalid date format")
	}
	if _, err := time.Parse(entity.BirthtimeLayout, req.Birthtime); err != nil {
		return entity.InvalidInput("Invalid time format")
	}
	return nil
}

// Submit validates the form, derives the profile facts, renders the chart
// and persists the result.
func (s *Service) Submit(ctx context.Context, raw Request) (Result, error) {
	req := s.Prepare(raw)
	if err := validate(req); err != nil {
		s.deps.Metrics.RecordIntake("invalid")
		return Result{}, err
	}
	res, err := s.submit(ctx, req)
	if err != nil {
		s.deps.Metrics.RecordIntake("error")
		return Result{}, err
	}
	s.deps.Metrics.RecordIntake("created")
	return res, nil
}

func (s *Service) submit(ctx context.Context, req Request) (Result, error) {
	loc := s.deps.Geocoder.Lookup(req.Birthplace)
	birth := entity.BirthData{
		Birthday:   req.Birthday,
		Birthtime:  req.Birthtime,
		Birthplace: req.Birthplace,
		Lat:        loc.Lat,
		Lng:        loc.Lng,
	}

	started := time.Now()
	astro, err := s.deps.Calculator.Astro(ctx, birth)
	s.deps.Metrics.ObserveCalculator(string(calculator.KindAstro), time.Since(started))
	if err != nil {
		return Result{}, fmt.Errorf("astro calculation: %w", err)
	}
	started = time.Now()
	design, err := s.deps.Calculator.HumanDesign(ctx, birth)
	s.deps.Metrics.ObserveCalculator(string(calculator.KindHumanDesign), time.Since(started))
	if err != nil {
		return Result{}, fmt.Errorf("human design calculation: %w", err)
	}

	sign := guide.Sign(astro.SunSign)
	designType := guide.DesignType(design.Type)
	if !sign.Known() {
		s.deps.Logger.Warn("calculator returned an unknown sun sign; default phrasing applies", zap.String("sun_sign", astro.SunSign))
	}
	resonance := guide.DeriveResonance(sign, designType)
	archetype := guide.ResolveArchetype(sign, designType)

	profile := entity.Profile{
		Name:      req.Name,
		Birth:     birth,
		JobTitle:  req.JobTitle,
		Astro:     astro,
		Design:    design,
		Resonance: resonance,
		Archetype: archetype,
		CreatedAt: s.now().UTC(),
	}
	profile.ChartURL = s.renderChart(ctx, profile)

	stored, err := s.deps.Profiles.CreateProfile(ctx, profile)
	if err != nil {
		return Result{}, fmt.Errorf("save profile: %w", err)
	}
	s.deps.Logger.Info("profile created",
		zap.Int64("user_id", int64(stored.ID)),
		zap.String("sun_sign", astro.SunSign),
		zap.String("type", design.Type),
		zap.Bool("geocoded", loc.Found),
	)
	return Result{
		Profile:      stored,
		ChatResponse: guide.Welcome(sign, designType, archetype, resonance),
	}, nil
}

// renderChart returns the public chart URL, or "" when no chart was produced.
func (s *Service) renderChart(ctx context.Context, p entity.Profile) string {
	raw, err := s.deps.Renderer.Render(ctx, chart.Input{Name: p.Name, Design: p.Design, Astro: p.Astro})
	if err != nil {
		if errors.Is(err, chart.ErrDisabled) {
			s.deps.Metrics.RecordChartRender("disabled")
			s.deps.Logger.Debug("chart rendering disabled")
			return ""
		}
		s.deps.Metrics.RecordChartRender("error")
		s.deps.Logger.Warn("chart rendering failed", zap.String("name", p.Name), zap.Error(err))
		return ""
	}
	file := chart.FileName(p.Name, p.CreatedAt)
	if err := s.deps.Artifacts.Put(ctx, chart.Namespace, file, raw); err != nil {
		s.deps.Metrics.RecordChartRender("error")
		s.deps.Logger.Warn("chart storage failed", zap.String("file", file), zap.Error(err))
		return ""
	}
	s.deps.Metrics.RecordChartRender("ok")
	return s.deps.PublicBaseURL + "/" + chart.Namespace + "/" + url.PathEscape(file)
}
