package calculator

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"astroguide/internal/gateway/entity"
)

type recordedCall struct {
	name string
	args []string
}

func TestScriptCalculatorPassesArgumentsAndParses(t *testing.T) {
	var calls []recordedCall
	run := func(_ context.Context, name string, args ...string) ([]byte, error) {
		calls = append(calls, recordedCall{name: name, args: args})
		if strings.HasSuffix(args[0], AstroScript) {
			return []byte(`{"sunSign":"Leo","moonSign":"Pisces","ascendant":"Virgo","moonPhase":{"percentage":42.5,"phase":"Waxing Crescent"}}`), nil
		}
		return []byte(`{"type":"Projector","authority":"Emotional","profile":"3/5","gates":[1,2,3],"centers":["Ajna"]}` + "\n"), nil
	}
	calc := NewScriptCalculator("/usr/bin/python3", "/opt/scripts", WithRunner(run))
	birth := entity.BirthData{Birthday: "1990-08-01", Lat: 51.5074, Lng: -0.1278}

	astro, err := calc.Astro(context.Background(), birth)
	if err != nil {
		t.Fatalf("Astro() error = %v", err)
	}
	if astro.SunSign != "Leo" || astro.MoonSign != "Pisces" || astro.MoonPhase == nil || astro.MoonPhase.Phase != "Waxing Crescent" {
		t.Fatalf("Astro() = %+v", astro)
	}
	hd, err := calc.HumanDesign(context.Background(), birth)
	if err != nil {
		t.Fatalf("HumanDesign() error = %v", err)
	}
	if hd.Type != "Projector" || hd.Authority != "Emotional" || len(hd.Gates) != 3 {
		t.Fatalf("HumanDesign() = %+v", hd)
	}

	if len(calls) != 2 {
		t.Fatalf("calls = %d, want 2", len(calls))
	}
	want := []string{filepath.Join("/opt/scripts", AstroScript), "1990-08-01", "12:00", "51.5074", "-0.1278"}
	if calls[0].name != "/usr/bin/python3" || strings.Join(calls[0].args, "|") != strings.Join(want, "|") {
		t.Fatalf("astro call = %+v, want %v", calls[0], want)
	}
}

func TestScriptCalculatorErrors(t *testing.T) {
	failing := NewScriptCalculator("", "", WithRunner(func(context.Context, string, ...string) ([]byte, error) {
		return nil, errors.New("exit status 1")
	}))
	if _, err := failing.Astro(context.Background(), entity.BirthData{Birthday: "1990-01-01"}); err == nil || !strings.Contains(err.Error(), AstroScript) {
		t.Fatalf("Astro() error = %v, want script failure", err)
	}

	garbage := NewScriptCalculator("", "", WithRunner(func(context.Context, string, ...string) ([]byte, error) {
		return []byte("Traceback (most recent call last)"), nil
	}))
	_, err := garbage.HumanDesign(context.Background(), entity.BirthData{Birthday: "1990-01-01"})
	if err == nil || !strings.Contains(err.Error(), "failed to parse script output") {
		t.Fatalf("HumanDesign() error = %v, want parse failure", err)
	}
}

func TestScriptCalculatorPassesThroughReportedErrors(t *testing.T) {
	calc := NewScriptCalculator("", "", WithRunner(func(context.Context, string, ...string) ([]byte, error) {
		return []byte(`{"error":"bad date","sunSign":"Unknown"}`), nil
	}))
	got, err := calc.Astro(context.Background(), entity.BirthData{Birthday: "1990-01-01"})
	if err != nil {
		t.Fatalf("Astro() error = %v", err)
	}
	if got.SunSign != "Unknown" || got.Error != "bad date" {
		t.Fatalf("Astro() = %+v", got)
	}
}

func TestScriptCalculatorSkipsLeadingDiagnostics(t *testing.T) {
	calc := NewScriptCalculator("", "", WithRunner(func(context.Context, string, ...string) ([]byte, error) {
		return []byte("ephemeris path not set, using defaults\n{\"sunSign\":\"Leo\"}\n"), nil
	}))
	got, err := calc.Astro(context.Background(), entity.BirthData{Birthday: "1990-08-01"})
	if err != nil {
		t.Fatalf("Astro() error = %v", err)
	}
	if got.SunSign != "Leo" {
		t.Fatalf("SunSign = %q, want Leo", got.SunSign)
	}
}

func TestScriptCalculatorKeepsNestedHumanDesign(t *testing.T) {
	calc := NewScriptCalculator("", "", WithRunner(func(context.Context, string, ...string) ([]byte, error) {
		return []byte(`{"sunSign":"Leo","humanDesign":{"type":"Generator","authority":"Sacral","gates":[34,5]}}`), nil
	}))
	got, err := calc.Astro(context.Background(), entity.BirthData{Birthday: "1990-08-01"})
	if err != nil {
		t.Fatalf("Astro() error = %v", err)
	}
	if got.HumanDesign == nil || got.HumanDesign.Type != "Generator" || len(got.HumanDesign.Gates) != 2 {
		t.Fatalf("HumanDesign = %+v, want nested design", got.HumanDesign)
	}
}
