package entity

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestParseUserID(t *testing.T) {
	id, err := ParseUserID(" 42 ")
	if err != nil {
		t.Fatalf("ParseUserID() error = %v", err)
	}
	if id != 42 || id.String() != "42" {
		t.Fatalf("ParseUserID() = %v", id)
	}
	for _, raw := range []string{"", "abc", "0", "-3"} {
		if _, err := ParseUserID(raw); err == nil {
			t.Fatalf("ParseUserID(%q) expected error", raw)
		}
	}
}

func TestBirthMomentDefaultsTime(t *testing.T) {
	got, err := BirthData{Birthday: "1990-04-05"}.Moment()
	if err != nil {
		t.Fatalf("Moment() error = %v", err)
	}
	want := time.Date(1990, 4, 5, 12, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("Moment() = %v, want %v", got, want)
	}
	if _, err := (BirthData{Birthday: "05/04/1990"}).Moment(); err == nil {
		t.Fatalf("Moment() expected error for non-ISO date")
	}
}

func TestProfileProjections(t *testing.T) {
	p := Profile{
		Astro:  AstroData{SunSign: "Leo", MoonSign: "Virgo"},
		Design: HumanDesign{Type: "Projector", Authority: "Splenic"},
	}
	if got := p.AstroProfile(); got.SunSign != "Leo" || got.MoonSign != "Virgo" {
		t.Fatalf("AstroProfile() = %+v", got)
	}
	if got := p.DesignProfile(); got.Type != "Projector" || got.Authority != "Splenic" {
		t.Fatalf("DesignProfile() = %+v", got)
	}
}

func TestUserIDUnmarshalJSON(t *testing.T) {
	var body struct {
		UserID UserID `json:"userId"`
	}
	for raw, want := range map[string]UserID{
		`{"userId":7}`:    7,
		`{"userId":"12"}`: 12,
		`{"userId":""}`:   0,
		`{"userId":null}`: 0,
		`{}`:              0,
	} {
		body.UserID = 0
		if err := json.Unmarshal([]byte(raw), &body); err != nil {
			t.Fatalf("Unmarshal(%s) error = %v", raw, err)
		}
		if body.UserID != want {
			t.Fatalf("Unmarshal(%s) = %d, want %d", raw, body.UserID, want)
		}
	}
	if err := json.Unmarshal([]byte(`{"userId":"abc"}`), &body); err == nil {
		t.Fatalf("expected error for non-numeric id")
	}
}

func TestInvalidInputWrapsSentinel(t *testing.T) {
	err := InvalidInput("All fields are required")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("InvalidInput should match ErrInvalidInput")
	}
	if err.Error() != "All fields are required" {
		t.Fatalf("Error() = %q", err.Error())
	}
}
