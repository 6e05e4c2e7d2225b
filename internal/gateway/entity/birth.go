package entity

import (
	"fmt"
	"strings"
	"time"
)

const (
	BirthdayLayout   = "2006-01-02"
	BirthtimeLayout  = "15:04"
	DefaultBirthtime = "12:00"
)

// BirthData is the intake form after geocoding.
type BirthData struct {
	Birthday   string  `json:"birthday"`
	Birthtime  string  `json:"birthtime"`
	Birthplace string  `json:"birthplace"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
}

// Moment parses birthday and birthtime as a UTC instant.
func (b BirthData) Moment() (time.Time, error) {
	bt := strings.TrimSpace(b.Birthtime)
	if bt == "" {
		bt = DefaultBirthtime
	}
	t, err := time.Parse(BirthdayLayout+" "+BirthtimeLayout, strings.TrimSpace(b.Birthday)+" "+bt)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse birth moment: %w", err)
	}
	return t.UTC(), nil
}
