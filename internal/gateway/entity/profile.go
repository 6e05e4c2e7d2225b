package entity

import (
	"time"

	"astroguide/internal/guide"
)

// Profile is a user's intake record with its derived facts. It is immutable
// once stored.
type Profile struct {
	ID        UserID      `json:"userId"`
	Name      string      `json:"name"`
	Birth     BirthData   `json:"birth"`
	JobTitle  string      `json:"jobTitle"`
	Astro     AstroData   `json:"astroData"`
	Design    HumanDesign `json:"hdData"`
	Resonance string      `json:"resonance"`
	Archetype string      `json:"archetype"`
	ChartURL  string      `json:"chartUrl,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
}

// AstroProfile projects the stored data onto the composer's input.
func (p Profile) AstroProfile() guide.AstroProfile {
	return guide.AstroProfile{
		SunSign:   guide.Sign(p.Astro.SunSign),
		MoonSign:  p.Astro.MoonSign,
		Ascendant: p.Astro.Ascendant,
	}
}

// DesignProfile projects the stored design onto the composer's input.
func (p Profile) DesignProfile() guide.DesignProfile {
	return guide.DesignProfile{
		Type:      guide.DesignType(p.Design.Type),
		Authority: guide.Authority(p.Design.Authority),
	}
}

// ChatMessage is one persisted chat turn.
type ChatMessage struct {
	ID        int64     `json:"id"`
	UserID    UserID    `json:"userId"`
	Message   string    `json:"message"`
	Topic     string    `json:"topic"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"createdAt"`
}
