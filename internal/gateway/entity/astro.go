package entity

// Placement is a body or cusp position within a sign.
type Placement struct {
	Sign      string  `json:"sign"`
	Degrees   float64 `json:"degrees"`
	Longitude float64 `json:"longitude,omitempty"`
	House     int     `json:"house,omitempty"`
}

type Aspect struct {
	Bodies []string `json:"bodies"`
	Aspect string   `json:"aspect"`
}

type MoonPhase struct {
	Percentage float64 `json:"percentage"`
	Phase      string  `json:"phase"`
	NextFull   string  `json:"nextFull,omitempty"`
	NextNew    string  `json:"nextNew,omitempty"`
}

// AstroData is the calculator's astrological payload. Only SunSign is
// guaranteed; the rest depends on the calculator in use.
type AstroData struct {
	SunSign     string               `json:"sunSign"`
	MoonSign    string               `json:"moonSign,omitempty"`
	Ascendant   string               `json:"ascendant,omitempty"`
	Midheaven   string               `json:"midheaven,omitempty"`
	Planets     map[string]Placement `json:"planets,omitempty"`
	Aspects     []Aspect             `json:"aspects,omitempty"`
	Houses      map[string]Placement `json:"houses,omitempty"`
	MoonPhase   *MoonPhase           `json:"moonPhase,omitempty"`
	HumanDesign *HumanDesign         `json:"humanDesign,omitempty"`
	Error       string               `json:"error,omitempty"`
}

// HumanDesign is the calculator's human-design payload.
type HumanDesign struct {
	Type       string   `json:"type"`
	Authority  string   `json:"authority"`
	Profile    string   `json:"profile,omitempty"`
	Definition string   `json:"definition,omitempty"`
	Gates      []int    `json:"gates,omitempty"`
	Centers    []string `json:"centers,omitempty"`
	Channels   []string `json:"channels,omitempty"`
	Error      string   `json:"error,omitempty"`
}
