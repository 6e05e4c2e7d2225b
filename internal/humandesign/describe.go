// Package humandesign holds the reference descriptions for human-design
// types, authorities, profiles, definitions, centers and gates.
package humandesign

import (
	"fmt"
	"sort"

	"astroguide/internal/gateway/entity"
)

// Centers lists the nine centers in body-graph order.
var Centers = []string{"Head", "Ajna", "Throat", "G", "Heart", "Solar Plexus", "Sacral", "Spleen", "Root"}

// Profiles lists the twelve profile lines.
var Profiles = []string{"1/3", "1/4", "2/4", "2/5", "3/5", "3/6", "4/6", "4/1", "5/1", "5/2", "6/2", "6/3"}

// Definitions lists the four definition kinds.
var Definitions = []string{"Single", "Split", "Triple Split", "Quad Split"}

type GateReading struct {
	Gate        int    `json:"gate"`
	Description string `json:"description"`
}

type CenterReading struct {
	Center      string `json:"center"`
	Description string `json:"description"`
}

// Reading is the described form of a design.
type Reading struct {
	Type       string          `json:"type"`
	Authority  string          `json:"authority"`
	Profile    string          `json:"profile"`
	Definition string          `json:"definition"`
	Centers    []CenterReading `json:"centers"`
	Gates      []GateReading   `json:"gates"`
}

// Describe annotates a design. Unknown keys describe as the empty string and
// gates without an entry as "Gate N".
func Describe(d entity.HumanDesign) Reading {
	r := Reading{
		Type:       typeDescriptions[d.Type],
		Authority:  authorityDescriptions[d.Authority],
		Profile:    profileDescriptions[d.Profile],
		Definition: definitionDescriptions[d.Definition],
		Centers:    make([]CenterReading, 0, len(d.Centers)),
		Gates:      make([]GateReading, 0, len(d.Gates)),
	}
	for _, c := range d.Centers {
		r.Centers = append(r.Centers, CenterReading{Center: c, Description: centerDescriptions[c]})
	}
	gates := append([]int(nil), d.Gates...)
	sort.Ints(gates)
	for _, g := range gates {
		r.Gates = append(r.Gates, GateReading{Gate: g, Description: GateDescription(g)})
	}
	return r
}

// GateDescription returns the description of one of the 64 gates.
func GateDescription(gate int) string {
	if d, ok := gateDescriptions[gate]; ok {
		return d
	}
	return fmt.Sprintf("Gate %d", gate)
}

func TypeDescription(t string) string      { return typeDescriptions[t] }
func AuthorityDescription(a string) string { return authorityDescriptions[a] }
