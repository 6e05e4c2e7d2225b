package humandesign

import (
	"testing"

	"astroguide/internal/gateway/entity"
)

func TestDescribe(t *testing.T) {
	r := Describe(entity.HumanDesign{
		Type:       "Projector",
		Authority:  "Splenic",
		Profile:    "2/4",
		Definition: "Split",
		Gates:      []int{64, 1, 99},
		Centers:    []string{"Ajna", "Nowhere"},
	})
	if r.Type != "The Guide - Natural wisdom for directing and guiding others" {
		t.Fatalf("Type = %q", r.Type)
	}
	if r.Authority != "Immediate body awareness - trust in-the-moment intuition" {
		t.Fatalf("Authority = %q", r.Authority)
	}
	if r.Profile != "Hermit/Opportunist - Natural sharing through networks" {
		t.Fatalf("Profile = %q", r.Profile)
	}
	if r.Definition != "Two separate areas of definition - potential for bridging" {
		t.Fatalf("Definition = %q", r.Definition)
	}
	if len(r.Gates) != 3 || r.Gates[0].Gate != 1 || r.Gates[2].Gate != 99 {
		t.Fatalf("Gates not sorted: %+v", r.Gates)
	}
	if r.Gates[2].Description != "Gate 99" {
		t.Fatalf("unknown gate description = %q", r.Gates[2].Description)
	}
	if r.Centers[1].Description != "" {
		t.Fatalf("unknown center description = %q", r.Centers[1].Description)
	}
}

func TestTablesAreComplete(t *testing.T) {
	for g := 1; g <= 64; g++ {
		if _, ok := gateDescriptions[g]; !ok {
			t.Fatalf("gate %d missing", g)
		}
	}
	for _, c := range Centers {
		if centerDescriptions[c] == "" {
			t.Fatalf("center %q missing", c)
		}
	}
	for _, p := range Profiles {
		if profileDescriptions[p] == "" {
			t.Fatalf("profile %q missing", p)
		}
	}
	for _, d := range Definitions {
		if definitionDescriptions[d] == "" {
			t.Fatalf("definition %q missing", d)
		}
	}
}
