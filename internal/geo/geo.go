// Package geo resolves free-text birthplaces to coordinates using an embedded
// city table.
package geo

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

//go:embed cities.json
var citiesJSON []byte

type City struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Country string  `json:"country"`
}

// Location is the outcome of a lookup. Found is false when the place matched
// nothing and the coordinates are the (0, 0) fallback.
type Location struct {
	Query   string  `json:"query"`
	City    string  `json:"city,omitempty"`
	Country string  `json:"country,omitempty"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Found   bool    `json:"found"`
}

type Resolver struct {
	cities map[string]City
	names  []string
	memo   *lru.Cache[string, Location]
	logger *zap.Logger
}

// NewResolver loads the embedded city table.
func NewResolver(logger *zap.Logger) (*Resolver, error) {
	var cities map[string]City
	if err := json.Unmarshal(citiesJSON, &cities); err != nil {
		return nil, fmt.Errorf("load cities: %w", err)
	}
	return NewResolverFromCities(cities, logger)
}

// NewResolverFromCities builds a resolver over a caller-provided table. Keys
// are lower-cased.
func NewResolverFromCities(cities map[string]City, logger *zap.Logger) (*Resolver, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	memo, err := lru.New[string, Location](512)
	if err != nil {
		return nil, err
	}
	normalized := make(map[string]City, len(cities))
	names := make([]string, 0, len(cities))
	for name, c := range cities {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		normalized[key] = c
		names = append(names, key)
	}
	sort.Strings(names)
	return &Resolver{
		cities: normalized,
		names:  names,
		memo:   memo,
		logger: logger.With(zap.String("component", "geo")),
	}, nil
}

// Lookup tries an exact match on the normalised place, then a partial match in
// either direction, and finally falls back to (0, 0).
func (r *Resolver) Lookup(place string) Location {
	key := strings.ToLower(strings.TrimSpace(place))
	if loc, ok := r.memo.Get(key); ok {
		return loc
	}
	loc := r.resolve(key)
	loc.Query = place
	if !loc.Found {
		r.logger.Warn("location not found, using default coordinates", zap.String("place", place))
	}
	r.memo.Add(key, loc)
	return loc
}

func (r *Resolver) resolve(key string) Location {
	if key == "" {
		return Location{}
	}
	if c, ok := r.cities[key]; ok {
		return located(key, c)
	}
	for _, name := range r.names {
		if strings.Contains(key, name) || strings.Contains(name, key) {
			return located(name, r.cities[name])
		}
	}
	return Location{}
}

func located(name string, c City) Location {
	return Location{City: name, Country: c.Country, Lat: c.Lat, Lng: c.Lng, Found: true}
}

// FormatCoordinates renders coordinates as "40.7128°N, 74.006°W".
func FormatCoordinates(lat, lng float64) string {
	latDir, lngDir := "N", "E"
	if lat < 0 {
		latDir = "S"
	}
	if lng < 0 {
		lngDir = "W"
	}
	return formatDegrees(math.Abs(lat)) + "°" + latDir + ", " + formatDegrees(math.Abs(lng)) + "°" + lngDir
}

func formatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
