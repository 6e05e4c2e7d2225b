package geo

import "testing"

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()
	r, err := NewResolver(nil)
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}
	return r
}

func TestLookupExactAndPartial(t *testing.T) {
	r := newTestResolver(t)

	exact := r.Lookup("  New York ")
	if !exact.Found || exact.City != "new york" || exact.Country != "USA" || exact.Lat != 40.7128 || exact.Lng != -74.006 {
		t.Fatalf("exact lookup = %+v", exact)
	}
	if exact.Query != "  New York " {
		t.Fatalf("query not preserved: %q", exact.Query)
	}

	partial := r.Lookup("Brooklyn, New York, USA")
	if !partial.Found || partial.City != "new york" {
		t.Fatalf("partial lookup = %+v", partial)
	}

	reverse := r.Lookup("Tok")
	if !reverse.Found || reverse.City != "tokyo" {
		t.Fatalf("reverse partial lookup = %+v", reverse)
	}
}

func TestLookupFallback(t *testing.T) {
	r := newTestResolver(t)
	for _, place := range []string{"Atlantis", ""} {
		loc := r.Lookup(place)
		if loc.Found || loc.Lat != 0 || loc.Lng != 0 {
			t.Fatalf("Lookup(%q) = %+v, want fallback", place, loc)
		}
	}
}

func TestLookupIsMemoised(t *testing.T) {
	r, err := NewResolverFromCities(map[string]City{"Springfield": {Lat: 1, Lng: 2, Country: "USA"}}, nil)
	if err != nil {
		t.Fatalf("NewResolverFromCities() error = %v", err)
	}
	first := r.Lookup("springfield")
	if r.memo.Len() != 1 {
		t.Fatalf("memo len = %d, want 1", r.memo.Len())
	}
	second := r.Lookup("SPRINGFIELD")
	if first.Lat != second.Lat || !second.Found {
		t.Fatalf("memoised lookup mismatch: %+v vs %+v", first, second)
	}
}

func TestFormatCoordinates(t *testing.T) {
	tests := []struct {
		lat, lng float64
		want     string
	}{
		{40.7128, -74.006, "40.7128°N, 74.006°W"},
		{-33.8688, 151.2093, "33.8688°S, 151.2093°E"},
		{0, 0, "0°N, 0°E"},
	}
	for _, tc := range tests {
		if got := FormatCoordinates(tc.lat, tc.lng); got != tc.want {
			t.Fatalf("FormatCoordinates(%v, %v) = %q, want %q", tc.lat, tc.lng, got, tc.want)
		}
	}
}
