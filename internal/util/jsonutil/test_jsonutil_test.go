package jsonutil

import "testing"

type payload struct {
	SunSign string `json:"sunSign"`
	Gates   []int  `json:"gates"`
}

func TestUnmarshalFlex(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", `{"sunSign":"Leo","gates":[1]}`, "Leo"},
		{"surrounding space", "\n  {\"sunSign\":\"Virgo\"}\n", "Virgo"},
		{"string encoded", `"{\"sunSign\":\"Aries\"}"`, "Aries"},
		{"diagnostics first", "warning: ephemeris not found\nusing fallback\n{\"sunSign\":\"Pisces\"}", "Pisces"},
		{"pretty printed after log", "loading...\n{\n  \"sunSign\": \"Libra\",\n  \"gates\": [\n    3\n  ]\n}", "Libra"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got payload
			if err := UnmarshalFlex([]byte(tt.raw), &got); err != nil {
				t.Fatalf("UnmarshalFlex: %v", err)
			}
			if got.SunSign != tt.want {
				t.Fatalf("sunSign = %q, want %q", got.SunSign, tt.want)
			}
		})
	}
}

func TestUnmarshalFlexErrors(t *testing.T) {
	var got payload
	if err := UnmarshalFlex([]byte("   "), &got); err == nil {
		t.Fatalf("expected error for empty payload")
	}
	if err := UnmarshalFlex([]byte("Traceback (most recent call last):\n  boom"), &got); err == nil {
		t.Fatalf("expected error for non-JSON output")
	}
}

func TestMarshalNoEscape(t *testing.T) {
	raw, err := MarshalNoEscape(map[string]string{"archetype": "The Builder <& co>"})
	if err != nil {
		t.Fatalf("MarshalNoEscape: %v", err)
	}
	if got, want := string(raw), `{"archetype":"The Builder <& co>"}`; got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}
