package models

import (
	"encoding/json"
	"testing"
)

func TestAmountUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Amount
	}{
		{"number", `1200.5`, 1200.5},
		{"numeric string", `"450"`, 450},
		{"garbage string", `"a lot"`, 0},
		{"null", `null`, 0},
		{"object", `{"oops":1}`, 0},
	}

	for _, tc := range cases {
		var a Amount
		if err := json.Unmarshal([]byte(tc.in), &a); err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
			continue
		}
		if a != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, a, tc.want)
		}
	}
}

func TestAmountMarshal(t *testing.T) {
	raw, err := json.Marshal(Amount(6000))
	if err != nil {
		t.Fatalf("marshal returned error: %v", err)
	}
	if string(raw) != "6000" {
		t.Errorf("expected 6000, got %s", raw)
	}
}
