package models

import (
	"encoding/json"
	"strconv"
)

// Amount is a monetary value that tolerates sloppy input. It decodes
// from a JSON number or a numeric string; anything else coerces to 0
// instead of failing the whole document.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*a = 0
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*a = Amount(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			*a = Amount(v)
			return nil
		}
	}

	*a = 0
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(a))
}

// Float64 converts Amount back to float64.
func (a Amount) Float64() float64 {
	return float64(a)
}
