package pkg

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// FlexInt decodes a JSON number, a numeric string or null into an integer.
// Anything that does not parse becomes 0. Fractions are floored.
//
// Menu and neighborhood payloads mix numbers and numeric strings, so every
// monetary or quantity field coming from outside goes through this type.
type FlexInt int64

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	*f = FlexInt(parseFlexInt(b))
	return nil
}

func (f FlexInt) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(f), 10)), nil
}

func (f FlexInt) Int64() int64 { return int64(f) }

// OrDefault returns def when the value is not strictly positive.
func (f FlexInt) OrDefault(def int64) int64 {
	if f <= 0 {
		return def
	}
	return int64(f)
}

func parseFlexInt(b []byte) int64 {
	s := strings.TrimSpace(string(bytes.Trim(bytes.TrimSpace(b), `"`)))
	if s == "" || s == "null" {
		return 0
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) {
		return 0
	}
	v = math.Floor(v)
	// -2^63 is exact in float64; MaxInt64 rounds up to 2^63 and is out of range.
	if v < math.MinInt64 || v >= math.MaxInt64 {
		return 0
	}
	return int64(v)
}

// FlexString decodes a JSON string or number into a string. Backend ids
// arrive as either. null becomes "".
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			*f = ""
			return nil
		}
		*f = FlexString(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		*f = ""
		return nil
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string { return string(f) }

// FlexBool decodes true/false, 0/1 and their string forms.
type FlexBool bool

func (f *FlexBool) UnmarshalJSON(b []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(bytes.Trim(bytes.TrimSpace(b), `"`))))
	switch s {
	case "true", "1", "yes", "on", "t":
		*f = true
	default:
		*f = false
	}
	return nil
}

func (f FlexBool) Bool() bool { return bool(f) }
