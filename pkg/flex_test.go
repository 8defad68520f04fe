package pkg

import (
	"encoding/json"
	"testing"
)

func TestFlexInt_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want int64
	}{
		{name: "number", in: `1500`, want: 1500},
		{name: "numeric string", in: `"1500"`, want: 1500},
		{name: "float floors", in: `12.9`, want: 12},
		{name: "float string", in: `"7.5"`, want: 7},
		{name: "null", in: `null`, want: 0},
		{name: "empty string", in: `""`, want: 0},
		{name: "garbage", in: `"abc"`, want: 0},
		{name: "object", in: `{}`, want: 0},
		{name: "negative", in: `-3`, want: -3},
		{name: "huge number", in: `1e30`, want: 0},
		{name: "huge negative string", in: `"-1e30"`, want: 0},
		{name: "just past int64", in: `9223372036854775808`, want: 0},
		{name: "huge negative float floors", in: `-1e18`, want: -1000000000000000000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var v struct {
				N FlexInt `json:"n"`
			}
			if err := json.Unmarshal([]byte(`{"n":`+tc.in+`}`), &v); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v.N.Int64() != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, v.N)
			}
		})
	}
}

func TestFlexInt_OrDefault(t *testing.T) {
	if got := FlexInt(0).OrDefault(1); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
	if got := FlexInt(-2).OrDefault(1); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
	if got := FlexInt(4).OrDefault(1); got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
}

func TestFlexString_UnmarshalJSON(t *testing.T) {
	var v struct {
		A FlexString `json:"a"`
		B FlexString `json:"b"`
		C FlexString `json:"c"`
	}
	if err := json.Unmarshal([]byte(`{"a":12,"b":" x-1 ","c":null}`), &v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.A != "12" || v.B != "x-1" || v.C != "" {
		t.Fatalf("unexpected values: %+v", v)
	}
}

func TestFlexBool_UnmarshalJSON(t *testing.T) {
	var v struct {
		A FlexBool `json:"a"`
		B FlexBool `json:"b"`
		C FlexBool `json:"c"`
		D FlexBool `json:"d"`
	}
	if err := json.Unmarshal([]byte(`{"a":true,"b":"1","c":0,"d":"nope"}`), &v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.A.Bool() || !v.B.Bool() || v.C.Bool() || v.D.Bool() {
		t.Fatalf("unexpected values: %+v", v)
	}
}
