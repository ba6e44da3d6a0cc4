// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"encoding/json"
	"math"
	"testing"
)

func TestIsLoggedIn(t *testing.T) {
	valid := func() Payload {
		return Payload{
			"user_id":             json.Number("1"),
			"current_business_id": json.Number("2"),
			"business_ids":        []any{json.Number("2"), json.Number("3")},
		}
	}

	tests := []struct {
		name    string
		mutate  func(Payload)
		payload Payload
		want    bool
	}{
		{name: "valid", mutate: func(p Payload) {}, want: true},
		{name: "valid with float64 and int values", mutate: func(p Payload) {
			p["user_id"] = float64(1)
			p["current_business_id"] = 2
			p["business_ids"] = []any{int64(2)}
		}, want: true},
		{name: "undefined user_id", mutate: func(p Payload) { delete(p, "user_id") }, want: false},
		{name: "non numeric user_id", mutate: func(p Payload) { p["user_id"] = "abc" }, want: false},
		{name: "numeric string user_id", mutate: func(p Payload) { p["user_id"] = "1" }, want: false},
		{name: "NaN user_id", mutate: func(p Payload) { p["user_id"] = math.NaN() }, want: false},
		{name: "negative user_id", mutate: func(p Payload) { p["user_id"] = json.Number("-1") }, want: false},
		{name: "zero user_id", mutate: func(p Payload) { p["user_id"] = float64(0) }, want: false},
		{name: "fractional user_id", mutate: func(p Payload) { p["user_id"] = json.Number("1.5") }, want: false},
		{name: "user_id of 2^63 overflows int64", mutate: func(p Payload) { p["user_id"] = float64(math.MaxInt64) }, want: false},
		{name: "large in range user_id", mutate: func(p Payload) { p["user_id"] = float64(1 << 62) }, want: true},
		{name: "undefined business_ids", mutate: func(p Payload) { delete(p, "business_ids") }, want: false},
		{name: "empty business_ids", mutate: func(p Payload) { p["business_ids"] = []any{} }, want: false},
		{name: "non numeric business_ids", mutate: func(p Payload) { p["business_ids"] = []any{json.Number("2"), "x"} }, want: false},
		{name: "business_ids not a list", mutate: func(p Payload) { p["business_ids"] = json.Number("2") }, want: false},
		{name: "undefined current_business_id", mutate: func(p Payload) { delete(p, "current_business_id") }, want: false},
		{name: "non numeric current_business_id", mutate: func(p Payload) { p["current_business_id"] = true }, want: false},
		{name: "infinite current_business_id", mutate: func(p Payload) { p["current_business_id"] = math.Inf(1) }, want: false},
		{name: "nil payload", payload: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.payload
			if tt.mutate != nil {
				p = valid()
				tt.mutate(p)
			}

			if got := IsLoggedIn(p); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	s := &Session{UserID: 4, CurrentBusinessID: 9, BusinessIDs: []int64{9, 12}}

	parsed, ok := Parse(s.Payload())
	if !ok {
		t.Fatal("expected payload to be logged in")
	}

	if parsed.UserID != 4 || parsed.CurrentBusinessID != 9 || len(parsed.BusinessIDs) != 2 {
		t.Errorf("unexpected session %+v", parsed)
	}

	if !parsed.HasBusiness(12) || parsed.HasBusiness(13) {
		t.Error("unexpected HasBusiness result")
	}
}
