// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"encoding/json"
	"math"
)

const (
	keyUserID            = "user_id"
	keyCurrentBusinessID = "current_business_id"
	keyBusinessIDs       = "business_ids"
)

// Payload is the raw session document as found in the store.
// Nothing about its shape is trusted until IsLoggedIn accepts it.
type Payload map[string]any

// Session is the validated view of a logged-in Payload
type Session struct {
	UserID            int64   `json:"user_id"`
	CurrentBusinessID int64   `json:"current_business_id"`
	BusinessIDs       []int64 `json:"business_ids"`
}

// HasBusiness reports whether id is one of the businesses the session was opened with
func (s *Session) HasBusiness(id int64) bool {
	for _, b := range s.BusinessIDs {
		if b == id {
			return true
		}
	}
	return false
}

// Payload converts the session back to its stored form
func (s *Session) Payload() Payload {
	ids := make([]any, len(s.BusinessIDs))
	for i, id := range s.BusinessIDs {
		ids[i] = id
	}

	return Payload{
		keyUserID:            s.UserID,
		keyCurrentBusinessID: s.CurrentBusinessID,
		keyBusinessIDs:       ids,
	}
}

// IsLoggedIn reports whether p carries a positive user_id, a positive current_business_id
// and a non-empty list of positive business_ids
func IsLoggedIn(p Payload) bool {
	_, ok := Parse(p)
	return ok
}

// Parse validates p and returns the typed session, false when p is not logged in
func Parse(p Payload) (*Session, bool) {
	if p == nil {
		return nil, false
	}

	userID, ok := positiveID(p[keyUserID])
	if !ok {
		return nil, false
	}

	businessID, ok := positiveID(p[keyCurrentBusinessID])
	if !ok {
		return nil, false
	}

	raw, ok := p[keyBusinessIDs].([]any)
	if !ok || len(raw) == 0 {
		return nil, false
	}

	ids := make([]int64, 0, len(raw))
	for _, v := range raw {
		id, ok := positiveID(v)
		if !ok {
			return nil, false
		}
		ids = append(ids, id)
	}

	return &Session{UserID: userID, CurrentBusinessID: businessID, BusinessIDs: ids}, true
}

// positiveID accepts numbers only, strings that look numeric are rejected
func positiveID(v any) (int64, bool) {
	var id int64

	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		id = i
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) || n >= math.MaxInt64 {
			return 0, false
		}
		id = int64(n)
	case int64:
		id = n
	case int:
		id = int64(n)
	case int32:
		id = int64(n)
	default:
		return 0, false
	}

	return id, id > 0
}
