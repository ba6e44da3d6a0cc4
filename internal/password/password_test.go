// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package password

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHasher(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("correct horse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		hash     string
		password string
		wantErr  error
	}{
		{name: "match", hash: hash, password: "correct horse"},
		{name: "wrong password", hash: hash, password: "battery staple", wantErr: ErrMismatch},
		{name: "no hash", hash: "", password: "correct horse", wantErr: ErrMismatch},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if err := h.Verify(test.hash, test.password); !errors.Is(err, test.wantErr) {
				t.Errorf("expected %v, got %v", test.wantErr, err)
			}
		})
	}
}

func TestHasherRejectsEmpty(t *testing.T) {
	if _, err := NewHasher(bcrypt.MinCost).Hash(""); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
}

func TestNewHasherDefaultsCost(t *testing.T) {
	if h := NewHasher(0); h.cost != bcrypt.DefaultCost {
		t.Errorf("expected default cost, got %d", h.cost)
	}
}
