// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"testing"
)

func TestMigrateArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{name: "default", args: nil},
		{name: "up", args: []string{"up"}},
		{name: "status", args: []string{"status"}},
		{name: "down to version", args: []string{"down", "3"}},
		{name: "unknown command", args: []string{"sideways"}, wantErr: true},
		{name: "version after up", args: []string{"up", "3"}, wantErr: true},
		{name: "negative version", args: []string{"down", "-1"}, wantErr: true},
		{name: "too many", args: []string{"down", "1", "2"}, wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := migrateArgs(migrateCmd, test.args)
			if (err != nil) != test.wantErr {
				t.Errorf("expected error %v, got %v", test.wantErr, err)
			}
		})
	}
}

func TestMigrateRequiresDSN(t *testing.T) {
	if err := migrate(context.Background(), "", "up", -1, "text", nil); err == nil {
		t.Error("expected an error without a DSN")
	}
}
