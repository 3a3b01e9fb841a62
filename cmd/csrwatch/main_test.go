package main

import (
	"errors"
	"fmt"
	"testing"

	"csrwatch/internal/calendar"
	"csrwatch/internal/catalog"
)

func TestExitCodeMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"clean run", nil, 0},
		{"missing data", errMissingData, 1},
		{"invalid date", fmt.Errorf("%w: month 13", calendar.ErrInvalidDate), 2},
		{"unreadable registry", fmt.Errorf("scan: %w", catalog.ErrRegistryUnreadable), 3},
		{"config failure", errors.New("parse config: unexpected token"), 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := exitCode(tc.err); got != tc.want {
				t.Fatalf("exitCode(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}

func TestRootCommandWiring(t *testing.T) {
	root := newRootCommand()

	want := []string{"check", "feeds", "history", "test-notify", "config"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("subcommand %q not registered", name)
		}
	}

	if root.PersistentFlags().Lookup("config") == nil {
		t.Fatal("persistent --config flag missing")
	}
	if root.PersistentFlags().Lookup("verbose") == nil {
		t.Fatal("persistent --verbose flag missing")
	}
}
