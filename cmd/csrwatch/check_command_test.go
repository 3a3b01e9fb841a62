package main

import (
	"errors"
	"testing"
	"time"

	"csrwatch/internal/calendar"
)

func TestResolveDayWindows_ExplicitDay(t *testing.T) {
	windows, label, err := resolveDayWindows(2024, "06", 5, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if len(windows) != 1 {
		t.Fatalf("expected one window, got %d", len(windows))
	}
	if windows[0].DateStamp() != "20240605" {
		t.Fatalf("unexpected window %s", windows[0])
	}
	if label != "2024-06-05" {
		t.Fatalf("unexpected label %q", label)
	}
}

func TestResolveDayWindows_ExplicitMonth(t *testing.T) {
	windows, label, err := resolveDayWindows(2024, "02", 0, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if len(windows) != 29 {
		t.Fatalf("expected 29 days for 2024-02, got %d", len(windows))
	}
	if label != "2024-02" {
		t.Fatalf("unexpected label %q", label)
	}
}

func TestResolveDayWindows_Premon(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	windows, label, err := resolveDayWindows(0, "premon", 0, now)
	if err != nil {
		t.Fatal(err)
	}
	if len(windows) != 29 {
		t.Fatalf("expected February 2024, got %d days", len(windows))
	}
	if label != "2024-02" {
		t.Fatalf("unexpected label %q", label)
	}
}

func TestResolveDayWindows_CurmonStopsAtYesterday(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	windows, label, err := resolveDayWindows(0, "CURMON", 0, now)
	if err != nil {
		t.Fatal(err)
	}
	if len(windows) != 9 {
		t.Fatalf("expected days 1-9, got %d windows", len(windows))
	}
	if windows[len(windows)-1].DateStamp() != "20240609" {
		t.Fatalf("last window should be yesterday, got %s", windows[len(windows)-1])
	}
	if label != "2024-06" {
		t.Fatalf("unexpected label %q", label)
	}
}

func TestResolveDayWindows_CurmonOnTheFirst(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 30, 0, 0, time.UTC)
	windows, label, err := resolveDayWindows(0, "CURMON", 0, now)
	if err != nil {
		t.Fatal(err)
	}
	if len(windows) != 31 {
		t.Fatalf("expected all of May 2024, got %d windows", len(windows))
	}
	if label != "2024-05" {
		t.Fatalf("unexpected label %q", label)
	}
}

func TestResolveDayWindows_Invalid(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name  string
		year  int
		month string
		day   int
	}{
		{"bad month word", 2024, "JUNE", 0},
		{"month out of range", 2024, "13", 0},
		{"missing year", 0, "06", 5},
		{"impossible day", 2017, "02", 31},
		{"day with PREMON", 0, "PREMON", 5},
		{"empty month", 2024, "", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := resolveDayWindows(tc.year, tc.month, tc.day, now)
			if !errors.Is(err, calendar.ErrInvalidDate) {
				t.Fatalf("expected ErrInvalidDate, got %v", err)
			}
		})
	}
}
