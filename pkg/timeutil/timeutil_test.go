package timeutil

import (
	"testing"
	"time"
)

func TestParseWindowDefault(t *testing.T) {
	dur, label, err := ParseWindow("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 30 * 24 * time.Hour
	if dur != want {
		t.Fatalf("expected %v, got %v", want, dur)
	}
	if label != "30d" {
		t.Fatalf("expected label 30d, got %s", label)
	}
}

func TestParseWindowUnits(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"7d", 7 * 24 * time.Hour},
		{"2w", 14 * 24 * time.Hour},
		{"1y", 365 * 24 * time.Hour},
		{"1w2d", 9 * 24 * time.Hour},
	}
	for _, c := range cases {
		dur, _, err := ParseWindow(c.in)
		if err != nil {
			t.Fatalf("ParseWindow(%q): %v", c.in, err)
		}
		if dur != c.want {
			t.Fatalf("ParseWindow(%q) = %v, want %v", c.in, dur, c.want)
		}
	}
}

func TestParseWindowRejectsGarbage(t *testing.T) {
	for _, in := range []string{"x", "7", "-1d", "0d"} {
		if _, _, err := ParseWindow(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestWindowRangeInclusive(t *testing.T) {
	now := time.Date(2024, 1, 10, 15, 0, 0, 0, time.UTC)
	from, to, label, err := WindowRange("7d", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if to != "2024-01-10" || from != "2024-01-04" {
		t.Fatalf("a 7d window must cover exactly 7 days: %s..%s", from, to)
	}
	if label != "7d" {
		t.Fatalf("unexpected label %s", label)
	}
	if got := len(EachDay(from, to)); got != 7 {
		t.Fatalf("expected 7 days, got %d", got)
	}
}

func TestEachDay(t *testing.T) {
	days := EachDay("2024-02-27", "2024-03-02")
	want := []string{"2024-02-27", "2024-02-28", "2024-02-29", "2024-03-01", "2024-03-02"}
	if len(days) != len(want) {
		t.Fatalf("expected %v, got %v", want, days)
	}
	for i := range want {
		if days[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, days)
		}
	}
	if EachDay("2024-01-02", "2024-01-01") != nil {
		t.Fatalf("inverted range should be empty")
	}
}

func TestWeekStart(t *testing.T) {
	// 2024-01-10 is a Wednesday
	d, _ := ParseDate("2024-01-10")
	if got := FormatDate(WeekStart(d)); got != "2024-01-07" {
		t.Fatalf("expected the prior Sunday, got %s", got)
	}
	// a Sunday is its own week start
	sun, _ := ParseDate("2024-01-07")
	if got := FormatDate(WeekStart(sun)); got != "2024-01-07" {
		t.Fatalf("expected the same day, got %s", got)
	}
}

func TestEachWeek(t *testing.T) {
	weeks := EachWeek("2024-01-08", "2024-01-21")
	want := []string{"2024-01-07", "2024-01-14", "2024-01-21"}
	if len(weeks) != len(want) {
		t.Fatalf("expected %v, got %v", want, weeks)
	}
	for i := range want {
		if weeks[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, weeks)
		}
	}
}

func TestValidDate(t *testing.T) {
	if !ValidDate("2024-02-29") {
		t.Fatalf("leap day is valid")
	}
	for _, in := range []string{"2023-02-29", "2024-13-01", "01-02-2024", "yesterday"} {
		if ValidDate(in) {
			t.Fatalf("%q should be invalid", in)
		}
	}
}
