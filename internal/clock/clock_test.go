package clock

import (
	"testing"
	"time"
)

func TestFixedFormats(t *testing.T) {
	f := Fixed{T: time.Date(2025, time.June, 10, 14, 5, 0, 0, time.UTC)}
	if got := f.Today(); got != "2025-06-10" {
		t.Fatalf("Today() = %q", got)
	}
	if got := f.TimeOfDay(); got != "14:05" {
		t.Fatalf("TimeOfDay() = %q", got)
	}
}

func TestFixedZeroPadding(t *testing.T) {
	f := Fixed{T: time.Date(2025, time.January, 2, 9, 7, 0, 0, time.UTC)}
	if got := f.Today(); got != "2025-01-02" {
		t.Fatalf("Today() = %q, want zero-padded date", got)
	}
	if got := f.TimeOfDay(); got != "09:07" {
		t.Fatalf("TimeOfDay() = %q, want zero-padded time", got)
	}
}

func TestNewWallRejectsUnknownZone(t *testing.T) {
	if _, err := NewWall("Mars/Olympus_Mons"); err == nil {
		t.Fatal("expected error for unknown timezone")
	}
}

func TestNewWallLocation(t *testing.T) {
	w, err := NewWall("UTC")
	if err != nil {
		t.Fatalf("NewWall(UTC): %v", err)
	}
	if loc := w.Now().Location(); loc != time.UTC {
		t.Fatalf("Now() location = %v, want UTC", loc)
	}
}
