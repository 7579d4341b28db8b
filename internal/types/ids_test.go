package types

import (
	"testing"
	"time"
)

func TestNewFormatID(t *testing.T) {
	id := NewFormatID()
	if id == "" {
		t.Fatal("NewFormatID() returned empty ID")
	}

	parsed, err := ParseFormatID(string(id))
	if err != nil {
		t.Fatalf("ParseFormatID(%q) error = %v", id, err)
	}
	if parsed != id {
		t.Errorf("ParseFormatID round-trip = %v, want %v", parsed, id)
	}
}

func TestParseFormatID_Invalid(t *testing.T) {
	if _, err := ParseFormatID("not-a-uuid"); err == nil {
		t.Error("ParseFormatID(invalid) error = nil, want error")
	}
}

func TestFormatIDTime(t *testing.T) {
	id := NewFormatID()
	ts := FormatIDTime(id)
	if ts.IsZero() {
		t.Fatal("FormatIDTime() = zero time for fresh UUIDv7")
	}
	if d := time.Since(ts); d < 0 || d > time.Minute {
		t.Errorf("FormatIDTime() = %v, not close to now", ts)
	}

	if !FormatIDTime("garbage").IsZero() {
		t.Error("FormatIDTime(invalid) should be zero time")
	}
}
