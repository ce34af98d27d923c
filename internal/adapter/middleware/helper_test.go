package middleware

import (
	"testing"
	"time"
)

func TestValidReqID(t *testing.T) {
	good := []string{
		"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		"0f8fad5b-d9cb-469f-a165-70867728950e",
		"  0F8FAD5B-D9CB-469F-A165-70867728950E  ", // trimmed + lowered
	}
	for _, id := range good {
		if !validReqID(id) {
			t.Fatalf("validReqID(%q) = false", id)
		}
	}
	bad := []string{"", "short", "zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz", "0f8fad5b-d9cb-469f"}
	for _, id := range bad {
		if validReqID(id) {
			t.Fatalf("validReqID(%q) = true", id)
		}
	}
}

func TestParseRequestAt(t *testing.T) {
	// epoch seconds
	got, err := parseRequestAt("1736123456")
	if err != nil {
		t.Fatalf("epoch s: %v", err)
	}
	if got.Unix() != 1736123456 {
		t.Fatalf("epoch s parsed to %v", got)
	}

	// epoch milliseconds
	got, err = parseRequestAt("1736123456789")
	if err != nil {
		t.Fatalf("epoch ms: %v", err)
	}
	if got.UnixMilli() != 1736123456789 {
		t.Fatalf("epoch ms parsed to %v", got)
	}

	// RFC3339 with zone
	got, err = parseRequestAt("2026-08-31T10:00:00+02:00")
	if err != nil {
		t.Fatalf("rfc3339: %v", err)
	}
	if got.Location() != time.UTC {
		t.Fatalf("expected UTC normalization, got %v", got.Location())
	}

	// rejected inputs
	for _, raw := range []string{"", "2026-08-31T10:00:00", "yesterday"} {
		if _, err := parseRequestAt(raw); err == nil {
			t.Fatalf("parseRequestAt(%q) accepted", raw)
		}
	}
}

func TestBuildKey(t *testing.T) {
	k := buildKey("POST", "/api/v1/wizard/:session_id/submit", "user-1", "req-1")
	want := "idemp:post:/api/v1/wizard/:session_id/submit:user-1:req-1"
	if k != want {
		t.Fatalf("buildKey = %q, want %q", k, want)
	}
}
