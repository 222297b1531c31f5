package handler

import (
	"testing"
	"time"
)

func TestExtractDomain(t *testing.T) {
	tests := []struct {
		name     string
		referer  string
		expected string
	}{
		{
			name:     "empty referer returns direct",
			referer:  "",
			expected: "direct",
		},
		{
			name:     "https url extracts host",
			referer:  "https://forum.example.org/t/strange-attractors",
			expected: "forum.example.org",
		},
		{
			name:     "url with port preserves port",
			referer:  "http://localhost:5173/editor",
			expected: "localhost:5173",
		},
		{
			name:     "invalid url returns unknown",
			referer:  "not-a-valid-url",
			expected: "unknown",
		},
		{
			name:     "url without host returns unknown",
			referer:  "/just/a/path",
			expected: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractDomain(tt.referer)
			if result != tt.expected {
				t.Errorf("extractDomain(%q) = %q, want %q", tt.referer, result, tt.expected)
			}
		})
	}
}

func TestRetryAfterSeconds(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		resetAt time.Time
		want    int
	}{
		{name: "whole seconds", resetAt: now.Add(90 * time.Second), want: 90},
		{name: "rounds up", resetAt: now.Add(90*time.Second + time.Millisecond), want: 91},
		{name: "already passed", resetAt: now.Add(-time.Second), want: 1},
		{name: "exactly now", resetAt: now, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := retryAfterSeconds(tt.resetAt, now); got != tt.want {
				t.Errorf("retryAfterSeconds() = %d, want %d", got, tt.want)
			}
		})
	}
}
