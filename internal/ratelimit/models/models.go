package models

import (
	"strings"
	"time"
)

// RateLimitResult is the outcome of one limiter check.
type RateLimitResult struct {
	Allowed    bool      `json:"allowed"`
	Limit      int       `json:"limit"`
	Remaining  int       `json:"remaining"`
	ResetAt    time.Time `json:"reset_at"`
	RetryAfter int       `json:"retry_after,omitempty"` // seconds, only set when not allowed
}

// RateLimitExceededResponse is the API response when a client is throttled.
type RateLimitExceededResponse struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	RetryAfter int    `json:"retry_after"` // seconds
}

// SanitizeKeySegment escapes the key delimiter so a client-controlled
// segment cannot address another bucket.
func SanitizeKeySegment(s string) string {
	return strings.ReplaceAll(s, ":", "_")
}

// IPKey builds the bucket key for a client IP.
func IPKey(ip string) string {
	return "rl:ip:" + SanitizeKeySegment(ip)
}

// RetryAfterSeconds rounds d up to whole seconds, never below one.
func RetryAfterSeconds(d time.Duration) int {
	secs := int((d + time.Second - 1) / time.Second)
	if secs < 1 {
		return 1
	}
	return secs
}
