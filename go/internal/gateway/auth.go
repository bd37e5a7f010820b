package gateway

import (
	"errors"
	"net/http"
	"strings"
)

// ErrUnauthorized is returned when a credential is absent or wrong
var ErrUnauthorized = errors.New("unauthorized")

// bearerToken extracts a bearer token from the Authorization header
func bearerToken(r *http.Request) string {
	auth := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(auth) >= 7 && strings.EqualFold(auth[:7], "Bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}

// coachKeyFrom reads the coach credential: bearer token or x-coach-key
func coachKeyFrom(r *http.Request) string {
	if key := bearerToken(r); key != "" {
		return key
	}
	return strings.TrimSpace(r.Header.Get("x-coach-key"))
}

// adminKeyFrom reads the admin credential: bearer token or x-admin-key
func adminKeyFrom(r *http.Request) string {
	if key := bearerToken(r); key != "" {
		return key
	}
	return strings.TrimSpace(r.Header.Get("x-admin-key"))
}

// teamSlugFrom reads the team selector header
func teamSlugFrom(r *http.Request) string {
	return strings.ToLower(strings.TrimSpace(r.Header.Get("x-team-slug")))
}
