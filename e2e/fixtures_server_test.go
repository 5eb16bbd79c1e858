//go:build e2e && unix

package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// usersJSON is a small random-user shaped batch
const usersJSON = `{
  "results": [
    {"name": {"first": "John", "last": "Smith"}, "login": {"username": "jsmith"},
     "email": "john.smith@example.com", "dob": {"date": "1985-04-12T10:20:30.000Z"}, "nat": "US",
     "picture": {"thumbnail": "https://example.com/1.jpg"}},
    {"name": {"first": "Maria", "last": "Garcia"}, "login": {"username": "mgarcia"},
     "email": "maria.garcia@example.com", "dob": {"date": "1992-09-30T08:00:00.000Z"}, "nat": "ES",
     "picture": {"thumbnail": "https://example.com/2.jpg"}},
    {"name": {"first": "Emma", "last": "Weber"}, "login": {"username": "eweber"},
     "email": "emma.weber@example.com", "dob": {"date": "1978-01-05T12:00:00.000Z"}, "nat": "DE",
     "picture": {"thumbnail": "https://example.com/3.jpg"}},
    {"name": {"first": "Liam", "last": "Johnson"}, "login": {"username": "ljohnson"},
     "email": "liam.johnson@example.com", "dob": {"date": "2001-07-19T06:30:00.000Z"}, "nat": "US",
     "picture": {"thumbnail": "https://example.com/4.jpg"}},
    {"name": {"first": "Ana", "last": "Silva"}, "login": {"username": "asilva"},
     "email": "ana.silva@example.com", "dob": {"date": "1990-12-01T18:45:00.000Z"}, "nat": "BR",
     "picture": {"thumbnail": "https://example.com/5.jpg"}}
  ]
}`

// NewUsersServer serves the fixture batch
func NewUsersServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(usersJSON))
	}))
	t.Cleanup(server.Close)
	return server
}

// NewSlowServer delays the batch so the loading state is observable
func NewSlowServer(t *testing.T, delay time.Duration) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(usersJSON))
	}))
	t.Cleanup(server.Close)
	return server
}

// NewFailingServer answers every request with status
func NewFailingServer(t *testing.T, status int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", status)
	}))
	t.Cleanup(server.Close)
	return server
}
