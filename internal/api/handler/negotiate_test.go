package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func TestWantsHTML(t *testing.T) {
	cases := []struct {
		name        string
		accept      string
		contentType string
		want        bool
	}{
		{"browser accept", "text/html,application/xhtml+xml", "", true},
		{"form post", "", "application/x-www-form-urlencoded", true},
		{"form post with charset", "", "application/x-www-form-urlencoded; charset=UTF-8", true},
		{"json client", "application/json", "application/json", false},
		{"no headers", "", "", false},
	}

	e := echo.New()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.accept != "" {
				req.Header.Set(echo.HeaderAccept, tc.accept)
			}
			if tc.contentType != "" {
				req.Header.Set(echo.HeaderContentType, tc.contentType)
			}
			c := e.NewContext(req, httptest.NewRecorder())

			if got := WantsHTML(c); got != tc.want {
				t.Fatalf("WantsHTML = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	if _, err := parseDate("check_in", "2026-09-01"); err != nil {
		t.Fatalf("form date rejected: %v", err)
	}

	got, err := parseDate("check_in", "2026-09-01T14:30:00Z")
	if err != nil {
		t.Fatalf("RFC 3339 date rejected: %v", err)
	}
	want := time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("parsed %v, want %v", got, want)
	}

	if _, err := parseDate("check_in", "01/09/2026"); err == nil {
		t.Fatalf("expected error for unsupported layout")
	}
}
