package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	pnet "sitequery/internal/platform/net"
)

func TestRequestID_IssuesWhenMissing(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = pnet.RequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if seen == "" {
		t.Fatalf("no request id on context")
	}
	if rec.Header().Get(HeaderRequestID) != seen {
		t.Fatalf("response header %q != context id %q", rec.Header().Get(HeaderRequestID), seen)
	}
}

func TestRequestID_PropagatesInbound(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = pnet.RequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "upstream-42")
	h.ServeHTTP(httptest.NewRecorder(), req)

	if seen != "upstream-42" {
		t.Fatalf("got %q", seen)
	}
}
