package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type stubPinger struct {
	err error
}

func (p *stubPinger) Ping(context.Context, *readpref.ReadPref) error {
	return p.err
}

func TestHealthHandler_Liveness(t *testing.T) {
	h := NewHealthHandler()
	c, rec := newContext(t, http.MethodGet, "/health", "")

	if err := h.Liveness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadinessHandler_Ready(t *testing.T) {
	h := NewReadinessHandler(&stubPinger{})
	c, rec := newContext(t, http.MethodGet, "/health/ready", "")

	if err := h.Readiness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
}

func TestReadinessHandler_Degraded(t *testing.T) {
	h := NewReadinessHandler(&stubPinger{err: errors.New("no reachable servers")})
	c, rec := newContext(t, http.MethodGet, "/health/ready", "")

	if err := h.Readiness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"degraded"`) {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"mongodb"`) {
		t.Fatalf("expected dependency breakdown, got %q", rec.Body.String())
	}
}
