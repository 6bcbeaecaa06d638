package monitoring

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func fixedMonitor() *Monitor {
	m := NewMonitor()
	m.now = func() time.Time { return time.Date(2025, 6, 23, 9, 0, 0, 0, time.UTC) }
	return m
}

func TestMonitorStatus(t *testing.T) {
	m := fixedMonitor()

	if !m.IsHealthy() {
		t.Error("Monitor with no runs should be healthy")
	}
	if got := m.GetStatusSummary(); got != "No runs yet" {
		t.Errorf("Expected 'No runs yet', got '%s'", got)
	}

	m.RecordSuccess("350 records", time.Second)
	if !m.IsHealthy() {
		t.Error("Monitor should be healthy after a successful run")
	}
	if got := m.GetStatusSummary(); !strings.Contains(got, "Jun 23 09:00") || !strings.Contains(got, "350 records") {
		t.Errorf("Unexpected status summary '%s'", got)
	}

	m.RecordCriticalFailure(errors.New("disk full"), time.Second)
	if m.IsHealthy() {
		t.Error("Monitor should be unhealthy after a critical failure")
	}
	if got := m.GetStatusSummary(); !strings.Contains(got, "failed") || !strings.Contains(got, "disk full") {
		t.Errorf("Unexpected status summary '%s'", got)
	}

	if m.Runs() != 2 {
		t.Errorf("Expected 2 runs, got %d", m.Runs())
	}
}

func TestHealthHandlers(t *testing.T) {
	m := fixedMonitor()
	h := NewHealthServer(m, "")

	if h.server.Addr != ":8080" {
		t.Errorf("Expected default port 8080, got %s", h.server.Addr)
	}

	rec := httptest.NewRecorder()
	h.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200 before any run, got %d", rec.Code)
	}

	m.RecordCriticalFailure(errors.New("write failed"), time.Millisecond)

	rec = httptest.NewRecorder()
	h.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected 503 after failure, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200 from /status, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "write failed") {
		t.Errorf("Expected failure in status body, got '%s'", rec.Body.String())
	}
}
