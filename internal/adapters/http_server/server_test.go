package httpserver_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpserver "skyfeedback/internal/adapters/http_server"
	"skyfeedback/internal/adapters/observability"
)

func TestOpsEndpoints(t *testing.T) {
	srv := httpserver.New()
	srv.MountOps(observability.InitRegistry())
	ts := httptest.NewServer(srv.Mux())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("healthz: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || string(body) != "ok" {
		t.Fatalf("healthz: status=%d body=%q", resp.StatusCode, body)
	}

	resp, err = http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("metrics status: %d", resp.StatusCode)
	}
	if !strings.Contains(string(body), "skyfeedback_http_requests_total") {
		t.Fatalf("expected http request counter in exposition")
	}
}
