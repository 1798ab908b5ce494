package observability_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"skyfeedback/internal/adapters/observability"
)

func TestMetricsRegistryAndHandler(t *testing.T) {
	reg := observability.InitRegistry()

	// record one sample so counters are non-zero
	observability.ObserveReview("Emirates", 5)

	mh := observability.MetricsHandler(reg)
	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	mh.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	out := string(body)
	if !strings.Contains(out, "skyfeedback_reviews_generated_total") {
		t.Fatalf("expected skyfeedback_reviews_generated_total in output")
	}
	if !strings.Contains(out, `skyfeedback_review_ratings_total{airline="Emirates",rating="5"}`) {
		t.Fatalf("expected rating counter sample in output:\n%s", out)
	}
}
