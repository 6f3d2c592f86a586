package middleware

import (
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func newMetricsApp(t *testing.T) (*fiber.App, *PrometheusMiddleware, *prometheus.Registry) {
	t.Helper()
	// fresh registry per test, registering twice on one registry fails
	reg := prometheus.NewRegistry()
	m, err := NewPrometheusMiddleware(reg)
	if err != nil {
		t.Fatalf("failed to create middleware: %v", err)
	}

	app := fiber.New()
	app.Use(m.Handler())
	app.Get("/api/v1/warehouses/:warehouse_id", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Post("/api/v1/warehouses/:warehouse_id/cameras/:cam_id/chunks/:chunk_id/chat", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/api/v1/cameras/stream-url", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusBadRequest, "missing params")
	})
	app.Get("/metrics", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app, m, reg
}

func TestPrometheusMiddleware(t *testing.T) {
	app, m, _ := newMetricsApp(t)

	requests := []struct {
		method, target string
	}{
		{"GET", "/api/v1/warehouses/WH1"},
		{"GET", "/api/v1/warehouses/WH2"},
		{"POST", "/api/v1/warehouses/WH1/cameras/CAM1/chunks/CH1/chat"},
		{"GET", "/api/v1/cameras/stream-url"},
	}
	for _, r := range requests {
		app.Test(httptest.NewRequest(r.method, r.target, nil))
	}

	cases := []struct {
		method, path, status string
		want                 float64
	}{
		{"GET", "/api/v1/warehouses/:warehouse_id", "200", 2},
		{"POST", "/api/v1/warehouses/:warehouse_id/cameras/:cam_id/chunks/:chunk_id/chat", "200", 1},
		{"GET", "/api/v1/cameras/stream-url", "400", 1},
	}
	for _, tc := range cases {
		got := testutil.ToFloat64(m.requestCount.WithLabelValues(tc.method, tc.path, tc.status))
		if got != tc.want {
			t.Errorf("%s %s %s: expected count %v, got %v", tc.method, tc.path, tc.status, tc.want, got)
		}
	}

	// one histogram series per method and route pattern
	if n := testutil.CollectAndCount(m.requestDuration); n != 3 {
		t.Errorf("expected 3 duration series, got %d", n)
	}
}

func TestPrometheusMiddleware_LabelsSurviveLaterRequests(t *testing.T) {
	app, _, reg := newMetricsApp(t)

	// fasthttp reuses request buffers, a shorter follow-up request must not
	// rewrite the labels of the series created before it
	app.Test(httptest.NewRequest("POST", "/api/v1/warehouses/WH1/cameras/CAM1/chunks/CH1/chat", nil))
	for i := 0; i < 3; i++ {
		app.Test(httptest.NewRequest("GET", "/api/v1/warehouses/WH1", nil))
	}

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	var got []string
	for _, mf := range mfs {
		if mf.GetName() != "http_requests_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			labels := make([]string, 0, len(metric.GetLabel()))
			for _, lp := range metric.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			got = append(got, strings.Join(labels, ","))
		}
	}
	sort.Strings(got)

	want := []string{
		"method=GET,path=/api/v1/warehouses/:warehouse_id,status=200",
		"method=POST,path=/api/v1/warehouses/:warehouse_id/cameras/:cam_id/chunks/:chunk_id/chat,status=200",
	}
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("unexpected series:\n got %q\nwant %q", got, want)
	}
}

func TestPrometheusMiddleware_ExcludeMetrics(t *testing.T) {
	app, _, reg := newMetricsApp(t)

	app.Test(httptest.NewRequest("GET", "/metrics", nil))

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}
	for _, mf := range mfs {
		if len(mf.GetMetric()) > 0 {
			t.Errorf("expected no samples for %s, got %d", mf.GetName(), len(mf.GetMetric()))
		}
	}
}

func TestPrometheusMiddleware_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewPrometheusMiddleware(reg); err != nil {
		t.Fatalf("failed to create middleware: %v", err)
	}
	if _, err := NewPrometheusMiddleware(reg); err == nil {
		t.Fatal("expected an error when registering the metrics twice")
	}
}
