package playground

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lehtoroni/shorthand/internal/config"
)

func newTestServer(t *testing.T, markup string) *Server {
	t.Helper()
	path := filepath.Join(t.TempDir(), "index.html")
	if err := os.WriteFile(path, []byte(markup), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.File = path
	cfg.Watch = false

	s, err := New(cfg, WithRegisterer(prometheus.NewRegistry()))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s
}

func TestServePage(t *testing.T) {
	s := newTestServer(t, `<html><body><h1>hello</h1></body></html>`)
	ts := httptest.NewServer(s.Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %v", resp.StatusCode)
	}
	body := readAll(t, resp)
	if !strings.Contains(body, "<h1>hello</h1>") {
		t.Errorf("body = %q, missing served markup", body)
	}
}

func TestQueryEndpoint(t *testing.T) {
	s := newTestServer(t, `<html><body><p class="a" id="one">1</p><p class="a">2</p></body></html>`)
	ts := httptest.NewServer(s.Router())
	defer ts.Close()

	t.Run("matches", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/query?selector=p.a")
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()

		var qr queryResponse
		if err := json.NewDecoder(resp.Body).Decode(&qr); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if qr.Count != 2 {
			t.Errorf("Count = %v, want 2", qr.Count)
		}
		if qr.Matches[0].ID != "one" || qr.Matches[0].Text != "1" {
			t.Errorf("first match = %+v", qr.Matches[0])
		}
	})

	t.Run("missing selector", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/query")
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %v, want 400", resp.StatusCode)
		}
	})

	t.Run("invalid selector", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/query?selector=%5B")
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %v, want 400", resp.StatusCode)
		}
	})
}

func TestMetricsEndpoint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")
	os.WriteFile(path, []byte("<html><body></body></html>"), 0o644)

	cfg := config.Default()
	cfg.File = path
	cfg.Watch = false

	reg := prometheus.NewRegistry()
	s, err := New(cfg, WithRegisterer(reg))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	ts := httptest.NewServer(s.Router())
	defer ts.Close()

	// One successful query so the counter has a sample.
	http.Get(ts.URL + "/api/query?selector=body")

	families, err := reg.Gather()
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, mf := range families {
		if mf.GetName() == "shorthand_playground_queries_total" {
			found = true
		}
	}
	if !found {
		t.Error("queries_total metric not registered")
	}
}

func TestDocumentReloadOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")
	os.WriteFile(path, []byte("<html><body><p>old</p></body></html>"), 0o644)

	cfg := config.Default()
	cfg.File = path
	cfg.Watch = false

	s, err := New(cfg, WithRegisterer(prometheus.NewRegistry()))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	os.WriteFile(path, []byte("<html><body><p>new</p></body></html>"), 0o644)
	if err := s.loadDocument(); err != nil {
		t.Fatalf("loadDocument() error = %v", err)
	}

	col, err := s.dispatcher().Query("p")
	if err != nil {
		t.Fatal(err)
	}
	if got := col.Text(); got != "new" {
		t.Errorf("Text() = %q, want new", got)
	}
}

func readAll(t *testing.T, resp *http.Response) string {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}
