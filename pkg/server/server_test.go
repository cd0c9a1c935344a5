package server

import (
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const renderBody = `{
	"width": 16,
	"height": 16,
	"depth": 4,
	"scene": {
		"materials": {
			"matte": {"color": [1, 0.8, 0.6], "ambient": 0.3, "diffuse": 0.7, "reflect": 0.2}
		},
		"lights": [
			{"position": [0, 0, -100], "color": [1, 1, 1]}
		],
		"spheres": [
			{"center": [0, 0, 0], "radius": 8, "material": "matte"}
		]
	}
}`

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	srv, err := New(Config{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return srv.Handler()
}

func TestServer_Render(t *testing.T) {
	handler := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/render", strings.NewReader(renderBody))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("Expected image/png, got %q", ct)
	}

	cfg, err := png.DecodeConfig(rec.Body)
	if err != nil {
		t.Fatalf("Decoding response PNG: %v", err)
	}
	if cfg.Width != 16 || cfg.Height != 16 {
		t.Errorf("Expected 16x16 frame, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestServer_Render_Errors(t *testing.T) {
	handler := newTestServer(t)

	tests := []struct {
		name     string
		method   string
		body     string
		expected int
	}{
		{
			name:     "method not allowed",
			method:   http.MethodGet,
			body:     "",
			expected: http.StatusMethodNotAllowed,
		},
		{
			name:     "invalid json",
			method:   http.MethodPost,
			body:     `{"width": `,
			expected: http.StatusBadRequest,
		},
		{
			name:     "invalid scene",
			method:   http.MethodPost,
			body:     `{"scene": {"spheres": [{"center": [0,0,0], "radius": -1, "material": "m"}]}}`,
			expected: http.StatusBadRequest,
		},
		{
			name:     "oversized frame",
			method:   http.MethodPost,
			body:     `{"width": 100000, "height": 16, "scene": {}}`,
			expected: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/render", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.expected {
				t.Errorf("Expected %d, got %d: %s", tt.expected, rec.Code, rec.Body.String())
			}
		})
	}
}
