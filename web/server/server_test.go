package server

import (
	"encoding/json"
	"fmt"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/df07/go-ao-raytracer/pkg/scene"
)

func doGet(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandleHealth(t *testing.T) {
	rec := doGet(t, NewServer(0), "/api/health")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var health HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &health); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if health.Status != "ok" || health.Workers < 1 {
		t.Errorf("Unexpected health response %+v", health)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("Expected CORS header")
	}
}

func TestHandleScenes(t *testing.T) {
	rec := doGet(t, NewServer(0), "/api/scenes")

	var scenes []scene.SceneInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &scenes); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if len(scenes) != len(scene.Names()) {
		t.Errorf("Expected %d scenes, got %d", len(scene.Names()), len(scenes))
	}
}

func TestHandleSceneConfig(t *testing.T) {
	s := NewServer(0)

	rec := doGet(t, s, "/api/scene-config?scene=mirrors")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var response struct {
		Defaults map[string]float64        `json:"defaults"`
		Limits   map[string]map[string]int `json:"limits"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if response.Defaults["maxDepth"] != 8 {
		t.Errorf("Expected the mirror scene depth in defaults, got %v", response.Defaults)
	}
	// Every published minimum must be accepted by the render endpoint
	for _, key := range []string{"aoSamples", "maxDepth"} {
		if response.Limits[key]["min"] < 1 {
			t.Errorf("Expected %s minimum of at least 1, got %d", key, response.Limits[key]["min"])
		}
	}
	minimal := fmt.Sprintf("/api/render?scene=sphere&width=16&height=16&samples=%d&maxDepth=%d",
		response.Limits["aoSamples"]["min"], response.Limits["maxDepth"]["min"])
	if rec := doGet(t, s, minimal); rec.Code != http.StatusOK {
		t.Errorf("Expected 200 at the published minimums, got %d: %s", rec.Code, rec.Body.String())
	} else {
		// One primary ray per pixel plus at most one AO ray per diffuse hit
		rays, err := strconv.Atoi(rec.Header().Get("X-Render-Rays"))
		if err != nil || rays > 2*16*16 {
			t.Errorf("Expected at most %d rays with a single AO sample, got %q", 2*16*16, rec.Header().Get("X-Render-Rays"))
		}
	}

	if rec := doGet(t, s, "/api/scene-config?scene=nope"); rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unknown scene, got %d", rec.Code)
	}
}

func TestHandleRender(t *testing.T) {
	rec := doGet(t, NewServer(0), "/api/render?scene=sphere&width=32&height=24&samples=4&seed=1")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %q", ct)
	}
	if rec.Header().Get("X-Render-Rays") == "" {
		t.Error("Expected ray count header")
	}

	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("Response is not a PNG: %v", err)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 24 {
		t.Errorf("Expected 32x24 image, got %v", img.Bounds())
	}
}

func TestHandleRender_InvalidRequests(t *testing.T) {
	s := NewServer(0)
	tests := []struct {
		name   string
		target string
	}{
		{"unknown scene", "/api/render?scene=nope&width=16&height=16"},
		{"width too small", "/api/render?width=5"},
		{"height not a number", "/api/render?height=tall"},
		{"too many samples", "/api/render?samples=100000"},
		{"zero samples", "/api/render?scene=sphere&width=16&height=16&samples=0"},
		{"zero depth", "/api/render?scene=sphere&width=16&height=16&maxDepth=0"},
		{"bad seed", "/api/render?seed=x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doGet(t, s, tt.target)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), "error") {
				t.Errorf("Expected JSON error body, got %s", rec.Body.String())
			}
		})
	}
}

func TestHandleRenderStream(t *testing.T) {
	rec := doGet(t, NewServer(0), "/api/render/stream?scene=sphere&width=16&height=16&samples=2&seed=5")

	body := rec.Body.String()
	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("Expected text/event-stream, got %q", ct)
	}
	if !strings.Contains(body, "event: console") {
		t.Errorf("Expected console events, got %s", body)
	}
	if !strings.Contains(body, "event: complete") || !strings.Contains(body, `"imageData"`) {
		t.Errorf("Expected a complete event with image data, got %s", body)
	}
}

func TestHandleRenderStream_Error(t *testing.T) {
	rec := doGet(t, NewServer(0), "/api/render/stream?scene=nope")

	if !strings.Contains(rec.Body.String(), "event: error") {
		t.Errorf("Expected an error event, got %s", rec.Body.String())
	}
}

func TestHandleInspect(t *testing.T) {
	s := NewServer(0)

	rec := doGet(t, s, "/api/inspect?scene=sphere&width=32&height=24&x=16&y=12")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var response InspectResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if !response.Hit || response.GeometryType != "sphere" {
		t.Errorf("Expected the centre pixel to hit the sphere, got %+v", response)
	}
	// Sphere at z=500 with radius 100, seen slightly off-axis
	if response.Distance < 400 || response.Distance > 403 {
		t.Errorf("Expected distance just over 400, got %f", response.Distance)
	}

	rec = doGet(t, s, "/api/inspect?scene=sphere&width=32&height=24&x=0&y=0")
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if response.Hit {
		t.Error("Expected the corner pixel to miss")
	}

	if rec := doGet(t, s, "/api/inspect?scene=sphere&width=32&height=24&x=40&y=0"); rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for out of bounds pixel, got %d", rec.Code)
	}
}
