package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"net/http"
	"strconv"
	"time"

	"github.com/df07/go-ao-raytracer/pkg/loaders"
	"github.com/df07/go-ao-raytracer/pkg/renderer"
	"github.com/df07/go-ao-raytracer/pkg/scene"
	"github.com/labstack/echo/v4"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene     string `json:"scene"`     // Scene name (e.g., "default")
	Width     int    `json:"width"`     // Image width
	Height    int    `json:"height"`    // Image height
	AOSamples int    `json:"aoSamples"` // Ambient occlusion rays per hit (0 = scene default)
	MaxDepth  int    `json:"maxDepth"`  // Reflection depth (0 = scene default)
	Seed      int64  `json:"seed"`      // 0 = random
}

// Stats represents render statistics
type Stats struct {
	TotalPixels      int     `json:"totalPixels"`
	PrimaryRays      int     `json:"primaryRays"`
	ReflectionRays   int     `json:"reflectionRays"`
	AORays           int     `json:"aoRays"`
	SkyHits          int     `json:"skyHits"`
	MaxDepthReached  int     `json:"maxDepthReached"`
	AverageLuminance float64 `json:"averageLuminance"`
	ElapsedMs        int64   `json:"elapsedMs"`
}

// RenderResult is the final SSE event of a streamed render
type RenderResult struct {
	ImageData string `json:"imageData"` // Base64 encoded PNG
	Stats     Stats  `json:"stats"`
}

// renderOutput carries the result of a background render
type renderOutput struct {
	img   *image.RGBA
	stats renderer.RenderStats
	err   error
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(c echo.Context) (*RenderRequest, error) {
	values := c.Request().URL.Query()
	req := &RenderRequest{Scene: values.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(values, "width", 400, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(values, "height", 300, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	if req.AOSamples, err = parseIntParam(values, "samples", 16, minAOSamples, maxAOSamples); err != nil {
		return nil, err
	}
	// Zero means "scene default" to MergeConfig, so an explicit value starts at 1
	if req.MaxDepth, err = parseIntParam(values, "maxDepth", 0, minDepth, maxDepth); err != nil {
		return nil, err
	}
	if req.Seed, err = parseInt64Param(values, "seed", 0); err != nil {
		return nil, err
	}

	return req, nil
}

// setupRender creates the scene and its render configuration for a request
func (s *Server) setupRender(req *RenderRequest) (*scene.Scene, renderer.Config, error) {
	sceneObj, err := scene.Create(req.Scene, scene.Options{Seed: req.Seed})
	if err != nil {
		return nil, renderer.Config{}, err
	}

	config := renderer.MergeConfig(sceneObj.Config, renderer.Config{
		Width:     req.Width,
		Height:    req.Height,
		AOSamples: req.AOSamples,
		MaxDepth:  req.MaxDepth,
		Seed:      req.Seed,
	})
	return sceneObj, config, nil
}

func newRenderID() string {
	return fmt.Sprintf("render-%d", time.Now().UnixNano())
}

func toStats(stats renderer.RenderStats, img *image.RGBA, elapsed time.Duration) Stats {
	return Stats{
		TotalPixels:      stats.TotalPixels,
		PrimaryRays:      stats.PrimaryRays,
		ReflectionRays:   stats.ReflectionRays,
		AORays:           stats.AORays,
		SkyHits:          stats.SkyHits,
		MaxDepthReached:  stats.MaxDepthReached,
		AverageLuminance: renderer.CalculateAverageLuminance(img),
		ElapsedMs:        elapsed.Milliseconds(),
	}
}

// handleRender renders a full image and returns it as PNG
func (s *Server) handleRender(c echo.Context) error {
	req, err := s.parseRenderRequest(c)
	if err != nil {
		return jsonError(c, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
	}

	sceneObj, config, err := s.setupRender(req)
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err.Error())
	}

	startTime := time.Now()
	r := renderer.NewRenderer(sceneObj, config, NewWebLogger(newRenderID(), nil))
	img, stats, err := r.Render(c.Request().Context())
	if err != nil {
		// Client went away
		return jsonError(c, http.StatusServiceUnavailable, err.Error())
	}

	header := c.Response().Header()
	header.Set(echo.HeaderContentType, "image/png")
	header.Set("X-Render-Time-Ms", strconv.FormatInt(time.Since(startTime).Milliseconds(), 10))
	header.Set("X-Render-Rays", strconv.Itoa(stats.TotalRays()))
	c.Response().WriteHeader(http.StatusOK)

	return loaders.EncodePNG(c.Response(), img)
}

// handleRenderStream renders in the background and streams console output
// via SSE, finishing with the encoded image and statistics
func (s *Server) handleRenderStream(c echo.Context) error {
	w := c.Response()
	s.setSSEHeaders(w)

	req, err := s.parseRenderRequest(c)
	if err != nil {
		return s.sendSSEError(w, fmt.Sprintf("Invalid request: %v", err))
	}

	sceneObj, config, err := s.setupRender(req)
	if err != nil {
		return s.sendSSEError(w, err.Error())
	}

	ctx := c.Request().Context()
	consoleChan := make(chan ConsoleMessage, 100)
	logger := NewWebLogger(newRenderID(), consoleChan)
	done := make(chan renderOutput, 1)

	startTime := time.Now()
	go func() {
		img, stats, err := renderer.NewRenderer(sceneObj, config, logger).Render(ctx)
		done <- renderOutput{img: img, stats: stats, err: err}
	}()

	for {
		select {
		case msg := <-consoleChan:
			if err := s.sendConsoleMessage(w, msg); err != nil {
				return err
			}
		case out := <-done:
			s.drainConsole(w, consoleChan)
			if out.err != nil {
				return s.sendSSEError(w, fmt.Sprintf("Render error: %v", out.err))
			}
			return s.sendResult(w, out, time.Since(startTime))
		case <-ctx.Done():
			// Client disconnected; the render goroutine stops on the same context
			return nil
		}
	}
}

func (s *Server) sendResult(w http.ResponseWriter, out renderOutput, elapsed time.Duration) error {
	imageData, err := imageToBase64PNG(out.img)
	if err != nil {
		return s.sendSSEError(w, fmt.Sprintf("Failed to encode image: %v", err))
	}

	data, err := json.Marshal(RenderResult{ImageData: imageData, Stats: toStats(out.stats, out.img, elapsed)})
	if err != nil {
		return err
	}
	return s.sendSSEEvent(w, "complete", string(data))
}

func (s *Server) drainConsole(w http.ResponseWriter, consoleChan chan ConsoleMessage) {
	for {
		select {
		case msg := <-consoleChan:
			s.sendConsoleMessage(w, msg)
		default:
			return
		}
	}
}

func (s *Server) sendConsoleMessage(w http.ResponseWriter, msg ConsoleMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return s.sendSSEEvent(w, "console", string(data))
}

func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
}

// sendSSEError sends an error via SSE
func (s *Server) sendSSEError(w http.ResponseWriter, message string) error {
	return s.sendSSEEvent(w, "error", message)
}

// sendSSEEvent sends a generic SSE event
func (s *Server) sendSSEEvent(w http.ResponseWriter, event, data string) error {
	if flusher, ok := w.(http.Flusher); ok {
		fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
		flusher.Flush()
		return nil
	}
	return fmt.Errorf("streaming not supported")
}

// imageToBase64PNG converts an image to base64-encoded PNG
func imageToBase64PNG(img *image.RGBA) (string, error) {
	var buf bytes.Buffer
	if err := loaders.EncodePNG(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
