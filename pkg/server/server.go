package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image/png"
	"net/http"
	"os"
	"path"
	"time"

	"github.com/joho/godotenv"

	"github.com/nickbhorton/beamburst2/pkg/log"
	"github.com/nickbhorton/beamburst2/pkg/renderer"
	"github.com/nickbhorton/beamburst2/pkg/scene"
)

const (
	defaultDimension = 512
	defaultDepth     = 10
	maxDimension     = 4096
	uploadTimeout    = 10 * time.Second
)

// Config holds service settings, loaded from the environment.
// S3 fields are optional; with no bucket configured rendered frames
// are streamed back to the client instead of uploaded.
type Config struct {
	Addr        string
	S3AccessKey string
	S3SecretKey string
	S3Endpoint  string
	S3Region    string
	S3Bucket    string
}

// ConfigFromEnv loads service configuration from a .env file (if
// present) and the process environment
func ConfigFromEnv() Config {
	_ = godotenv.Load()

	return Config{
		Addr:        getEnv("BEAMBURST_ADDR", ":8080"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3Region:    os.Getenv("S3_REGION"),
		S3Bucket:    os.Getenv("S3_BUCKET"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Server renders scenes over HTTP
type Server struct {
	cfg      Config
	uploader *uploader
	logger   log.Logger
}

// New creates a render server. An S3 uploader is attached only when a
// bucket is configured.
func New(cfg Config) (*Server, error) {
	s := &Server{
		cfg:    cfg,
		logger: log.New("server"),
	}
	if cfg.S3Bucket != "" {
		up, err := newUploader(cfg)
		if err != nil {
			return nil, err
		}
		s.uploader = up
	}
	return s, nil
}

// Handler returns the server's HTTP handler
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/render", s.handleRender)
	return mux
}

// ListenAndServe runs the render service until the listener fails
func (s *Server) ListenAndServe() error {
	s.logger.Noticef("listening on %s", s.cfg.Addr)
	return http.ListenAndServe(s.cfg.Addr, s.Handler())
}

// renderRequest is the body of POST /render. Scene uses the same JSON
// format as scene files on disk.
type renderRequest struct {
	Width  int             `json:"width"`
	Height int             `json:"height"`
	Depth  int             `json:"depth"`
	Scene  json.RawMessage `json:"scene"`
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Width <= 0 {
		req.Width = defaultDimension
	}
	if req.Height <= 0 {
		req.Height = defaultDimension
	}
	if req.Depth <= 0 {
		req.Depth = defaultDepth
	}
	if req.Width > maxDimension || req.Height > maxDimension {
		http.Error(w, fmt.Sprintf("Dimensions exceed %dpx limit", maxDimension), http.StatusBadRequest)
		return
	}

	sc, err := scene.Parse(bytes.NewReader(req.Scene))
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid scene: %v", err), http.StatusBadRequest)
		return
	}

	start := time.Now()
	cfg := renderer.Config{
		Width:    req.Width,
		Height:   req.Height,
		MaxDepth: req.Depth,
	}
	cam := renderer.NewOrthographicCamera(req.Width, req.Height)
	fb, stats := renderer.NewRenderer(sc, cam, cfg).Render()

	var buf bytes.Buffer
	if err := png.Encode(&buf, fb.Image()); err != nil {
		s.logger.Errorf("encoding render: %v", err)
		http.Error(w, "Encoding failed", http.StatusInternalServerError)
		return
	}
	s.logger.Infof("rendered %dx%d (%d surfaces, %d lights) in %v",
		stats.Width, stats.Height, stats.Surfaces, stats.Lights, time.Since(start))

	if s.uploader != nil {
		key := path.Join("renders", fmt.Sprintf("%d.png", time.Now().UnixNano()))
		if err := s.uploader.upload(r.Context(), buf.Bytes(), key); err != nil {
			s.logger.Errorf("upload failed: %v", err)
			http.Error(w, "Upload failed", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"key": key})
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}
