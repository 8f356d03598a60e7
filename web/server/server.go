package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-raycaster/pkg/controls"
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/renderer"
	"github.com/df07/go-raycaster/pkg/sampler"
	"github.com/df07/go-raycaster/pkg/scene"
)

// maxKeys caps how many input events one request may replay
const maxKeys = 64

// Server handles web requests for the raycaster
type Server struct {
	port int
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// RenderRequest represents the query parameters shared by render and inspect
type RenderRequest struct {
	Scene   string         // Built-in scene name
	Sampler sampler.Kind   // Sampling strategy
	Samples uint8          // Requested samples per pixel
	Keys    []controls.Key // Input events replayed before rendering
}

// Handler returns the HTTP routes of the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	core.Logger().Info("starting web server", "addr", "http://localhost"+addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes and sampler kinds
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"scenes":   scene.Available(),
		"samplers": sampler.Kinds(),
	})
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	q := r.URL.Query()
	req := &RenderRequest{Scene: "default", Sampler: sampler.KindSimple}

	if name := q.Get("scene"); name != "" {
		req.Scene = name
	}
	if name := q.Get("sampler"); name != "" {
		kind, err := sampler.ParseKind(name)
		if err != nil {
			return nil, err
		}
		req.Sampler = kind
	}

	samples, err := parseIntParam(q, "samples", 16, 1, 255)
	if err != nil {
		return nil, err
	}
	req.Samples = uint8(samples)

	if req.Keys, err = controls.ParseKeys(q.Get("keys")); err != nil {
		return nil, err
	}
	if len(req.Keys) > maxKeys {
		return nil, fmt.Errorf("too many keys: %d, maximum is %d", len(req.Keys), maxKeys)
	}
	return req, nil
}

// prepareSession builds a fresh world and tracer for req and replays its keys
// without tracing
func (s *Server) prepareSession(req *RenderRequest) (*controls.Session, error) {
	world, err := scene.Create(req.Scene)
	if err != nil {
		return nil, err
	}
	smp, err := sampler.New(req.Sampler, req.Samples)
	if err != nil {
		return nil, err
	}

	session := controls.Prepare(world, renderer.NewTracer(smp))
	for _, k := range req.Keys {
		if _, err := session.Mutate(k); err != nil {
			return nil, err
		}
	}
	return session, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
