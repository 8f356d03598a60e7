package server

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/df07/go-raycaster/pkg/controls"
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/output"
)

// handleRender renders one frame and returns it as a PNG.
//
//	GET /api/render?scene=default&sampler=jitter&samples=16&keys=W,W,PLUS&scale=2
//
// keys is a comma separated list replayed before the single trace. A literal
// "+" in a query string decodes to a space, so use PLUS or %2B.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}
	scale, err := parseIntParam(r.URL.Query(), "scale", 1, 1, 8)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	session, err := s.prepareSession(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	width, height := session.Size()
	if int64(width)*int64(height)*int64(scale*scale) > controls.MaxPixels {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Frame too large: %dx%d at scale %d exceeds %d pixels", width, height, scale, controls.MaxPixels))
		return
	}
	if err := session.Render(); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	img, err := output.ToImage(session.Buffer(), width, height)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	data, err := output.EncodeBytes(output.Scale(img, scale), output.FormatPNG)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to encode image: "+err.Error())
		return
	}

	stats := session.Tracer.LastStats()
	w.Header().Set("Content-Type", output.FormatPNG.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("X-Render-Rays", strconv.Itoa(stats.TotalRays))
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)
	w.Write(data)

	core.Logger().Info("render served",
		"scene", req.Scene,
		"sampler", string(req.Sampler),
		"width", width,
		"height", height,
		"elapsed", time.Since(start),
	)
}
