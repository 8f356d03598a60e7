package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/scene"
)

// InspectResponse describes what the center ray of one pixel hits
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	Index        int                    `json:"index"`                  // Position in the scene's object list
	GeometryType string                 `json:"geometryType,omitempty"` // "sphere" or "plane"
	Distance     float32                `json:"distance,omitempty"`     // Ray parameter t
	Point        [3]float32             `json:"point"`
	Color        [3]float32             `json:"color"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

// inspectPixel casts the center ray of pixel (i, j) and reports the nearest hit
func inspectPixel(w *scene.World, i, j int) InspectResponse {
	vp := w.ViewPlane
	x := vp.PixelSize * (float32(i) - 0.5*float32(vp.HRes-1))
	y := vp.PixelSize * (float32(j) - 0.5*float32(vp.VRes-1))
	ray := core.NewRay(core.NewVec3(x, y, vp.Z), core.NewVec3(0, 0, -1))

	rec, ok := geometry.NearestHit(ray, w.Objects)
	if !ok {
		return InspectResponse{Hit: false, Index: -1, Color: w.Background}
	}

	obj := w.Objects[rec.Index]
	geometryType, props := extractGeometryInfo(obj)
	return InspectResponse{
		Hit:          true,
		Index:        rec.Index,
		GeometryType: geometryType,
		Distance:     rec.T,
		Point:        ray.At(rec.T),
		Color:        obj.Color(),
		Properties:   props,
	}
}

// extractGeometryInfo describes a primitive for the inspector
func extractGeometryInfo(p core.Primitive) (string, map[string]interface{}) {
	switch shape := p.(type) {
	case *geometry.Sphere:
		return "sphere", map[string]interface{}{
			"center": shape.Center,
			"radius": shape.Radius,
		}
	case *geometry.Plane:
		return "plane", map[string]interface{}{
			"point":  shape.Point,
			"normal": shape.Normal,
		}
	default:
		return fmt.Sprintf("%T", p), nil
	}
}

// handleInspect reports what one pixel's center ray hits. Keys are replayed
// but the frame is never traced.
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	session, err := s.prepareSession(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	width, height := session.Size()
	if pixelX < 0 || pixelX >= width || pixelY < 0 || pixelY >= height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	writeJSON(w, http.StatusOK, inspectPixel(session.World, pixelX, pixelY))
}
