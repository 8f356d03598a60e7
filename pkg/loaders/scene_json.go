package loaders

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/scene"
)

// ErrInvalidScene is wrapped by every validation failure
var ErrInvalidScene = errors.New("invalid scene")

// ViewPlaneCfg is the JSON form of scene.ViewPlane
type ViewPlaneCfg struct {
	HRes      uint32  `json:"hres"`
	VRes      uint32  `json:"vres"`
	PixelSize float32 `json:"pixelSize"`
	Z         float32 `json:"z"`
}

// Vector is an [x, y, z] JSON array. Any other length is rejected.
type Vector core.Vec3

// UnmarshalJSON decodes exactly three numbers
func (v *Vector) UnmarshalJSON(data []byte) error {
	var elems []float32
	if err := json.Unmarshal(data, &elems); err != nil {
		return err
	}
	if len(elems) != 3 {
		return fmt.Errorf("%w: vector %s must have 3 elements, got %d", ErrInvalidScene, data, len(elems))
	}
	*v = Vector{elems[0], elems[1], elems[2]}
	return nil
}

// SphereCfg describes a sphere
type SphereCfg struct {
	Center Vector  `json:"center"`
	Radius float32 `json:"radius"`
	Color  Vector  `json:"color"`
}

// PlaneCfg describes an infinite plane
type PlaneCfg struct {
	Point  Vector `json:"point"`
	Normal Vector `json:"normal"`
	Color  Vector `json:"color"`
}

// SceneCfg is the top level of a JSON scene file
type SceneCfg struct {
	ViewPlane  ViewPlaneCfg `json:"viewPlane"`
	Background Vector       `json:"background"`
	Spheres    []SphereCfg  `json:"spheres,omitempty"`
	Planes     []PlaneCfg   `json:"planes,omitempty"`
}

// ParseScene reads a JSON scene description. Spheres are added before
// planes, each in file order, which fixes the tie-break order.
func ParseScene(reader io.Reader) (*scene.World, error) {
	var cfg SceneCfg
	dec := json.NewDecoder(reader)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding scene: %w", err)
	}
	return cfg.Build()
}

// LoadScene reads a JSON scene description from disk
func LoadScene(filename string) (*scene.World, error) {
	if err := validateFilePath(filename); err != nil {
		return nil, err
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	w, err := ParseScene(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return w, nil
}

// Build validates the description and constructs the world
func (c SceneCfg) Build() (*scene.World, error) {
	vp := c.ViewPlane
	if vp.HRes == 0 || vp.VRes == 0 {
		return nil, fmt.Errorf("%w: resolution %dx%d must be positive", ErrInvalidScene, vp.HRes, vp.VRes)
	}
	if vp.PixelSize <= 0 {
		return nil, fmt.Errorf("%w: pixel size %g must be positive", ErrInvalidScene, vp.PixelSize)
	}

	w := scene.NewWorld(scene.ViewPlane{
		HRes:      vp.HRes,
		VRes:      vp.VRes,
		PixelSize: vp.PixelSize,
		Z:         vp.Z,
	}, core.Vec3(c.Background))

	for i, s := range c.Spheres {
		if s.Radius <= 0 {
			return nil, fmt.Errorf("%w: sphere %d has radius %g", ErrInvalidScene, i, s.Radius)
		}
		w.Add(geometry.NewSphere(core.Point3(s.Center), s.Radius, core.Material{Color: core.Vec3(s.Color)}))
	}

	for i, p := range c.Planes {
		if core.Vec3(p.Normal).LenSqr() == 0 {
			return nil, fmt.Errorf("%w: plane %d has a zero normal", ErrInvalidScene, i)
		}
		w.Add(geometry.NewPlane(core.Point3(p.Point), core.Vec3(p.Normal), core.Material{Color: core.Vec3(p.Color)}))
	}

	return w, nil
}

// validateFilePath rejects paths that are not plain .json files
func validateFilePath(filename string) error {
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}
	if strings.Contains(filename, "\x00") {
		return fmt.Errorf("invalid file path: null bytes not allowed")
	}
	if len(filename) > 512 {
		return fmt.Errorf("file path too long: maximum 512 characters allowed")
	}
	if !strings.EqualFold(filepath.Ext(filename), ".json") {
		return fmt.Errorf("invalid file type: only .json files are allowed")
	}
	return nil
}

// IsSceneFile reports whether name looks like a JSON scene path rather than a built-in scene name
func IsSceneFile(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".json")
}
