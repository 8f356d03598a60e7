package scene

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownScene is returned by Create for names that are not registered
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Name passed to Create
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
}

type builtin struct {
	info  SceneInfo
	build func() *World
}

var builtins = map[string]builtin{
	"default": {
		info:  SceneInfo{ID: "default", DisplayName: "Default", Description: "Two spheres in front of a tilted backdrop plane"},
		build: NewDefaultScene,
	},
	"sphere": {
		info:  SceneInfo{ID: "sphere", DisplayName: "Single Sphere", Description: "One red sphere of radius 15 at the origin"},
		build: NewSingleSphereScene,
	},
	"overlap": {
		info:  SceneInfo{ID: "overlap", DisplayName: "Overlapping Spheres", Description: "Three spheres overlapping along the view axis"},
		build: NewOverlapScene,
	},
}

// Available returns the built-in scenes sorted by ID
func Available() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtins))
	for _, b := range builtins {
		scenes = append(scenes, b.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Create builds a fresh copy of the named built-in scene
func Create(name string) (*World, error) {
	b, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return b.build(), nil
}
