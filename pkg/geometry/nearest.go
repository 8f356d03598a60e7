package geometry

import "github.com/df07/go-raycaster/pkg/core"

// NearestHit finds the primitive with the smallest valid ray parameter.
//
// Ties resolve to the primitive that comes first in objects: a later
// primitive must be strictly closer to replace the current winner.
func NearestHit(ray core.Ray, objects []core.Primitive) (core.HitRecord, bool) {
	closest := core.HitRecord{Index: -1}
	hitAnything := false

	for i, obj := range objects {
		t, ok := obj.Hit(ray)
		if !ok {
			continue
		}
		if !hitAnything || t < closest.T {
			closest = core.HitRecord{T: t, Index: i}
			hitAnything = true
		}
	}

	return closest, hitAnything
}
