// internal/defs/types.go
package defs

import "image/color"

// TargetingPolicy defines how a tower picks among several in-range enemies.
type TargetingPolicy string

const (
	PolicyNearestToGoal  TargetingPolicy = "NEAREST_TO_GOAL"
	PolicyNearestToTower TargetingPolicy = "NEAREST_TO_TOWER"
	PolicyStrongest      TargetingPolicy = "STRONGEST"
	PolicyWeakest        TargetingPolicy = "WEAKEST"
)

// ParseTargetingPolicy validates a raw policy string. Unknown strings are
// reported with ok=false; callers keep the previous policy in that case.
func ParseTargetingPolicy(s string) (TargetingPolicy, bool) {
	switch TargetingPolicy(s) {
	case PolicyNearestToGoal, PolicyNearestToTower, PolicyStrongest, PolicyWeakest:
		return TargetingPolicy(s), true
	}
	return "", false
}

// Visuals contains parameters for rendering an entity.
type Visuals struct {
	Color       color.RGBA `json:"color"`
	Radius      float64    `json:"radius"`
	StrokeWidth float64    `json:"stroke_width"`
}
