package overlay

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"

	"github.com/perception-tools/overlay3d/calib"
)

// nearPlaneDist is the minimum forward distance, in meters, a corner must
// have from the camera for its projection to be trusted.
const nearPlaneDist = 2.0

// Instance is one tracked object's oriented 3D bounding box together with
// its projection through the shared camera calibration. An Instance is
// immutable once constructed.
type Instance struct {
	classID int
	trackID int
	center  r3.Vector
	dims    r3.Vector // length, width, height
	yaw     float64

	corners3D [8]r3.Vector
	corners2D [8]r2.Point
	dist      float64
}

// NewInstance constructs the box corners for one object in the vehicle frame
// and projects them into the image plane. Corners follow the canonical
// enumeration in boxCorners: unit corners scaled by half the dimensions,
// rotated by yaw about the vertical axis, then translated to center.
func NewInstance(classID, trackID int, center, dims r3.Vector, yaw float64, model *calib.Model) *Instance {
	inst := &Instance{
		classID: classID,
		trackID: trackID,
		center:  center,
		dims:    dims,
		yaw:     yaw,
		dist:    math.Inf(1),
	}
	sin, cos := math.Sincos(yaw)
	half := dims.Mul(0.5)
	for i, c := range boxCorners {
		local := r3.Vector{X: c.X * half.X, Y: c.Y * half.Y, Z: c.Z * half.Z}
		p := r3.Vector{
			X: local.X*cos - local.Y*sin + center.X,
			Y: local.X*sin + local.Y*cos + center.Y,
			Z: local.Z + center.Z,
		}
		inst.corners3D[i] = p
		inst.corners2D[i] = model.Project(p)
		// Closest-edge range, measured in the horizontal plane only.
		if d := math.Hypot(p.X, p.Y); d < inst.dist {
			inst.dist = d
		}
	}
	return inst
}

// ClassID returns the object's category.
func (inst *Instance) ClassID() int {
	return inst.classID
}

// TrackID returns the object's track identity.
func (inst *Instance) TrackID() int {
	return inst.trackID
}

// Center returns the box center in the vehicle frame.
func (inst *Instance) Center() r3.Vector {
	return inst.center
}

// Dims returns the box dimensions (length, width, height) in meters.
func (inst *Instance) Dims() r3.Vector {
	return inst.dims
}

// Yaw returns the heading angle in radians.
func (inst *Instance) Yaw() float64 {
	return inst.yaw
}

// Corners3D returns the 8 box corners in the vehicle frame.
func (inst *Instance) Corners3D() [8]r3.Vector {
	return inst.corners3D
}

// Corners2D returns the 8 projected corners in pixel coordinates.
func (inst *Instance) Corners2D() [8]r2.Point {
	return inst.corners2D
}

// Distance returns the minimum horizontal-plane radius among the box
// corners, a conservative near-edge range used for depth ordering.
func (inst *Instance) Distance() float64 {
	return inst.dist
}

// IsVisible reports whether every projected corner falls strictly inside a
// width x height image and every 3D corner is beyond the near plane. A
// single corner out of bounds or too close hides the whole box; partially
// visible boxes are excluded, not clipped.
func (inst *Instance) IsVisible(width, height int) bool {
	for i := range inst.corners2D {
		uv := inst.corners2D[i]
		if uv.X <= 0 || uv.X >= float64(width) || uv.Y <= 0 || uv.Y >= float64(height) {
			return false
		}
		if inst.corners3D[i].X <= nearPlaneDist {
			return false
		}
	}
	return true
}
