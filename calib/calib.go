// Package calib models the fixed camera calibration that projects
// vehicle-frame points into the image plane.
package calib

import (
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// ErrNoIntrinsics is when a camera does not have valid intrinsic parameters.
var ErrNoIntrinsics = errors.New("camera intrinsic parameters are not available")

// Intrinsics holds the pinhole parameters necessary to do a perspective
// projection of a 3D scene onto the 2D image plane.
type Intrinsics struct {
	Fx  float64 `json:"fx"`
	Fy  float64 `json:"fy"`
	Ppx float64 `json:"ppx"`
	Ppy float64 `json:"ppy"`
}

// CheckValid checks if the fields for Intrinsics have valid inputs.
func (i *Intrinsics) CheckValid() error {
	if i == nil {
		return errors.Wrap(ErrNoIntrinsics, "intrinsics do not exist")
	}
	if i.Fx <= 0 {
		return errors.Wrapf(ErrNoIntrinsics, "invalid focal length Fx = %#v", i.Fx)
	}
	if i.Fy <= 0 {
		return errors.Wrapf(ErrNoIntrinsics, "invalid focal length Fy = %#v", i.Fy)
	}
	if i.Ppx < 0 {
		return errors.Wrapf(ErrNoIntrinsics, "invalid principal X point Ppx = %#v", i.Ppx)
	}
	if i.Ppy < 0 {
		return errors.Wrapf(ErrNoIntrinsics, "invalid principal Y point Ppy = %#v", i.Ppy)
	}
	return nil
}

// Matrix returns the 3x3 camera matrix.
// Camera matrix:
// [[fx 0 ppx],
//
//	[0 fy ppy],
//	[0 0  1]]
func (i *Intrinsics) Matrix() *mat.Dense {
	k := mat.NewDense(3, 3, nil)
	k.Set(0, 0, i.Fx)
	k.Set(1, 1, i.Fy)
	k.Set(0, 2, i.Ppx)
	k.Set(1, 2, i.Ppy)
	k.Set(2, 2, 1)
	return k
}

// Model combines a camera-to-vehicle extrinsic transform with pinhole
// intrinsics into a single 3x4 projection matrix. The projection is computed
// once at construction and shared read-only by everything that projects
// through this camera.
type Model struct {
	extrinsic  *mat.Dense // 4x4 rigid transform, camera frame to vehicle frame
	intrinsics Intrinsics
	projection *mat.Dense // 3x4, K * inverse(extrinsic) restricted to the top 3 rows
}

// NewModel creates a Model from a 4x4 extrinsic matrix and pinhole
// intrinsics, deriving the combined projection matrix.
func NewModel(extrinsic *mat.Dense, intrinsics *Intrinsics) (*Model, error) {
	if err := intrinsics.CheckValid(); err != nil {
		return nil, err
	}
	if r, c := extrinsic.Dims(); r != 4 || c != 4 {
		return nil, errors.Errorf("extrinsic must be a 4x4 matrix, got %dx%d", r, c)
	}
	var inv mat.Dense
	if err := inv.Inverse(extrinsic); err != nil {
		return nil, errors.Wrap(err, "extrinsic is not invertible")
	}
	projection := mat.NewDense(3, 4, nil)
	projection.Mul(intrinsics.Matrix(), inv.Slice(0, 3, 0, 4))
	return &Model{
		extrinsic:  mat.DenseCopyOf(extrinsic),
		intrinsics: *intrinsics,
		projection: projection,
	}, nil
}

// Intrinsics returns the pinhole intrinsics of the model.
func (m *Model) Intrinsics() Intrinsics {
	return m.intrinsics
}

// Projection returns the combined 3x4 projection matrix. Callers must treat
// it as read-only.
func (m *Model) Projection() *mat.Dense {
	return m.projection
}

// Project maps a vehicle-frame point to pixel coordinates by homogeneous
// transform through the projection matrix followed by perspective division.
func (m *Model) Project(p r3.Vector) r2.Point {
	var h [3]float64
	for i := range h {
		h[i] = m.projection.At(i, 0)*p.X +
			m.projection.At(i, 1)*p.Y +
			m.projection.At(i, 2)*p.Z +
			m.projection.At(i, 3)
	}
	return r2.Point{X: h[0] / h[2], Y: h[1] / h[2]}
}
