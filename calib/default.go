package calib

import "gonum.org/v1/gonum/mat"

// Default returns the fixed calibration of the recording rig: a front camera
// mounted 1.62m forward and 1.46m up, looking down the vehicle's +X axis,
// with a 1280x480 sensor. The values are measured constants; they are not
// configurable at runtime.
func Default() *Model {
	extrinsic := mat.NewDense(4, 4, []float64{
		-0.005317, 0.003402, 0.999980, 1.624150,
		-0.999920, -0.011526, -0.005277, 0.296660,
		0.011508, -0.999928, 0.003463, 1.457150,
		0, 0, 0, 1,
	})
	intrinsics := &Intrinsics{
		Fx:  819.162645,
		Fy:  819.162645,
		Ppx: 640.000000,
		Ppy: 240.000000,
	}
	model, err := NewModel(extrinsic, intrinsics)
	if err != nil {
		panic(err)
	}
	return model
}
