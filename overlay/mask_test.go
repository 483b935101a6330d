package overlay

import (
	"image"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestFillConvexSquare(t *testing.T) {
	mask := image.NewGray(image.Rect(0, 0, 64, 64))
	square := []r2.Point{{X: 10, Y: 10}, {X: 30, Y: 10}, {X: 30, Y: 30}, {X: 10, Y: 30}}
	fillConvex(mask, square, MaskFill)

	for y := 10; y <= 30; y++ {
		for x := 10; x <= 30; x++ {
			test.That(t, mask.GrayAt(x, y).Y, test.ShouldEqual, MaskFill)
		}
	}
	for _, p := range []image.Point{{9, 20}, {31, 20}, {20, 9}, {20, 31}, {0, 0}, {63, 63}} {
		test.That(t, mask.GrayAt(p.X, p.Y).Y, test.ShouldEqual, 0)
	}
}

func TestFillConvexClampsToBounds(t *testing.T) {
	mask := image.NewGray(image.Rect(0, 0, 16, 16))
	big := []r2.Point{{X: -10, Y: -10}, {X: 40, Y: -10}, {X: 40, Y: 40}, {X: -10, Y: 40}}
	fillConvex(mask, big, MaskFill)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			test.That(t, mask.GrayAt(x, y).Y, test.ShouldEqual, MaskFill)
		}
	}
}

func TestFillMask(t *testing.T) {
	model := testModel(t)
	inst := NewInstance(0, 1, r3.Vector{X: 10}, r3.Vector{X: 2, Y: 2, Z: 2}, 0, model)

	mask := image.NewGray(image.Rect(0, 0, 640, 480))
	inst.FillMask(mask)

	// The box straddles the principal point; a far-off pixel stays clear.
	test.That(t, mask.GrayAt(320, 240).Y, test.ShouldEqual, MaskFill)
	test.That(t, mask.GrayAt(100, 100).Y, test.ShouldEqual, 0)

	// Every filled pixel carries the sentinel, nothing else.
	filled := 0
	for y := 0; y < 480; y++ {
		for x := 0; x < 640; x++ {
			v := mask.GrayAt(x, y).Y
			if v != 0 {
				test.That(t, v, test.ShouldEqual, MaskFill)
				filled++
			}
		}
	}
	test.That(t, filled, test.ShouldBeGreaterThan, 0)
}
