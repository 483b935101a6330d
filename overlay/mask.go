package overlay

import (
	"image"
	"image/color"
	"math"

	"github.com/golang/geo/r2"
)

// MaskFill is the sentinel value written for occupied mask pixels.
const MaskFill uint8 = 255

// FillMask rasterizes the convex hull of the projected corners into the
// single-channel mask, marking covered pixels with MaskFill. Instances
// sharing a mask overwrite each other where they overlap, which is
// equivalent to union for a binary mask.
func (inst *Instance) FillMask(mask *image.Gray) {
	hull := convexHull(inst.corners2D[:])
	fillConvex(mask, hull, MaskFill)
}

// fillConvex scanline-fills a convex polygon into the mask, setting covered
// pixels to value. Pixels are points at integer coordinates; boundary pixels
// count as covered.
func fillConvex(mask *image.Gray, poly []r2.Point, value uint8) {
	if len(poly) == 0 {
		return
	}
	minY, maxY := poly[0].Y, poly[0].Y
	for _, p := range poly[1:] {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	bounds := mask.Bounds()
	y0 := int(math.Ceil(minY))
	y1 := int(math.Floor(maxY))
	if y0 < bounds.Min.Y {
		y0 = bounds.Min.Y
	}
	if y1 > bounds.Max.Y-1 {
		y1 = bounds.Max.Y - 1
	}
	for y := y0; y <= y1; y++ {
		xl, xr, ok := scanlineSpan(poly, float64(y))
		if !ok {
			continue
		}
		x0 := int(math.Ceil(xl))
		x1 := int(math.Floor(xr))
		if x0 < bounds.Min.X {
			x0 = bounds.Min.X
		}
		if x1 > bounds.Max.X-1 {
			x1 = bounds.Max.X - 1
		}
		for x := x0; x <= x1; x++ {
			mask.SetGray(x, y, color.Gray{Y: value})
		}
	}
}
