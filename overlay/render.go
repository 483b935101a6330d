package overlay

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"github.com/fogleman/gg"
)

var (
	boxColor   = color.NRGBA{R: 255, A: 255}
	frontColor = color.NRGBA{B: 255, A: 255}
	labelColor = color.NRGBA{R: 255, G: 255, A: 255}
)

// Render strokes the 12 box edges into the drawing context in the box color,
// then redraws the front-face edges in a second color so the heading is
// visible. Edge endpoints are the projected corners rounded to the nearest
// pixel.
func (inst *Instance) Render(dc *gg.Context) {
	inst.strokeEdges(dc, boxEdges[:], boxColor)
	inst.strokeEdges(dc, frontEdges[:], frontColor)
}

// RenderLabel writes the track id next to the box's first corner.
func (inst *Instance) RenderLabel(dc *gg.Context) {
	p := inst.corners2D[0]
	at := image.Pt(int(math.Round(p.X)), int(math.Round(p.Y)))
	drawString(dc, strconv.Itoa(inst.trackID), at, labelColor, 12)
}

func (inst *Instance) strokeEdges(dc *gg.Context, edges [][2]int, c color.Color) {
	dc.SetColor(c)
	dc.SetLineWidth(1)
	for _, e := range edges {
		a := inst.corners2D[e[0]]
		b := inst.corners2D[e[1]]
		dc.DrawLine(math.Round(a.X), math.Round(a.Y), math.Round(b.X), math.Round(b.Y))
		dc.Stroke()
	}
}
