package overlay

import (
	"image"
	"image/draw"
	"sort"

	"github.com/edaniels/golog"
	"github.com/fogleman/gg"
	"github.com/pkg/errors"

	"github.com/perception-tools/overlay3d/calib"
	"github.com/perception-tools/overlay3d/frameio"
)

// ErrInvalidImage is returned when a frame image is missing or has no
// pixels. Callers should skip the frame rather than abort the run.
var ErrInvalidImage = errors.New("frame image is empty")

// Processor turns raw per-frame object records into a rendered overlay image
// and an occupancy mask. Output buffers are freshly allocated per frame and
// owned exclusively by the returned FrameResult; no state is shared between
// frames.
type Processor struct {
	model   *calib.Model
	filters []RecordFilter
	labels  bool
	logger  golog.Logger
}

// Option configures a Processor.
type Option func(*Processor)

// WithFilters replaces the default record pre-filters.
func WithFilters(filters ...RecordFilter) Option {
	return func(p *Processor) {
		p.filters = filters
	}
}

// WithLabels turns on track id labels in the rendered overlay.
func WithLabels() Option {
	return func(p *Processor) {
		p.labels = true
	}
}

// NewProcessor creates a Processor that projects through the given
// calibration model. Filters default to DefaultFilters.
func NewProcessor(model *calib.Model, logger golog.Logger, opts ...Option) *Processor {
	p := &Processor{
		model:   model,
		filters: DefaultFilters(),
		logger:  logger,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// FrameResult holds one frame's outputs: the annotated copy of the source
// image, the binary occupancy mask, and the rendered instances in ascending
// distance order.
type FrameResult struct {
	Image     *image.RGBA
	Mask      *image.Gray
	Instances []*Instance
}

// ProcessFrame runs the full pipeline for one frame: pre-filter raw records,
// build instances, stable-sort by ascending distance, drop invisible
// instances, then render wireframes and fill the occupancy mask. A frame
// with no surviving instances is a normal result with an untouched image
// copy and an all-clear mask.
func (p *Processor) ProcessFrame(img image.Image, records []frameio.Record) (*FrameResult, error) {
	if img == nil {
		return nil, ErrInvalidImage
	}
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return nil, ErrInvalidImage
	}

	raw := len(records)
	for _, filter := range p.filters {
		records = filter(records)
	}

	instances := make([]*Instance, 0, len(records))
	for _, rec := range records {
		instances = append(instances, NewInstance(rec.ClassID, rec.TrackID, rec.Center, rec.Dims, rec.Yaw, p.model))
	}

	// Nearest first; equal distances keep their input order.
	sort.SliceStable(instances, func(i, j int) bool {
		return instances[i].Distance() < instances[j].Distance()
	})

	visible := make([]*Instance, 0, len(instances))
	for _, inst := range instances {
		if inst.IsVisible(width, height) {
			visible = append(visible, inst)
		}
	}

	out := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(out, out.Bounds(), img, bounds.Min, draw.Src)
	dc := gg.NewContextForRGBA(out)
	for _, inst := range visible {
		inst.Render(dc)
		if p.labels {
			inst.RenderLabel(dc)
		}
	}

	mask := image.NewGray(image.Rect(0, 0, width, height))
	for _, inst := range visible {
		inst.FillMask(mask)
	}

	p.logger.Debugw("frame processed",
		"records", raw,
		"kept", len(records),
		"rendered", len(visible),
	)
	return &FrameResult{Image: out, Mask: mask, Instances: visible}, nil
}
