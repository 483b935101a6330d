package overlay

import (
	"math"

	"github.com/perception-tools/overlay3d/frameio"
)

// RecordFilter defines a function that filters an incoming array of raw
// object records before any geometry is built.
type RecordFilter func([]frameio.Record) []frameio.Record

// Default pre-filter configuration for the recorded drive: pedestrian-class
// detections are skipped, and only objects within a coarse forward/lateral
// gate around the camera are kept.
const (
	DefaultSkipClass  = 2
	DefaultMinForward = 4.0
	DefaultMaxForward = 40.0
	DefaultMaxLateral = 10.0
)

// NewClassFilter returns a function that filters out records of the given
// class.
func NewClassFilter(skip int) RecordFilter {
	return func(in []frameio.Record) []frameio.Record {
		out := make([]frameio.Record, 0, len(in))
		for _, rec := range in {
			if rec.ClassID == skip {
				continue
			}
			out = append(out, rec)
		}
		return out
	}
}

// NewSpatialGate returns a function that filters out records whose raw
// center lies outside [minForward, maxForward] ahead of the vehicle or more
// than maxLateral to either side.
func NewSpatialGate(minForward, maxForward, maxLateral float64) RecordFilter {
	return func(in []frameio.Record) []frameio.Record {
		out := make([]frameio.Record, 0, len(in))
		for _, rec := range in {
			if rec.Center.X < minForward || rec.Center.X > maxForward {
				continue
			}
			if math.Abs(rec.Center.Y) > maxLateral {
				continue
			}
			out = append(out, rec)
		}
		return out
	}
}

// DefaultFilters returns the class and spatial pre-filters for the recorded
// drive setup.
func DefaultFilters() []RecordFilter {
	return []RecordFilter{
		NewClassFilter(DefaultSkipClass),
		NewSpatialGate(DefaultMinForward, DefaultMaxForward, DefaultMaxLateral),
	}
}
