// Package frameio parses the recorded frame list consumed by the overlay
// pipeline: an ordered JSON array of frames, each pairing an image path with
// its detected object records.
package frameio

import (
	"fmt"
	"io"
	"os"

	"github.com/golang/geo/r3"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.viam.com/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// recordArity is the number of numeric fields in one object row.
const recordArity = 9

// ParseError reports a malformed object record.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid object record: %v", e.Err)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Record is one detected object: category, track identity, and box pose and
// size in the vehicle frame.
type Record struct {
	ClassID int
	TrackID int
	Center  r3.Vector
	Dims    r3.Vector // length, width, height, meters
	Yaw     float64   // heading, radians
}

// UnmarshalJSON decodes the on-disk row layout
// [classId, trackId, cx, cy, cz, l, w, h, yaw].
func (rec *Record) UnmarshalJSON(data []byte) error {
	var row []float64
	if err := json.Unmarshal(data, &row); err != nil {
		return &ParseError{Err: err}
	}
	if len(row) != recordArity {
		return &ParseError{Err: errors.Errorf("expected %d fields, got %d", recordArity, len(row))}
	}
	rec.ClassID = int(row[0])
	rec.TrackID = int(row[1])
	rec.Center = r3.Vector{X: row[2], Y: row[3], Z: row[4]}
	rec.Dims = r3.Vector{X: row[5], Y: row[6], Z: row[7]}
	rec.Yaw = row[8]
	return nil
}

// Frame couples one image path with its detected objects.
type Frame struct {
	ImgFile string   `json:"img_file"`
	Objects []Record `json:"objs"`
}

// ReadFrames decodes an ordered frame list from r.
func ReadFrames(r io.Reader) ([]Frame, error) {
	var frames []Frame
	if err := json.NewDecoder(r).Decode(&frames); err != nil {
		return nil, errors.Wrap(err, "decoding frame list")
	}
	return frames, nil
}

// ReadFramesFile reads and decodes the frame list at path.
func ReadFramesFile(path string) ([]Frame, error) {
	//nolint:gosec
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening frame list")
	}
	defer utils.UncheckedErrorFunc(f.Close)
	return ReadFrames(f)
}
