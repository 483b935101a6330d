package frameio

import (
	"errors"
	"strings"
	"testing"

	"go.viam.com/test"
)

const frameDoc = `[
	{"img_file": "cam0/000123.png", "objs": [
		[0, 17, 5.0, 0.0, 0.0, 4.0, 2.0, 1.5, 0.0],
		[2, 18, 3.0, 8.0, 0.0, 0.6, 0.6, 1.7, 1.5707]
	]},
	{"img_file": "cam0/000124.png", "objs": []}
]`

func TestReadFrames(t *testing.T) {
	frames, err := ReadFrames(strings.NewReader(frameDoc))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, frames, test.ShouldHaveLength, 2)

	test.That(t, frames[0].ImgFile, test.ShouldEqual, "cam0/000123.png")
	test.That(t, frames[0].Objects, test.ShouldHaveLength, 2)
	test.That(t, frames[1].Objects, test.ShouldBeEmpty)

	first := frames[0].Objects[0]
	test.That(t, first.ClassID, test.ShouldEqual, 0)
	test.That(t, first.TrackID, test.ShouldEqual, 17)
	test.That(t, first.Center.X, test.ShouldEqual, 5.0)
	test.That(t, first.Dims.Z, test.ShouldEqual, 1.5)
	test.That(t, first.Yaw, test.ShouldEqual, 0.0)

	second := frames[0].Objects[1]
	test.That(t, second.ClassID, test.ShouldEqual, 2)
	test.That(t, second.Center.Y, test.ShouldEqual, 8.0)
	test.That(t, second.Yaw, test.ShouldEqual, 1.5707)
}

func TestRecordUnmarshalErrors(t *testing.T) {
	var rec Record

	var parseErr *ParseError
	err := rec.UnmarshalJSON([]byte(`[0, 1, 2]`))
	test.That(t, errors.As(err, &parseErr), test.ShouldBeTrue)
	test.That(t, err.Error(), test.ShouldContainSubstring, "expected 9 fields")

	err = rec.UnmarshalJSON([]byte(`[0, 1, "north", 0, 0, 4, 2, 1.5, 0]`))
	test.That(t, errors.As(err, &parseErr), test.ShouldBeTrue)

	err = rec.UnmarshalJSON([]byte(`{"not": "a row"}`))
	test.That(t, errors.As(err, &parseErr), test.ShouldBeTrue)
}

func TestReadFramesErrors(t *testing.T) {
	_, err := ReadFrames(strings.NewReader(`{"img_file": "not a list"}`))
	test.That(t, err, test.ShouldNotBeNil)

	_, err = ReadFrames(strings.NewReader(`[{"img_file": "a.png", "objs": [[1, 2]]}]`))
	test.That(t, err, test.ShouldNotBeNil)

	_, err = ReadFramesFile("testdata/does_not_exist.json")
	test.That(t, err, test.ShouldNotBeNil)
}
