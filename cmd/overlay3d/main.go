// Package main renders 3D box overlays and occupancy masks for a recorded
// drive.
package main

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.viam.com/utils"

	"github.com/perception-tools/overlay3d/calib"
	"github.com/perception-tools/overlay3d/frameio"
	"github.com/perception-tools/overlay3d/overlay"
)

var logger = golog.NewDevelopmentLogger("overlay3d")

func main() {
	utils.ContextualMain(mainWithArgs, logger)
}

// Arguments for the command.
type Arguments struct {
	Frames   string `flag:"0,required,usage=path to frame list JSON"`
	ImageDir string `flag:"imgdir,usage=directory prepended to frame image paths"`
	OutDir   string `flag:"out,default=.,usage=directory for rendered overlays and masks"`
	Labels   bool   `flag:"labels,usage=draw track id labels"`
}

func mainWithArgs(ctx context.Context, args []string, logger golog.Logger) error {
	var argsParsed Arguments
	if err := utils.ParseFlags(args, &argsParsed); err != nil {
		return err
	}

	frames, err := frameio.ReadFramesFile(argsParsed.Frames)
	if err != nil {
		return err
	}

	var opts []overlay.Option
	if argsParsed.Labels {
		opts = append(opts, overlay.WithLabels())
	}
	proc := overlay.NewProcessor(calib.Default(), logger, opts...)

	var frameErrs error
	for i, frame := range frames {
		if ctx.Err() != nil {
			return multierr.Append(frameErrs, ctx.Err())
		}
		if err := renderFrame(proc, frame, argsParsed.ImageDir, argsParsed.OutDir); err != nil {
			logger.Errorw("skipping frame", "index", i, "image", frame.ImgFile, "error", err)
			frameErrs = multierr.Append(frameErrs, errors.Wrapf(err, "frame %d", i))
			continue
		}
		logger.Infow("frame rendered", "index", i, "image", frame.ImgFile, "objects", len(frame.Objects))
	}
	return frameErrs
}

func renderFrame(proc *overlay.Processor, frame frameio.Frame, imgDir, outDir string) error {
	img, err := imaging.Open(filepath.Join(imgDir, frame.ImgFile))
	if err != nil {
		return errors.Wrap(err, "loading frame image")
	}
	result, err := proc.ProcessFrame(img, frame.Objects)
	if err != nil {
		return err
	}
	stem := strings.TrimSuffix(filepath.Base(frame.ImgFile), filepath.Ext(frame.ImgFile))
	if err := imaging.Save(result.Image, filepath.Join(outDir, stem+"_overlay.png")); err != nil {
		return errors.Wrap(err, "saving overlay")
	}
	if err := imaging.Save(result.Mask, filepath.Join(outDir, stem+"_mask.png")); err != nil {
		return errors.Wrap(err, "saving mask")
	}
	return nil
}
