// Package main is the capsulecheck CLI, which loads a JSON scene of posed capsules and
// reports the surface distance between every pair.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"go.hexbot.dev/spatial/collision"
	"go.hexbot.dev/spatial/spatialmath"
)

// sceneConfig is the JSON layout of a scene file. Orientations are R4 axis angles; a
// missing orientation means no rotation.
type sceneConfig struct {
	Capsules []capsuleConfig `json:"capsules"`
}

type capsuleConfig struct {
	Label       string            `json:"label"`
	R           float64           `json:"r"`
	L           float64           `json:"l"`
	Translation translationConfig `json:"translation"`
	Orientation *spatialmath.R4AA `json:"orientation,omitempty"`
}

type translationConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type posedCapsule struct {
	label   string
	capsule *collision.Capsule
	pose    spatialmath.Pose
}

func main() {
	var logger golog.Logger

	app := &cli.App{
		Name:  "capsulecheck",
		Usage: "report pairwise surface distances between the capsules of a scene",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "scene",
				Usage:    "path to a JSON scene of posed capsules",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "log geometric diagnostics such as parallel capsule axes",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("debug") {
				logger = golog.NewDebugLogger("capsulecheck")
			} else {
				logger = golog.NewLogger("capsulecheck")
			}
			return nil
		},
		Action: func(c *cli.Context) error {
			return printSceneDistances(c.App.Writer, c.String("scene"), logger)
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printSceneDistances(w io.Writer, path string, logger golog.Logger) error {
	scene, err := loadScene(path)
	if err != nil {
		return err
	}
	if len(scene) < 2 {
		return errors.Errorf("scene needs at least two capsules, got %d", len(scene))
	}
	checker := collision.NewChecker(logger)
	for i := 0; i < len(scene); i++ {
		for j := i + 1; j < len(scene); j++ {
			res, err := checker.CapsuleCapsuleDistance(scene[i].capsule, scene[i].pose, scene[j].capsule, scene[j].pose)
			if err != nil {
				return errors.Wrapf(err, "measuring %q against %q", scene[i].label, scene[j].label)
			}
			fmt.Fprintf(w, "%s <-> %s: %.6f\n", scene[i].label, scene[j].label, res.Distance)
		}
	}
	return nil
}

func loadScene(path string) ([]posedCapsule, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading scene")
	}
	var scene sceneConfig
	if err := json.Unmarshal(raw, &scene); err != nil {
		return nil, errors.Wrap(err, "parsing scene")
	}

	parsed := make([]posedCapsule, 0, len(scene.Capsules))
	for i, conf := range scene.Capsules {
		label := conf.Label
		if label == "" {
			label = fmt.Sprintf("capsule%d", i)
		}
		c, err := collision.NewCapsule(conf.R, conf.L)
		if err != nil {
			return nil, errors.Wrapf(err, "capsule %q", label)
		}
		var o spatialmath.Orientation = spatialmath.NewZeroOrientation()
		if conf.Orientation != nil {
			o = conf.Orientation
		}
		pose := spatialmath.NewPose(r3.Vector{X: conf.Translation.X, Y: conf.Translation.Y, Z: conf.Translation.Z}, o)
		parsed = append(parsed, posedCapsule{label, c, pose})
	}
	return parsed, nil
}
