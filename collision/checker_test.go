package collision

import (
	"math"
	"testing"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"go.viam.com/test"

	"go.hexbot.dev/spatial/spatialmath"
)

func TestCheckerLogsParallelDiagnostic(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	ch := NewChecker(zap.New(core).Sugar())

	c1, err := NewCapsule(0.5, 2)
	test.That(t, err, test.ShouldBeNil)
	c2, err := NewCapsule(0.5, 2)
	test.That(t, err, test.ShouldBeNil)

	// parallel cores produce exactly one diagnostic
	res, err := ch.CapsuleCapsuleDistance(c1, spatialmath.NewZeroPose(), c2, spatialmath.NewPoseFromPoint(r3.Vector{X: 2, Y: 0, Z: 1}))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, res.Parallel, test.ShouldBeTrue)
	test.That(t, logs.FilterMessageSnippet("parallel").Len(), test.ShouldEqual, 1)

	// non-parallel cores stay quiet
	pose2 := spatialmath.NewPose(r3.Vector{X: 3, Y: 0, Z: 0}, &spatialmath.R4AA{Theta: math.Pi / 2, RY: 1})
	res, err = ch.CapsuleCapsuleDistance(c1, spatialmath.NewZeroPose(), c2, pose2)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, res.Parallel, test.ShouldBeFalse)
	test.That(t, logs.FilterMessageSnippet("parallel").Len(), test.ShouldEqual, 1)
}

func TestCheckerPropagatesErrors(t *testing.T) {
	ch := NewChecker(golog.NewTestLogger(t))
	c, err := NewCapsule(0.5, 2)
	test.That(t, err, test.ShouldBeNil)

	_, err = ch.CapsuleCapsuleDistance(c, spatialmath.NewZeroPose(), nil, spatialmath.NewZeroPose())
	test.That(t, err, test.ShouldNotBeNil)
}
