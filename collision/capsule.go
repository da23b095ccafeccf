package collision

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.hexbot.dev/spatial/spatialmath"
)

// Capsule is the Minkowski sum of a line segment and a sphere: every point within Radius
// of the core segment. Combined with a pose, the core segment runs from the pose's origin
// to the point Length out along the pose's local z-axis. Length is the core segment
// length; the solid measures Length + 2*Radius tip to tip.
type Capsule struct {
	Radius float64
	Length float64
}

// NewCapsule returns a Capsule with the given radius and core segment length.
func NewCapsule(radius, length float64) (*Capsule, error) {
	c := &Capsule{Radius: radius, Length: length}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// validate returns an error describing every dimension that is negative or non-finite.
func (c *Capsule) validate() error {
	var err error
	if c.Radius < 0 || math.IsNaN(c.Radius) || math.IsInf(c.Radius, 0) {
		err = multierr.Append(err, errors.Errorf("capsule radius must be a finite nonnegative number, got %f", c.Radius))
	}
	if c.Length < 0 || math.IsNaN(c.Length) || math.IsInf(c.Length, 0) {
		err = multierr.Append(err, errors.Errorf("capsule length must be a finite nonnegative number, got %f", c.Length))
	}
	return err
}

// segment returns the world-space endpoints of the capsule's core segment under the given pose.
func (c *Capsule) segment(pose spatialmath.Pose) (r3.Vector, r3.Vector) {
	start := pose.Point()
	end := spatialmath.Compose(pose, spatialmath.NewPoseFromPoint(r3.Vector{Z: c.Length})).Point()
	return start, end
}

// DistanceResult is the outcome of a capsule-capsule distance query.
type DistanceResult struct {
	// Distance is the surface-to-surface separation. A negative value means the capsules
	// overlap by that depth; it is a valid result, not an error.
	Distance float64

	// Closest1 and Closest2 are witness points on each capsule's surface, lying along the
	// line connecting the closest points of the two core segments.
	Closest1, Closest2 r3.Vector

	// Parallel reports that the core segments were parallel, in which case the witness
	// points are one valid pair among infinitely many.
	Parallel bool
}

// CapsuleCapsuleDistance computes the minimum distance between the surfaces of two posed
// capsules, along with a witness point on each surface. It validates its inputs and then
// delegates to the pure closest-point routine; any finite, valid configuration succeeds.
func CapsuleCapsuleDistance(c1 *Capsule, pose1 spatialmath.Pose, c2 *Capsule, pose2 spatialmath.Pose) (DistanceResult, error) {
	if err := validateDistanceQuery(c1, pose1, c2, pose2); err != nil {
		return DistanceResult{}, errors.Wrap(err, "invalid capsule distance query")
	}
	return capsuleCapsuleDistance(c1, pose1, c2, pose2), nil
}

func capsuleCapsuleDistance(c1 *Capsule, pose1 spatialmath.Pose, c2 *Capsule, pose2 spatialmath.Pose) DistanceResult {
	p1, q1 := c1.segment(pose1)
	p2, q2 := c2.segment(pose2)
	pts := ClosestPointsSegmentSegment(p1, q1, p2, q2)

	res := DistanceResult{
		Distance: math.Sqrt(pts.SqDist) - c1.Radius - c2.Radius,
		Parallel: pts.Parallel,
	}

	dir := pts.C2.Sub(pts.C1)
	if dir.Norm2() == 0 {
		// The core segments intersect, so the surface offset direction is ambiguous.
		// Fall back to the first capsule's local z-axis to keep the witness points finite.
		dir = poseZAxis(pose1)
	}
	dir = dir.Normalize()
	res.Closest1 = pts.C1.Add(dir.Mul(c1.Radius))
	res.Closest2 = pts.C2.Sub(dir.Mul(c2.Radius))
	return res
}

// poseZAxis returns the world-space direction of the pose's local z-axis.
func poseZAxis(pose spatialmath.Pose) r3.Vector {
	return spatialmath.Compose(pose, spatialmath.NewPoseFromPoint(r3.Vector{Z: 1})).Point().Sub(pose.Point())
}

func validateDistanceQuery(c1 *Capsule, pose1 spatialmath.Pose, c2 *Capsule, pose2 spatialmath.Pose) error {
	if c1 == nil || c2 == nil {
		return errors.New("capsules must not be nil")
	}
	if pose1 == nil || pose2 == nil {
		return errors.New("poses must not be nil")
	}
	return multierr.Combine(
		errors.Wrap(c1.validate(), "capsule 1"),
		errors.Wrap(c2.validate(), "capsule 2"),
		errors.Wrap(validFinitePoint(pose1.Point()), "pose 1"),
		errors.Wrap(validFinitePoint(pose2.Point()), "pose 2"),
	)
}

func validFinitePoint(pt r3.Vector) error {
	for _, v := range []float64{pt.X, pt.Y, pt.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Errorf("translation %v contains non-finite coordinates", pt)
		}
	}
	return nil
}
