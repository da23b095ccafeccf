package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
)

// Pose represents a 6dof pose, position and orientation, of an object in 3D space.
type Pose interface {
	// Point returns the translation of the pose.
	Point() r3.Vector

	// Orientation returns the rotation of the pose.
	Orientation() Orientation
}

// NewZeroPose returns a pose at (0,0,0) with no rotation.
func NewZeroPose() Pose {
	return newDualQuaternion()
}

// NewPoseFromPoint takes in a cartesian (x,y,z) and stores it as a pose with no rotation.
func NewPoseFromPoint(point r3.Vector) Pose {
	q := newDualQuaternion()
	q.setTranslation(point)
	return q
}

// NewPoseFromOrientation takes in an orientation and returns a pose at (0,0,0) with that orientation.
func NewPoseFromOrientation(o Orientation) Pose {
	return NewPose(r3.Vector{}, o)
}

// NewPose takes in a position and orientation and returns a Pose.
func NewPose(p r3.Vector, o Orientation) Pose {
	q := newDualQuaternion()
	if o != nil {
		q.Real = o.Quaternion()
	}
	q.setTranslation(p)
	return q
}

// Compose treats Poses as functions A(x) and B(x), and produces a new function C(x) = A(B(x)).
// It converts the poses to dual quaternions and multiplies them together, normalizing the result.
func Compose(a, b Pose) Pose {
	result := &dualQuaternion{newDualQuaternionFromPose(a).transformation(newDualQuaternionFromPose(b).Number)}
	return result
}

// PoseAlmostCoincident checks if two poses' translations are within 1e-8 of each other.
func PoseAlmostCoincident(a, b Pose) bool {
	return PoseAlmostCoincidentEps(a, b, 1e-8)
}

// PoseAlmostCoincidentEps checks if two poses' translations are within epsilon of each other.
func PoseAlmostCoincidentEps(a, b Pose, epsilon float64) bool {
	return R3VectorAlmostEqual(a.Point(), b.Point(), epsilon)
}

// PoseAlmostEqual checks if both the positions and orientations of two poses are close.
func PoseAlmostEqual(a, b Pose) bool {
	return PoseAlmostCoincident(a, b) && OrientationAlmostEqual(a.Orientation(), b.Orientation())
}

// R3VectorAlmostEqual compares two r3.Vectors and returns if all elementwise differences are less than epsilon.
func R3VectorAlmostEqual(a, b r3.Vector, epsilon float64) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon && math.Abs(a.Z-b.Z) < epsilon
}
