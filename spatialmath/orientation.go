// Package spatialmath defines spatial mathematical operations.
package spatialmath

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Orientation is an interface used to express the orientation of an object in 3D space.
type Orientation interface {
	// AxisAngles returns the orientation in axis angle representation.
	AxisAngles() *R4AA

	// Quaternion returns the orientation in quaternion representation.
	Quaternion() quat.Number
}

// NewZeroOrientation returns an orientation which signifies no rotation.
func NewZeroOrientation() Orientation {
	return &quaternion{1, 0, 0, 0}
}

// quaternion is an orientation in quaternion representation.
type quaternion quat.Number

// AxisAngles returns the orientation in axis angle representation.
func (q *quaternion) AxisAngles() *R4AA {
	aa := QuatToR4AA(quat.Number(*q))
	return &aa
}

// Quaternion returns orientation in quaternion representation.
func (q *quaternion) Quaternion() quat.Number {
	return quat.Number(*q)
}

// QuatToR4AA converts a quat to an R4 axis angle in the same way the C++ Eigen library does.
// https://eigen.tuxfamily.org/dox/AngleAxis_8h_source.html
func QuatToR4AA(q quat.Number) R4AA {
	denom := Norm(q)

	angle := 2 * math.Atan2(denom, math.Abs(q.Real))
	if q.Real < 0 {
		angle *= -1
	}

	if denom < 1e-6 {
		return R4AA{angle, 1, 0, 0}
	}
	return R4AA{angle, q.Imag / denom, q.Jmag / denom, q.Kmag / denom}
}

// Norm returns the norm of the quaternion, i.e. the sqrt of the squares of the imaginary parts.
func Norm(q quat.Number) float64 {
	return math.Sqrt(q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag)
}

// Flip will multiply a quaternion by -1, returning a quaternion representing the same orientation but in the opposing octant.
func Flip(q quat.Number) quat.Number {
	return quat.Number{Real: -q.Real, Imag: -q.Imag, Jmag: -q.Jmag, Kmag: -q.Kmag}
}

// OrientationAlmostEqual will return a bool describing whether 2 orientations are within 1e-4 rad of each other.
func OrientationAlmostEqual(o1, o2 Orientation) bool {
	q1 := o1.Quaternion()
	q2 := o2.Quaternion()
	// q and -q represent the same orientation, so compare the rotation between them
	between := quat.Mul(q1, quat.Conj(q2))
	return math.Abs(QuatToR4AA(between).Theta) < 1e-4
}
