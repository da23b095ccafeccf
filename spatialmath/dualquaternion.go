package spatialmath

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/dualquat"
	"gonum.org/v1/gonum/num/quat"
)

// dualQuaternion defines functions to perform rigid transformations in 3D.
type dualQuaternion struct {
	dualquat.Number
}

// newDualQuaternion returns a pointer to a new dualQuaternion object whose real part is an identity
// quaternion. Since the real part of a dual quaternion should be a unit quaternion, not all zeroes,
// this should be used instead of &dualQuaternion{}.
func newDualQuaternion() *dualQuaternion {
	return &dualQuaternion{dualquat.Number{
		Real: quat.Number{Real: 1},
		Dual: quat.Number{},
	}}
}

// newDualQuaternionFromPose converts a Pose to a dualQuaternion, avoiding a conversion if it
// already is one.
func newDualQuaternionFromPose(p Pose) *dualQuaternion {
	if q, ok := p.(*dualQuaternion); ok {
		return q.clone()
	}
	q := &dualQuaternion{dualquat.Number{Real: p.Orientation().Quaternion()}}
	q.setTranslation(p.Point())
	return q
}

// clone returns a dualQuaternion object identical to this one.
func (q *dualQuaternion) clone() *dualQuaternion {
	// No need for deep copies here, dual quaternions are primitives all the way down
	return &dualQuaternion{q.Number}
}

// Point returns the translation of the pose.
func (q *dualQuaternion) Point() r3.Vector {
	tq := dualquat.Mul(q.Number, dualquat.Conj(q.Number))
	return r3.Vector{X: tq.Dual.Imag, Y: tq.Dual.Jmag, Z: tq.Dual.Kmag}
}

// Orientation returns the rotation of the pose.
func (q *dualQuaternion) Orientation() Orientation {
	o := quaternion(q.Real)
	return &o
}

// setTranslation correctly sets the translation quaternion against the rotation.
func (q *dualQuaternion) setTranslation(pt r3.Vector) {
	q.Dual = quat.Number{Real: 0, Imag: pt.X / 2, Jmag: pt.Y / 2, Kmag: pt.Z / 2}
	q.rotate()
}

// rotate multiplies the dual part of the quaternion by the real part to give the correct rotation.
func (q *dualQuaternion) rotate() {
	q.Dual = quat.Mul(q.Dual, q.Real)
}

// transformation multiplies the dual quat contained in this dualQuaternion by another dual quat.
func (q *dualQuaternion) transformation(by dualquat.Number) dualquat.Number {
	// Ensure we are multiplying by a unit dual quaternion
	if vecLen := quat.Abs(by.Real); vecLen != 1 {
		by.Real = quat.Scale(1/vecLen, by.Real)
	}

	return dualquat.Mul(q.Number, by)
}
