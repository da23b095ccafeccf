package spatialmath

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// R4AA represents an R4 axis angle: a rotation of Theta radians about the axis (RX, RY, RZ).
// See https://en.wikipedia.org/wiki/Axis%E2%80%93angle_representation for a thorough explanation.
type R4AA struct {
	Theta float64 `json:"th"`
	RX    float64 `json:"x"`
	RY    float64 `json:"y"`
	RZ    float64 `json:"z"`
}

// NewR4AA creates an empty R4AA struct.
func NewR4AA() *R4AA {
	return &R4AA{Theta: 0, RX: 0, RY: 0, RZ: 1}
}

// AxisAngles returns the orientation in axis angle representation.
func (r4 *R4AA) AxisAngles() *R4AA {
	return r4
}

// Quaternion returns orientation in quaternion representation.
func (r4 *R4AA) Quaternion() quat.Number {
	return r4.ToQuat()
}

// ToQuat converts an R4 axis angle to a unit quaternion.
// See https://www.euclideanspace.com/maths/geometry/rotations/conversions/angleToQuaternion/index.htm
func (r4 *R4AA) ToQuat() quat.Number {
	sinA := math.Sin(r4.Theta / 2)
	// Ensure that point xyz is on the unit sphere
	r4.Normalize()

	// Get the unit-sphere components
	ax := r4.RX * sinA
	ay := r4.RY * sinA
	az := r4.RZ * sinA
	w := math.Cos(r4.Theta / 2)
	return quat.Number{Real: w, Imag: ax, Jmag: ay, Kmag: az}
}

// Normalize scales the x, y, and z components of a R4 axis angle to be on the unit sphere.
func (r4 *R4AA) Normalize() {
	norm := math.Sqrt(r4.RX*r4.RX + r4.RY*r4.RY + r4.RZ*r4.RZ)
	if norm == 0.0 { // prevent division by 0
		panic("cannot normalize R4AA, divide by zero")
	}
	r4.RX /= norm
	r4.RY /= norm
	r4.RZ /= norm
}
