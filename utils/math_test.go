package utils

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestDegRadConversion(t *testing.T) {
	test.That(t, DegToRad(180), test.ShouldAlmostEqual, math.Pi)
	test.That(t, RadToDeg(math.Pi/2), test.ShouldAlmostEqual, 90)
	test.That(t, DegToRad(RadToDeg(1.234)), test.ShouldAlmostEqual, 1.234)
}

func TestClamp(t *testing.T) {
	test.That(t, Clamp(-0.5, 0, 1), test.ShouldEqual, 0.)
	test.That(t, Clamp(1.5, 0, 1), test.ShouldEqual, 1.)
	test.That(t, Clamp(0.5, 0, 1), test.ShouldEqual, 0.5)
	test.That(t, Clamp(0, 0, 1), test.ShouldEqual, 0.)
	test.That(t, Clamp(1, 0, 1), test.ShouldEqual, 1.)
}

func TestFloat64AlmostEqual(t *testing.T) {
	test.That(t, Float64AlmostEqual(1.0, 1.0+1e-9, 1e-8), test.ShouldBeTrue)
	test.That(t, Float64AlmostEqual(1.0, 1.1, 1e-8), test.ShouldBeFalse)
}
