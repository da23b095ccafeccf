// Package collision implements narrow-phase distance queries between convex collision
// primitives. The segment routines here are the exact analytic closest-point computation
// between two finite 3D line segments, which capsule distance reduces to.
package collision

import (
	"math"

	"github.com/golang/geo/r3"

	"go.hexbot.dev/spatial/utils"
)

// segmentEpsilon is the squared-length cutoff below which a segment is treated as a point.
// It is a fixed constant, not derived from input scale, so callers operating at very
// small scales should rescale their inputs rather than rely on this threshold.
const segmentEpsilon = 0.001

// SegmentPoints is the result of a closest-point query between two line segments.
// S and T are the parameters in [0,1] locating the closest points C1 = P1 + S*(Q1-P1)
// and C2 = P2 + T*(Q2-P2), and SqDist is the squared distance between C1 and C2.
// Parallel reports that the segments were parallel, in which case the closest point
// pair is not unique and S is pinned to 0.
type SegmentPoints struct {
	S, T     float64
	C1, C2   r3.Vector
	SqDist   float64
	Parallel bool
}

// ClosestPointsSegmentSegment computes the closest points between segment S1, spanning
// p1 to q1, and segment S2, spanning p2 to q2. Segments shorter than segmentEpsilon
// degenerate into points and are handled by the corresponding point/segment sub-case.
func ClosestPointsSegmentSegment(p1, q1, p2, q2 r3.Vector) SegmentPoints {
	d1 := q1.Sub(p1) // direction vector of segment S1
	d2 := q2.Sub(p2) // direction vector of segment S2
	r := p1.Sub(p2)
	a := d1.Dot(d1) // squared length of segment S1, always nonnegative
	e := d2.Dot(d2) // squared length of segment S2, always nonnegative
	f := d2.Dot(r)

	var pts SegmentPoints
	if a <= segmentEpsilon && e <= segmentEpsilon {
		// Both segments degenerate into points
		pts.C1, pts.C2 = p1, p2
		pts.SqDist = r.Dot(r)
		return pts
	}
	if a <= segmentEpsilon {
		// First segment degenerates into a point
		pts.T = utils.Clamp(f/e, 0, 1) // s = 0 => t = (b*s + f) / e = f / e
	} else {
		c := d1.Dot(r)
		if e <= segmentEpsilon {
			// Second segment degenerates into a point
			pts.S = utils.Clamp(-c/a, 0, 1) // t = 0 => s = (b*t - c) / a = -c / a
		} else {
			// The general nondegenerate case starts here
			b := d1.Dot(d2)
			denom := a*e - b*b // always nonnegative
			// If segments not parallel, compute closest point on L1 to L2 and clamp to
			// segment S1. Else the pair is ambiguous; pick s = 0 and report it.
			if denom != 0 {
				pts.S = utils.Clamp((b*f-c*e)/denom, 0, 1)
			} else {
				pts.Parallel = true
			}
			// Compute point on L2 closest to S1(s) using
			// t = Dot((P1 + D1*s) - P2, D2) / Dot(D2, D2) = (b*s + f) / e
			pts.T = (b*pts.S + f) / e

			// If t in [0,1] done. Else clamp t and recompute s for the new value of t
			// using s = Dot((P2 + D2*t) - P1, D1) / Dot(D1, D1) = (t*b - c) / a
			if pts.T < 0 {
				pts.T = 0
				pts.S = utils.Clamp(-c/a, 0, 1)
			} else if pts.T > 1 {
				pts.T = 1
				pts.S = utils.Clamp((b-c)/a, 0, 1)
			}
		}
	}

	pts.C1 = p1.Add(d1.Mul(pts.S))
	pts.C2 = p2.Add(d2.Mul(pts.T))
	diff := pts.C1.Sub(pts.C2)
	pts.SqDist = diff.Dot(diff)
	return pts
}

// SegmentDistanceToSegment returns the distance between the closest points of two line segments.
func SegmentDistanceToSegment(ap1, ap2, bp1, bp2 r3.Vector) float64 {
	return math.Sqrt(ClosestPointsSegmentSegment(ap1, ap2, bp1, bp2).SqDist)
}

// ClosestPointSegmentPoint takes a line segment spanning pt1 and pt2 and returns the
// point on the segment closest to the query point.
func ClosestPointSegmentPoint(pt1, pt2, query r3.Vector) r3.Vector {
	ab := pt2.Sub(pt1)
	lenSq := ab.Dot(ab)
	if lenSq <= segmentEpsilon {
		return pt1
	}
	t := utils.Clamp(query.Sub(pt1).Dot(ab)/lenSq, 0, 1)
	return pt1.Add(ab.Mul(t))
}

// DistToLineSegment returns the distance from a query point to the line segment spanning pt1 and pt2.
func DistToLineSegment(pt1, pt2, query r3.Vector) float64 {
	return query.Sub(ClosestPointSegmentPoint(pt1, pt2, query)).Norm()
}
