package collision

import (
	"github.com/edaniels/golog"

	"go.hexbot.dev/spatial/spatialmath"
)

// Checker runs narrow-phase distance queries and reports geometrically ambiguous
// configurations to its logger. The underlying queries are pure functions; a Checker
// only adds diagnostics, so it is safe for concurrent use.
type Checker struct {
	logger golog.Logger
}

// NewChecker returns a Checker that logs diagnostics to the given logger.
func NewChecker(logger golog.Logger) *Checker {
	return &Checker{logger: logger}
}

// CapsuleCapsuleDistance computes the surface distance between two posed capsules.
// When the capsule core segments are parallel the closest point pair is not unique;
// the query still succeeds, and the ambiguity is logged at debug level.
func (ch *Checker) CapsuleCapsuleDistance(c1 *Capsule, pose1 spatialmath.Pose, c2 *Capsule, pose2 spatialmath.Pose) (DistanceResult, error) {
	res, err := CapsuleCapsuleDistance(c1, pose1, c2, pose2)
	if err != nil {
		return res, err
	}
	if res.Parallel {
		ch.logger.Debugw("capsule core segments are parallel, witness points are one valid pair among many",
			"distance", res.Distance,
		)
	}
	return res, err
}
