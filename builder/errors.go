package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates a vertex count below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// Method tags used in error context.
const (
	methodComplete     = "Complete"
	methodCycle        = "Cycle"
	methodWheel        = "Wheel"
	methodRandomSparse = "RandomSparse"
)

func tooFew(method string, n, min int) error {
	return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
}
