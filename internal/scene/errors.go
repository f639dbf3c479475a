package scene

import (
	"errors"
	"fmt"

	"anthrobot/internal/taxonomy"
)

// ErrOrder is the sentinel wrapped by OrderError.
var ErrOrder = errors.New("stage order violated")

// OrderError reports a life-cycle range whose start stage comes after its
// end stage in the developmental order.
type OrderError struct {
	Start taxonomy.StageID
	End   taxonomy.StageID
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("start stage %q comes after end stage %q in the life cycle", e.Start, e.End)
}

func (e *OrderError) Unwrap() error { return ErrOrder }
