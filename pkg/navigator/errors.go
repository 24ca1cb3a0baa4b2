package navigator

import (
	"errors"
	"fmt"

	"github.com/oakwood-commons/scenepath/pkg/path"
)

// ErrNotFound is the sentinel matched by errors.Is for every navigation
// failure, whatever segment produced it.
var ErrNotFound = errors.New("not found")

// NotFoundError reports the segment at which navigation failed and the path
// consumed up to and including that segment. Cause carries the underlying
// error when the failure came from below (a cancelled hierarchy wait, an
// index parse failure); it is nil for a plain missing key.
type NotFoundError struct {
	Segment string
	Path    path.Path
	Cause   error
}

func (e *NotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("navigate %q: segment %q: %v", e.Path.String(), e.Segment, e.Cause)
	}
	return fmt.Sprintf("navigate %q: segment %q not found", e.Path.String(), e.Segment)
}

// Is makes errors.Is(err, ErrNotFound) hold for all NotFoundErrors.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func (e *NotFoundError) Unwrap() error {
	return e.Cause
}

// IsNotFound reports whether err is a navigation not-found failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
