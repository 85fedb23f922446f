package omap

import (
	"fmt"

	"github.com/pkg/errors"
)

// Result is the outcome of a mutating map operation. The non-success
// results are returned as errors, so they can be matched with errors.Is.
type Result uint8

const (
	Success Result = iota
	NullArgument
	OutOfMemory
	ItemDoesNotExist
)

var (
	ErrNullArgument     error = NullArgument
	ErrOutOfMemory      error = OutOfMemory
	ErrItemDoesNotExist error = ItemDoesNotExist
)

func (r Result) String() string {
	switch r {
	case Success:
		return "success"
	case NullArgument:
		return "null argument"
	case OutOfMemory:
		return "out of memory"
	case ItemDoesNotExist:
		return "item does not exist"
	}
	return fmt.Sprintf("result(%d)", uint8(r))
}

func (r Result) Error() string {
	return "omap: " + r.String()
}

// ResultOf maps an error returned by this package back to its Result.
// A nil error is Success. The second return is false when err does not
// carry a Result.
func ResultOf(err error) (Result, bool) {
	if err == nil {
		return Success, true
	}
	var r Result
	if errors.As(err, &r) {
		return r, true
	}
	return Success, false
}
