package task

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// IDFunc produces candidate task ids. The store rejects candidates it has
// already issued, so an IDFunc only needs to be collision-resistant, not
// collision-free.
type IDFunc func() string

// UUIDs returns an IDFunc producing random 128-bit v4 UUID strings.
func UUIDs() IDFunc {
	return uuid.NewString
}

// Sequence returns an IDFunc producing "1", "2", "3", ... Each call to
// Sequence starts its own counter.
func Sequence() IDFunc {
	var n uint64
	return func() string {
		n++
		return strconv.FormatUint(n, 10)
	}
}

// IDStrategy names a built-in IDFunc.
type IDStrategy string

const (
	IDStrategyUUID     IDStrategy = "uuid"
	IDStrategySequence IDStrategy = "sequence"
)

// IDStrategies lists the accepted strategy names.
func IDStrategies() []IDStrategy {
	return []IDStrategy{IDStrategyUUID, IDStrategySequence}
}

// IsValid reports whether s names a known strategy.
func (s IDStrategy) IsValid() bool {
	switch s {
	case IDStrategyUUID, IDStrategySequence:
		return true
	}
	return false
}

// IDFuncFor returns the IDFunc for a strategy name.
func IDFuncFor(s IDStrategy) (IDFunc, error) {
	switch s {
	case IDStrategyUUID:
		return UUIDs(), nil
	case IDStrategySequence:
		return Sequence(), nil
	default:
		return nil, fmt.Errorf("unknown id strategy %q", s)
	}
}
