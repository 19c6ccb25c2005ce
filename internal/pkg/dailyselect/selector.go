// Package dailyselect picks one item per calendar day from a fixed candidate list.
//
// The selection hashes a date key with a 31-multiplier polynomial hash under 32-bit
// wraparound arithmetic, so any conforming implementation in any language returns the
// same item for the same key and list. The absolute value of the hash is taken in
// 64-bit arithmetic: math.MinInt32 maps to 2147483648, the same value an unsigned
// 32-bit coercion would produce.
package dailyselect

import (
	"errors"
	"fmt"
	"unicode/utf16"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrEmptyCandidates = fmt.Errorf("%w: candidates must not be empty", ErrInvalidArgument)
)

// Hash returns the 32-bit polynomial hash of dateKey over its UTF-16 code units.
func Hash(dateKey string) int32 {
	var hash int32
	for _, c := range utf16.Encode([]rune(dateKey)) {
		hash = (hash << 5) - hash + int32(c)
	}
	return hash
}

// Index maps dateKey onto [0, n).
func Index(dateKey string, n int) (int, error) {
	if n <= 0 {
		return 0, ErrEmptyCandidates
	}
	abs := int64(Hash(dateKey))
	if abs < 0 {
		abs = -abs
	}
	return int(abs % int64(n)), nil
}

// Select returns the candidate for dateKey.
func Select[T any](dateKey string, candidates []T) (T, error) {
	item, _, err := SelectIndexed(dateKey, candidates)
	return item, err
}

// SelectIndexed is Select that also reports the index used.
func SelectIndexed[T any](dateKey string, candidates []T) (T, int, error) {
	var zero T
	index, err := Index(dateKey, len(candidates))
	if err != nil {
		return zero, 0, err
	}
	return candidates[index], index, nil
}
