// Package sequence computes the maximum of a number sequence with eager
// input validation. Inputs arrive as []any so that mixed-type data from
// decoded documents can be rejected with a precise error instead of a panic.
package sequence

import (
	"errors"
	"fmt"
)

// ErrEmptySequence is returned when the input holds no elements at all.
// An explicit error beats inheriting whatever max-of-nothing would do.
var ErrEmptySequence = errors.New("sequence is empty")

// ValidationError reports the non-integer elements found in the input.
// Offending holds each distinct offender once, in first-seen order.
type ValidationError struct {
	Offending []any
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("expected numbers in sequence, but found non-number: %v", e.Offending)
}

// Max returns the greatest element of values. Validation runs before any
// computation: if any element is not an int, Max fails with a
// *ValidationError naming every distinct offender; an empty input fails
// with ErrEmptySequence.
func Max(values []any) (int, error) {
	numbers, err := validate(values)
	if err != nil {
		return 0, err
	}
	if len(numbers) == 0 {
		return 0, ErrEmptySequence
	}

	greatest := numbers[0]
	for _, n := range numbers[1:] {
		if n > greatest {
			greatest = n
		}
	}
	return greatest, nil
}

// Validated is a sequence whose elements were checked at construction,
// so Max cannot fail afterwards.
type Validated struct {
	numbers []int
}

// NewValidated applies the same guard as Max eagerly: non-integer elements
// or an empty input reject construction.
func NewValidated(values []any) (*Validated, error) {
	numbers, err := validate(values)
	if err != nil {
		return nil, err
	}
	if len(numbers) == 0 {
		return nil, ErrEmptySequence
	}
	return &Validated{numbers: numbers}, nil
}

// Max returns the greatest element of the validated sequence.
func (v *Validated) Max() int {
	greatest := v.numbers[0]
	for _, n := range v.numbers[1:] {
		if n > greatest {
			greatest = n
		}
	}
	return greatest
}

// validate partitions values into integers and offenders. It returns the
// integers, or a *ValidationError listing each distinct offender.
func validate(values []any) ([]int, error) {
	numbers := make([]int, 0, len(values))
	var offending []any
	seen := make(map[string]struct{})

	for _, v := range values {
		n, ok := v.(int)
		if !ok {
			// Keyed on formatted value so non-comparable offenders
			// (slices, maps) cannot panic the dedup map.
			key := fmt.Sprintf("%T:%v", v, v)
			if _, dup := seen[key]; !dup {
				seen[key] = struct{}{}
				offending = append(offending, v)
			}
			continue
		}
		numbers = append(numbers, n)
	}
	if len(offending) > 0 {
		return nil, &ValidationError{Offending: offending}
	}
	return numbers, nil
}
