// Package fibonacci computes Fibonacci numbers iteratively.
package fibonacci

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// MaxPosition is the largest n for which F(n) fits in a uint64.
const MaxPosition = 93

// Position is anything that can name an index into the sequence: a native
// number or its textual form.
type Position interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 |
		~string
}

// Fibonacci returns F(position), where F(0)=0 and F(1)=1.
// The error wraps ErrNegativeInput, ErrInvalidInput or ErrOverflow.
func Fibonacci[P Position](position P) (uint64, error) {
	n, err := Normalize(position)
	if err != nil {
		return 0, err
	}
	return Compute(n)
}

// Normalize converts position to a non-negative int index.
func Normalize[P Position](position P) (int, error) {
	v := reflect.ValueOf(position)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := v.Int()
		if i < 0 {
			return 0, fmt.Errorf("fibonacci: %w: %d", ErrNegativeInput, i)
		}
		if i > math.MaxInt {
			return 0, fmt.Errorf("fibonacci: %w: %d", ErrOverflow, i)
		}
		return int(i), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := v.Uint()
		if u > math.MaxInt {
			return 0, fmt.Errorf("fibonacci: %w: %d", ErrOverflow, u)
		}
		return int(u), nil
	case reflect.Float32, reflect.Float64:
		return normalizeFloat(v.Float())
	default:
		return normalizeString(v.String())
	}
}

func normalizeFloat(f float64) (int, error) {
	switch {
	case math.IsNaN(f):
		return 0, fmt.Errorf("fibonacci: %w: %v", ErrInvalidInput, f)
	case f < 0:
		return 0, fmt.Errorf("fibonacci: %w: %v", ErrNegativeInput, f)
	case math.IsInf(f, 1), f != math.Trunc(f):
		return 0, fmt.Errorf("fibonacci: %w: %v", ErrInvalidInput, f)
	case f >= math.MaxInt:
		// float64(math.MaxInt) rounds up to 2^63, which int cannot hold.
		return 0, fmt.Errorf("fibonacci: %w: %v", ErrOverflow, f)
	}
	return int(f), nil
}

func normalizeString(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("fibonacci: %w: empty string", ErrInvalidInput)
	}

	i, err := strconv.ParseInt(s, 10, 0)
	if err == nil {
		if i < 0 {
			return 0, fmt.Errorf("fibonacci: %w: %q", ErrNegativeInput, s)
		}
		return int(i), nil
	}
	if errors.Is(err, strconv.ErrRange) {
		if s[0] == '-' {
			return 0, fmt.Errorf("fibonacci: %w: %q", ErrNegativeInput, s)
		}
		return 0, fmt.Errorf("fibonacci: %w: %q", ErrOverflow, s)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if !errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("fibonacci: %w: %q", ErrInvalidInput, s)
		}
		if f < 0 {
			return 0, fmt.Errorf("fibonacci: %w: %q", ErrNegativeInput, s)
		}
		return 0, fmt.Errorf("fibonacci: %w: %q", ErrOverflow, s)
	}
	return normalizeFloat(f)
}

// Compute returns F(n) using two running values, in O(n) time and O(1) space.
func Compute(n int) (uint64, error) {
	switch {
	case n < 0:
		return 0, fmt.Errorf("fibonacci: %w: %d", ErrNegativeInput, n)
	case n == 0:
		return 0, nil
	case n == 1:
		return 1, nil
	case n > MaxPosition:
		return 0, fmt.Errorf("fibonacci: %w: position %d exceeds %d", ErrOverflow, n, MaxPosition)
	}

	var firstPrev, secondPrev uint64 = 1, 0 // F(i-1), F(i-2)
	for i := 2; i <= n; i++ {
		firstPrev, secondPrev = firstPrev+secondPrev, firstPrev
	}
	return firstPrev, nil
}
