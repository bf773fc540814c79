package mathutil

import (
	"golang.org/x/exp/constraints"
)

func Limit[T constraints.Ordered](v, min, max T) T {
	if v < min {
		return min
	} else if v > max {
		return max
	}
	return v
}

//----------

func Min[T constraints.Ordered](s ...T) T {
	m := s[0]
	for _, v := range s[1:] {
		if m > v {
			m = v
		}
	}
	return m
}
func Max[T constraints.Ordered](s ...T) T {
	m := s[0]
	for _, v := range s[1:] {
		if m < v {
			m = v
		}
	}
	return m
}

//----------

// Percent returns the truncated p percent of v.
func Percent(v int, p float64) int {
	return int(float64(v) * p / 100)
}
