package utils

import (
	"cmp"
	"math"
	"slices"

	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Float | constraints.Integer
}

// Argmin returns the index of the first smallest element, or -1 for an empty slice.
func Argmin[T cmp.Ordered](arr []T) (argmin int) {
	if len(arr) == 0 {
		return -1
	}
	for i := range arr {
		if cmp.Compare(arr[i], arr[argmin]) == -1 {
			argmin = i
		}
	}
	return
}

// RoundTo rounds half away from zero to the given number of decimal places.
func RoundTo[T constraints.Float](v T, places int) T {
	scale := math.Pow(10, float64(places))
	return T(math.Round(float64(v)*scale) / scale)
}

func IsFinite[T Number](v T) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func Average[T Number](s []T) (mean float64) {
	for i := range s {
		mean += float64(s[i])
	}
	mean /= float64(len(s))
	return
}

// Diameter is the largest pairwise distance within s.
func Diameter(s []float64) (d float64) {
	for i := range s {
		for j := i + 1; j < len(s); j++ {
			d = max(d, math.Abs(s[i]-s[j]))
		}
	}
	return
}

func IntAbs(a int) int {
	if a < 0 {
		return -a
	} else {
		return a
	}
}

func Intersect(a, b []string) *string {
	for i := range a {
		if slices.Contains(b, a[i]) {
			return &a[i]
		}
	}
	return nil
}
