package model

import (
	"errors"
	"fmt"
	"math"

	"github.com/wildstyl3r/rootfind/internal/constants"
)

var ErrBadParameters = errors.New("model: invalid parameters")

// Velocity is a falling body with linear drag:
//
//	v(m) = (m·g/c)·(1 − exp(−c·t/m))
//
// F(m) = v(m) − TargetVelocity vanishes at the mass that reaches
// TargetVelocity after Time seconds.
type Velocity struct {
	Gravity        float64 // [m s^-2]
	Drag           float64 // [kg s^-1]
	TargetVelocity float64 // [m s^-1]
	Time           float64 // [s]
}

func Reference() Velocity {
	return Velocity{
		Gravity:        constants.StandardGravity,
		Drag:           constants.ReferenceDrag,
		TargetVelocity: constants.ReferenceTargetVelocity,
		Time:           constants.ReferenceTime,
	}
}

func (v Velocity) Validate() error {
	for _, p := range []struct {
		name  string
		value float64
	}{
		{"gravity", v.Gravity},
		{"drag", v.Drag},
		{"time", v.Time},
	} {
		if !(p.value > 0) || math.IsInf(p.value, 0) {
			return fmt.Errorf("%s = %g must be positive and finite: %w", p.name, p.value, ErrBadParameters)
		}
	}
	if math.IsNaN(v.TargetVelocity) || math.IsInf(v.TargetVelocity, 0) {
		return fmt.Errorf("target velocity = %g must be finite: %w", v.TargetVelocity, ErrBadParameters)
	}
	return nil
}

// VelocityAt returns the speed of a body of mass m after Time seconds.
func (v Velocity) VelocityAt(m float64) float64 {
	return m * v.Gravity / v.Drag * (1 - math.Exp(-v.Drag*v.Time/m))
}

func (v Velocity) F(m float64) float64 {
	return v.VelocityAt(m) - v.TargetVelocity
}

// DF is dF/dm = (g/c)·(1 − e) − (g·t/m)·e, e = exp(−c·t/m).
func (v Velocity) DF(m float64) float64 {
	e := math.Exp(-v.Drag * v.Time / m)
	return v.Gravity/v.Drag*(1-e) - v.Gravity*v.Time*e/m
}
