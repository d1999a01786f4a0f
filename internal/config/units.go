package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/wildstyl3r/rootfind/internal/utils"
)

var ErrUnits = errors.New("config: invalid units")

var unitToSI = map[string]float64{
	"m":   1,    // [m]
	"cm":  1e-2, // [m]
	"km":  1e3,  // [m]
	"s":   1,    // [s]
	"min": 60,   // [s]
	"h":   3600, // [s]
	"kg":  1,    // [kg]
	"g":   1e-3, // [kg]
}

type UnitClass int

const (
	Length UnitClass = iota
	Time
	Mass
)

var unitsInClass = map[UnitClass][]string{
	Length: {"cm", "m", "km"},
	Time:   {"s", "min", "h"},
	Mass:   {"g", "kg"},
}

var classesOfUnits = map[string]UnitClass{
	"m":   Length,
	"cm":  Length,
	"km":  Length,
	"s":   Time,
	"min": Time,
	"h":   Time,
	"kg":  Mass,
	"g":   Mass,
}

var defaultUnits = []string{"m", "s", "kg"}

type UnitElement = struct {
	Class UnitClass
	Power int
}

// checkUnits returns units completed with the SI default of every class
// that was not mentioned, plus units whose class was already taken.
func checkUnits(units []string) (extended, conflicts []string, err error) {
	classes := map[UnitClass]struct{}{}
	for _, unit := range units {
		class, known := classesOfUnits[unit]
		if !known {
			return nil, nil, fmt.Errorf("unknown unit %q: %w", unit, ErrUnits)
		}
		if _, some := classes[class]; some {
			conflicts = append(conflicts, unit)
		} else {
			classes[class] = struct{}{}
		}
	}
	extended = append([]string(nil), units...)
	for _, unit := range defaultUnits {
		if _, some := classes[classesOfUnits[unit]]; !some {
			extended = append(extended, unit)
		}
	}
	return
}

// VelocityDimension is the dimension of speed.
var VelocityDimension = []UnitElement{{Class: Length, Power: 1}, {Class: Time, Power: -1}}

// UnitLabel names the dimension in the given units, e.g. "km/h" or "m/s^2".
func UnitLabel(classes []UnitElement, units []string) string {
	var num, den []string
	for _, uc := range classes {
		unit := utils.Intersect(unitsInClass[uc.Class], units)
		if unit == nil || uc.Power == 0 {
			continue
		}
		name := *unit
		if p := utils.IntAbs(uc.Power); p != 1 {
			name += "^" + strconv.Itoa(p)
		}
		if uc.Power > 0 {
			num = append(num, name)
		} else {
			den = append(den, name)
		}
	}
	label := strings.Join(num, "·")
	if label == "" {
		label = "1"
	}
	for _, d := range den {
		label += "/" + d
	}
	return label
}

// SI converts v measured in units to SI when direct is true, and from SI
// to units otherwise. classes is the dimension of v, e.g. velocity is
// {Length, 1}, {Time, -1}.
func SI(v float64, classes []UnitElement, units []string, direct bool) float64 {
	for i := range classes {
		uc := classes[i]
		unit := utils.Intersect(unitsInClass[uc.Class], units)
		if unit == nil {
			continue
		}
		factor := unitToSI[*unit]
		absPower := utils.IntAbs(uc.Power)
		if direct == (uc.Power > 0) {
			for range absPower {
				v *= factor
			}
		} else {
			for range absPower {
				v /= factor
			}
		}
	}
	return v
}
