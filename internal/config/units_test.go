package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckUnits(t *testing.T) {
	extended, conflicts, err := checkUnits([]string{"km"})
	require.NoError(t, err)
	assert.Empty(t, conflicts)
	assert.Equal(t, []string{"km", "s", "kg"}, extended)

	_, conflicts, err = checkUnits([]string{"min", "h"})
	require.NoError(t, err)
	assert.Equal(t, []string{"h"}, conflicts)

	_, _, err = checkUnits([]string{"parsec"})
	assert.ErrorIs(t, err, ErrUnits)
}

func TestSI(t *testing.T) {
	velocity := []UnitElement{{Class: Length, Power: 1}, {Class: Time, Power: -1}}
	assert.InDelta(t, 25.0, SI(90, velocity, []string{"km", "h", "kg"}, true), 1e-12)
	assert.InDelta(t, 90.0, SI(25, velocity, []string{"km", "h", "kg"}, false), 1e-12)

	gravity := []UnitElement{{Class: Length, Power: 1}, {Class: Time, Power: -2}}
	assert.InDelta(t, 9.81, SI(981, gravity, []string{"cm", "s", "kg"}, true), 1e-12)

	drag := []UnitElement{{Class: Mass, Power: 1}, {Class: Time, Power: -1}}
	assert.InDelta(t, 12.5, SI(750, drag, []string{"m", "min", "kg"}, true), 1e-12)
}

func TestUnitLabel(t *testing.T) {
	assert.Equal(t, "m/s", UnitLabel(VelocityDimension, defaultUnits))
	assert.Equal(t, "km/h", UnitLabel(VelocityDimension, []string{"km", "h", "kg"}))
	assert.Equal(t, "cm/s^2", UnitLabel([]UnitElement{{Class: Length, Power: 1}, {Class: Time, Power: -2}}, []string{"cm", "s"}))
	assert.Equal(t, "kg/min", UnitLabel([]UnitElement{{Class: Mass, Power: 1}, {Class: Time, Power: -1}}, []string{"kg", "min"}))
	assert.Equal(t, "1/s", UnitLabel([]UnitElement{{Class: Time, Power: -1}}, defaultUnits))
}
