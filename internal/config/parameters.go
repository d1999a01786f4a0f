package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/wildstyl3r/rootfind/internal/constants"
	"github.com/wildstyl3r/rootfind/internal/model"
	"github.com/wildstyl3r/rootfind/internal/solver"
	"github.com/wildstyl3r/rootfind/internal/utils"
)

var ErrInvalid = errors.New("config: invalid configuration")

// Config describes one comparison run. Values are read in InputUnits and
// stored in SI after loading.
//
//	InputUnits = ["km", "h"]
//	TraceDir   = "traces"
//
//	[Model]
//	TargetVelocity = 162 # km/h
//
//	[Solver]
//	Lower = 50
//	Upper = 200
type Config struct {
	TraceDir   string
	InputUnits []string
	Model      ModelParameters
	Solver     SolverParameters
}

type ModelParameters struct {
	Gravity        float64 // [m s^-2]
	Drag           float64 // [kg s^-1]
	TargetVelocity float64 // [m s^-1]
	Time           float64 // [s]
}

type SolverParameters struct {
	Lower         float64 // [kg]
	Upper         float64 // [kg]
	InitialGuess  float64 // [kg]
	MaxIterations int
	Epsilon       float64 // on |F|, [m s^-1]
}

var defaultValues = map[string]map[string]any{ // in SI
	"Model": {
		"Gravity":        constants.StandardGravity,
		"Drag":           constants.ReferenceDrag,
		"TargetVelocity": constants.ReferenceTargetVelocity,
		"Time":           constants.ReferenceTime,
	},
	"Solver": {
		"Lower":         constants.ReferenceLowerMass,
		"Upper":         constants.ReferenceUpperMass,
		"InitialGuess":  constants.ReferenceGuessMass,
		"MaxIterations": solver.DefaultMaxIterations,
		"Epsilon":       solver.DefaultEpsilon,
	},
}

var valueUnits = map[string]map[string][]UnitElement{
	"Model": {
		"Gravity":        {{Class: Length, Power: 1}, {Class: Time, Power: -2}},
		"Drag":           {{Class: Mass, Power: 1}, {Class: Time, Power: -1}},
		"TargetVelocity": VelocityDimension,
		"Time":           {{Class: Time, Power: 1}},
	},
	"Solver": {
		"Lower":        {{Class: Mass, Power: 1}},
		"Upper":        {{Class: Mass, Power: 1}},
		"InitialGuess": {{Class: Mass, Power: 1}},
	},
}

// Default returns the reference problem.
func Default() Config {
	var config Config
	applyDefaults(&config, func(...string) bool { return false })
	config.InputUnits = append([]string(nil), defaultUnits...)
	return config
}

// LoadConfig reads configFileName, with or without the .toml suffix.
func LoadConfig(configFileName string) (Config, error) {
	file, err := os.Open(strings.TrimSuffix(configFileName, ".toml") + ".toml")
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer file.Close()
	return Load(file)
}

// Load decodes a TOML document, fills undefined keys from the reference
// problem, converts defined values to SI and validates the result.
func Load(r io.Reader) (Config, error) {
	var config Config
	meta, err := toml.NewDecoder(r).Decode(&config)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i := range undecoded {
			keys[i] = undecoded[i].String()
		}
		return Config{}, fmt.Errorf("unknown keys %v: %w", keys, ErrInvalid)
	}

	units, conflicts, err := checkUnits(config.InputUnits)
	if err != nil {
		return Config{}, err
	}
	if len(conflicts) > 0 {
		return Config{}, fmt.Errorf("found input unit conflict: %v: %w", conflicts, ErrUnits)
	}
	config.InputUnits = units

	config.toSI(meta.IsDefined)
	applyDefaults(&config, meta.IsDefined)

	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// section returns the addressable struct value of a top-level table.
func (c *Config) section(name string) reflect.Value {
	return reflect.ValueOf(c).Elem().FieldByName(name)
}

func applyDefaults(c *Config, isDefined func(...string) bool) {
	for sectionName, values := range defaultValues {
		section := c.section(sectionName)
		for fieldName, value := range values {
			if !isDefined(sectionName, fieldName) {
				section.FieldByName(fieldName).Set(reflect.ValueOf(value))
			}
		}
	}
}

func (c *Config) toSI(isDefined func(...string) bool) {
	for sectionName, fields := range valueUnits {
		section := c.section(sectionName)
		for fieldName, classes := range fields {
			field := section.FieldByName(fieldName)
			if isDefined(sectionName, fieldName) && field.CanFloat() {
				field.SetFloat(SI(field.Float(), classes, c.InputUnits, true))
			}
		}
	}
}

func (c Config) Validate() error {
	if err := c.Velocity().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	s := c.Solver
	if !utils.IsFinite(s.Lower) || !utils.IsFinite(s.Upper) || !(s.Lower < s.Upper) {
		return fmt.Errorf("bounds [%g, %g] must be ordered: %w", s.Lower, s.Upper, ErrInvalid)
	}
	if !utils.IsFinite(s.InitialGuess) {
		return fmt.Errorf("initial guess %g must be finite: %w", s.InitialGuess, ErrInvalid)
	}
	if s.MaxIterations <= 0 {
		return fmt.Errorf("max iterations %d must be positive: %w", s.MaxIterations, ErrInvalid)
	}
	if !(s.Epsilon > 0) || math.IsInf(s.Epsilon, 0) {
		return fmt.Errorf("epsilon %g must be positive: %w", s.Epsilon, ErrInvalid)
	}
	return nil
}

func (c Config) Velocity() model.Velocity {
	return model.Velocity{
		Gravity:        c.Model.Gravity,
		Drag:           c.Model.Drag,
		TargetVelocity: c.Model.TargetVelocity,
		Time:           c.Model.Time,
	}
}

// FromSI converts an SI value of the given dimension to InputUnits.
func (c Config) FromSI(v float64, classes []UnitElement) float64 {
	return SI(v, classes, c.InputUnits, false)
}

func (c Config) UnitLabel(classes []UnitElement) string {
	return UnitLabel(classes, c.InputUnits)
}

func (s SolverParameters) Options() []solver.Option {
	return []solver.Option{
		solver.WithEpsilon(s.Epsilon),
		solver.WithMaxIterations(s.MaxIterations),
	}
}
