package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// TemperatureReading is one sensor observation. A reading is immutable and
// consumed by exactly one monitor tick.
type TemperatureReading struct {
	Celsius   float64   `json:"celsius"`
	Source    string    `json:"source"`
	Timestamp time.Time `json:"ts"`
}

// Unit selects the on-device display unit. Threshold comparisons always stay
// in Celsius; the unit only affects what the panel shows.
type Unit int

const (
	Celsius Unit = iota
	Fahrenheit
)

// ParseUnit accepts the single-letter form used by the config file.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c", "celsius":
		return Celsius, nil
	case "f", "fahrenheit":
		return Fahrenheit, nil
	}
	return Celsius, fmt.Errorf("unknown temperature unit %q (use c or f)", s)
}

func (u Unit) String() string {
	if u == Fahrenheit {
		return "fahrenheit"
	}
	return "celsius"
}

// Symbol returns the display suffix, e.g. "°C".
func (u Unit) Symbol() string {
	if u == Fahrenheit {
		return "°F"
	}
	return "°C"
}

// FromCelsius converts a Celsius value into the unit.
func (u Unit) FromCelsius(c float64) float64 {
	if u == Fahrenheit {
		return c*9.0/5.0 + 32.0
	}
	return c
}

// ToCelsius is the inverse of FromCelsius.
func (u Unit) ToCelsius(v float64) float64 {
	if u == Fahrenheit {
		return (v - 32.0) * 5.0 / 9.0
	}
	return v
}

// SensorKind names the temperature source family.
type SensorKind int

const (
	SensorCPU SensorKind = iota
	SensorGPU
)

func ParseSensorKind(s string) (SensorKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cpu":
		return SensorCPU, nil
	case "gpu":
		return SensorGPU, nil
	}
	return SensorCPU, fmt.Errorf("unknown sensor kind %q (use cpu or gpu)", s)
}

func (k SensorKind) String() string {
	if k == SensorGPU {
		return "gpu"
	}
	return "cpu"
}

// Representable range of the three-digit panel.
const (
	DisplayMin = 0
	DisplayMax = 999
)

// ToDisplay converts a Celsius reading into whole display degrees.
func ToDisplay(celsius float64, u Unit) int {
	return int(math.Round(u.FromCelsius(celsius)))
}

// ClampDisplay bounds a display value to the representable digit range and
// reports whether clamping happened. Clamping affects only the shown digits;
// threshold evaluation uses the raw value.
func ClampDisplay(d int) (int, bool) {
	switch {
	case d < DisplayMin:
		return DisplayMin, true
	case d > DisplayMax:
		return DisplayMax, true
	}
	return d, false
}
