package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// GroundFloor is the label used for a ground floor ("Térreo"). It sorts
// before every numeric floor label.
const GroundFloor = "T"

// FloorConfig caps how many rooms a floor may hold.
type FloorConfig struct {
	MaxRooms int `yaml:"maxRooms"`
}

// OfficeConfig describes one office site: display name plus the floors
// available for rooms. Loaded once at startup, read-only afterwards.
type OfficeConfig struct {
	Name   string                 `yaml:"name"`
	Floors map[string]FloorConfig `yaml:"floors"`
}

// Offices maps an office code (e.g. "MG") to its configuration.
type Offices map[string]OfficeConfig

// LoadOffices reads the office configuration from a YAML file. An empty
// path returns the compiled-in defaults.
func LoadOffices(path string) (Offices, error) {
	if path == "" {
		return DefaultOffices(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read offices file: %w", err)
	}

	var doc struct {
		Offices Offices `yaml:"offices"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse offices file: %w", err)
	}
	if len(doc.Offices) == 0 {
		return nil, fmt.Errorf("offices file %s defines no offices", path)
	}

	return doc.Offices, nil
}

// Office looks up an office by code.
func (o Offices) Office(code string) (OfficeConfig, bool) {
	cfg, ok := o[code]
	return cfg, ok
}

// FloorCapacity returns the room cap for an office floor. ok is false when
// the office or the floor does not exist.
func (o Offices) FloorCapacity(office, floor string) (int, bool) {
	cfg, ok := o[office]
	if !ok {
		return 0, false
	}
	fl, ok := cfg.Floors[floor]
	if !ok {
		return 0, false
	}
	return fl.MaxRooms, true
}

// DefaultOffices returns the built-in site configuration.
func DefaultOffices() Offices {
	return Offices{
		"MG": {
			Name: "Mario Garnero",
			Floors: map[string]FloorConfig{
				"8":  {MaxRooms: 5},
				"9":  {MaxRooms: 5},
				"10": {MaxRooms: 3},
				"12": {MaxRooms: 7},
				"13": {MaxRooms: 6},
			},
		},
		"FL": {
			Name: "Faria Lima",
			Floors: map[string]FloorConfig{
				GroundFloor: {MaxRooms: 3},
				"1":         {MaxRooms: 1},
				"2":         {MaxRooms: 3},
				"3":         {MaxRooms: 3},
				"4":         {MaxRooms: 2},
				"5":         {MaxRooms: 4},
				"6":         {MaxRooms: 2},
				"7":         {MaxRooms: 3},
				"8":         {MaxRooms: 4},
				"9":         {MaxRooms: 3},
				"10":        {MaxRooms: 1},
				"11":        {MaxRooms: 4},
			},
		},
		"Berrini": {
			Name: "Berrini",
			Floors: map[string]FloorConfig{
				"8": {MaxRooms: 3},
				"9": {MaxRooms: 2},
			},
		},
		"BL": {
			Name: "Barão de Limeira",
			Floors: map[string]FloorConfig{
				"1": {MaxRooms: 7},
				"2": {MaxRooms: 6},
				"6": {MaxRooms: 6},
				"7": {MaxRooms: 6},
			},
		},
	}
}
