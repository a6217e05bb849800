package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"citybuilder/internal/domain/city"

	"gopkg.in/yaml.v3"
)

var ErrInvalidTuning = errors.New("invalid tuning")

// LoadTuning reads a YAML tuning file. Keys missing from the file keep their
// city.DefaultTuning values.
func LoadTuning(path string) (city.Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return city.Tuning{}, fmt.Errorf("read tuning file %s: %w", path, err)
	}
	return ParseTuning(data)
}

func ParseTuning(data []byte) (city.Tuning, error) {
	tuning := city.DefaultTuning()
	if err := yaml.Unmarshal(data, &tuning); err != nil {
		return city.Tuning{}, fmt.Errorf("parse tuning yaml: %w", err)
	}
	tuning.GrowthBuilding = city.BuildingType(strings.TrimSpace(string(tuning.GrowthBuilding)))
	if err := validate(tuning); err != nil {
		return city.Tuning{}, err
	}
	return tuning, nil
}

func validate(t city.Tuning) error {
	if !t.GrowthBuilding.Valid() {
		return fmt.Errorf("%w: growth_building %q", ErrInvalidTuning, t.GrowthBuilding)
	}
	if t.GrowthPopulation < 0 {
		return fmt.Errorf("%w: growth_population must be >= 0", ErrInvalidTuning)
	}
	if t.FoodPerCapita < 0 || t.EnergyPerCapita < 0 || t.GHGPerCapita < 0 {
		return fmt.Errorf("%w: per-capita rates must be >= 0", ErrInvalidTuning)
	}
	return nil
}
