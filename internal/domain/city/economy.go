package city

// Economy holds the aggregate counters. Values are not clamped; a deficit
// shows up as a negative number.
type Economy struct {
	Population float64 `json:"population" yaml:"population"`
	Money      float64 `json:"money" yaml:"money"`
	Energy     float64 `json:"energy" yaml:"energy"`
	Food       float64 `json:"food" yaml:"food"`
	GHG        float64 `json:"ghg" yaml:"ghg"`
}

// Yield is the per-step contribution of one building.
type Yield struct {
	Food   float64 `json:"food" yaml:"food"`
	Energy float64 `json:"energy" yaml:"energy"`
	GHG    float64 `json:"ghg" yaml:"ghg"`
	Money  float64 `json:"money" yaml:"money"`
}

type Tuning struct {
	Initial          Economy      `yaml:"initial"`
	GrowthPopulation float64      `yaml:"growth_population"`
	GrowthBuilding   BuildingType `yaml:"growth_building"`
	FoodPerCapita    float64      `yaml:"food_per_capita"`
	EnergyPerCapita  float64      `yaml:"energy_per_capita"`
	GHGPerCapita     float64      `yaml:"ghg_per_capita"`
	Residential      Yield        `yaml:"residential"`
	Other            Yield        `yaml:"other"`
}

const (
	DefaultGrowthPopulation = 10
	DefaultFoodPerCapita    = 0.2
	DefaultEnergyPerCapita  = 0.3
	DefaultGHGPerCapita     = 0.1
)

func DefaultTuning() Tuning {
	return Tuning{
		Initial: Economy{
			Population: 10,
			Money:      1000,
			Energy:     20,
			Food:       20,
			GHG:        0,
		},
		GrowthPopulation: DefaultGrowthPopulation,
		GrowthBuilding:   BuildingCommercial,
		FoodPerCapita:    DefaultFoodPerCapita,
		EnergyPerCapita:  DefaultEnergyPerCapita,
		GHGPerCapita:     DefaultGHGPerCapita,
		// Residential currently stands in for a food factory.
		Residential: Yield{Food: 5, GHG: 2, Money: 20},
		Other:       Yield{Energy: 8, GHG: 3, Money: 50},
	}
}

func (t Tuning) yieldFor(bt BuildingType) Yield {
	if bt == BuildingResidential {
		return t.Residential
	}
	return t.Other
}

func (e *Economy) consume(t Tuning) {
	e.Food -= e.Population * t.FoodPerCapita
	e.Energy -= e.Population * t.EnergyPerCapita
	e.GHG += e.Population * t.GHGPerCapita
}

func (e *Economy) add(y Yield) {
	e.Food += y.Food
	e.Energy += y.Energy
	e.GHG += y.GHG
	e.Money += y.Money
}
