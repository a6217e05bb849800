package simulate

import (
	"citybuilder/internal/app/cityview"
	"citybuilder/internal/domain/city"
)

type Mode string

const (
	// ModeTick runs the full per-tick pipeline: traversal, growth, economy.
	ModeTick Mode = "tick"
	// ModeTraverse only walks the grid calling each building's Simulate.
	ModeTraverse Mode = "traverse"
	// ModeManual runs growth and economy without traversal or a clock advance.
	ModeManual Mode = "manual"
)

type Request struct {
	CityID string
	Steps  int
	Mode   Mode
}

type Response struct {
	Mode    Mode             `json:"mode"`
	Steps   int              `json:"steps"`
	Grown   []city.Point     `json:"grown"`
	Summary cityview.Summary `json:"summary"`
}
