package search

import (
	"citybuilder/internal/app/cityview"
	"citybuilder/internal/domain/city"
)

type Match string

const (
	MatchEmpty    Match = "empty"
	MatchOccupied Match = "occupied"
	MatchType     Match = "type"
)

type Request struct {
	CityID      string
	X           int
	Y           int
	Match       Match
	Type        city.BuildingType
	MaxDistance int
}

type Response struct {
	Found    bool               `json:"found"`
	Tile     *cityview.TileView `json:"tile,omitempty"`
	Distance int                `json:"distance"`
}
