package build

import (
	"citybuilder/internal/app/cityview"
	"citybuilder/internal/domain/city"
)

type PlaceRequest struct {
	CityID string
	X      int
	Y      int
	Type   city.BuildingType
}

type BulldozeRequest struct {
	CityID string
	X      int
	Y      int
}

type Response struct {
	Tile    cityview.TileView `json:"tile"`
	Summary cityview.Summary  `json:"summary"`
}
