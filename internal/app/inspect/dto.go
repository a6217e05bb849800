package inspect

import "citybuilder/internal/app/cityview"

type Request struct {
	CityID string
	X      int
	Y      int
}

type Response struct {
	Tile      cityview.TileView   `json:"tile"`
	Neighbors []cityview.TileView `json:"neighbors"`
}
