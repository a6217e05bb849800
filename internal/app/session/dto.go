package session

import "citybuilder/internal/app/cityview"

type CreateRequest struct {
	Name string
	Size int
	Seed int64
}

type CreateResponse struct {
	CityID  string           `json:"city_id"`
	Seed    int64            `json:"seed"`
	Summary cityview.Summary `json:"summary"`
}

type EndRequest struct {
	CityID string
}
